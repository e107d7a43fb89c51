package asset

import (
	"fmt"

	"github.com/lixenwraith/heartreels/config"
)

// Library is everything the renderer needs to draw a symbol: a sprite or,
// failing that, a text glyph
type Library struct {
	Sprites map[string]*Sprite
	Glyphs  map[string]string
}

// LoadLibrary resolves every configured symbol. With cfg.Dir set, sprites
// come from disk; otherwise from the built-in set. Any missing sprite is fatal.
func LoadLibrary(cfg config.AssetConfig) (*Library, error) {
	lib := &Library{Glyphs: make(map[string]string, len(cfg.Glyphs))}
	for name, glyph := range cfg.Glyphs {
		lib.Glyphs[name] = glyph
	}

	if cfg.Dir != "" {
		sprites, err := LoadSprites(cfg.Dir, cfg.Sprites)
		if err != nil {
			return nil, err
		}
		lib.Sprites = sprites
		return lib, nil
	}

	lib.Sprites = make(map[string]*Sprite, len(cfg.Sprites))
	for name := range cfg.Sprites {
		s, ok := Builtin(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s: no built-in sprite, set an asset directory", ErrAssetLoad, name)
		}
		lib.Sprites[name] = s
	}
	return lib, nil
}

// Sprite returns the sprite for a symbol, if any
func (l *Library) Sprite(symbol string) (*Sprite, bool) {
	s, ok := l.Sprites[symbol]
	return s, ok
}

// Glyph returns the text glyph for a symbol, falling back to its name
func (l *Library) Glyph(symbol string) string {
	if g, ok := l.Glyphs[symbol]; ok {
		return g
	}
	return symbol
}
