package asset

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/heartreels/config"
)

func writePNG(t *testing.T, dir, name string, w, h int, fill color.Color) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, fill)
		}
	}
	// Transparent top-left pixel
	img.Set(0, 0, color.NRGBA{})

	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestFromImageDownsamples(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"Small stays", 12, 10, 12, 10},
		{"Square shrinks", 128, 128, MaxSpriteSize, MaxSpriteSize},
		{"Wide keeps aspect", 128, 64, MaxSpriteSize, MaxSpriteSize / 2},
		{"Tall keeps aspect", 40, 160, MaxSpriteSize / 4, MaxSpriteSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, tt.w, tt.h))
			s := FromImage("x", img, MaxSpriteSize)
			if s.Width != tt.wantW || s.Height != tt.wantH {
				t.Errorf("size %dx%d, want %dx%d", s.Width, s.Height, tt.wantW, tt.wantH)
			}
			if len(s.Pixels) != s.Width*s.Height {
				t.Errorf("pixel count %d, want %d", len(s.Pixels), s.Width*s.Height)
			}
		})
	}
}

func TestLoadSprites(t *testing.T) {
	dir := t.TempDir()
	red := color.NRGBA{R: 200, A: 255}
	writePNG(t, dir, "bubu.png", 8, 8, red)
	writePNG(t, dir, "dudu.png", 64, 32, red)

	sprites, err := LoadSprites(dir, map[string]string{"bubu": "bubu.png", "dudu": "dudu.png"})
	if err != nil {
		t.Fatalf("LoadSprites: %v", err)
	}

	bubu := sprites["bubu"]
	if bubu == nil || bubu.Width != 8 || bubu.Height != 8 {
		t.Fatalf("bubu sprite = %+v", bubu)
	}
	if px := bubu.At(0, 0); px.A != 0 {
		t.Errorf("top-left pixel should be transparent, got %+v", px)
	}
	if px := bubu.At(4, 4); px.R != 200 || px.A != 0xff {
		t.Errorf("centre pixel = %+v, want opaque red", px)
	}
	if px := bubu.At(99, 99); px.A != 0 {
		t.Error("out of range pixel should be transparent")
	}

	if dudu := sprites["dudu"]; dudu.Width != MaxSpriteSize || dudu.Height != MaxSpriteSize/2 {
		t.Errorf("dudu size %dx%d", dudu.Width, dudu.Height)
	}
}

func TestLoadSpritesFailures(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "bubu.png", 8, 8, color.White)
	if err := os.WriteFile(filepath.Join(dir, "corrupt.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		files map[string]string
	}{
		{"Missing file", map[string]string{"bubu": "bubu.png", "fries": "fries.png"}},
		{"Corrupt file", map[string]string{"bubu": "bubu.png", "dudu": "corrupt.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sprites, err := LoadSprites(dir, tt.files)
			if !errors.Is(err, ErrAssetLoad) {
				t.Errorf("err = %v, want ErrAssetLoad", err)
			}
			if sprites != nil {
				t.Error("partial sprite set returned on failure")
			}
		})
	}
}

func TestBuiltinSprites(t *testing.T) {
	for _, name := range BuiltinNames() {
		t.Run(name, func(t *testing.T) {
			rows := builtinArt[name]
			for i, row := range rows {
				if len(row) != len(rows[0]) {
					t.Errorf("row %d has width %d, want %d", i, len(row), len(rows[0]))
				}
				for _, ch := range []byte(row) {
					if _, ok := builtinPalette[ch]; !ok && ch != '.' {
						t.Errorf("row %d uses unknown palette key %q", i, ch)
					}
				}
			}

			s, ok := Builtin(name)
			if !ok {
				t.Fatal("Builtin returned false")
			}
			opaque := 0
			for _, px := range s.Pixels {
				if px.A != 0 {
					opaque++
				}
			}
			if opaque == 0 {
				t.Error("sprite is fully transparent")
			}
		})
	}

	if _, ok := Builtin("unicorn"); ok {
		t.Error("unknown built-in should not resolve")
	}
}

func TestLoadLibrary(t *testing.T) {
	cfg := config.Default().Assets

	lib, err := LoadLibrary(cfg)
	if err != nil {
		t.Fatalf("LoadLibrary(builtin): %v", err)
	}
	for name := range cfg.Sprites {
		if _, ok := lib.Sprite(name); !ok {
			t.Errorf("missing sprite %q", name)
		}
	}
	if got := lib.Glyph("heart"); got != "❤" {
		t.Errorf("heart glyph = %q", got)
	}
	if got := lib.Glyph("bubu"); got != "bubu" {
		t.Errorf("glyph fallback = %q, want symbol name", got)
	}

	cfg.Sprites = map[string]string{"unicorn": "unicorn.png"}
	if _, err := LoadLibrary(cfg); !errors.Is(err, ErrAssetLoad) {
		t.Errorf("unknown builtin: err = %v, want ErrAssetLoad", err)
	}

	cfg.Dir = t.TempDir()
	if _, err := LoadLibrary(cfg); !errors.Is(err, ErrAssetLoad) {
		t.Errorf("empty dir: err = %v, want ErrAssetLoad", err)
	}
}
