// Package asset loads the symbol sprites shown on the reels. Sprites are
// small pixel grids sampled by the renderer into half-block cells.
package asset

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
)

// MaxSpriteSize bounds either side of a decoded sprite, in pixels
const MaxSpriteSize = 32

// alphaThreshold below which a pixel counts as transparent
const alphaThreshold = 0x80

// ErrAssetLoad wraps every failure to produce a required sprite
var ErrAssetLoad = errors.New("asset load failed")

// Sprite is a row-major pixel grid; pixels with A == 0 are transparent
type Sprite struct {
	Name          string
	Width, Height int
	Pixels        []color.RGBA
}

// At returns the pixel at x, y or transparent when out of range
func (s *Sprite) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return color.RGBA{}
	}
	return s.Pixels[y*s.Width+x]
}

// Sample returns the pixel under the normalized coordinate u, v in [0, 1)
func (s *Sprite) Sample(u, v float64) color.RGBA {
	return s.At(int(u*float64(s.Width)), int(v*float64(s.Height)))
}

// FromImage downsamples img to fit within maxSize on both axes, preserving
// aspect ratio. Sampling takes the centre of each source region.
func FromImage(name string, img image.Image, maxSize int) *Sprite {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return &Sprite{Name: name}
	}

	outW, outH := srcW, srcH
	if outW > maxSize || outH > maxSize {
		if srcW >= srcH {
			outW = maxSize
			outH = max(1, srcH*maxSize/srcW)
		} else {
			outH = maxSize
			outW = max(1, srcW*maxSize/srcH)
		}
	}

	s := &Sprite{Name: name, Width: outW, Height: outH, Pixels: make([]color.RGBA, outW*outH)}
	for y := 0; y < outH; y++ {
		for x := 0; x < outW; x++ {
			sx := min(bounds.Min.X+(x*srcW+srcW/2)/outW, bounds.Max.X-1)
			sy := min(bounds.Min.Y+(y*srcH+srcH/2)/outH, bounds.Max.Y-1)
			s.Pixels[y*outW+x] = toRGBA(img.At(sx, sy))
		}
	}
	return s
}

// toRGBA un-premultiplies and thresholds alpha
func toRGBA(c color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A < alphaThreshold {
		return color.RGBA{}
	}
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 0xff}
}

// LoadSprite decodes one image file
func LoadSprite(name, path string) (*Sprite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrAssetLoad, name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: decode %q: %w", ErrAssetLoad, name, path, err)
	}
	return FromImage(name, img, MaxSpriteSize), nil
}

// LoadSprites loads every mapped file from dir. All of them must load;
// the first failure in symbol order is returned.
func LoadSprites(dir string, files map[string]string) (map[string]*Sprite, error) {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	sprites := make(map[string]*Sprite, len(files))
	for _, name := range names {
		s, err := LoadSprite(name, filepath.Join(dir, files[name]))
		if err != nil {
			return nil, err
		}
		sprites[name] = s
	}
	return sprites, nil
}
