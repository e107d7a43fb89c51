package asset

import "image/color"

// Built-in pixel art used when no asset directory is configured

var builtinPalette = map[byte]color.RGBA{
	'k': {R: 0x22, G: 0x1a, B: 0x1a, A: 0xff}, // Outline
	'w': {R: 0xfa, G: 0xf6, B: 0xf0, A: 0xff}, // Panda white
	'p': {R: 0xff, G: 0x9e, B: 0xb5, A: 0xff}, // Cheek pink
	'b': {R: 0x9c, G: 0x6b, B: 0x43, A: 0xff}, // Bear brown
	'd': {R: 0x5e, G: 0x3b, B: 0x22, A: 0xff}, // Dark brown
	'm': {R: 0xe8, G: 0xc9, B: 0x9b, A: 0xff}, // Muzzle
	'y': {R: 0xff, G: 0xd2, B: 0x3f, A: 0xff}, // Fry yellow
	'r': {R: 0xe0, G: 0x2d, B: 0x2d, A: 0xff}, // Carton red
}

var builtinArt = map[string][]string{
	"bubu": {
		"..kk....kk..",
		".kkkk..kkkk.",
		".kwwwwwwwwk.",
		"kwwwwwwwwwwk",
		"kwkkwwwwkkwk",
		"kwkkwwwwkkwk",
		"kwwwwkkwwwwk",
		"kwpwwwwwwpwk",
		".kwwwkkwwwk.",
		"..kwwwwwwk..",
		"...kkkkkk...",
		"............",
	},
	"dudu": {
		".bb......bb.",
		"bddb....bddb",
		".bbbbbbbbbb.",
		"bbbbbbbbbbbb",
		"bbkkbbbbkkbb",
		"bbkkbbbbkkbb",
		"bbbbmmmmbbbb",
		"bpbmmkkmmbpb",
		".bbmmmmmmbb.",
		"..bbbbbbbb..",
		"...bbbbbb...",
		"............",
	},
	"fries": {
		"..y.y..y.y..",
		".yy.yy.yy.y.",
		".yyyyyyyyyy.",
		"..yyyyyyyy..",
		".rrrrrrrrrr.",
		".rrwwrrwwrr.",
		".rrrrrrrrrr.",
		"..rrrrrrrr..",
		"..rrrrrrrr..",
		"..rrrrrrrr..",
		"...rrrrrr...",
		"............",
	},
}

// Builtin returns the built-in sprite for name
func Builtin(name string) (*Sprite, bool) {
	rows, ok := builtinArt[name]
	if !ok || len(rows) == 0 {
		return nil, false
	}

	w, h := len(rows[0]), len(rows)
	s := &Sprite{Name: name, Width: w, Height: h, Pixels: make([]color.RGBA, w*h)}
	for y, row := range rows {
		for x := 0; x < w && x < len(row); x++ {
			s.Pixels[y*w+x] = builtinPalette[row[x]] // '.' maps to transparent
		}
	}
	return s, true
}

// BuiltinNames lists the symbols with built-in art
func BuiltinNames() []string {
	return []string{"bubu", "dudu", "fries"}
}
