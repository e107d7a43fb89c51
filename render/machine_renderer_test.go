package render

import (
	"slices"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/heartreels/asset"
	"github.com/lixenwraith/heartreels/components"
	"github.com/lixenwraith/heartreels/config"
	"github.com/lixenwraith/heartreels/constants"
	"github.com/lixenwraith/heartreels/engine"
	"github.com/lixenwraith/heartreels/systems"
)

const (
	testCols = 80
	testRows = 30 // 80x30 gives exactly 10 virtual units per column
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(testCols, testRows)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestRenderer(t *testing.T) *MachineRenderer {
	t.Helper()
	cfg := config.Default()
	lib, err := asset.LoadLibrary(cfg.Assets)
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}
	layout := NewMachineLayout(constants.ReelCount, cfg.Machine.ReelHeight, cfg.Machine.SymbolHeight)
	return NewMachineRenderer(layout, lib, systems.NewWinEvaluator(cfg.Machine), cfg.Machine.SymbolHeight)
}

func rowText(screen tcell.Screen, row int) string {
	var b strings.Builder
	cols, _ := screen.Size()
	for col := 0; col < cols; col++ {
		mainc, _, _, _ := screen.GetContent(col, row)
		if mainc == 0 {
			mainc = ' '
		}
		b.WriteRune(mainc)
	}
	return b.String()
}

func baseFrame(r *MachineRenderer) Frame {
	return Frame{
		Reels:         make([]components.ReelComponent, constants.ReelCount),
		BannerVisible: true,
		Button:        r.Layout().Button,
	}
}

func TestMachineLayout(t *testing.T) {
	l := NewMachineLayout(constants.ReelCount, constants.ReelHeight, constants.SymbolHeight)

	if l.Body.W != 400 || l.Body.H != 360 || l.Top != 220 {
		t.Errorf("body = %+v top %v", l.Body, l.Top)
	}
	if got := l.Button.X + l.Button.Width/2; got != constants.SurfaceWidth/2 {
		t.Errorf("button centre x = %v", got)
	}
	for i, reel := range l.Reels {
		if reel.X < l.Body.X || reel.X+reel.W > l.Body.X+l.Body.W {
			t.Errorf("reel %d outside body: %+v", i, reel)
		}
		if i > 0 && reel.X-(l.Reels[i-1].X+l.Reels[i-1].W) != constants.ReelSpacing {
			t.Errorf("reel %d spacing wrong", i)
		}
	}

	middle := l.Reels[0].Y + constants.ReelHeight/2
	if !l.Indicator.Contains(l.Indicator.X+1, middle) {
		t.Errorf("indicator %+v misses the middle row at %v", l.Indicator, middle)
	}
}

func TestDrawBannerVisibility(t *testing.T) {
	screen := newTestScreen(t)
	r := newTestRenderer(t)
	vp := engine.NewViewport(testCols, testRows)
	bannerRow := 9 // (220 - 30) / 20

	frame := baseFrame(r)
	r.Draw(screen, vp, frame)
	if !strings.Contains(rowText(screen, bannerRow), constants.JackpotText) {
		t.Fatalf("banner missing: %q", rowText(screen, bannerRow))
	}

	screen.Clear()
	frame.BannerVisible = false
	r.Draw(screen, vp, frame)
	if strings.Contains(rowText(screen, bannerRow), constants.JackpotText) {
		t.Error("banner drawn while hidden")
	}

	megaRow := 12 // (220 + 30) / 20
	if !strings.Contains(rowText(screen, megaRow), constants.MegaWinText) {
		t.Errorf("MEGA WIN missing: %q", rowText(screen, megaRow))
	}
}

func TestDrawBannerColor(t *testing.T) {
	screen := newTestScreen(t)
	r := newTestRenderer(t)
	vp := engine.NewViewport(testCols, testRows)

	bannerColor := func() tcell.Color {
		row := []rune(rowText(screen, 9))
		col := slices.Index(row, 'J')
		_, _, style, _ := screen.GetContent(col, 9)
		fg, _, _ := style.Decompose()
		return fg
	}

	frame := baseFrame(r)
	r.Draw(screen, vp, frame)
	if got := bannerColor(); got != RgbBannerIdle {
		t.Errorf("idle banner colour = %v", got)
	}

	frame.Jackpot = true
	r.Draw(screen, vp, frame)
	if got := bannerColor(); got != RgbGold {
		t.Errorf("jackpot banner colour = %v", got)
	}
}

func TestDrawHearts(t *testing.T) {
	screen := newTestScreen(t)
	r := newTestRenderer(t)
	vp := engine.NewViewport(testCols, testRows)

	frame := baseFrame(r)
	frame.Particles = []components.ParticleComponent{
		{X: 55, Y: 50, Opacity: 1},
		{X: 55, Y: 90, Opacity: 0.5},
	}

	r.Draw(screen, vp, frame)
	if mainc, _, _, _ := screen.GetContent(5, 2); mainc != ' ' {
		t.Errorf("heart drawn outside a celebration: %q", mainc)
	}

	frame.Jackpot = true
	r.Draw(screen, vp, frame)

	tests := []struct {
		row  int
		want tcell.Color
	}{
		{2, RgbHeart},
		{4, Blend(RgbBackground, RgbHeart, 0.5)},
	}
	for _, tt := range tests {
		mainc, _, style, _ := screen.GetContent(5, tt.row)
		if !slices.Contains(heartGlyphs, string(mainc)) {
			t.Errorf("row %d glyph = %q, want a heart", tt.row, mainc)
		}
		if fg, _, _ := style.Decompose(); fg != tt.want {
			t.Errorf("row %d colour = %v, want %v", tt.row, fg, tt.want)
		}
	}
}

func TestDrawReelSprites(t *testing.T) {
	screen := newTestScreen(t)
	r := newTestRenderer(t)
	vp := engine.NewViewport(testCols, testRows)

	r.Draw(screen, vp, baseFrame(r))

	window := r.Layout().Reels[0]
	col0, row0 := vp.ToCell(window.X, window.Y)
	col1, row1 := vp.ToCell(window.X+window.W, window.Y+window.H)
	halfBlocks := 0
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			if mainc, _, _, _ := screen.GetContent(col, row); mainc == '▀' {
				halfBlocks++
			}
		}
	}
	if halfBlocks == 0 {
		t.Error("no sprite cells inside the first reel")
	}

	// Nothing bleeds above the panel
	_, panelRow := vp.ToCell(0, r.Layout().Panel.Y)
	for col := col0; col <= col1; col++ {
		if mainc, _, _, _ := screen.GetContent(col, panelRow-1); mainc == '▀' {
			t.Errorf("sprite cell above the panel at col %d", col)
		}
	}
}

func TestDrawButtonHover(t *testing.T) {
	screen := newTestScreen(t)
	r := newTestRenderer(t)
	vp := engine.NewViewport(testCols, testRows)

	frame := baseFrame(r)
	b := frame.Button
	col, row := vp.ToCell(b.X+5, b.Y+b.Height/2)

	r.Draw(screen, vp, frame)
	_, _, style, _ := screen.GetContent(col, row)
	if _, bg, _ := style.Decompose(); bg != RgbButton {
		t.Errorf("button bg = %v, want %v", bg, RgbButton)
	}

	frame.Button.Hover = true
	r.Draw(screen, vp, frame)
	_, _, style, _ = screen.GetContent(col, row)
	if _, bg, _ := style.Decompose(); bg != RgbButtonHover {
		t.Errorf("hover bg = %v, want %v", bg, RgbButtonHover)
	}

	if !strings.Contains(rowText(screen, row), constants.ButtonLabel) {
		t.Errorf("label missing: %q", rowText(screen, row))
	}
}

func TestDrawTinyTerminal(t *testing.T) {
	screen := newTestScreen(t)
	r := newTestRenderer(t)

	r.Draw(screen, engine.NewViewport(0, 0), baseFrame(r))
	for _, size := range [][2]int{{1, 1}, {3, 2}} {
		screen.SetSize(size[0], size[1])
		r.Draw(screen, engine.NewViewport(size[0], size[1]), baseFrame(r))
	}
}

func TestBlend(t *testing.T) {
	base := tcell.NewRGBColor(0, 0, 0)
	over := tcell.NewRGBColor(200, 100, 50)

	if got := Blend(base, over, 0); got != base {
		t.Errorf("opacity 0 = %v", got)
	}
	if got := Blend(base, over, 1); got != over {
		t.Errorf("opacity 1 = %v", got)
	}
	r, g, b := Blend(base, over, 0.5).RGB()
	if r != 100 || g != 50 || b != 25 {
		t.Errorf("opacity 0.5 = %d,%d,%d", r, g, b)
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name  string
		b     Rect
		want  Rect
		empty bool
	}{
		{"overlap", Rect{X: 5, Y: 5, W: 10, H: 10}, Rect{X: 5, Y: 5, W: 5, H: 5}, false},
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, Rect{X: 2, Y: 2, W: 2, H: 2}, false},
		{"disjoint", Rect{X: 20, Y: 20, W: 1, H: 1}, Rect{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Intersect(tt.b)
			if got.Empty() != tt.empty {
				t.Fatalf("Empty = %v, want %v", got.Empty(), tt.empty)
			}
			if !tt.empty && got != tt.want {
				t.Errorf("Intersect = %+v, want %+v", got, tt.want)
			}
		})
	}
}
