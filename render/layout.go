package render

import (
	"github.com/lixenwraith/heartreels/components"
	"github.com/lixenwraith/heartreels/constants"
)

// MachineLayout places every machine part on the virtual surface
type MachineLayout struct {
	CenterX   float64
	Top       float64 // Top of the body, also the arc centre line
	Body      Rect
	ArcRadius float64

	Panel     Rect
	Reels     []Rect
	Indicator Rect

	LeverArm    Rect
	LeverJoint  Rect
	LeverKnobX  float64
	LeverKnobY  float64
	LeverKnobR  float64
	SymbolInset float64

	Button components.ButtonComponent
}

// NewMachineLayout lays out reelCount reels of the given window and symbol height
func NewMachineLayout(reelCount int, reelHeight, symbolHeight float64) MachineLayout {
	width := constants.SurfaceWidth * constants.MachineWidthRatio
	height := width * constants.MachineHeightRatio
	centerX := constants.SurfaceWidth / 2
	bottom := constants.SurfaceHeight - constants.MachineBottomInset
	top := bottom - height

	l := MachineLayout{
		CenterX:     centerX,
		Top:         top,
		Body:        Rect{X: centerX - width/2, Y: top, W: width, H: height},
		ArcRadius:   width / 2,
		SymbolInset: 5,
	}

	total := float64(reelCount)*constants.ReelWidth + float64(reelCount-1)*constants.ReelSpacing
	startX := centerX - total/2
	reelY := top + constants.ReelTopInset

	l.Panel = Rect{X: startX - 15, Y: reelY - 15, W: total + 30, H: reelHeight + 30}
	l.Reels = make([]Rect, reelCount)
	for i := range l.Reels {
		l.Reels[i] = Rect{
			X: startX + float64(i)*(constants.ReelWidth+constants.ReelSpacing),
			Y: reelY,
			W: constants.ReelWidth,
			H: reelHeight,
		}
	}

	boxHeight := symbolHeight + 8
	l.Indicator = Rect{
		X: startX - 9,
		Y: reelY + (reelHeight-boxHeight)/2 - 2,
		W: total + 18,
		H: boxHeight + 8,
	}

	leverX := centerX + width/2 + constants.LeverGap
	leverY := top + constants.LeverTop
	l.LeverJoint = Rect{X: leverX - 35, Y: leverY - 10, W: 40, H: 25}
	l.LeverArm = Rect{X: leverX - 2, Y: leverY, W: 20, H: constants.LeverHeight}
	l.LeverKnobX = leverX + 8
	l.LeverKnobY = leverY + constants.LeverHeight - 5
	l.LeverKnobR = 22

	l.Button = components.ButtonComponent{
		X:      centerX - constants.ButtonWidth/2,
		Y:      constants.SurfaceHeight - constants.ButtonBottomOffset,
		Width:  constants.ButtonWidth,
		Height: constants.ButtonHeight,
		Label:  constants.ButtonLabel,
	}
	return l
}
