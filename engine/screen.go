package engine

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// NewScreen opens the terminal with mouse reporting on and the cursor hidden
func NewScreen(mouse bool) (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	if mouse {
		screen.EnableMouse()
	}
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}
