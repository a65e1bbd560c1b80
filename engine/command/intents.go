package command

import (
	"github.com/1siamBot/fort-defense/engine/core"
	"github.com/1siamBot/fort-defense/engine/spatial"
)

// Frame is the input relevant to the game for one display frame
type Frame struct {
	MouseX, MouseY int
	LeftClick      bool // left button went down this frame
	RightClick     bool // right button went down this frame
	Shift          bool
	Alt            bool // alt or meta: turns a left click into a command
	Train          []core.UnitType
	PanX, PanY     float64 // camera direction, each in -1..1
}

// Intents turns a frame of raw input into player intents. toWorld maps a
// screen pixel into world space. A right click, or a left click with alt,
// is a context command; a plain left click selects.
func Intents(f Frame, toWorld func(x, y int) spatial.Point) []Command {
	var cmds []Command
	pt := toWorld(f.MouseX, f.MouseY)
	switch {
	case f.RightClick || (f.LeftClick && f.Alt):
		cmds = append(cmds, At(pt.X, pt.Y))
	case f.LeftClick:
		cmds = append(cmds, SelectAt(pt.X, pt.Y, f.Shift))
	}
	for _, t := range f.Train {
		cmds = append(cmds, Train(t))
	}
	return cmds
}
