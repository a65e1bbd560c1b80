package input

import (
	"github.com/1siamBot/fort-defense/engine/command"
	"github.com/1siamBot/fort-defense/engine/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// trainKeys maps the training hotkeys
var trainKeys = []struct {
	key  ebiten.Key
	unit core.UnitType
}{
	{ebiten.Key1, core.Gatherer},
	{ebiten.Key2, core.Warrior},
	{ebiten.Key3, core.Defender},
}

// InputState tracks mouse and keyboard state per frame
type InputState struct {
	MouseX, MouseY int
	frame          command.Frame
}

func NewInputState() *InputState {
	return &InputState{}
}

// Update should be called every frame
func (s *InputState) Update() {
	s.MouseX, s.MouseY = ebiten.CursorPosition()

	f := command.Frame{
		MouseX:     s.MouseX,
		MouseY:     s.MouseY,
		LeftClick:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		RightClick: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		Shift:      ebiten.IsKeyPressed(ebiten.KeyShift),
		Alt:        ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyMeta),
	}
	for _, tk := range trainKeys {
		if inpututil.IsKeyJustPressed(tk.key) {
			f.Train = append(f.Train, tk.unit)
		}
	}

	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		f.PanY--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		f.PanY++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		f.PanX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		f.PanX++
	}
	s.frame = f
}

// Frame returns the input captured by the last Update
func (s *InputState) Frame() command.Frame {
	return s.frame
}
