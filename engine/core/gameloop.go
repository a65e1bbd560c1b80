package core

import "time"

const (
	// MaxFrameDt caps the timestep after a stall so movement stays stable
	MaxFrameDt = 0.033
	// DefaultFrameDt is used when there is no usable previous timestamp
	DefaultFrameDt = 0.016
)

// GameState represents the overall loop state
type GameState uint8

const (
	StatePlaying GameState = iota
	StatePaused
)

// GameLoop advances the world once per display frame with a wall-clock
// derived timestep. Game over does not stop the loop; entities keep moving.
type GameLoop struct {
	World    *World
	State    GameState
	lastTime time.Time
}

// NewGameLoop wraps a world in a running loop
func NewGameLoop(w *World) *GameLoop {
	return &GameLoop{World: w}
}

// FrameDt converts the wall-clock gap between frames into a simulation step
func FrameDt(last, now time.Time) float64 {
	if last.IsZero() {
		return DefaultFrameDt
	}
	dt := now.Sub(last).Seconds()
	if dt <= 0 {
		return DefaultFrameDt
	}
	if dt > MaxFrameDt {
		dt = MaxFrameDt
	}
	return dt
}

// Frame should be called every display refresh. It runs one tick, dispatches
// the events it produced and returns the dt used (0 while paused).
func (gl *GameLoop) Frame(now time.Time) float64 {
	dt := FrameDt(gl.lastTime, now)
	gl.lastTime = now
	if gl.State != StatePlaying {
		return 0
	}
	gl.World.Tick(dt)
	gl.World.Events.Dispatch()
	return dt
}

// Play starts or resumes the game
func (gl *GameLoop) Play() {
	gl.State = StatePlaying
	gl.lastTime = time.Time{}
}

// Pause pauses the game
func (gl *GameLoop) Pause() {
	gl.State = StatePaused
}
