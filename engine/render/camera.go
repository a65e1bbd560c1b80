package render

import (
	"math"

	"github.com/1siamBot/fort-defense/engine/spatial"
)

// Camera is a top-down viewport into the world. X, Y is the world position
// of the top-left screen corner.
type Camera struct {
	X, Y    float64
	ScreenW int
	ScreenH int
	Speed   float64 // world units per second

	// world bounds for clamping
	WorldW, WorldH float64
}

// NewCamera creates a camera with default settings
func NewCamera(screenW, screenH int, worldW, worldH float64) *Camera {
	return &Camera{
		ScreenW: screenW,
		ScreenH: screenH,
		Speed:   520,
		WorldW:  worldW,
		WorldH:  worldH,
	}
}

// Pan moves the camera along a direction for dt seconds. The direction is
// normalised so diagonal panning is not faster.
func (c *Camera) Pan(dirX, dirY, dt float64) {
	if dirX == 0 && dirY == 0 {
		return
	}
	l := math.Hypot(dirX, dirY)
	c.X += dirX / l * c.Speed * dt
	c.Y += dirY / l * c.Speed * dt
	c.clamp()
}

// CenterOn centers the camera on a world position
func (c *Camera) CenterOn(wx, wy float64) {
	c.X = wx - float64(c.ScreenW)*0.5
	c.Y = wy - float64(c.ScreenH)*0.5
	c.clamp()
}

// Resize updates the viewport size and keeps the camera inside the world
func (c *Camera) Resize(screenW, screenH int) {
	c.ScreenW, c.ScreenH = screenW, screenH
	c.clamp()
}

// WorldToScreen converts a world position to screen pixels
func (c *Camera) WorldToScreen(wx, wy float64) (float32, float32) {
	return float32(wx - c.X), float32(wy - c.Y)
}

// ScreenToWorld converts a screen pixel to a world position
func (c *Camera) ScreenToWorld(sx, sy int) spatial.Point {
	return spatial.Point{X: float64(sx) + c.X, Y: float64(sy) + c.Y}
}

func (c *Camera) clamp() {
	c.X = spatial.Clamp(c.X, 0, math.Max(0, c.WorldW-float64(c.ScreenW)))
	c.Y = spatial.Clamp(c.Y, 0, math.Max(0, c.WorldH-float64(c.ScreenH)))
}
