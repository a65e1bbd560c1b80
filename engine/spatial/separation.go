package spatial

import "math"

// Body is a circle that takes part in separation
type Body struct {
	X, Y   float64
	Radius float64
}

// Separation computes the push that moves self away from every other body
// closer than overlap*(r1+r2). The push grows with the overlap depth and is
// scaled by strength. Coincident bodies are left alone since no direction exists.
func Separation(self Body, others []Body, overlap, strength float64) (dx, dy float64) {
	for _, o := range others {
		sx, sy := self.X-o.X, self.Y-o.Y
		d := math.Hypot(sx, sy)
		minDist := (self.Radius + o.Radius) * overlap
		if d > 0 && d < minDist {
			push := (minDist - d) * strength
			dx += sx / d * push
			dy += sy / d * push
		}
	}
	return dx, dy
}
