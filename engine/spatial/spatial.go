package spatial

import "math"

// Point is a position in world units
type Point struct {
	X, Y float64
}

// Distance returns the euclidean distance between two points
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// Toward returns the velocity of magnitude speed pointing from p to target,
// and the distance between them. A zero distance yields a zero velocity.
func Toward(p, target Point, speed float64) (vx, vy, d float64) {
	dx, dy := target.X-p.X, target.Y-p.Y
	d = math.Hypot(dx, dy)
	if d == 0 {
		return 0, 0, 0
	}
	return dx / d * speed, dy / d * speed, d
}

// FindNearest returns the member of items closest to origin among those that
// satisfy keep (nil keeps everything). Ties go to the first member encountered.
func FindNearest[T any](origin Point, items []T, pos func(T) Point, keep func(T) bool) (best T, dist float64, ok bool) {
	dist = math.Inf(1)
	for _, it := range items {
		if keep != nil && !keep(it) {
			continue
		}
		d := Distance(origin, pos(it))
		if d < dist {
			best, dist, ok = it, d, true
		}
	}
	return best, dist, ok
}

// PickAt returns the member closest to pt whose distance is within reach(member),
// typically its radius plus a click tolerance.
func PickAt[T any](pt Point, items []T, pos func(T) Point, reach func(T) float64) (best T, ok bool) {
	bestD := math.Inf(1)
	for _, it := range items {
		d := Distance(pt, pos(it))
		if d <= reach(it) && d < bestD {
			best, bestD, ok = it, d, true
		}
	}
	return best, ok
}
