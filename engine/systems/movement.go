package systems

import (
	"github.com/1siamBot/fort-defense/engine/core"
	"github.com/1siamBot/fort-defense/engine/spatial"
)

const (
	// FrameScale normalises per-frame speeds to a 60 fps reference
	FrameScale = 60.0
	// WorldMargin keeps bodies this far inside the world edges
	WorldMargin = 8.0

	arriveDistance    = 2.0
	separationOverlap = 0.9
	separationPush    = 0.01 * FrameScale
	selectedPushBoost = 1.2
)

// UnitSystem advances every player unit: explicit moves, the gatherer
// economy loop, crowd separation and world clamping.
type UnitSystem struct{}

func (s *UnitSystem) Priority() int { return 10 }

func (s *UnitSystem) Update(w *core.World, dt float64) {
	for _, u := range w.Units {
		if u.State == core.StateMove && u.MoveTarget != nil {
			stepMove(u, dt)
		}
		if u.Type == core.Gatherer {
			stepGatherer(w, u, dt)
		}
		separate(w, u)
		ClampToWorld(w, &u.X, &u.Y)
	}
}

// stepMove heads toward the move target and settles to idle on arrival
func stepMove(u *core.Unit, dt float64) {
	vx, vy, d := spatial.Toward(u.Pos(), *u.MoveTarget, u.Speed)
	if d > arriveDistance {
		u.VX, u.VY = vx, vy
		u.X += u.VX * dt * FrameScale
		u.Y += u.VY * dt * FrameScale
		return
	}
	u.State = core.StateIdle
	u.MoveTarget = nil
	u.VX, u.VY = 0, 0
}

// stepToward moves u one step toward p at its own speed
func stepToward(u *core.Unit, p spatial.Point, dt float64) {
	u.VX, u.VY, _ = spatial.Toward(u.Pos(), p, u.Speed)
	u.X += u.VX * dt * FrameScale
	u.Y += u.VY * dt * FrameScale
}

func separate(w *core.World, u *core.Unit) {
	others := make([]spatial.Body, 0, len(w.Units))
	for _, v := range w.Units {
		if v == u {
			continue
		}
		others = append(others, spatial.Body{X: v.X, Y: v.Y, Radius: v.Radius})
	}
	strength := separationPush
	if u.Selected {
		strength *= selectedPushBoost
	}
	dx, dy := spatial.Separation(spatial.Body{X: u.X, Y: u.Y, Radius: u.Radius}, others, separationOverlap, strength)
	u.X += dx
	u.Y += dy
}

// ClampToWorld keeps a position inside the world bounds minus the margin
func ClampToWorld(w *core.World, x, y *float64) {
	*x = spatial.Clamp(*x, WorldMargin, w.Width-WorldMargin)
	*y = spatial.Clamp(*y, WorldMargin, w.Height-WorldMargin)
}
