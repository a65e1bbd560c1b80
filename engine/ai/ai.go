package ai

import (
	"github.com/1siamBot/fort-defense/engine/core"
	"github.com/1siamBot/fort-defense/engine/spatial"
	"github.com/1siamBot/fort-defense/engine/systems"
)

// PursuitRadius is how close a player unit must be to pull a raider off the fort
const PursuitRadius = 220.0

// Intent is what a raider is doing this tick
type Intent uint8

const (
	IntentSiege Intent = iota // heading for the fort
	IntentPursue              // chasing a player unit
)

// Action is a raider's decision for a single tick
type Action struct {
	Intent   Intent
	UnitID   core.EntityID // set when pursuing
	Target   spatial.Point
	Distance float64 // to Target, before moving
	Advance  bool    // outside weapon reach, keep moving
	Strike   bool    // pursued unit is within weapon reach
}

// DecideAction recomputes a raider's target from scratch. Raiders keep no
// memory: the nearest live unit is always considered, and pursued only
// when within PursuitRadius; otherwise the fort is the target.
func DecideAction(e *core.Enemy, w *core.World) Action {
	reach := e.Range + systems.RangeSlack
	act := Action{Intent: IntentSiege, Target: w.Fort.Pos()}

	if u, d, ok := spatial.FindNearest(e.Pos(), w.Units, (*core.Unit).Pos, (*core.Unit).Alive); ok && d < PursuitRadius {
		act.Intent = IntentPursue
		act.UnitID = u.ID
		act.Target = u.Pos()
		act.Strike = d <= reach
	}
	act.Distance = spatial.Distance(e.Pos(), act.Target)
	act.Advance = act.Distance > reach
	return act
}

// RaiderSystem moves raiders and resolves their attacks
type RaiderSystem struct{}

func (s *RaiderSystem) Priority() int { return 20 }

func (s *RaiderSystem) Update(w *core.World, dt float64) {
	for _, e := range w.Enemies {
		act := DecideAction(e, w)

		if act.Advance {
			e.VX, e.VY, _ = spatial.Toward(e.Pos(), act.Target, e.Speed)
			e.X += e.VX * dt * systems.FrameScale
			e.Y += e.VY * dt * systems.FrameScale
		}

		e.AttackTimer -= dt
		atFort := spatial.Distance(w.Fort.Pos(), e.Pos()) <= e.Range+w.Fort.Reach()
		switch {
		case act.Intent == IntentPursue && act.Strike:
			if e.AttackTimer <= 0 {
				if u, ok := w.Unit(act.UnitID); ok {
					systems.DamageUnit(w, e.ID, u, e.Attack)
				}
				e.AttackTimer = e.AttackCooldown
			}
		case atFort:
			if e.AttackTimer <= 0 {
				systems.DamageFort(w, e.ID, e.Attack)
				e.AttackTimer = e.AttackCooldown
			}
		}

		systems.ClampToWorld(w, &e.X, &e.Y)
	}
}

// ThreatNear sums raider damage around a point, weighted by proximity
func ThreatNear(w *core.World, p spatial.Point, radius float64) float64 {
	threat := 0.0
	for _, e := range w.Enemies {
		d := spatial.Distance(e.Pos(), p)
		if d <= radius {
			threat += e.Attack * (1.0 - d/radius)
		}
	}
	return threat
}
