package systems

import (
	"github.com/1siamBot/fort-defense/engine/core"
	"github.com/1siamBot/fort-defense/engine/spatial"
)

const (
	// PerceptionRadius is how far combat units notice raiders
	PerceptionRadius = 200.0
	// RangeSlack is added to every weapon range when testing for a hit
	RangeSlack = 2.0
	// DefaultCooldown applies to armed units without a cooldown of their own
	DefaultCooldown = 0.8

	retargetDistance = 6.0
)

// Mitigate applies an armor fraction to raw damage
func Mitigate(damage, armor float64) float64 {
	return damage * (1 - spatial.Clamp(armor, 0, 1))
}

// DamageUnit hits a player unit, honoring its armor. Removal happens later
// in the cleanup pass.
func DamageUnit(w *core.World, attacker core.EntityID, u *core.Unit, damage float64) {
	dealt := Mitigate(damage, u.Armor)
	u.HP -= dealt
	w.Events.Emit(core.Event{Type: core.EvtUnitDamaged, Tick: w.TickCount, Time: w.Time, Payload: core.Hit{Attacker: attacker, Target: u.ID, Damage: dealt}})
}

// DamageEnemy hits a raider
func DamageEnemy(w *core.World, attacker core.EntityID, e *core.Enemy, damage float64) {
	e.HP -= damage
	w.Events.Emit(core.Event{Type: core.EvtUnitAttack, Tick: w.TickCount, Time: w.Time, Payload: core.Hit{Attacker: attacker, Target: e.ID, Damage: damage}})
}

// DamageFort hits the fort walls directly, without armor, and latches game
// over once it falls.
func DamageFort(w *core.World, attacker core.EntityID, damage float64) {
	w.Fort.HP -= damage
	w.Events.Emit(core.Event{Type: core.EvtFortDamaged, Tick: w.TickCount, Time: w.Time, Payload: core.Hit{Attacker: attacker, Damage: damage}})
	if w.Fort.HP <= 0 {
		w.EndGame()
	}
}

// CombatSystem lets armed player units chase and strike the nearest raider
type CombatSystem struct{}

func (s *CombatSystem) Priority() int { return 30 }

func (s *CombatSystem) Update(w *core.World, dt float64) {
	for _, u := range w.Units {
		if !u.CanFight() {
			continue
		}
		target, d, ok := spatial.FindNearest(u.Pos(), w.Enemies, (*core.Enemy).Pos, (*core.Enemy).Alive)
		if !ok {
			continue
		}

		busy := u.State == core.StateGather || u.State == core.StateReturn
		if d < PerceptionRadius && !busy && d > u.Range+RangeSlack {
			if u.MoveTarget == nil || spatial.Distance(*u.MoveTarget, target.Pos()) > retargetDistance {
				u.State = core.StateMove
				u.MoveTarget = &spatial.Point{X: target.X, Y: target.Y}
			}
		}

		u.AttackTimer = max(0, u.AttackTimer-dt)
		if d <= u.Range+RangeSlack && u.AttackTimer <= 0 {
			DamageEnemy(w, u.ID, target, u.Attack)
			u.AttackTimer = u.AttackCooldown
			if u.AttackTimer <= 0 {
				u.AttackTimer = DefaultCooldown
			}
		}
	}
}

// ResourceEpsilon is the amount below which a node counts as exhausted
const ResourceEpsilon = 0.1

// CleanupSystem prunes dead units, dead raiders and exhausted nodes
type CleanupSystem struct{}

func (s *CleanupSystem) Priority() int { return 40 }

func (s *CleanupSystem) Update(w *core.World, _ float64) {
	w.RemoveDead()
	w.PruneResources(ResourceEpsilon)
}
