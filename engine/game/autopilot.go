package game

import (
	"github.com/1siamBot/fort-defense/engine/ai"
	"github.com/1siamBot/fort-defense/engine/core"
	"github.com/1siamBot/fort-defense/engine/systems"
)

// Autopilot plays the player side for headless runs: it keeps gatherers
// busy and spends the stockpile following a fixed build order.
type Autopilot struct {
	MaxGatherers int
	// Army is cycled through once the gatherer quota is met
	Army []core.UnitType
	// When the raider threat within AlarmRadius of the fort reaches
	// AlarmThreat, the army jumps ahead of the gatherer quota.
	// A zero radius disables the alarm.
	AlarmRadius float64
	AlarmThreat float64

	next int
}

// NewAutopilot returns the default build order
func NewAutopilot() *Autopilot {
	return &Autopilot{
		MaxGatherers: 6,
		Army:         []core.UnitType{core.Warrior, core.Defender, core.Warrior},
		AlarmRadius:  400,
		AlarmThreat:  12,
	}
}

// Act issues this frame's orders. It returns the units it trained.
func (a *Autopilot) Act(m *Match) []*core.Unit {
	w := m.World
	gatherers := 0
	for _, u := range w.Units {
		if u.Type != core.Gatherer {
			continue
		}
		gatherers++
		if u.State != core.StateIdle {
			continue
		}
		// alternate kinds so both stockpiles grow
		kind := core.Tree
		if u.ID%2 == 0 {
			kind = core.Rock
		}
		res, ok := systems.NearestResource(w, u.Pos(), kind)
		if !ok {
			res, ok = systems.NearestResource(w, u.Pos(), "")
		}
		if ok {
			systems.AssignGather(w, u, res.ID)
		}
	}

	var trained []*core.Unit
	if gatherers < a.MaxGatherers && !a.alarmed(w) {
		if u, ok := m.Dispatcher.Train(core.Gatherer); ok {
			trained = append(trained, u)
		}
		return trained
	}
	if len(a.Army) == 0 {
		return trained
	}
	if u, ok := m.Dispatcher.Train(a.Army[a.next%len(a.Army)]); ok {
		trained = append(trained, u)
		a.next++
	}
	return trained
}

func (a *Autopilot) alarmed(w *core.World) bool {
	if a.AlarmRadius <= 0 || len(a.Army) == 0 {
		return false
	}
	return ai.ThreatNear(w, w.Fort.Pos(), a.AlarmRadius) >= a.AlarmThreat
}
