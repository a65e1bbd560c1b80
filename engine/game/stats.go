package game

import (
	"fmt"
	"strings"

	"github.com/1siamBot/fort-defense/engine/core"
)

// Stats accumulates a match summary from the event stream
type Stats struct {
	Waves         []core.Wave
	WaveTimes     []float64
	Trained       int
	UnitsLost     int
	RaidersKilled int
	WoodIn        float64
	StoneIn       float64
	FortDamage    float64
	NodesDepleted int
	FortFellAt    float64 // 0 while the fort stands
}

// Track subscribes the stats to a world's events
func (s *Stats) Track(bus *core.EventBus) {
	bus.On(core.EvtWaveSpawned, func(e core.Event) {
		if wv, ok := e.Payload.(core.Wave); ok {
			s.Waves = append(s.Waves, wv)
			s.WaveTimes = append(s.WaveTimes, e.Time)
		}
	})
	bus.On(core.EvtUnitTrained, func(core.Event) { s.Trained++ })
	bus.On(core.EvtUnitDestroyed, func(core.Event) { s.UnitsLost++ })
	bus.On(core.EvtEnemyDestroyed, func(core.Event) { s.RaidersKilled++ })
	bus.On(core.EvtResourceDepleted, func(core.Event) { s.NodesDepleted++ })
	bus.On(core.EvtResourceHarvested, func(e core.Event) {
		if d, ok := e.Payload.(core.Deposit); ok {
			if d.Kind == core.Rock {
				s.StoneIn += d.Amount
			} else {
				s.WoodIn += d.Amount
			}
		}
	})
	bus.On(core.EvtFortDamaged, func(e core.Event) {
		if h, ok := e.Payload.(core.Hit); ok {
			s.FortDamage += h.Damage
		}
	})
	bus.On(core.EvtGameOver, func(e core.Event) { s.FortFellAt = e.Time })
}

// String formats the summary as a short multi-line report
func (s *Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "waves=%d trained=%d lost=%d killed=%d\n", len(s.Waves), s.Trained, s.UnitsLost, s.RaidersKilled)
	fmt.Fprintf(&b, "deposited wood=%.1f stone=%.1f nodes_depleted=%d\n", s.WoodIn, s.StoneIn, s.NodesDepleted)
	fmt.Fprintf(&b, "fort_damage=%.0f", s.FortDamage)
	if s.FortFellAt > 0 {
		fmt.Fprintf(&b, " fort_fell_at=%.1fs", s.FortFellAt)
	}
	return b.String()
}
