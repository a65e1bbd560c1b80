package ai

import (
	"math"

	"github.com/1siamBot/fort-defense/engine/core"
	"github.com/1siamBot/fort-defense/engine/systems"
)

const (
	// FirstWaveAt is the simulation time of the opening wave
	FirstWaveAt = 6.0
	// MinWaveGap is the floor on time between waves
	MinWaveGap = 12.0

	baseWaveSize   = 3
	waveGrowthSecs = 45.0
	baseWaveGap    = 22.0
	gapShrinkSecs  = 30.0

	spawnEdgeInset = 160.0
	spawnEdgeBand  = 40.0
	spawnYInset    = 120.0
)

// WaveSize is the number of raiders in a wave launched at time t
func WaveSize(t float64) int {
	return baseWaveSize + int(math.Floor(t/waveGrowthSecs))
}

// WaveGap is the delay before the next wave when one launches at time t
func WaveGap(t float64) float64 {
	return math.Max(MinWaveGap, baseWaveGap-math.Floor(t/gapShrinkSecs))
}

// WaveDirector spawns raider waves on an escalating schedule. Spawning stops
// for good once the game is over.
type WaveDirector struct {
	TechTree   *systems.TechTree
	NextWaveAt float64
	Waves      int
}

// NewWaveDirector schedules the first wave
func NewWaveDirector(tt *systems.TechTree) *WaveDirector {
	return &WaveDirector{TechTree: tt, NextWaveAt: FirstWaveAt}
}

func (d *WaveDirector) Priority() int { return 50 }

func (d *WaveDirector) Update(w *core.World, _ float64) {
	if w.GameOver || w.Time < d.NextWaveAt {
		return
	}
	count := WaveSize(w.Time)
	for i := 0; i < count; i++ {
		// far edge, away from the fort, clear of the top and bottom bands
		x := w.Width - spawnEdgeInset + w.Rand.Float64()*spawnEdgeBand
		y := spawnYInset + w.Rand.Float64()*(w.Height-2*spawnYInset)
		e := d.TechTree.NewEnemy(w, core.Raider, x, y)
		if e == nil {
			continue
		}
		w.AddEnemy(e)
		w.Events.Emit(core.Event{Type: core.EvtEnemySpawned, Tick: w.TickCount, Time: w.Time, Payload: e.ID})
	}
	d.Waves++
	d.NextWaveAt = w.Time + WaveGap(w.Time)
	w.Events.Emit(core.Event{
		Type:    core.EvtWaveSpawned,
		Tick:    w.TickCount,
		Time:    w.Time,
		Payload: core.Wave{Number: d.Waves, Count: count, NextAt: d.NextWaveAt},
	})
}
