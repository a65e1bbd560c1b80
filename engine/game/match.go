package game

import (
	"github.com/1siamBot/fort-defense/engine/ai"
	"github.com/1siamBot/fort-defense/engine/command"
	"github.com/1siamBot/fort-defense/engine/core"
	"github.com/1siamBot/fort-defense/engine/systems"
)

// Match bundles a world with the systems that drive it. Per tick the order
// is: dispatcher, units, raiders, player combat, cleanup, waves, pings.
type Match struct {
	World      *core.World
	Loop       *core.GameLoop
	Dispatcher *command.Dispatcher
	TechTree   *systems.TechTree
	Waves      *ai.WaveDirector
}

// NewBare wires a match with no resources or units placed
func NewBare(cfg core.Config) *Match {
	tt := systems.NewTechTree()
	w := core.NewWorld(cfg)
	m := &Match{
		World:      w,
		Loop:       core.NewGameLoop(w),
		Dispatcher: command.NewDispatcher(w, tt),
		TechTree:   tt,
		Waves:      ai.NewWaveDirector(tt),
	}
	w.AddSystem(m.Dispatcher)
	w.AddSystem(&systems.UnitSystem{})
	w.AddSystem(&ai.RaiderSystem{})
	w.AddSystem(&systems.CombatSystem{})
	w.AddSystem(&systems.CleanupSystem{})
	w.AddSystem(m.Waves)
	w.AddSystem(&systems.PingSystem{})
	return m
}

// New wires a match and lays out the opening position: scattered resource
// nodes and one gatherer beside the fort.
func New(cfg core.Config) *Match {
	m := NewBare(cfg)
	w := m.World
	m.TechTree.PlaceResources(w, cfg.ResourceAttempts)
	m.Spawn(core.Gatherer, w.Fort.X+48, w.Fort.Y)
	return m
}

// Spawn places a unit for free, bypassing the ledger
func (m *Match) Spawn(t core.UnitType, x, y float64) *core.Unit {
	u := m.TechTree.NewUnit(m.World, t, x, y)
	if u != nil {
		m.World.AddUnit(u)
	}
	return u
}

// Step advances the match by a fixed dt and dispatches the resulting events
func (m *Match) Step(dt float64) {
	m.World.Tick(dt)
	m.World.Events.Dispatch()
}
