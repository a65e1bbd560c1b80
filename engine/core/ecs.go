package core

import (
	"math/rand"

	"github.com/google/uuid"
)

// EntityID is a unique identifier for game entities. Zero means "none".
type EntityID uint64

// IDSource hands out fresh entity ids
type IDSource interface {
	NextID() EntityID
}

// IDAllocator is a monotonically increasing id counter. Ids are never reused,
// so a stale reference can only miss, never alias a newer entity.
type IDAllocator struct {
	last EntityID
}

// NextID returns the next unused id
func (a *IDAllocator) NextID() EntityID {
	a.last++
	return a.last
}

// System processes the world each tick
type System interface {
	Update(w *World, dt float64)
	Priority() int
}

// Config holds the match parameters
type Config struct {
	Width, Height    float64
	StartWood        float64
	StartStone       float64
	FortHP           float64
	Seed             int64
	ResourceAttempts int
}

// DefaultConfig returns the standard match setup
func DefaultConfig() Config {
	return Config{
		Width:            3000,
		Height:           2000,
		StartWood:        100,
		StartStone:       60,
		FortHP:           500,
		Seed:             1,
		ResourceAttempts: 70,
	}
}

// World owns every entity collection. Entities refer to each other by id
// only; a failed lookup means the target is gone.
type World struct {
	Width, Height float64
	Time          float64 // seconds of simulated time
	TickCount     uint64
	GameOver      bool
	MatchID       string

	Fort   Fort
	Ledger *Ledger
	Events *EventBus
	Rand   *rand.Rand
	Config Config

	Units     []*Unit
	Enemies   []*Enemy
	Resources []*Resource
	Pings     []*Ping

	ids       IDAllocator
	units     map[EntityID]*Unit
	enemies   map[EntityID]*Enemy
	resources map[EntityID]*Resource
	systems   []System
}

// NewWorld creates an empty world with the fort placed on the left edge
func NewWorld(cfg Config) *World {
	w := &World{
		Width:     cfg.Width,
		Height:    cfg.Height,
		MatchID:   uuid.NewString(),
		Events:    NewEventBus(),
		Rand:      rand.New(rand.NewSource(cfg.Seed)),
		Config:    cfg,
		units:     make(map[EntityID]*Unit),
		enemies:   make(map[EntityID]*Enemy),
		resources: make(map[EntityID]*Resource),
	}
	w.Fort = Fort{X: 160, Y: float64(int(cfg.Height / 2)), W: 64, H: 64, HP: cfg.FortHP, MaxHP: cfg.FortHP}
	w.Ledger = NewLedger(cfg.StartWood, cfg.StartStone)
	w.Ledger.OnChange(func(b Balance) {
		w.Events.Emit(Event{Type: EvtLedgerChanged, Tick: w.TickCount, Time: w.Time, Payload: b})
	})
	return w
}

// NextID allocates an entity id from the world's counter
func (w *World) NextID() EntityID {
	return w.ids.NextID()
}

// AddUnit inserts a unit into the world
func (w *World) AddUnit(u *Unit) {
	w.Units = append(w.Units, u)
	w.units[u.ID] = u
}

// AddEnemy inserts an enemy into the world
func (w *World) AddEnemy(e *Enemy) {
	w.Enemies = append(w.Enemies, e)
	w.enemies[e.ID] = e
}

// AddResource inserts a resource node into the world
func (w *World) AddResource(r *Resource) {
	w.Resources = append(w.Resources, r)
	w.resources[r.ID] = r
}

// AddPing records a visual command echo
func (w *World) AddPing(x, y, maxAge float64, color uint32) {
	w.Pings = append(w.Pings, &Ping{X: x, Y: y, MaxAge: maxAge, Color: color})
}

// Unit looks up a live unit by id
func (w *World) Unit(id EntityID) (*Unit, bool) {
	u, ok := w.units[id]
	return u, ok
}

// Enemy looks up a live enemy by id
func (w *World) Enemy(id EntityID) (*Enemy, bool) {
	e, ok := w.enemies[id]
	return e, ok
}

// Resource looks up a resource node by id
func (w *World) Resource(id EntityID) (*Resource, bool) {
	r, ok := w.resources[id]
	return r, ok
}

// RemoveDead drops every unit and enemy with hit points <= 0
func (w *World) RemoveDead() (unitsLost, enemiesKilled int) {
	kept := w.Units[:0]
	for _, u := range w.Units {
		if u.Alive() {
			kept = append(kept, u)
			continue
		}
		delete(w.units, u.ID)
		unitsLost++
		w.Events.Emit(Event{Type: EvtUnitDestroyed, Tick: w.TickCount, Time: w.Time, Payload: u.ID})
	}
	clear(w.Units[len(kept):])
	w.Units = kept

	alive := w.Enemies[:0]
	for _, e := range w.Enemies {
		if e.Alive() {
			alive = append(alive, e)
			continue
		}
		delete(w.enemies, e.ID)
		enemiesKilled++
		w.Events.Emit(Event{Type: EvtEnemyDestroyed, Tick: w.TickCount, Time: w.Time, Payload: e.ID})
	}
	clear(w.Enemies[len(alive):])
	w.Enemies = alive
	return unitsLost, enemiesKilled
}

// PruneResources drops nodes whose remaining amount is at or below eps
func (w *World) PruneResources(eps float64) int {
	kept := w.Resources[:0]
	removed := 0
	for _, r := range w.Resources {
		if r.Amount > eps {
			kept = append(kept, r)
			continue
		}
		delete(w.resources, r.ID)
		removed++
		w.Events.Emit(Event{Type: EvtResourceDepleted, Tick: w.TickCount, Time: w.Time, Payload: r.ID})
	}
	clear(w.Resources[len(kept):])
	w.Resources = kept
	return removed
}

// Selected returns the currently selected units in world order
func (w *World) Selected() []*Unit {
	var sel []*Unit
	for _, u := range w.Units {
		if u.Selected {
			sel = append(sel, u)
		}
	}
	return sel
}

// EndGame latches the terminal game-over state
func (w *World) EndGame() {
	if w.GameOver {
		return
	}
	w.GameOver = true
	w.Events.Emit(Event{Type: EvtGameOver, Tick: w.TickCount, Time: w.Time})
}

// AddSystem registers a system
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	// Sort by priority (simple insertion)
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i].Priority() < w.systems[i-1].Priority() {
			w.systems[i], w.systems[i-1] = w.systems[i-1], w.systems[i]
		}
	}
}

// Tick advances the clock and runs all systems once, in priority order
func (w *World) Tick(dt float64) {
	w.Time += dt
	for _, s := range w.systems {
		s.Update(w, dt)
	}
	w.TickCount++
}

// EntityCount returns the number of live units, enemies and resource nodes
func (w *World) EntityCount() int {
	return len(w.Units) + len(w.Enemies) + len(w.Resources)
}
