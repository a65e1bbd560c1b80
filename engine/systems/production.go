package systems

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/1siamBot/fort-defense/engine/core"
	"github.com/1siamBot/fort-defense/engine/spatial"
)

// UnitDef defines a unit type that can be trained
type UnitDef struct {
	Name           string
	Cost           core.Cost
	Speed          float64
	Radius         float64
	Color          uint32
	HP             float64
	Armor          float64
	Attack         float64
	Range          float64
	AttackCooldown float64
	CarryCapacity  float64
	HarvestRate    float64
}

// EnemyDef defines a hostile unit type
type EnemyDef struct {
	Speed          float64
	Radius         float64
	Color          uint32
	HP             float64
	Attack         float64
	Range          float64
	AttackCooldown float64
}

// ResourceDef defines a resource node type
type ResourceDef struct {
	Amount float64
	Radius float64
	Color  uint32
}

// TechTree holds all definitions
type TechTree struct {
	Units     map[core.UnitType]*UnitDef
	Enemies   map[core.EnemyType]*EnemyDef
	Resources map[core.ResourceKind]*ResourceDef
}

// NewTechTree creates the default fort-defense tables
func NewTechTree() *TechTree {
	tt := &TechTree{
		Units:     make(map[core.UnitType]*UnitDef),
		Enemies:   make(map[core.EnemyType]*EnemyDef),
		Resources: make(map[core.ResourceKind]*ResourceDef),
	}

	tt.Units[core.Gatherer] = &UnitDef{Name: "Gatherer", Cost: core.Cost{Wood: 50}, Speed: 1.6, Radius: 10, Color: 0x82ffb0, HP: 40, CarryCapacity: 25, HarvestRate: 10}
	tt.Units[core.Warrior] = &UnitDef{Name: "Warrior", Cost: core.Cost{Wood: 70, Stone: 30}, Speed: 2.25, Radius: 11, Color: 0xff8c59, HP: 70, Attack: 12, Range: 18, AttackCooldown: 0.5}
	tt.Units[core.Defender] = &UnitDef{Name: "Defender", Cost: core.Cost{Wood: 40, Stone: 110}, Speed: 1.25, Radius: 12, Color: 0x7fb0ff, HP: 120, Armor: 0.4, Attack: 8, Range: 18, AttackCooldown: 0.9}

	tt.Enemies[core.Raider] = &EnemyDef{Speed: 1.8, Radius: 11, Color: 0xff5a5a, HP: 60, Attack: 9, Range: 18, AttackCooldown: 0.7}

	tt.Resources[core.Tree] = &ResourceDef{Amount: 240, Radius: 14, Color: 0x7fff94}
	tt.Resources[core.Rock] = &ResourceDef{Amount: 280, Radius: 15, Color: 0xc7d6ff}

	return tt
}

// Cost returns the training price of t
func (tt *TechTree) Cost(t core.UnitType) (core.Cost, bool) {
	def, ok := tt.Units[t]
	if !ok {
		return core.Cost{}, false
	}
	return def.Cost, true
}

// CanTrain reports whether the ledger covers the price of t.
// Unknown types are never trainable.
func (tt *TechTree) CanTrain(w *core.World, t core.UnitType) bool {
	c, ok := tt.Cost(t)
	return ok && w.Ledger.CanAfford(c)
}

// TrainOrder lists trainable units in hotkey order, [1] first
var TrainOrder = []core.UnitType{core.Gatherer, core.Warrior, core.Defender}

// TrainMenu renders the hotkey line, e.g. "[1] Gatherer 50w  [2] Warrior 70w+30s"
func (tt *TechTree) TrainMenu() string {
	var parts []string
	for i, t := range TrainOrder {
		def, ok := tt.Units[t]
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("[%d] %s %s", i+1, def.Name, costLabel(def.Cost)))
	}
	return strings.Join(parts, "  ")
}

func costLabel(c core.Cost) string {
	var parts []string
	if c.Wood > 0 {
		parts = append(parts, fmt.Sprintf("%.0fw", c.Wood))
	}
	if c.Stone > 0 {
		parts = append(parts, fmt.Sprintf("%.0fs", c.Stone))
	}
	if len(parts) == 0 {
		return "free"
	}
	return strings.Join(parts, "+")
}

// NewUnit builds a unit of type t at (x, y) with a fresh id. It returns nil
// for unknown types.
func (tt *TechTree) NewUnit(ids core.IDSource, t core.UnitType, x, y float64) *core.Unit {
	def, ok := tt.Units[t]
	if !ok {
		return nil
	}
	return &core.Unit{
		ID:             ids.NextID(),
		Type:           t,
		X:              x,
		Y:              y,
		Speed:          def.Speed,
		Radius:         def.Radius,
		HP:             def.HP,
		MaxHP:          def.HP,
		Armor:          def.Armor,
		Attack:         def.Attack,
		Range:          def.Range,
		AttackCooldown: def.AttackCooldown,
		CarryCapacity:  def.CarryCapacity,
		HarvestRate:    def.HarvestRate,
		State:          core.StateIdle,
	}
}

// NewEnemy builds an enemy of type t at (x, y) with a fresh id
func (tt *TechTree) NewEnemy(ids core.IDSource, t core.EnemyType, x, y float64) *core.Enemy {
	def, ok := tt.Enemies[t]
	if !ok {
		return nil
	}
	return &core.Enemy{
		ID:             ids.NextID(),
		Type:           t,
		X:              x,
		Y:              y,
		Speed:          def.Speed,
		Radius:         def.Radius,
		HP:             def.HP,
		MaxHP:          def.HP,
		Attack:         def.Attack,
		Range:          def.Range,
		AttackCooldown: def.AttackCooldown,
	}
}

// NewResource builds a full resource node of kind k at (x, y)
func (tt *TechTree) NewResource(ids core.IDSource, k core.ResourceKind, x, y float64) *core.Resource {
	def, ok := tt.Resources[k]
	if !ok {
		return nil
	}
	return &core.Resource{
		ID:      ids.NextID(),
		Kind:    k,
		X:       x,
		Y:       y,
		Radius:  def.Radius,
		Amount:  def.Amount,
		Initial: def.Amount,
	}
}

const (
	placementMargin = 60
	fortExclusion   = 140
	treeChance      = 0.58
)

// PlaceResources scatters nodes across the world. Each attempt that lands
// inside the square around the fort is dropped, not retried, so fewer nodes
// than attempts is normal.
func (tt *TechTree) PlaceResources(w *core.World, attempts int) int {
	placed := 0
	for i := 0; i < attempts; i++ {
		kind := core.Rock
		if w.Rand.Float64() < treeChance {
			kind = core.Tree
		}
		x := spatial.Clamp(w.Rand.Float64()*(w.Width-2*placementMargin)+placementMargin, placementMargin, w.Width-placementMargin)
		y := spatial.Clamp(w.Rand.Float64()*(w.Height-2*placementMargin)+placementMargin, placementMargin, w.Height-placementMargin)

		if math.Abs(x-w.Fort.X) < fortExclusion && math.Abs(y-w.Fort.Y) < fortExclusion {
			continue
		}
		w.AddResource(tt.NewResource(w, kind, x, y))
		placed++
	}
	return placed
}

// Train pays for and spawns a unit next to the fort. It reports false, with
// no change to the world, when the ledger cannot cover the price.
func (tt *TechTree) Train(w *core.World, t core.UnitType) (*core.Unit, bool) {
	c, ok := tt.Cost(t)
	if !ok || !w.Ledger.Pay(c) {
		return nil, false
	}
	x, y := spawnJitter(w.Rand, w.Fort.X, w.Fort.Y)
	u := tt.NewUnit(w, t, x, y)
	w.AddUnit(u)
	w.AddPing(x, y, 0.5, 0x99b8ff)
	w.Events.Emit(core.Event{Type: core.EvtUnitTrained, Tick: w.TickCount, Time: w.Time, Payload: u.ID})
	return u, true
}

// spawnJitter picks a point 24..36 units from (cx, cy) in a random direction
func spawnJitter(rng *rand.Rand, cx, cy float64) (float64, float64) {
	angle := rng.Float64() * math.Pi * 2
	r := 24 + rng.Float64()*12
	return cx + math.Cos(angle)*r, cy + math.Sin(angle)*r
}
