package core

import "github.com/1siamBot/fort-defense/engine/spatial"

// UnitType names a trainable player unit
type UnitType string

const (
	Gatherer UnitType = "gatherer"
	Warrior  UnitType = "warrior"
	Defender UnitType = "defender"
)

// EnemyType names a hostile unit
type EnemyType string

const Raider EnemyType = "raider"

// ResourceKind is what a resource node yields
type ResourceKind string

const (
	Tree ResourceKind = "tree"
	Rock ResourceKind = "rock"
)

// UnitState is the behavioral state of a player unit
type UnitState uint8

const (
	StateIdle UnitState = iota
	StateMove
	StateGather
	StateReturn
)

func (s UnitState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMove:
		return "move"
	case StateGather:
		return "gather"
	case StateReturn:
		return "return"
	}
	return "unknown"
}

// ---- Units ----

// Unit is a player-owned entity
type Unit struct {
	ID     EntityID
	Type   UnitType
	X, Y   float64
	VX, VY float64
	Speed  float64
	Radius float64
	HP     float64
	MaxHP  float64
	Armor  float64 // damage reduction fraction, 0..1

	Attack         float64
	Range          float64
	AttackCooldown float64
	AttackTimer    float64

	State      UnitState
	MoveTarget *spatial.Point
	GatherID   EntityID // 0 when not assigned

	Carrying      float64
	CarryingKind  ResourceKind
	CarryCapacity float64
	HarvestRate   float64 // amount per second

	Selected bool
}

// Pos returns the unit position
func (u *Unit) Pos() spatial.Point { return spatial.Point{X: u.X, Y: u.Y} }

// Alive reports whether the unit still has hit points
func (u *Unit) Alive() bool { return u.HP > 0 }

// CanFight reports whether the unit has a weapon
func (u *Unit) CanFight() bool { return u.Attack > 0 }

// ---- Enemies ----

// Enemy is a hostile raider. It keeps no behavioral state; its action is
// recomputed every tick.
type Enemy struct {
	ID     EntityID
	Type   EnemyType
	X, Y   float64
	VX, VY float64
	Speed  float64
	Radius float64
	HP     float64
	MaxHP  float64

	Attack         float64
	Range          float64
	AttackCooldown float64
	AttackTimer    float64
}

func (e *Enemy) Pos() spatial.Point { return spatial.Point{X: e.X, Y: e.Y} }

func (e *Enemy) Alive() bool { return e.HP > 0 }

// ---- Resources ----

// Resource is a harvestable node. Kind and position never change.
type Resource struct {
	ID      EntityID
	Kind    ResourceKind
	X, Y    float64
	Radius  float64
	Amount  float64
	Initial float64
}

func (r *Resource) Pos() spatial.Point { return spatial.Point{X: r.X, Y: r.Y} }

// Ratio returns the remaining fraction of the node
func (r *Resource) Ratio() float64 {
	if r.Initial <= 0 {
		return 0
	}
	return spatial.Clamp(r.Amount/r.Initial, 0, 1)
}

// ---- Fort ----

// Fort is the player's base. Its destruction ends the game.
type Fort struct {
	X, Y  float64
	W, H  float64
	HP    float64
	MaxHP float64
}

func (f *Fort) Pos() spatial.Point { return spatial.Point{X: f.X, Y: f.Y} }

// Ratio returns the remaining hit point fraction
func (f *Fort) Ratio() float64 {
	if f.MaxHP <= 0 {
		return 0
	}
	return spatial.Clamp(f.HP/f.MaxHP, 0, 1)
}

// DepositRadius is how close a gatherer must get to unload
func (f *Fort) DepositRadius() float64 { return f.W*0.3 + 8 }

// Reach is the extra distance at which attackers can hit the walls
func (f *Fort) Reach() float64 { return f.W * 0.3 }

// ---- Pings ----

// Ping is a short-lived visual acknowledgement of a command
type Ping struct {
	X, Y   float64
	Age    float64
	MaxAge float64
	Color  uint32 // RGB
}

// Progress returns how far the ping is through its life, 0..1
func (p *Ping) Progress() float64 {
	if p.MaxAge <= 0 {
		return 1
	}
	return spatial.Clamp(p.Age/p.MaxAge, 0, 1)
}
