package command

import (
	"github.com/1siamBot/fort-defense/engine/core"
	"github.com/1siamBot/fort-defense/engine/spatial"
	"github.com/1siamBot/fort-defense/engine/systems"
)

const (
	// PickTolerance is added to a unit's radius when clicking on it
	PickTolerance = 6.0
	// ResourceTolerance is added to a node's radius when clicking on it
	ResourceTolerance = 10.0

	movePingColor   = 0x74a2ff
	gatherPingColor = 0x7fff94
	commandPingLife = 0.6
)

// Dispatcher turns player intents into world mutations. Intents queued with
// Submit are applied at the start of the next tick; the direct methods apply
// immediately and report their outcome.
type Dispatcher struct {
	TechTree *systems.TechTree
	world    *core.World
	queue    []Command
}

// NewDispatcher binds a dispatcher to a world
func NewDispatcher(w *core.World, tt *systems.TechTree) *Dispatcher {
	return &Dispatcher{TechTree: tt, world: w}
}

func (d *Dispatcher) Priority() int { return 0 }

// Submit queues an intent for the next tick
func (d *Dispatcher) Submit(c Command) {
	d.queue = append(d.queue, c)
}

// Pending returns the number of queued intents
func (d *Dispatcher) Pending() int {
	return len(d.queue)
}

func (d *Dispatcher) Update(_ *core.World, _ float64) {
	queue := d.queue
	d.queue = nil
	for _, c := range queue {
		d.Apply(c)
	}
}

// Apply executes a single intent now. It reports whether the intent had any
// effect beyond its ping.
func (d *Dispatcher) Apply(c Command) bool {
	switch c.Type {
	case CmdSelect:
		return d.Select(c.Point(), c.Additive)
	case CmdMove:
		return d.Move(c.Point()) > 0
	case CmdGather:
		return d.Gather(c.ResourceID) > 0
	case CmdCommandAt:
		return d.CommandAt(c.Point()) > 0
	case CmdTrain:
		_, ok := d.Train(c.Unit)
		return ok
	}
	return false
}

// Select picks the closest unit under pt. Without additive the previous
// selection is cleared first, so a miss leaves nothing selected.
func (d *Dispatcher) Select(pt spatial.Point, additive bool) bool {
	if !additive {
		d.ClearSelection()
	}
	u, ok := d.UnitAt(pt)
	if !ok {
		return false
	}
	u.Selected = true
	return true
}

// ClearSelection deselects every unit
func (d *Dispatcher) ClearSelection() {
	for _, u := range d.world.Units {
		u.Selected = false
	}
}

// UnitAt returns the unit closest to pt within its pick tolerance
func (d *Dispatcher) UnitAt(pt spatial.Point) (*core.Unit, bool) {
	return spatial.PickAt(pt, d.world.Units, (*core.Unit).Pos, func(u *core.Unit) float64 {
		return u.Radius + PickTolerance
	})
}

// ResourceAt returns the node closest to pt within its pick tolerance
func (d *Dispatcher) ResourceAt(pt spatial.Point) (*core.Resource, bool) {
	return spatial.PickAt(pt, d.world.Resources, (*core.Resource).Pos, func(r *core.Resource) float64 {
		return r.Radius + ResourceTolerance
	})
}

// Move sends every selected unit to pt, dropping any gather assignment.
// It returns how many units were ordered.
func (d *Dispatcher) Move(pt spatial.Point) int {
	w := d.world
	n := 0
	for _, u := range w.Units {
		if !u.Selected {
			continue
		}
		u.State = core.StateMove
		u.MoveTarget = &spatial.Point{X: pt.X, Y: pt.Y}
		u.GatherID = 0
		n++
	}
	w.AddPing(pt.X, pt.Y, commandPingLife, movePingColor)
	w.Events.Emit(core.Event{Type: core.EvtMoveOrder, Tick: w.TickCount, Time: w.Time, Payload: n})
	return n
}

// Gather assigns the selected gatherers to a resource node. Other unit
// types in the selection are left alone. A vanished node is a no-op.
func (d *Dispatcher) Gather(id core.EntityID) int {
	w := d.world
	res, ok := w.Resource(id)
	if !ok {
		return 0
	}
	n := 0
	for _, u := range w.Units {
		if u.Selected && systems.AssignGather(w, u, id) {
			n++
		}
	}
	w.AddPing(res.X, res.Y, commandPingLife, gatherPingColor)
	w.Events.Emit(core.Event{Type: core.EvtGatherOrder, Tick: w.TickCount, Time: w.Time, Payload: n})
	return n
}

// CommandAt resolves a context click: gather when a node is under the
// pointer, move otherwise.
func (d *Dispatcher) CommandAt(pt spatial.Point) int {
	if res, ok := d.ResourceAt(pt); ok {
		return d.Gather(res.ID)
	}
	return d.Move(pt)
}

// Train buys a unit of type t. It returns false, leaving the ledger
// untouched, when the unit is not affordable.
func (d *Dispatcher) Train(t core.UnitType) (*core.Unit, bool) {
	return d.TechTree.Train(d.world, t)
}
