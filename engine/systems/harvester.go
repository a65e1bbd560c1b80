package systems

import (
	"math"

	"github.com/1siamBot/fort-defense/engine/core"
	"github.com/1siamBot/fort-defense/engine/spatial"
)

// HarvestReach is how far past a node's radius a gatherer can still work it
const HarvestReach = 6.0

// stepGatherer runs the gather/return half of the unit state machine
func stepGatherer(w *core.World, u *core.Unit, dt float64) {
	switch u.State {
	case core.StateGather:
		stepGather(w, u, dt)
	case core.StateReturn:
		stepReturn(w, u, dt)
	}
}

func stepGather(w *core.World, u *core.Unit, dt float64) {
	res, ok := w.Resource(u.GatherID)
	if !ok || res.Amount <= 0 {
		if u.Carrying > 0 {
			headHome(w, u)
		} else {
			u.State = core.StateIdle
			u.GatherID = 0
		}
		return
	}

	if spatial.Distance(u.Pos(), res.Pos()) > res.Radius+HarvestReach {
		stepToward(u, res.Pos(), dt)
		return
	}

	if u.Carrying < u.CarryCapacity && res.Amount > 0 {
		take := math.Min(u.HarvestRate*dt, math.Min(res.Amount, u.CarryCapacity-u.Carrying))
		if take > 0 {
			u.CarryingKind = res.Kind
			u.Carrying += take
			res.Amount -= take
		}
	}
	if u.Carrying >= u.CarryCapacity || res.Amount <= 0 {
		headHome(w, u)
	}
}

func stepReturn(w *core.World, u *core.Unit, dt float64) {
	fort := w.Fort.Pos()
	if spatial.Distance(u.Pos(), fort) > w.Fort.DepositRadius() {
		stepToward(u, fort, dt)
		return
	}

	if u.Carrying > 0 {
		w.Ledger.Deposit(u.CarryingKind, u.Carrying)
		w.Events.Emit(core.Event{
			Type:    core.EvtResourceHarvested,
			Tick:    w.TickCount,
			Time:    w.Time,
			Payload: core.Deposit{UnitID: u.ID, Kind: u.CarryingKind, Amount: u.Carrying},
		})
	}
	u.Carrying = 0
	u.CarryingKind = ""

	if res, ok := w.Resource(u.GatherID); ok && res.Amount > 0 {
		u.State = core.StateGather
		u.MoveTarget = &spatial.Point{X: res.X, Y: res.Y}
		return
	}
	u.State = core.StateIdle
	u.MoveTarget = nil
	u.GatherID = 0
}

func headHome(w *core.World, u *core.Unit) {
	u.State = core.StateReturn
	u.MoveTarget = &spatial.Point{X: w.Fort.X, Y: w.Fort.Y}
}

// AssignGather points a gatherer at a resource node. Non-gatherers and
// missing nodes are ignored.
func AssignGather(w *core.World, u *core.Unit, id core.EntityID) bool {
	res, ok := w.Resource(id)
	if !ok || u.Type != core.Gatherer {
		return false
	}
	u.GatherID = id
	u.State = core.StateGather
	u.MoveTarget = &spatial.Point{X: res.X, Y: res.Y}
	return true
}

// NearestResource returns the closest node that still has something to
// harvest, optionally restricted to one kind ("" for any).
func NearestResource(w *core.World, p spatial.Point, kind core.ResourceKind) (*core.Resource, bool) {
	r, _, ok := spatial.FindNearest(p, w.Resources, (*core.Resource).Pos, func(r *core.Resource) bool {
		return r.Amount > 0 && (kind == "" || r.Kind == kind)
	})
	return r, ok
}
