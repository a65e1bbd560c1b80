package command

import (
	"github.com/1siamBot/fort-defense/engine/core"
	"github.com/1siamBot/fort-defense/engine/spatial"
)

// CmdType identifies a player intent
type CmdType uint8

const (
	CmdSelect CmdType = iota
	CmdMove
	CmdGather
	CmdCommandAt
	CmdTrain
)

func (t CmdType) String() string {
	switch t {
	case CmdSelect:
		return "select"
	case CmdMove:
		return "move"
	case CmdGather:
		return "gather"
	case CmdCommandAt:
		return "command_at"
	case CmdTrain:
		return "train"
	}
	return "unknown"
}

// Command is a player intent waiting to be applied at the start of a tick
type Command struct {
	Type       CmdType
	X, Y       float64 // world point for select, move and command-at
	Additive   bool    // select: keep the current selection
	ResourceID core.EntityID
	Unit       core.UnitType
}

// Point returns the command's world point
func (c Command) Point() spatial.Point {
	return spatial.Point{X: c.X, Y: c.Y}
}

// SelectAt builds a selection intent
func SelectAt(x, y float64, additive bool) Command {
	return Command{Type: CmdSelect, X: x, Y: y, Additive: additive}
}

// MoveTo builds a move intent for the current selection
func MoveTo(x, y float64) Command {
	return Command{Type: CmdMove, X: x, Y: y}
}

// GatherFrom builds a gather intent for the selected gatherers
func GatherFrom(id core.EntityID) Command {
	return Command{Type: CmdGather, ResourceID: id}
}

// At builds a context command resolved into gather or move when applied
func At(x, y float64) Command {
	return Command{Type: CmdCommandAt, X: x, Y: y}
}

// Train builds a training request
func Train(t core.UnitType) Command {
	return Command{Type: CmdTrain, Unit: t}
}
