package command_test

import (
	"testing"

	"github.com/1siamBot/fort-defense/engine/command"
	"github.com/1siamBot/fort-defense/engine/core"
	"github.com/1siamBot/fort-defense/engine/game"
	"github.com/1siamBot/fort-defense/engine/spatial"
)

func pt(x, y float64) spatial.Point { return spatial.Point{X: x, Y: y} }

func addTree(m *game.Match, x, y float64) *core.Resource {
	r := m.TechTree.NewResource(m.World, core.Tree, x, y)
	m.World.AddResource(r)
	return r
}

// --- selection ---

func TestSelect_ReplacesSelection(t *testing.T) {
	m := game.NewBare(core.DefaultConfig())
	a := m.Spawn(core.Warrior, 500, 500)
	b := m.Spawn(core.Warrior, 700, 500)
	d := m.Dispatcher

	if !d.Select(pt(500, 500), false) || !a.Selected {
		t.Fatal("expected a selected")
	}
	if !d.Select(pt(703, 500), false) {
		t.Fatal("expected a hit on b")
	}
	if a.Selected || !b.Selected {
		t.Fatal("non-additive select should replace the selection")
	}
}

func TestSelect_Additive(t *testing.T) {
	m := game.NewBare(core.DefaultConfig())
	a := m.Spawn(core.Warrior, 500, 500)
	b := m.Spawn(core.Defender, 700, 500)
	d := m.Dispatcher

	d.Select(pt(500, 500), false)
	d.Select(pt(700, 500), true)
	if !a.Selected || !b.Selected {
		t.Fatal("additive select should keep the earlier pick")
	}
	if n := len(m.World.Selected()); n != 2 {
		t.Fatalf("expected 2 selected, got %d", n)
	}
}

func TestSelect_MissClears(t *testing.T) {
	m := game.NewBare(core.DefaultConfig())
	a := m.Spawn(core.Warrior, 500, 500)
	d := m.Dispatcher

	d.Select(pt(500, 500), false)
	if d.Select(pt(1500, 1500), false) {
		t.Fatal("click on empty ground should miss")
	}
	if a.Selected {
		t.Fatal("a miss should leave nothing selected")
	}
}

func TestSelect_PickTolerance(t *testing.T) {
	m := game.NewBare(core.DefaultConfig())
	a := m.Spawn(core.Warrior, 500, 500) // radius 11
	d := m.Dispatcher

	if !d.Select(pt(517, 500), false) || !a.Selected {
		t.Fatal("radius + 6 should still pick")
	}
	if d.Select(pt(517.5, 500), false) {
		t.Fatal("past radius + 6 should miss")
	}
}

// --- orders ---

func TestMove_OrdersSelectionAndPings(t *testing.T) {
	m := game.NewBare(core.DefaultConfig())
	a := m.Spawn(core.Gatherer, 500, 500)
	b := m.Spawn(core.Warrior, 700, 500)
	tree := addTree(m, 900, 900)
	a.GatherID = tree.ID
	a.State = core.StateGather
	a.Selected = true
	d := m.Dispatcher

	if n := d.Move(pt(300, 300)); n != 1 {
		t.Fatalf("expected 1 unit ordered, got %d", n)
	}
	if a.State != core.StateMove || a.MoveTarget == nil || *a.MoveTarget != pt(300, 300) {
		t.Fatalf("expected a moving to (300, 300), got %s", a.State)
	}
	if a.GatherID != 0 {
		t.Fatal("a move order drops the gather assignment")
	}
	if b.State != core.StateIdle {
		t.Fatal("unselected units must not move")
	}
	if len(m.World.Pings) != 1 || m.World.Pings[0].MaxAge != 0.6 {
		t.Fatal("expected a 0.6s move ping")
	}
}

func TestMove_EmptySelectionStillPings(t *testing.T) {
	m := game.NewBare(core.DefaultConfig())
	if n := m.Dispatcher.Move(pt(300, 300)); n != 0 {
		t.Fatalf("expected no units ordered, got %d", n)
	}
	if len(m.World.Pings) != 1 {
		t.Fatal("expected the ping anyway")
	}
}

func TestGather_OnlyGatherers(t *testing.T) {
	m := game.NewBare(core.DefaultConfig())
	g := m.Spawn(core.Gatherer, 500, 500)
	war := m.Spawn(core.Warrior, 520, 500)
	tree := addTree(m, 900, 900)
	g.Selected, war.Selected = true, true

	if n := m.Dispatcher.Gather(tree.ID); n != 1 {
		t.Fatalf("expected 1 gatherer assigned, got %d", n)
	}
	if g.State != core.StateGather || g.GatherID != tree.ID {
		t.Fatalf("expected gatherer on the tree, got %s", g.State)
	}
	if war.State != core.StateIdle || war.GatherID != 0 {
		t.Fatal("warrior should ignore the gather order")
	}
}

func TestGather_MissingNodeIsNoop(t *testing.T) {
	m := game.NewBare(core.DefaultConfig())
	g := m.Spawn(core.Gatherer, 500, 500)
	g.Selected = true

	if n := m.Dispatcher.Gather(12345); n != 0 {
		t.Fatalf("expected nothing assigned, got %d", n)
	}
	if g.State != core.StateIdle || len(m.World.Pings) != 0 {
		t.Fatal("a vanished node must not change anything")
	}
}

func TestCommandAt_ResolvesGatherOrMove(t *testing.T) {
	m := game.NewBare(core.DefaultConfig())
	g := m.Spawn(core.Gatherer, 500, 500)
	tree := addTree(m, 900, 900) // radius 14, tolerance 10
	g.Selected = true
	d := m.Dispatcher

	d.CommandAt(pt(920, 900))
	if g.State != core.StateGather || g.GatherID != tree.ID {
		t.Fatalf("click near the tree should gather, got %s", g.State)
	}

	d.CommandAt(pt(930, 900))
	if g.State != core.StateMove || g.GatherID != 0 {
		t.Fatalf("click past the tolerance should move, got %s", g.State)
	}
}

// --- training ---

func TestTrain_StopsWhenBroke(t *testing.T) {
	m := game.NewBare(core.DefaultConfig())
	d := m.Dispatcher

	for i := 0; i < 2; i++ {
		if _, ok := d.Train(core.Gatherer); !ok {
			t.Fatalf("training %d should succeed", i+1)
		}
	}
	if _, ok := d.Train(core.Gatherer); ok {
		t.Fatal("third gatherer should be unaffordable")
	}
	b := m.World.Ledger.Balance()
	if b.Wood != 0 || b.Stone != 60 {
		t.Fatalf("expected 0/60, got %.0f/%.0f", b.Wood, b.Stone)
	}
	if len(m.World.Units) != 2 {
		t.Fatalf("expected 2 units, got %d", len(m.World.Units))
	}
}

// --- queue ---

func TestSubmit_AppliedAtNextTick(t *testing.T) {
	m := game.NewBare(core.DefaultConfig())
	u := m.Spawn(core.Warrior, 500, 500)
	d := m.Dispatcher

	d.Submit(command.SelectAt(500, 500, false))
	d.Submit(command.MoveTo(800, 500))
	if u.Selected || d.Pending() != 2 {
		t.Fatal("submitted intents must wait for the tick")
	}

	m.Step(1.0 / 60)

	if d.Pending() != 0 {
		t.Fatalf("queue should be drained, %d left", d.Pending())
	}
	if !u.Selected || u.State != core.StateMove {
		t.Fatalf("expected selected and moving, got %s", u.State)
	}
	if u.X <= 500 {
		t.Fatal("the unit should already move in the tick that applied the order")
	}
}

func TestApply_Train(t *testing.T) {
	m := game.NewBare(core.DefaultConfig())
	if !m.Dispatcher.Apply(command.Train(core.Warrior)) {
		t.Fatal("warrior should be affordable at 100/60")
	}
	if m.Dispatcher.Apply(command.Train(core.Defender)) {
		t.Fatal("defender should not be affordable after the warrior")
	}
}

// --- input translation ---

func identity(x, y int) spatial.Point { return pt(float64(x), float64(y)) }

func TestIntents(t *testing.T) {
	cases := []struct {
		name  string
		frame command.Frame
		want  []command.CmdType
	}{
		{"nothing", command.Frame{}, nil},
		{"left click selects", command.Frame{LeftClick: true}, []command.CmdType{command.CmdSelect}},
		{"right click commands", command.Frame{RightClick: true}, []command.CmdType{command.CmdCommandAt}},
		{"alt click commands", command.Frame{LeftClick: true, Alt: true}, []command.CmdType{command.CmdCommandAt}},
		{"train keys", command.Frame{Train: []core.UnitType{core.Gatherer, core.Warrior}}, []command.CmdType{command.CmdTrain, command.CmdTrain}},
	}
	for _, c := range cases {
		got := command.Intents(c.frame, identity)
		if len(got) != len(c.want) {
			t.Fatalf("%s: expected %d commands, got %d", c.name, len(c.want), len(got))
		}
		for i := range got {
			if got[i].Type != c.want[i] {
				t.Fatalf("%s: command %d is %s, want %s", c.name, i, got[i].Type, c.want[i])
			}
		}
	}
}

func TestIntents_ShiftIsAdditive(t *testing.T) {
	cmds := command.Intents(command.Frame{MouseX: 40, MouseY: 70, LeftClick: true, Shift: true}, func(x, y int) spatial.Point {
		return pt(float64(x)+1000, float64(y)+2000)
	})
	if len(cmds) != 1 || !cmds[0].Additive {
		t.Fatal("expected one additive select")
	}
	if cmds[0].Point() != pt(1040, 2070) {
		t.Fatalf("expected world point (1040, 2070), got %+v", cmds[0].Point())
	}
}
