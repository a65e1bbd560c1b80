package termview

import (
	"testing"

	"github.com/1siamBot/fort-defense/engine/core"
	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func testSnapshot() core.Snapshot {
	w := core.NewWorld(core.DefaultConfig())
	return w.Snapshot()
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestCell_Corners(t *testing.T) {
	s := testSnapshot()
	cases := []struct {
		x, y     float64
		col, row int
	}{
		{0, 0, 0, HeaderRows},
		{3000, 2000, 99, 40},
		{160, 1000, 5, 21},
		{-50, 5000, 0, 40},
	}
	for _, c := range cases {
		col, row := Cell(&s, 100, 41, c.x, c.y)
		if col != c.col || row != c.row {
			t.Fatalf("Cell(%.0f, %.0f) = (%d, %d), want (%d, %d)", c.x, c.y, col, row, c.col, c.row)
		}
	}
}

func TestCell_DegenerateTerminal(t *testing.T) {
	s := testSnapshot()
	if col, row := Cell(&s, 0, 0, 500, 500); col != 0 || row != HeaderRows {
		t.Fatalf("expected the origin cell, got (%d, %d)", col, row)
	}
}

func TestDraw_Layers(t *testing.T) {
	screen := newScreen(t, 100, 41)
	w := core.NewWorld(core.DefaultConfig())
	w.AddResource(&core.Resource{ID: w.NextID(), Kind: core.Tree, X: 600, Y: 1000, Amount: 10})
	w.AddResource(&core.Resource{ID: w.NextID(), Kind: core.Rock, X: 900, Y: 1000, Amount: 10})
	w.AddUnit(&core.Unit{ID: w.NextID(), Type: core.Warrior, X: 1500, Y: 500, HP: 1})
	w.AddEnemy(&core.Enemy{ID: w.NextID(), Type: core.Raider, X: 2400, Y: 1500, HP: 1})
	// a unit on top of the tree wins the cell
	w.AddUnit(&core.Unit{ID: w.NextID(), Type: core.Gatherer, X: 600, Y: 1000, HP: 1})
	s := w.Snapshot()

	New(screen).Draw(&s)

	checks := []struct {
		x, y int
		want rune
	}{
		{5, 21, GlyphFort},
		{20, 21, GlyphGatherer},
		{30, 21, GlyphRock},
		{50, 11, GlyphWarrior},
		{80, 31, GlyphRaider},
	}
	for _, c := range checks {
		if got := runeAt(screen, c.x, c.y); got != c.want {
			t.Fatalf("cell (%d, %d) = %q, want %q", c.x, c.y, got, c.want)
		}
	}
}

func TestDraw_HeaderShowsBalance(t *testing.T) {
	screen := newScreen(t, 200, 20)
	s := testSnapshot()
	New(screen).Draw(&s)

	var header []rune
	for x := 0; x < 16; x++ {
		header = append(header, runeAt(screen, x, 0))
	}
	if got := string(header); got != " wood 100  stone" {
		t.Fatalf("unexpected header start %q", got)
	}
}

func TestDraw_SelectedIsReversed(t *testing.T) {
	screen := newScreen(t, 100, 41)
	w := core.NewWorld(core.DefaultConfig())
	w.AddUnit(&core.Unit{ID: w.NextID(), Type: core.Defender, X: 1500, Y: 500, HP: 1, Selected: true})
	s := w.Snapshot()
	New(screen).Draw(&s)

	_, _, style, _ := screen.GetContent(50, 11)
	_, _, attrs := style.Decompose()
	if attrs&tcell.AttrReverse == 0 {
		t.Fatal("selected units should be drawn reversed")
	}
}

func TestDraw_GameOverBanner(t *testing.T) {
	screen := newScreen(t, 60, 21)
	s := testSnapshot()
	s.GameOver = true
	New(screen).Draw(&s)

	msg := " Fort destroyed! "
	x := (60 - len(msg)) / 2
	var got []rune
	for i := range msg {
		got = append(got, runeAt(screen, x+i, 10))
	}
	if string(got) != msg {
		t.Fatalf("expected banner %q, got %q", msg, string(got))
	}
}

func TestDraw_PingsUnderUnits(t *testing.T) {
	screen := newScreen(t, 100, 41)
	w := core.NewWorld(core.DefaultConfig())
	w.AddPing(600, 1000, 0.6, 0xffe08a)
	w.AddPing(1500, 500, 0.6, 0xffe08a)
	w.AddUnit(&core.Unit{ID: w.NextID(), Type: core.Warrior, X: 1500, Y: 500, HP: 1})
	s := w.Snapshot()
	New(screen).Draw(&s)

	r, _, style, _ := screen.GetContent(20, 21)
	if r != GlyphPing {
		t.Fatalf("expected a ping at (20, 21), got %q", r)
	}
	if fg, _, _ := style.Decompose(); fg != tcell.NewHexColor(0xffe08a) {
		t.Fatalf("ping should carry its own color, got %v", fg)
	}
	if got := runeAt(screen, 50, 11); got != GlyphWarrior {
		t.Fatalf("a unit should cover a ping, got %q", got)
	}
}
