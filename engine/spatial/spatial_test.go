package spatial

import (
	"math"
	"testing"
)

type dot struct {
	name string
	p    Point
	r    float64
}

func dotPos(d dot) Point { return d.p }

func TestDistance(t *testing.T) {
	if d := Distance(Point{0, 0}, Point{3, 4}); d != 5 {
		t.Fatalf("expected 5, got %.4f", d)
	}
	if d := Distance(Point{7, 7}, Point{7, 7}); d != 0 {
		t.Fatalf("expected 0 for coincident points, got %.4f", d)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct{ v, want float64 }{
		{-5, 0}, {0, 0}, {4, 4}, {10, 10}, {12, 10},
	}
	for _, c := range cases {
		if got := Clamp(c.v, 0, 10); got != c.want {
			t.Fatalf("Clamp(%.1f) = %.1f, want %.1f", c.v, got, c.want)
		}
	}
}

func TestToward_ZeroDistance(t *testing.T) {
	vx, vy, d := Toward(Point{1, 1}, Point{1, 1}, 3)
	if vx != 0 || vy != 0 || d != 0 {
		t.Fatalf("expected zero velocity at the target, got (%.2f, %.2f) d=%.2f", vx, vy, d)
	}
}

func TestToward_ScalesToSpeed(t *testing.T) {
	vx, vy, d := Toward(Point{0, 0}, Point{30, 40}, 2)
	if d != 50 {
		t.Fatalf("expected distance 50, got %.4f", d)
	}
	if math.Abs(math.Hypot(vx, vy)-2) > 1e-9 {
		t.Fatalf("expected speed 2, got %.4f", math.Hypot(vx, vy))
	}
	if math.Abs(vx-1.2) > 1e-9 || math.Abs(vy-1.6) > 1e-9 {
		t.Fatalf("unexpected direction (%.4f, %.4f)", vx, vy)
	}
}

func TestFindNearest_PicksClosest(t *testing.T) {
	items := []dot{{"far", Point{100, 0}, 0}, {"near", Point{10, 0}, 0}, {"mid", Point{50, 0}, 0}}
	best, d, ok := FindNearest(Point{}, items, dotPos, nil)
	if !ok || best.name != "near" || d != 10 {
		t.Fatalf("expected near at 10, got %q at %.2f ok=%v", best.name, d, ok)
	}
}

func TestFindNearest_TieGoesToFirst(t *testing.T) {
	items := []dot{{"a", Point{0, 5}, 0}, {"b", Point{5, 0}, 0}}
	best, _, ok := FindNearest(Point{}, items, dotPos, nil)
	if !ok || best.name != "a" {
		t.Fatalf("expected first encountered on a tie, got %q", best.name)
	}
}

func TestFindNearest_RespectsPredicate(t *testing.T) {
	items := []dot{{"skip", Point{1, 0}, 0}, {"keep", Point{9, 0}, 0}}
	best, _, ok := FindNearest(Point{}, items, dotPos, func(d dot) bool { return d.name != "skip" })
	if !ok || best.name != "keep" {
		t.Fatalf("expected keep, got %q ok=%v", best.name, ok)
	}
}

func TestFindNearest_Empty(t *testing.T) {
	_, d, ok := FindNearest(Point{}, []dot(nil), dotPos, nil)
	if ok {
		t.Fatal("expected no result for an empty collection")
	}
	if !math.IsInf(d, 1) {
		t.Fatalf("expected +Inf distance, got %.2f", d)
	}
}

func TestPickAt_Tolerance(t *testing.T) {
	items := []dot{{"u", Point{100, 100}, 10}}
	reach := func(d dot) float64 { return d.r + 6 }

	if _, ok := PickAt(Point{116, 100}, items, dotPos, reach); !ok {
		t.Fatal("expected a hit exactly at radius + tolerance")
	}
	if _, ok := PickAt(Point{116.5, 100}, items, dotPos, reach); ok {
		t.Fatal("expected a miss just past radius + tolerance")
	}
}

func TestPickAt_ClosestWins(t *testing.T) {
	items := []dot{{"a", Point{0, 0}, 20}, {"b", Point{10, 0}, 20}}
	best, ok := PickAt(Point{8, 0}, items, dotPos, func(d dot) float64 { return d.r })
	if !ok || best.name != "b" {
		t.Fatalf("expected b, got %q ok=%v", best.name, ok)
	}
}

func TestSeparation_PushesApart(t *testing.T) {
	self := Body{X: 0, Y: 0, Radius: 10}
	others := []Body{{X: 10, Y: 0, Radius: 10}}
	dx, dy := Separation(self, others, 0.9, 1)
	// min distance 18, overlap depth 8
	if math.Abs(dx+8) > 1e-9 || dy != 0 {
		t.Fatalf("expected push (-8, 0), got (%.4f, %.4f)", dx, dy)
	}
}

func TestSeparation_IgnoresDistantAndCoincident(t *testing.T) {
	self := Body{X: 0, Y: 0, Radius: 10}
	others := []Body{{X: 0, Y: 0, Radius: 10}, {X: 50, Y: 0, Radius: 10}}
	dx, dy := Separation(self, others, 0.9, 1)
	if dx != 0 || dy != 0 {
		t.Fatalf("expected no push, got (%.4f, %.4f)", dx, dy)
	}
}

func TestSeparation_Accumulates(t *testing.T) {
	self := Body{X: 0, Y: 0, Radius: 10}
	others := []Body{{X: 10, Y: 0, Radius: 10}, {X: -10, Y: 0, Radius: 10}, {X: 0, Y: 10, Radius: 10}}
	dx, dy := Separation(self, others, 0.9, 1)
	if math.Abs(dx) > 1e-9 {
		t.Fatalf("opposing pushes should cancel on x, got %.4f", dx)
	}
	if math.Abs(dy+8) > 1e-9 {
		t.Fatalf("expected y push -8, got %.4f", dy)
	}
}
