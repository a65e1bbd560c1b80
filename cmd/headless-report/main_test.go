package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func defaultOptions() options {
	return options{runs: 1, seconds: 30, dt: 1.0 / 60, seedBase: 7, gatherers: 4, army: true}
}

func TestValidate_AcceptsDefaults(t *testing.T) {
	if err := validate(defaultOptions()); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*options)
		flag   string
	}{
		{"no runs", func(o *options) { o.runs = 0 }, "-runs"},
		{"no time", func(o *options) { o.seconds = -1 }, "-seconds"},
		{"zero dt", func(o *options) { o.dt = 0 }, "-dt"},
		{"dt over cap", func(o *options) { o.dt = 0.05 }, "-dt"},
		{"negative quota", func(o *options) { o.gatherers = -2 }, "-gatherers"},
	}
	for _, c := range cases {
		o := defaultOptions()
		c.mutate(&o)
		err := validate(o)
		if err == nil {
			t.Fatalf("%s: expected an error", c.name)
		}
		if !strings.Contains(err.Error(), c.flag) {
			t.Fatalf("%s: error should name %s, got %v", c.name, c.flag, err)
		}
	}
}

func TestRunMatch_ReportsRun(t *testing.T) {
	o := defaultOptions()
	r := runMatch(3, 11, o)
	if r.runIndex != 3 || r.seed != 11 {
		t.Fatalf("unexpected identity run=%d seed=%d", r.runIndex, r.seed)
	}
	if r.seconds < o.seconds {
		t.Fatalf("match stopped early at %.2fs", r.seconds)
	}
	if r.matchID == "" || r.stats == nil {
		t.Fatal("expected a match id and stats")
	}
	if len(r.stats.Waves) == 0 {
		t.Fatal("a 30s match should see the first wave")
	}
	if r.entities <= r.units+r.raiders {
		t.Fatalf("entities=%d should add resource nodes to %d units and %d raiders", r.entities, r.units, r.raiders)
	}
}

func TestRunMatch_ArmyOffTrainsNothingPastQuota(t *testing.T) {
	o := defaultOptions()
	o.army = false
	o.gatherers = 0
	r := runMatch(1, 9, o)
	if r.stats.Trained != 0 {
		t.Fatalf("no quota and no army should train nothing, got %d", r.stats.Trained)
	}
}

func TestPrintRun_IncludesMatchAndStats(t *testing.T) {
	r := runMatch(1, 5, defaultOptions())
	var buf bytes.Buffer
	printRun(&buf, r)
	out := buf.String()
	if !strings.Contains(out, "match="+r.matchID) {
		t.Fatalf("report should carry the match id, got %q", out)
	}
	if !strings.Contains(out, fmt.Sprintf("entities=%d", r.entities)) {
		t.Fatalf("report should carry the entity count, got %q", out)
	}
	if !strings.Contains(out, "waves=") {
		t.Fatalf("report should include the stats summary, got %q", out)
	}
}
