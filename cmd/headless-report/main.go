package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/1siamBot/fort-defense/engine/core"
	"github.com/1siamBot/fort-defense/engine/game"
	"github.com/atotto/clipboard"
)

type runResult struct {
	runIndex int
	seed     int64
	matchID  string
	seconds  float64
	balance  core.Balance
	fortHP   float64
	units    int
	raiders  int
	entities int
	stats    *game.Stats
}

type options struct {
	runs      int
	seconds   float64
	dt        float64
	seedBase  int64
	gatherers int
	army      bool
	verbose   bool
	copy      bool
}

func main() {
	var opts options
	flag.IntVar(&opts.runs, "runs", 3, "number of headless matches")
	flag.Float64Var(&opts.seconds, "seconds", 300, "simulated seconds per match")
	flag.Float64Var(&opts.dt, "dt", 1.0/60, "fixed timestep in seconds")
	flag.Int64Var(&opts.seedBase, "seed-base", 42, "RNG seed for match 1")
	flag.IntVar(&opts.gatherers, "gatherers", 6, "gatherer quota for the autopilot")
	flag.BoolVar(&opts.army, "army", true, "train warriors and defenders once the quota is met")
	flag.BoolVar(&opts.verbose, "v", false, "log every simulation event")
	flag.BoolVar(&opts.copy, "copy", false, "also copy the report to the system clipboard")
	flag.Parse()

	if err := validate(opts); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	var report strings.Builder
	out := io.MultiWriter(os.Stdout, &report)

	fmt.Fprintf(out, "=== Fort Defense Headless Report ===\n")
	fmt.Fprintf(out, "runs=%d seconds=%.0f dt=%.4f seed_base=%d gatherers=%d\n\n", opts.runs, opts.seconds, opts.dt, opts.seedBase, opts.gatherers)

	fell := 0
	for i := 0; i < opts.runs; i++ {
		r := runMatch(i+1, opts.seedBase+int64(i), opts)
		printRun(out, r)
		if r.stats.FortFellAt > 0 {
			fell++
		}
	}
	fmt.Fprintf(out, "forts fallen: %d/%d\n", fell, opts.runs)

	if opts.copy {
		if err := clipboard.WriteAll(report.String()); err != nil {
			log.Printf("copy report: %v", err)
		}
	}
}

func validate(o options) error {
	switch {
	case o.runs <= 0:
		return fmt.Errorf("-runs must be > 0")
	case o.seconds <= 0:
		return fmt.Errorf("-seconds must be > 0")
	case o.dt <= 0 || o.dt > core.MaxFrameDt:
		return fmt.Errorf("-dt must be in (0, %.3f]", core.MaxFrameDt)
	case o.gatherers < 0:
		return fmt.Errorf("-gatherers must be >= 0")
	}
	return nil
}

func runMatch(idx int, seed int64, o options) runResult {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	m := game.New(cfg)
	w := m.World

	stats := &game.Stats{}
	stats.Track(w.Events)
	if o.verbose {
		w.Events.OnAny(func(e core.Event) {
			log.Printf("[%s] t=%7.2f tick=%6d %-18s %v", w.MatchID[:8], e.Time, e.Tick, e.Type, e.Payload)
		})
	}

	pilot := game.NewAutopilot()
	pilot.MaxGatherers = o.gatherers
	if !o.army {
		pilot.Army = nil
	}

	for w.Time < o.seconds {
		pilot.Act(m)
		m.Step(o.dt)
	}

	return runResult{
		runIndex: idx,
		seed:     seed,
		matchID:  w.MatchID,
		seconds:  w.Time,
		balance:  w.Ledger.Balance(),
		fortHP:   w.Fort.HP,
		units:    len(w.Units),
		raiders:  len(w.Enemies),
		entities: w.EntityCount(),
		stats:    stats,
	}
}

func printRun(out io.Writer, r runResult) {
	wood, stone := r.balance.Display()
	fmt.Fprintf(out, "--- run %d seed=%d match=%s ---\n", r.runIndex, r.seed, r.matchID)
	fmt.Fprintf(out, "time=%.1fs fort_hp=%.0f units=%d raiders=%d entities=%d wood=%d stone=%d\n", r.seconds, r.fortHP, r.units, r.raiders, r.entities, wood, stone)
	fmt.Fprintf(out, "%s\n\n", r.stats)
}
