package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/1siamBot/fort-defense/engine/core"
	"github.com/1siamBot/fort-defense/engine/game"
	"github.com/1siamBot/fort-defense/engine/termview"
	"github.com/gdamore/tcell/v2"
)

const frameInterval = time.Second / 60

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "RNG seed for resource placement and waves")
	auto := flag.Bool("auto", true, "start with the gatherer autopilot enabled")
	flag.Parse()

	if err := run(*seed, *auto); err != nil {
		log.Fatal(err)
	}
}

func run(seed int64, auto bool) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	cfg := core.DefaultConfig()
	cfg.Seed = seed
	m := game.New(cfg)
	m.Loop.Play()
	view := termview.New(screen)

	pilot := game.NewAutopilot()
	pilot.Army = nil
	pilot.MaxGatherers = 0 // train only on keypress; autopilot just keeps gatherers busy

	// the poller only forwards events; all world mutation stays on this goroutine
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go forwardEvents(screen.PollEvent, events, done)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if ev.Key() != tcell.KeyRune {
					continue
				}
				switch ev.Rune() {
				case 'q':
					return nil
				case '1':
					m.Dispatcher.Train(core.Gatherer)
				case '2':
					m.Dispatcher.Train(core.Warrior)
				case '3':
					m.Dispatcher.Train(core.Defender)
				case 'a':
					auto = !auto
				case 'p':
					if m.Loop.State == core.StatePaused {
						m.Loop.Play()
					} else {
						m.Loop.Pause()
					}
				}
			}
		case now := <-ticker.C:
			if auto && m.Loop.State == core.StatePlaying {
				pilot.Act(m)
			}
			m.Loop.Frame(now)
			snap := m.World.Snapshot()
			view.Draw(&snap)
		}
	}
}

// forwardEvents pumps poll into events until poll returns nil, which closes
// events, or until done is closed.
func forwardEvents(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
