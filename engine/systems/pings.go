package systems

import "github.com/1siamBot/fort-defense/engine/core"

// PingSystem ages command pings and drops the expired ones
type PingSystem struct{}

func (s *PingSystem) Priority() int { return 60 }

func (s *PingSystem) Update(w *core.World, dt float64) {
	kept := w.Pings[:0]
	for _, p := range w.Pings {
		p.Age += dt
		if p.Age < p.MaxAge {
			kept = append(kept, p)
		}
	}
	clear(w.Pings[len(kept):])
	w.Pings = kept
}
