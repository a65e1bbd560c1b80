package core

// Snapshot is a read-only copy of everything a view needs to draw a frame
type Snapshot struct {
	MatchID       string
	Width, Height float64
	Time          float64
	Tick          uint64
	GameOver      bool
	Balance       Balance
	Fort          Fort
	Units         []Unit
	Enemies       []Enemy
	Resources     []Resource
	Pings         []Ping
}

// Snapshot copies the current world state. Mutating the result never
// affects the world.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		MatchID:   w.MatchID,
		Width:     w.Width,
		Height:    w.Height,
		Time:      w.Time,
		Tick:      w.TickCount,
		GameOver:  w.GameOver,
		Balance:   w.Ledger.Balance(),
		Fort:      w.Fort,
		Units:     make([]Unit, len(w.Units)),
		Enemies:   make([]Enemy, len(w.Enemies)),
		Resources: make([]Resource, len(w.Resources)),
		Pings:     make([]Ping, len(w.Pings)),
	}
	for i, u := range w.Units {
		s.Units[i] = *u
		if u.MoveTarget != nil {
			t := *u.MoveTarget
			s.Units[i].MoveTarget = &t
		}
	}
	for i, e := range w.Enemies {
		s.Enemies[i] = *e
	}
	for i, r := range w.Resources {
		s.Resources[i] = *r
	}
	for i, p := range w.Pings {
		s.Pings[i] = *p
	}
	return s
}

// Counts returns how many units of each type are alive
func (s *Snapshot) Counts() map[UnitType]int {
	c := make(map[UnitType]int)
	for _, u := range s.Units {
		c[u.Type]++
	}
	return c
}
