package core

import "math"

// Cost is the price of training a unit
type Cost struct {
	Wood, Stone float64
}

// Balance is a point-in-time copy of the stockpiles
type Balance struct {
	Wood, Stone float64
}

// Display returns the balances as shown to the player: floored, never negative
func (b Balance) Display() (wood, stone int) {
	return int(math.Max(0, math.Floor(b.Wood))), int(math.Max(0, math.Floor(b.Stone)))
}

// Ledger tracks the wood and stone stockpiles. Spending is self-defending:
// Pay refuses any cost the balance cannot cover, so stockpiles never go
// negative through the ledger. Prices belong to the unit tables, not here.
type Ledger struct {
	wood, stone float64
	observers   []func(Balance)
}

// NewLedger creates a ledger with starting balances
func NewLedger(wood, stone float64) *Ledger {
	return &Ledger{wood: wood, stone: stone}
}

// OnChange registers an observer called after every balance mutation
func (l *Ledger) OnChange(fn func(Balance)) {
	l.observers = append(l.observers, fn)
}

// Balance returns the current stockpiles
func (l *Ledger) Balance() Balance {
	return Balance{Wood: l.wood, Stone: l.stone}
}

// CanAfford reports whether both stockpiles cover c
func (l *Ledger) CanAfford(c Cost) bool {
	return l.wood >= c.Wood && l.stone >= c.Stone
}

// Pay deducts c. It returns false and leaves the balances untouched when
// the cost is not covered.
func (l *Ledger) Pay(c Cost) bool {
	if !l.CanAfford(c) {
		return false
	}
	l.wood -= c.Wood
	l.stone -= c.Stone
	l.notify()
	return true
}

// Deposit adds a harvested amount to the stockpile matching kind.
// Rock becomes stone, anything else wood.
func (l *Ledger) Deposit(kind ResourceKind, amount float64) {
	if amount <= 0 {
		return
	}
	if kind == Rock {
		l.stone += amount
	} else {
		l.wood += amount
	}
	l.notify()
}

func (l *Ledger) notify() {
	b := l.Balance()
	for _, fn := range l.observers {
		fn(b)
	}
}
