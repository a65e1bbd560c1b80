package core

// Event represents a game event
type Event struct {
	Type    EventType
	Tick    uint64
	Time    float64
	Payload interface{}
}

type EventType uint16

const (
	EvtUnitTrained EventType = iota
	EvtUnitDestroyed
	EvtUnitAttack
	EvtUnitDamaged
	EvtMoveOrder
	EvtGatherOrder
	EvtResourceHarvested
	EvtResourceDepleted
	EvtLedgerChanged
	EvtEnemySpawned
	EvtEnemyDestroyed
	EvtWaveSpawned
	EvtFortDamaged
	EvtGameOver
)

var eventNames = [...]string{
	EvtUnitTrained:       "unit_trained",
	EvtUnitDestroyed:     "unit_destroyed",
	EvtUnitAttack:        "unit_attack",
	EvtUnitDamaged:       "unit_damaged",
	EvtMoveOrder:         "move_order",
	EvtGatherOrder:       "gather_order",
	EvtResourceHarvested: "resource_harvested",
	EvtResourceDepleted:  "resource_depleted",
	EvtLedgerChanged:     "ledger_changed",
	EvtEnemySpawned:      "enemy_spawned",
	EvtEnemyDestroyed:    "enemy_destroyed",
	EvtWaveSpawned:       "wave_spawned",
	EvtFortDamaged:       "fort_damaged",
	EvtGameOver:          "game_over",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Deposit is the payload of EvtResourceHarvested
type Deposit struct {
	UnitID EntityID
	Kind   ResourceKind
	Amount float64
}

// Wave is the payload of EvtWaveSpawned
type Wave struct {
	Number int
	Count  int
	NextAt float64
}

// Hit is the payload of damage events
type Hit struct {
	Attacker EntityID
	Target   EntityID // 0 for the fort
	Damage   float64
}

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	any       []EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// OnAny registers a handler that sees every event
func (eb *EventBus) OnAny(h EventHandler) {
	eb.any = append(eb.any, h)
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	eb.queue = append(eb.queue, e)
}

// Pending returns the number of queued events
func (eb *EventBus) Pending() int {
	return len(eb.queue)
}

// Dispatch processes all queued events
func (eb *EventBus) Dispatch() {
	// handlers may emit; those land in the next dispatch
	queue := eb.queue
	eb.queue = nil
	for _, e := range queue {
		for _, h := range eb.listeners[e.Type] {
			h(e)
		}
		for _, h := range eb.any {
			h(e)
		}
	}
}
