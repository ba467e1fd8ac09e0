package systems

import (
	"hebi/ecs"
)

// SnakeAlerts reports stalled snakes to a message log. A snake pushing
// against the edge is reported once until it moves or turns.
type SnakeAlerts struct {
	log     *MessageLog
	stalled map[ecs.EntityID]bool
}

// NewSnakeAlerts creates alerts written to log
func NewSnakeAlerts(log *MessageLog) *SnakeAlerts {
	return &SnakeAlerts{
		log:     log,
		stalled: make(map[ecs.EntityID]bool),
	}
}

// Subscribe attaches the alerts to world's snake events
func (a *SnakeAlerts) Subscribe(world *ecs.World) {
	events := world.GetEventManager()
	events.Subscribe(EventSnakeBlocked, a.onBlocked)
	events.Subscribe(EventSnakeMove, a.onMove)
	events.Subscribe(EventSnakeTurn, a.onTurn)
}

func (a *SnakeAlerts) onBlocked(event ecs.Event) {
	e := event.(SnakeBlockedEvent)
	if a.stalled[e.EntityID] {
		return
	}
	a.stalled[e.EntityID] = true
	a.log.Addf(MessageTypeAlert, "Blocked at %d,%d heading %s", e.X, e.Y, e.Direction)
}

func (a *SnakeAlerts) onMove(event ecs.Event) {
	delete(a.stalled, event.(SnakeMoveEvent).EntityID)
}

func (a *SnakeAlerts) onTurn(event ecs.Event) {
	delete(a.stalled, event.(SnakeTurnEvent).EntityID)
}
