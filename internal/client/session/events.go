package session

import "sync"

// EventType classifies terminal session lifecycle events.
type EventType int

const (
	// EventSessionExpired means the session could not be renewed: only a
	// fresh login can recover.
	EventSessionExpired EventType = iota
	// EventLogout means the user ended the session explicitly.
	EventLogout
)

func (t EventType) String() string {
	switch t {
	case EventSessionExpired:
		return "SESSION_EXPIRED"
	case EventLogout:
		return "LOGOUT"
	default:
		return "UNKNOWN"
	}
}

// Event is a tagged session lifecycle notification.
type Event struct {
	Type EventType
}

// Bus broadcasts session events to current subscribers, synchronously and
// without buffering: subscribers registered after an emission never see it.
type Bus struct {
	mu     sync.Mutex
	subs   map[int]func(Event)
	nextID int
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]func(Event))}
}

// Subscribe registers a handler and returns an unsubscribe func.
func (b *Bus) Subscribe(fn func(Event)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// EmitSessionExpired broadcasts a terminal expiration event.
func (b *Bus) EmitSessionExpired() {
	b.publish(Event{Type: EventSessionExpired})
}

// EmitLogout broadcasts an explicit logout event.
func (b *Bus) EmitLogout() {
	b.publish(Event{Type: EventLogout})
}

func (b *Bus) publish(ev Event) {
	b.mu.Lock()
	fns := make([]func(Event), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
