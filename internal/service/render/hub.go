package render

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

// EventType names a message pushed to subscribers.
type EventType string

const (
	EventScreen  EventType = "screen"
	EventLevelUp EventType = "level_up"
	EventNotice  EventType = "notice"
	EventExit    EventType = "exit_library"
)

// Event is one message on the live stream.
type Event struct {
	Type EventType `json:"type"`
	Data any       `json:"data"`
}

// LevelUpPayload is the data of an EventLevelUp.
type LevelUpPayload struct {
	Level int `json:"level"`
	XP    int `json:"xp"`
}

// NoticePayload is the data of an EventNotice.
type NoticePayload struct {
	Kind      domain.NoticeKind `json:"kind"`
	SubjectID string            `json:"subjectId,omitempty"`
	Message   string            `json:"message"`
}

const subscriberBuffer = 16

// Subscriber receives events until it is removed from the hub.
type Subscriber struct {
	ID     uuid.UUID
	Events <-chan Event

	out chan Event
}

type screenBuilder interface {
	Build(filter string) Screen
}

// Hub rebuilds the screen on demand and broadcasts it. Render calls made
// before Attach are ignored.
type Hub struct {
	mu      sync.RWMutex
	builder screenBuilder
	filter  string
	last    *Screen
	subs    map[uuid.UUID]*Subscriber
	log     *slog.Logger
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		subs: make(map[uuid.UUID]*Subscriber),
		log:  log.With("component", "render_hub"),
	}
}

// Attach sets the screen builder.
func (h *Hub) Attach(b screenBuilder) {
	h.mu.Lock()
	h.builder = b
	h.mu.Unlock()
}

// Render rebuilds the screen with filter and broadcasts it.
func (h *Hub) Render(ctx context.Context, filter string) {
	h.mu.Lock()
	h.filter = filter
	b := h.builder
	h.mu.Unlock()
	if b == nil {
		return
	}

	screen := b.Build(filter)

	h.mu.Lock()
	h.last = &screen
	h.mu.Unlock()

	h.broadcast(ctx, Event{Type: EventScreen, Data: screen})
}

// Refresh re-renders with the last filter.
func (h *Hub) Refresh(ctx context.Context) {
	h.Render(ctx, h.Filter())
}

// Filter returns the filter of the last render.
func (h *Hub) Filter() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.filter
}

// Screen returns the current screen, building it if nothing was rendered
// yet. ok is false before Attach.
func (h *Hub) Screen(filter string) (Screen, bool) {
	h.mu.RLock()
	b := h.builder
	h.mu.RUnlock()
	if b == nil {
		return Screen{}, false
	}
	return b.Build(filter), true
}

// Last returns the most recently broadcast screen.
func (h *Hub) Last() (Screen, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.last == nil {
		return Screen{}, false
	}
	return *h.last, true
}

// LevelUp broadcasts a level-up event.
func (h *Hub) LevelUp(ctx context.Context, e domain.LevelUpEvent) {
	h.broadcast(ctx, Event{Type: EventLevelUp, Data: LevelUpPayload{Level: e.Level, XP: e.XP}})
}

// Notify broadcasts a notice.
func (h *Hub) Notify(ctx context.Context, n domain.Notice) {
	h.broadcast(ctx, Event{Type: EventNotice, Data: NoticePayload{
		Kind:      n.Kind,
		SubjectID: n.SubjectID,
		Message:   n.Message,
	}})
}

// ExitLibrary tells subscribers that the learner left the library from the
// grid.
func (h *Hub) ExitLibrary(ctx context.Context) {
	h.broadcast(ctx, Event{Type: EventExit})
}

// Subscribe registers a new subscriber.
func (h *Hub) Subscribe() *Subscriber {
	out := make(chan Event, subscriberBuffer)
	sub := &Subscriber{ID: uuid.New(), Events: out, out: out}

	h.mu.Lock()
	h.subs[sub.ID] = sub
	n := len(h.subs)
	h.mu.Unlock()

	h.log.Debug("subscriber added", slog.String("subscriber_id", sub.ID.String()), slog.Int("subscribers", n))
	return sub
}

// Unsubscribe removes sub and closes its channel. Unknown subscribers are
// ignored.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	_, ok := h.subs[sub.ID]
	if ok {
		delete(h.subs, sub.ID)
		close(sub.out)
	}
	h.mu.Unlock()
}

// Subscribers returns the number of live subscribers.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close removes every subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	for id, sub := range h.subs {
		delete(h.subs, id)
		close(sub.out)
	}
	h.mu.Unlock()
}

// broadcast never blocks: a subscriber whose buffer is full misses the event.
func (h *Hub) broadcast(ctx context.Context, e Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, sub := range h.subs {
		select {
		case sub.out <- e:
		default:
			h.log.WarnContext(ctx, "dropping event, subscriber buffer full",
				slog.String("subscriber_id", sub.ID.String()),
				slog.String("type", string(e.Type)),
			)
		}
	}
}
