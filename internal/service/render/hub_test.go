package render

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

type countingBuilder struct {
	filters []string
}

func (b *countingBuilder) Build(filter string) Screen {
	b.filters = append(b.filters, filter)
	return Screen{Filter: filter}
}

func newTestHub() *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHub_RenderBeforeAttachIsNoop(t *testing.T) {
	t.Parallel()
	h := newTestHub()
	sub := h.Subscribe()

	h.Render(context.Background(), "x")
	assert.Empty(t, sub.Events)
	_, ok := h.Last()
	assert.False(t, ok)
	_, ok = h.Screen("")
	assert.False(t, ok)
}

func TestHub_RenderAndRefresh(t *testing.T) {
	t.Parallel()
	h := newTestHub()
	b := &countingBuilder{}
	h.Attach(b)
	sub := h.Subscribe()
	ctx := context.Background()

	h.Render(ctx, "kant")
	h.Refresh(ctx)
	assert.Equal(t, []string{"kant", "kant"}, b.filters)

	e := <-sub.Events
	assert.Equal(t, EventScreen, e.Type)
	assert.Equal(t, "kant", e.Data.(Screen).Filter)

	last, ok := h.Last()
	require.True(t, ok)
	assert.Equal(t, "kant", last.Filter)
}

func TestHub_Events(t *testing.T) {
	t.Parallel()
	h := newTestHub()
	sub := h.Subscribe()
	ctx := context.Background()

	h.LevelUp(ctx, domain.LevelUpEvent{Level: 4, XP: 3010})
	h.Notify(ctx, domain.Notice{Kind: domain.NoticeSessionComplete, Message: "done"})
	h.ExitLibrary(ctx)

	e := <-sub.Events
	assert.Equal(t, Event{Type: EventLevelUp, Data: LevelUpPayload{Level: 4, XP: 3010}}, e)
	e = <-sub.Events
	assert.Equal(t, EventNotice, e.Type)
	assert.Equal(t, domain.NoticeSessionComplete, e.Data.(NoticePayload).Kind)
	e = <-sub.Events
	assert.Equal(t, Event{Type: EventExit}, e)
}

func TestHub_SlowSubscriberDropsEvents(t *testing.T) {
	t.Parallel()
	h := newTestHub()
	slow := h.Subscribe()
	ctx := context.Background()

	for range subscriberBuffer + 5 {
		h.LevelUp(ctx, domain.LevelUpEvent{Level: 2})
	}
	assert.Len(t, slow.Events, subscriberBuffer)
}

func TestHub_Unsubscribe(t *testing.T) {
	t.Parallel()
	h := newTestHub()
	sub := h.Subscribe()
	assert.Equal(t, 1, h.Subscribers())

	h.Unsubscribe(sub)
	h.Unsubscribe(sub)
	assert.Equal(t, 0, h.Subscribers())

	_, open := <-sub.Events
	assert.False(t, open)

	h.LevelUp(context.Background(), domain.LevelUpEvent{Level: 2})
}

func TestHub_Close(t *testing.T) {
	t.Parallel()
	h := newTestHub()
	a, b := h.Subscribe(), h.Subscribe()

	h.Close()
	_, openA := <-a.Events
	_, openB := <-b.Events
	assert.False(t, openA)
	assert.False(t, openB)
	assert.Equal(t, 0, h.Subscribers())
}
