// Package delay runs functions after a delay on an injectable clock.
package delay

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Func is the work a task performs when it fires. The context is detached
// from the request that scheduled it.
type Func func(ctx context.Context)

type entry struct {
	name  string
	timer clockwork.Timer
}

// Scheduler fires tasks after a delay. Tasks run to completion once fired;
// Stop cancels a task only before it fires.
type Scheduler struct {
	clock clockwork.Clock
	log   *slog.Logger

	mu      sync.Mutex
	wg      sync.WaitGroup
	pending map[uint64]*entry
	nextID  uint64
	closed  bool
}

// Task is a handle to a scheduled function.
type Task struct {
	s  *Scheduler
	id uint64
}

// NewScheduler creates a Scheduler. A nil clock means the real clock.
func NewScheduler(clock clockwork.Clock, logger *slog.Logger) *Scheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		clock:   clock,
		log:     logger.With("component", "delay"),
		pending: make(map[uint64]*entry),
	}
}

// After schedules fn to run once d has elapsed. After Close it returns a
// task that never fires.
func (s *Scheduler) After(d time.Duration, name string, fn Func) *Task {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.log.Warn("scheduler closed, task dropped", slog.String("task", name))
		return &Task{s: s}
	}
	s.nextID++
	id := s.nextID
	e := &entry{name: name}
	s.pending[id] = e
	s.wg.Add(1)
	s.mu.Unlock()

	timer := s.clock.AfterFunc(d, func() { s.fire(id, fn) })

	s.mu.Lock()
	if _, ok := s.pending[id]; ok {
		e.timer = timer
	}
	s.mu.Unlock()

	s.log.Debug("task scheduled", slog.String("task", name), slog.Duration("delay", d))
	return &Task{s: s, id: id}
}

func (s *Scheduler) fire(id uint64, fn Func) {
	s.mu.Lock()
	e, ok := s.pending[id]
	delete(s.pending, id)
	s.mu.Unlock()
	if !ok {
		return
	}
	defer s.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("task panicked", slog.String("task", e.name), slog.Any("panic", r))
		}
	}()

	fn(context.Background())
}

// Stop cancels the task if it has not fired yet and reports whether it did.
func (t *Task) Stop() bool {
	if t == nil || t.id == 0 {
		return false
	}
	s := t.s
	s.mu.Lock()
	e, ok := s.pending[t.id]
	delete(s.pending, t.id)
	s.mu.Unlock()
	if !ok {
		return false
	}
	if e.timer != nil {
		e.timer.Stop()
	}
	s.wg.Done()
	return true
}

// Pending returns the number of tasks that have not fired yet.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Wait blocks until every scheduled task has fired and returned or been stopped.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

// Close stops tasks that have not fired, waits for running ones and rejects
// new ones.
func (s *Scheduler) Close() {
	s.mu.Lock()
	s.closed = true
	ids := make([]uint64, 0, len(s.pending))
	for id := range s.pending {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	for _, id := range ids {
		(&Task{s: s, id: id}).Stop()
	}
	s.wg.Wait()
}
