// Package notify fans out operation outcomes to interested parties.
//
// The [Emitter] is an in-process, synchronous event bus for
// [models.Notification] values. Publish calls every matching handler in
// subscription order before it returns, so a caller that publishes once
// delivers exactly once to each subscriber.
package notify

import (
	"slices"
	"sync"

	"github.com/MKhiriev/go-stats-sync/internal/logger"
	"github.com/MKhiriev/go-stats-sync/models"
)

// Handler consumes notifications. Handlers run on the publishing goroutine
// and must not block for long.
type Handler func(n models.Notification)

// Subscription is returned by Subscribe and detaches the handler.
type Subscription interface {
	Unsubscribe()
}

// Stats are counters of the emitter's lifetime activity.
type Stats struct {
	Published uint64
	Delivered uint64
	Panicked  uint64
}

// Emitter is a typed publish/subscribe hub for outcome notifications.
type Emitter struct {
	mu     sync.RWMutex
	subs   map[int]subscriber
	order  []int
	nextID int
	stats  Stats

	logger *logger.Logger
}

type subscriber struct {
	kinds   []models.NotificationKind
	handler Handler
}

// NewEmitter returns an emitter with no subscribers.
func NewEmitter(log *logger.Logger) *Emitter {
	return &Emitter{
		subs:   make(map[int]subscriber),
		logger: log,
	}
}

// Subscribe registers h for the given kinds, or for every kind when none are
// given.
func (e *Emitter) Subscribe(h Handler, kinds ...models.NotificationKind) Subscription {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	e.subs[id] = subscriber{kinds: kinds, handler: h}
	e.order = append(e.order, id)

	return &subscription{emitter: e, id: id}
}

// Publish delivers n to every matching subscriber. A panicking handler is
// logged and skipped; it never stops delivery to the others.
func (e *Emitter) Publish(n models.Notification) {
	e.mu.Lock()
	e.stats.Published++
	subs := make([]subscriber, 0, len(e.order))
	for _, id := range e.order {
		subs = append(subs, e.subs[id])
	}
	e.mu.Unlock()

	for _, sub := range subs {
		if len(sub.kinds) > 0 && !slices.Contains(sub.kinds, n.Kind) {
			continue
		}
		e.deliver(sub.handler, n)
	}
}

func (e *Emitter) deliver(h Handler, n models.Notification) {
	defer func() {
		if r := recover(); r != nil {
			e.mu.Lock()
			e.stats.Panicked++
			e.mu.Unlock()
			e.logger.Error().
				Str("func", "Emitter.deliver").
				Str("kind", string(n.Kind)).
				Interface("panic", r).
				Msg("notification handler panicked")
		}
	}()

	h(n)

	e.mu.Lock()
	e.stats.Delivered++
	e.mu.Unlock()
}

// Stats returns a snapshot of the emitter counters.
func (e *Emitter) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.stats
}

type subscription struct {
	emitter *Emitter
	id      int
	once    sync.Once
}

func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		e := s.emitter
		e.mu.Lock()
		defer e.mu.Unlock()

		delete(e.subs, s.id)
		e.order = slices.DeleteFunc(e.order, func(id int) bool { return id == s.id })
	})
}
