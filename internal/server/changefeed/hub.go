// Package changefeed turns row-level notifications on the submissions table
// into per-session change streams.
package changefeed

import (
	"errors"
	"sync"

	"github.com/dmitrijs2005/gophportal/internal/domain"
)

// ErrClosed is returned by Subscribe after Close.
var ErrClosed = errors.New("change feed closed")

const defaultBuffer = 16

// Subscription receives the changes matching its scope on C. C is closed
// by Unsubscribe or Hub.Close.
type Subscription struct {
	C     <-chan domain.Change
	ch    chan domain.Change
	scope domain.Scope
	id    uint64
}

// Scope returns the filter the subscription was opened with.
func (s *Subscription) Scope() domain.Scope {
	return s.scope
}

// Hub fans changes out to scoped subscribers. A slow subscriber never
// blocks Publish: when its buffer is full the oldest pending change is
// dropped, since every change only asks the receiver to re-fetch.
type Hub struct {
	buffer int

	mu     sync.Mutex
	subs   map[uint64]*Subscription
	nextID uint64
	closed bool
}

// NewHub creates a hub whose subscriptions buffer up to buffer changes
// (a default is used when buffer < 1).
func NewHub(buffer int) *Hub {
	if buffer < 1 {
		buffer = defaultBuffer
	}
	return &Hub{buffer: buffer, subs: make(map[uint64]*Subscription)}
}

func (h *Hub) Subscribe(scope domain.Scope) (*Subscription, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, ErrClosed
	}
	h.nextID++
	ch := make(chan domain.Change, h.buffer)
	sub := &Subscription{C: ch, ch: ch, scope: scope, id: h.nextID}
	h.subs[sub.id] = sub
	return sub, nil
}

// Unsubscribe is idempotent.
func (h *Hub) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[sub.id]; !ok {
		return
	}
	delete(h.subs, sub.id)
	close(sub.ch)
}

// Publish delivers c to every subscriber whose scope matches.
func (h *Hub) Publish(c domain.Change) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, sub := range h.subs {
		if !sub.scope.MatchesChange(c) {
			continue
		}
		deliver(sub.ch, c)
	}
}

func deliver(ch chan domain.Change, c domain.Change) {
	for {
		select {
		case ch <- c:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// Len returns the number of live subscriptions.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Close ends every subscription and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for id, sub := range h.subs {
		delete(h.subs, id)
		close(sub.ch)
	}
}
