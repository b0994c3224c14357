// Package feed delivers realtime submission changes to a dashboard.
//
// A subscription is opened with Listener.Subscribe and stays live until
// Unsubscribe or until its context ends. If the underlying stream breaks the
// listener resubscribes in the background and emits a resync change so the
// receiver re-fetches whatever it may have missed.
package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophportal/internal/client/client"
	"github.com/dmitrijs2005/gophportal/internal/domain"
	"github.com/dmitrijs2005/gophportal/internal/logging"
)

const defaultRetryDelay = 2 * time.Second

// Watcher opens a change stream for the caller's session.
type Watcher interface {
	Watch(ctx context.Context) (client.ChangeStream, error)
}

// SubscriptionFailure is returned when the change stream cannot be
// established.
type SubscriptionFailure struct {
	Err error
}

func (e *SubscriptionFailure) Error() string {
	return fmt.Sprintf("subscription failed: %v", e.Err)
}

func (e *SubscriptionFailure) Unwrap() error {
	return e.Err
}

// Subscription is a live change feed handle.
type Subscription struct {
	scope  domain.Scope
	cancel context.CancelFunc
	done   chan struct{}
}

func (s *Subscription) Scope() domain.Scope {
	return s.scope
}

// Done is closed once no further callbacks will run.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

type Listener struct {
	watcher Watcher
	logger  logging.Logger

	// RetryDelay is the pause between resubscribe attempts.
	RetryDelay time.Duration

	mu   sync.Mutex
	subs map[*Subscription]struct{}
}

func NewListener(w Watcher, logger logging.Logger) *Listener {
	return &Listener{
		watcher:    w,
		logger:     logger,
		RetryDelay: defaultRetryDelay,
		subs:       make(map[*Subscription]struct{}),
	}
}

// Subscribe opens the change stream and calls onChange for every change that
// falls inside scope. Callbacks run on one goroutine per subscription, in
// arrival order. onChange must not call Unsubscribe for its own subscription.
func (l *Listener) Subscribe(ctx context.Context, scope domain.Scope, onChange func(domain.Change)) (*Subscription, error) {
	sctx, cancel := context.WithCancel(ctx)

	stream, err := l.watcher.Watch(sctx)
	if err != nil {
		cancel()
		return nil, &SubscriptionFailure{Err: err}
	}

	sub := &Subscription{scope: scope, cancel: cancel, done: make(chan struct{})}

	l.mu.Lock()
	l.subs[sub] = struct{}{}
	l.mu.Unlock()
	l.logger.Debug(ctx, "change feed subscribed", "owner", scope.OwnerID, "subscriptions", l.Len())

	go l.run(sctx, sub, stream, onChange)
	return sub, nil
}

// Unsubscribe stops sub and waits for its callback goroutine to finish.
// It is safe to call more than once and with nil.
func (l *Listener) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	sub.cancel()
	<-sub.done

	l.mu.Lock()
	delete(l.subs, sub)
	l.mu.Unlock()
}

// Close unsubscribes everything.
func (l *Listener) Close() {
	l.mu.Lock()
	subs := make([]*Subscription, 0, len(l.subs))
	for s := range l.subs {
		subs = append(subs, s)
	}
	l.mu.Unlock()

	for _, s := range subs {
		l.Unsubscribe(s)
	}
}

// Len reports the number of live subscriptions.
func (l *Listener) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.subs)
}

func (l *Listener) run(ctx context.Context, sub *Subscription, stream client.ChangeStream, onChange func(domain.Change)) {
	defer close(sub.done)

	for {
		err := l.pump(ctx, stream, sub.scope, onChange)
		if ctx.Err() != nil {
			return
		}
		l.logger.Warn(ctx, "change feed interrupted", "err", err)

		stream = l.resubscribe(ctx)
		if stream == nil {
			return
		}
		l.logger.Info(ctx, "change feed resubscribed")
		onChange(domain.Change{Op: domain.ChangeResync})
	}
}

func (l *Listener) pump(ctx context.Context, stream client.ChangeStream, scope domain.Scope, onChange func(domain.Change)) error {
	for {
		c, err := stream.Recv()
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if c == nil || !scope.MatchesChange(*c) {
			continue
		}
		onChange(*c)
	}
}

// resubscribe retries until a stream opens or ctx ends, in which case it
// returns nil.
func (l *Listener) resubscribe(ctx context.Context) client.ChangeStream {
	for {
		t := time.NewTimer(l.RetryDelay)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil
		case <-t.C:
		}

		stream, err := l.watcher.Watch(ctx)
		if err == nil {
			return stream
		}
		if ctx.Err() != nil {
			return nil
		}
		l.logger.Warn(ctx, "change feed resubscribe failed", "err", err)
	}
}
