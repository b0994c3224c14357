package feed

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophportal/internal/client/client"
	"github.com/dmitrijs2005/gophportal/internal/domain"
	"github.com/dmitrijs2005/gophportal/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chanStream yields whatever is sent on ch; closing ch breaks the stream.
type chanStream struct {
	ctx context.Context
	ch  chan domain.Change
}

func (s *chanStream) Recv() (*domain.Change, error) {
	select {
	case <-s.ctx.Done():
		return nil, s.ctx.Err()
	case c, ok := <-s.ch:
		if !ok {
			return nil, io.ErrUnexpectedEOF
		}
		return &c, nil
	}
}

type fakeWatcher struct {
	mu      sync.Mutex
	streams []chan domain.Change
	errs    []error
	calls   int
}

func (w *fakeWatcher) Watch(ctx context.Context) (client.ChangeStream, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	i := w.calls
	w.calls++
	if i < len(w.errs) && w.errs[i] != nil {
		return nil, w.errs[i]
	}
	return &chanStream{ctx: ctx, ch: w.streams[i]}, nil
}

func (w *fakeWatcher) Calls() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.calls
}

type collector struct {
	mu  sync.Mutex
	got []domain.Change
}

func (c *collector) add(ch domain.Change) {
	c.mu.Lock()
	c.got = append(c.got, ch)
	c.mu.Unlock()
}

func (c *collector) snapshot() []domain.Change {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Change(nil), c.got...)
}

func TestSubscribe_DeliversChangesInScope(t *testing.T) {
	ch := make(chan domain.Change, 4)
	w := &fakeWatcher{streams: []chan domain.Change{ch}}
	l := NewListener(w, logging.Discard())
	col := &collector{}

	sub, err := l.Subscribe(context.Background(), domain.Scope{OwnerID: "u1"}, col.add)
	require.NoError(t, err)
	defer l.Unsubscribe(sub)

	ch <- domain.Change{Op: domain.ChangeInsert, ID: "x", OwnerID: "u2"}
	ch <- domain.Change{Op: domain.ChangeInsert, ID: "a", OwnerID: "u1"}
	ch <- domain.Change{Op: domain.ChangeUpdate, ID: "a", OwnerID: "u1"}

	require.Eventually(t, func() bool { return len(col.snapshot()) == 2 }, time.Second, 5*time.Millisecond)
	got := col.snapshot()
	assert.Equal(t, domain.ChangeInsert, got[0].Op)
	assert.Equal(t, domain.ChangeUpdate, got[1].Op)
	assert.Equal(t, domain.Scope{OwnerID: "u1"}, sub.Scope())
}

func TestSubscribe_FailureIsTyped(t *testing.T) {
	boom := errors.New("denied")
	l := NewListener(&fakeWatcher{errs: []error{boom}}, logging.Discard())

	sub, err := l.Subscribe(context.Background(), domain.Scope{}, func(domain.Change) {})
	require.Nil(t, sub)
	var sf *SubscriptionFailure
	require.ErrorAs(t, err, &sf)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, l.Len())
}

func TestSubscribe_LogsLiveSubscriptions(t *testing.T) {
	var buf bytes.Buffer
	ch1, ch2 := make(chan domain.Change), make(chan domain.Change)
	l := NewListener(&fakeWatcher{streams: []chan domain.Change{ch1, ch2}}, logging.NewText(&buf, slog.LevelDebug))
	defer l.Close()

	_, err := l.Subscribe(context.Background(), domain.Scope{OwnerID: "u1"}, func(domain.Change) {})
	require.NoError(t, err)
	_, err = l.Subscribe(context.Background(), domain.Scope{}, func(domain.Change) {})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "owner=u1 subscriptions=1")
	assert.Contains(t, out, "subscriptions=2")
}

func TestUnsubscribe_StopsCallbacks(t *testing.T) {
	ch := make(chan domain.Change, 4)
	l := NewListener(&fakeWatcher{streams: []chan domain.Change{ch}}, logging.Discard())
	col := &collector{}

	sub, err := l.Subscribe(context.Background(), domain.Scope{}, col.add)
	require.NoError(t, err)
	require.Equal(t, 1, l.Len())

	l.Unsubscribe(sub)
	l.Unsubscribe(sub)
	l.Unsubscribe(nil)

	ch <- domain.Change{Op: domain.ChangeInsert, ID: "late"}
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, col.snapshot())
	assert.Equal(t, 0, l.Len())

	select {
	case <-sub.Done():
	default:
		t.Fatal("done not closed after Unsubscribe")
	}
}

func TestStreamBreak_ResubscribesAndResyncs(t *testing.T) {
	first := make(chan domain.Change)
	second := make(chan domain.Change, 1)
	w := &fakeWatcher{
		streams: []chan domain.Change{first, nil, second},
		errs:    []error{nil, errors.New("still down"), nil},
	}
	l := NewListener(w, logging.Discard())
	l.RetryDelay = time.Millisecond
	col := &collector{}

	sub, err := l.Subscribe(context.Background(), domain.Scope{}, col.add)
	require.NoError(t, err)
	defer l.Unsubscribe(sub)

	close(first)
	require.Eventually(t, func() bool { return len(col.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, domain.ChangeResync, col.snapshot()[0].Op)
	assert.Equal(t, 3, w.Calls())

	second <- domain.Change{Op: domain.ChangeDelete, ID: "z"}
	require.Eventually(t, func() bool { return len(col.snapshot()) == 2 }, time.Second, 5*time.Millisecond)
}

func TestParentContextEndsSubscription(t *testing.T) {
	ch := make(chan domain.Change)
	l := NewListener(&fakeWatcher{streams: []chan domain.Change{ch}}, logging.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	sub, err := l.Subscribe(ctx, domain.Scope{}, func(domain.Change) {})
	require.NoError(t, err)

	cancel()
	select {
	case <-sub.Done():
	case <-time.After(time.Second):
		t.Fatal("subscription did not stop with its context")
	}
	l.Close()
	assert.Equal(t, 0, l.Len())
}
