package changefeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophportal/internal/domain"
	"github.com/dmitrijs2005/gophportal/internal/logging"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Publisher receives decoded changes.
type Publisher interface {
	Publish(domain.Change)
}

type listenConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	WaitForNotification(ctx context.Context) (*pgconn.Notification, error)
	Close(ctx context.Context) error
}

// connect is a seam for tests.
var connect = func(ctx context.Context, dsn string) (listenConn, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// PGListener holds a dedicated connection LISTENing on the submissions
// channel and publishes every notification. After a reconnect it publishes
// a resync change because notifications sent while disconnected are lost.
type PGListener struct {
	dsn     string
	channel string
	pub     Publisher
	logger  logging.Logger

	MinBackoff time.Duration
	MaxBackoff time.Duration
}

func NewPGListener(dsn, channel string, pub Publisher, logger logging.Logger) *PGListener {
	return &PGListener{
		dsn:        dsn,
		channel:    channel,
		pub:        pub,
		logger:     logger.With("module", "changefeed", "channel", channel),
		MinBackoff: 500 * time.Millisecond,
		MaxBackoff: 30 * time.Second,
	}
}

// Run blocks until ctx is canceled. Connection failures are retried with
// exponential backoff.
func (l *PGListener) Run(ctx context.Context) error {
	backoff := l.MinBackoff
	connectedBefore := false

	for {
		err := l.session(ctx, connectedBefore, func() {
			connectedBefore = true
			backoff = l.MinBackoff
		})
		if ctx.Err() != nil {
			return nil
		}
		l.logger.Warn(ctx, "change listener disconnected", "error", err, "retry_in", backoff)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(backoff):
		}
		backoff *= 2
		if backoff > l.MaxBackoff {
			backoff = l.MaxBackoff
		}
	}
}

func (l *PGListener) session(ctx context.Context, resync bool, onListening func()) error {
	conn, err := connect(ctx, l.dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = conn.Close(closeCtx)
	}()

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	onListening()
	l.logger.Info(ctx, "listening for submission changes")

	if resync {
		l.pub.Publish(domain.Change{Op: domain.ChangeResync})
	}

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}
		c, err := DecodeNotification(n.Payload)
		if err != nil {
			l.logger.Warn(ctx, "undecodable notification, forcing resync", "error", err)
			c = domain.Change{Op: domain.ChangeResync}
		}
		l.logger.Debug(ctx, "submission change", "op", c.Op, "id", c.ID)
		l.pub.Publish(c)
	}
}

var errEmptyPayload = errors.New("empty payload")

// DecodeNotification parses the JSON payload written by the
// notify_submission_change trigger.
func DecodeNotification(payload string) (domain.Change, error) {
	if payload == "" {
		return domain.Change{}, errEmptyPayload
	}
	var c domain.Change
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		return domain.Change{}, err
	}
	switch c.Op {
	case domain.ChangeInsert, domain.ChangeUpdate, domain.ChangeDelete:
	default:
		return domain.Change{}, fmt.Errorf("unknown op %q", c.Op)
	}
	return c, nil
}
