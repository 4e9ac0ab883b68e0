package realtime

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/logger"
)

const (
	ChangeChannel = "booking_changes"

	minReconnectInterval = time.Second
	maxReconnectInterval = time.Minute
	pingInterval         = 90 * time.Second
)

// PQFeed listens on the booking_changes channel. pq.Listener reconnects on its own; a
// reconnect is surfaced as a Resync event since notifications sent meanwhile are lost.
type PQFeed struct {
	listener *pq.Listener
	events   chan ChangeEvent
	cancel   context.CancelFunc
	logger   logger.Logger
}

func OpenPQFeed(ctx context.Context, dsn string, log logger.Logger) (*PQFeed, error) {
	l := pq.NewListener(dsn, minReconnectInterval, maxReconnectInterval, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			log.Warn("change feed connection event",
				logger.Int("event", int(ev)),
				logger.String("error", err.Error()),
			)
		}
	})

	if err := l.Listen(ChangeChannel); err != nil {
		_ = l.Close()
		return nil, fmt.Errorf("listen %s: %w", ChangeChannel, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	f := &PQFeed{
		listener: l,
		events:   make(chan ChangeEvent, 64),
		cancel:   cancel,
		logger:   log,
	}
	go f.run(ctx)

	return f, nil
}

func (f *PQFeed) Events() <-chan ChangeEvent { return f.events }

func (f *PQFeed) Close() error {
	f.cancel()
	return f.listener.Close()
}

func (f *PQFeed) run(ctx context.Context) {
	defer close(f.events)

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-f.listener.Notify:
			if !ok {
				return
			}
			ev := ChangeEvent{Resync: true}
			if n != nil {
				var err error
				if ev, err = decodeChange(n.Extra); err != nil {
					f.logger.Warn("undecodable change notification, resyncing",
						logger.String("error", err.Error()),
					)
					ev = ChangeEvent{Resync: true}
				}
			}
			select {
			case f.events <- ev:
			case <-ctx.Done():
				return
			}
		case <-ticker.C:
			if err := f.listener.Ping(); err != nil {
				f.logger.Warn("change feed ping failed",
					logger.String("error", err.Error()),
				)
			}
		}
	}
}
