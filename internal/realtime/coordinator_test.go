package realtime

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stpnv0/RentalHandover/internal/domain"
	"github.com/stpnv0/RentalHandover/internal/realtime/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type chanFeed struct {
	events chan ChangeEvent
	once   sync.Once
}

func newChanFeed() *chanFeed { return &chanFeed{events: make(chan ChangeEvent)} }

func (f *chanFeed) Events() <-chan ChangeEvent { return f.events }

func (f *chanFeed) Close() error {
	f.once.Do(func() { close(f.events) })
	return nil
}

type updateLog struct {
	mu      sync.Mutex
	updates []Update
}

func (l *updateLog) add(u Update) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.updates = append(l.updates, u)
}

func (l *updateLog) snapshot() []Update {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Update(nil), l.updates...)
}

func TestCoordinator_HandleInvalidatesAndNotifies(t *testing.T) {
	cache := NewViewCache()
	cache.Enable()
	publisher := mocks.NewMockSignalPublisher(t)
	c := NewCoordinator(nil, cache, publisher, newTestLogger(t))

	detail, list, other := &updateLog{}, &updateLog{}, &updateLog{}
	c.Watch(Filter{BookingID: "b1"}, detail.add)
	c.Watch(Filter{UserID: "renter-1"}, list.add)
	c.Watch(Filter{BookingID: "b2"}, other.add)

	calls := 0
	load := func(context.Context) (*domain.Booking, error) {
		calls++
		return &domain.Booking{ID: "b1"}, nil
	}
	listCalls := 0
	loadList := func(context.Context) ([]*domain.Booking, error) {
		listCalls++
		return nil, nil
	}
	_, _ = cache.Booking(context.Background(), "b1", load)
	_, _ = cache.UserBookings(context.Background(), "renter-1", loadList)

	publisher.EXPECT().PublishSignal(mock.Anything, domain.Signal{
		Kind:      domain.SignalBookingCompleted,
		BookingID: "b1",
	}).Return(nil).Once()

	c.handle(context.Background(), ChangeEvent{
		Old: image("b1", domain.BookingStatusInProgress),
		New: image("b1", domain.BookingStatusCompleted),
	})

	want := []Update{{Type: UpdateInvalidate, BookingID: "b1"}}
	assert.Equal(t, want, detail.snapshot())
	assert.Equal(t, want, list.snapshot())
	assert.Empty(t, other.snapshot())

	_, _ = cache.Booking(context.Background(), "b1", load)
	_, _ = cache.UserBookings(context.Background(), "renter-1", loadList)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, listCalls)
}

func TestCoordinator_ResyncReachesEveryWatcher(t *testing.T) {
	cache := NewViewCache()
	cache.Enable()
	c := NewCoordinator(nil, cache, nil, newTestLogger(t))

	a, b := &updateLog{}, &updateLog{}
	c.Watch(Filter{BookingID: "b1"}, a.add)
	c.Watch(Filter{UserID: "u9"}, b.add)

	c.handle(context.Background(), ChangeEvent{Resync: true})

	assert.Equal(t, []Update{{Type: UpdateResync}}, a.snapshot())
	assert.Equal(t, []Update{{Type: UpdateResync}}, b.snapshot())
}

func TestCoordinator_CancelWatch(t *testing.T) {
	c := NewCoordinator(nil, NewViewCache(), nil, newTestLogger(t))
	l := &updateLog{}

	cancel := c.Watch(Filter{BookingID: "b1"}, l.add)
	cancel()
	cancel()

	c.handle(context.Background(), ChangeEvent{New: image("b1", domain.BookingStatusConfirmed)})

	assert.Empty(t, l.snapshot())
}

func TestCoordinator_PublishFailureIsNotFatal(t *testing.T) {
	publisher := mocks.NewMockSignalPublisher(t)
	c := NewCoordinator(nil, NewViewCache(), publisher, newTestLogger(t))
	l := &updateLog{}
	c.Watch(Filter{BookingID: "b1"}, l.add)

	publisher.EXPECT().PublishSignal(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	c.handle(context.Background(), ChangeEvent{
		Old: image("b1", domain.BookingStatusPending),
		New: image("b1", domain.BookingStatusCancelled),
	})

	assert.Len(t, l.snapshot(), 1)
}

func TestCoordinator_RunReopensAndResyncs(t *testing.T) {
	first, second := newChanFeed(), newChanFeed()
	var (
		mu     sync.Mutex
		opened int
	)
	open := func(context.Context) (Feed, error) {
		mu.Lock()
		defer mu.Unlock()
		opened++
		switch opened {
		case 1:
			return nil, errors.New("connection refused")
		case 2:
			return first, nil
		default:
			return second, nil
		}
	}

	c := NewCoordinator(open, NewViewCache(), nil, newTestLogger(t))
	c.minBackoff = time.Millisecond
	c.maxBackoff = 5 * time.Millisecond

	l := &updateLog{}
	c.Watch(Filter{BookingID: "b1"}, l.add)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Run(ctx)
		close(done)
	}()

	first.events <- ChangeEvent{New: image("b1", domain.BookingStatusConfirmed)}
	_ = first.Close()

	require.Eventually(t, func() bool {
		return len(l.snapshot()) == 2
	}, time.Second, 5*time.Millisecond)

	second.events <- ChangeEvent{New: image("b1", domain.BookingStatusCancelled)}

	require.Eventually(t, func() bool {
		return len(l.snapshot()) == 3
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("coordinator did not stop on context cancel")
	}

	assert.Equal(t, []Update{
		{Type: UpdateInvalidate, BookingID: "b1"},
		{Type: UpdateResync},
		{Type: UpdateInvalidate, BookingID: "b1"},
	}, l.snapshot())
}
