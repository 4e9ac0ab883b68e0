package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/RentalHandover/internal/domain"
	"github.com/stpnv0/RentalHandover/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

func TestScheduler_Tick_ReconcilesAndSweeps(t *testing.T) {
	reconciler := mocks.NewMockReconciler(t)
	sweeper := mocks.NewMockCaptureSweeper(t)

	s := New(reconciler, sweeper, time.Hour, newTestLogger(t))

	advanced := []*domain.Booking{
		{ID: "b1", OwnerID: "o1", RenterID: "r1", Status: domain.BookingStatusInProgress},
	}
	reconciler.EXPECT().ReconcileStalled(mock.Anything).Return(advanced, nil).Once()
	sweeper.EXPECT().SweepExpired(mock.Anything).Return(2).Once()

	s.tick(context.Background())
}

func TestScheduler_Tick_SweepsWhenReconcileFails(t *testing.T) {
	reconciler := mocks.NewMockReconciler(t)
	sweeper := mocks.NewMockCaptureSweeper(t)

	s := New(reconciler, sweeper, time.Hour, newTestLogger(t))

	reconciler.EXPECT().ReconcileStalled(mock.Anything).Return(nil, errors.New("db error")).Once()
	sweeper.EXPECT().SweepExpired(mock.Anything).Return(0).Once()

	s.tick(context.Background())
}

func TestScheduler_Start_Ticks(t *testing.T) {
	reconciler := mocks.NewMockReconciler(t)
	sweeper := mocks.NewMockCaptureSweeper(t)

	s := New(reconciler, sweeper, 50*time.Millisecond, newTestLogger(t))

	reconciler.EXPECT().ReconcileStalled(mock.Anything).Return(nil, nil)
	sweeper.EXPECT().SweepExpired(mock.Anything).Return(0)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(reconciler.Calls), 1)
	assert.Equal(t, len(reconciler.Calls), len(sweeper.Calls))
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	reconciler := mocks.NewMockReconciler(t)
	sweeper := mocks.NewMockCaptureSweeper(t)

	s := New(reconciler, sweeper, time.Second, newTestLogger(t)) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	reconciler := mocks.NewMockReconciler(t)
	sweeper := mocks.NewMockCaptureSweeper(t)

	s := New(reconciler, sweeper, 30*time.Millisecond, newTestLogger(t))

	reconciler.EXPECT().ReconcileStalled(mock.Anything).Return(nil, nil)
	sweeper.EXPECT().SweepExpired(mock.Anything).Return(0)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(reconciler.Calls), 3)
}
