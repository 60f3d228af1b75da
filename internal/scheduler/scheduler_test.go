package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"

	"github.com/westerlund126/onrent-sub000/internal/domain"
	"github.com/westerlund126/onrent-sub000/internal/scheduler/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_MarksOverdue(t *testing.T) {
	marker := mocks.NewMockOverdueMarker(t)
	log := newTestLogger(t)

	s := New(marker, 50*time.Millisecond, log)

	marked := []*domain.Rental{
		{ID: "r1", OwnerID: "o1", Status: domain.RentalStatusOverdue},
	}
	marker.EXPECT().MarkOverdue(mock.Anything).Return(marked, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(marker.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	marker := mocks.NewMockOverdueMarker(t)
	log := newTestLogger(t)

	s := New(marker, 50*time.Millisecond, log)

	marker.EXPECT().MarkOverdue(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(marker.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	marker := mocks.NewMockOverdueMarker(t)
	log := newTestLogger(t)

	s := New(marker, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	marker := mocks.NewMockOverdueMarker(t)
	log := newTestLogger(t)

	s := New(marker, 30*time.Millisecond, log)

	marker.EXPECT().MarkOverdue(mock.Anything).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	calls := len(marker.Calls)
	assert.GreaterOrEqual(t, calls, 3)
}
