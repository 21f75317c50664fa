package worker

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/company-research/internal/events"
	"github.com/spec-kit/company-research/internal/observability"
)

func TestAuditWorkerCountsEvents(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()
	StartAuditWorker(dispatcher, zap.NewNop(), metrics)

	publish := func(eventType events.EventType) {
		_ = dispatcher.Publish(context.Background(), events.Event{
			ID:        "evt",
			Type:      eventType,
			UserCode:  "user-42",
			Timestamp: time.Now(),
		})
	}

	publish(events.EventUserRegistered)
	publish(events.EventFavoriteAdded)
	publish(events.EventFavoriteAdded)

	if got := metrics.EventCount(string(events.EventUserRegistered)); got != 1 {
		t.Fatalf("user_registered count = %d, want 1", got)
	}
	if got := metrics.EventCount(string(events.EventFavoriteAdded)); got != 2 {
		t.Fatalf("favorite_added count = %d, want 2", got)
	}
	if got := metrics.EventCount(string(events.EventMemoSaved)); got != 0 {
		t.Fatalf("memo_saved count = %d, want 0", got)
	}
}

func TestAuditWorkerNilDispatcher(t *testing.T) {
	// Must not panic.
	StartAuditWorker(nil, zap.NewNop(), observability.NewMetrics())
}
