package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/company-research/internal/events"
	"github.com/spec-kit/company-research/internal/observability"
)

// StartAuditWorker subscribes an audit trail to all domain events,
// logging each one and bumping the corresponding counter.
func StartAuditWorker(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) {
	if dispatcher == nil {
		return
	}

	handler := func(_ context.Context, event events.Event) error {
		logger.Info("audit event",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.String("user_code", event.UserCode),
			zap.Time("timestamp", event.Timestamp),
		)
		if metrics != nil {
			metrics.RecordEvent(string(event.Type))
		}
		return nil
	}

	for _, eventType := range []events.EventType{
		events.EventUserRegistered,
		events.EventUserLoggedIn,
		events.EventFavoriteAdded,
		events.EventFavoriteRemoved,
		events.EventMemoSaved,
	} {
		dispatcher.Subscribe(eventType, handler)
	}
}
