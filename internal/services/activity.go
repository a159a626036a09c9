package services

import (
	"context"

	"kakeibo/internal/calendar"
	"kakeibo/internal/events"
	"kakeibo/internal/logger"
	"kakeibo/internal/metrics"
)

// activityRecorder logs every write and publishes it as a change event.
type activityRecorder struct {
	publisher events.Publisher
	metrics   *metrics.Metrics
}

// NewActivityRecorder creates an ActivityRecorder publishing through publisher.
func NewActivityRecorder(publisher events.Publisher, m *metrics.Metrics) ActivityRecorder {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &activityRecorder{publisher: publisher, metrics: m}
}

// Record logs and publishes an event. Errors are logged but never propagate
// to avoid disrupting the main operation.
func (r *activityRecorder) Record(ctx context.Context, eventType, resourceID string, month calendar.Month, data any) {
	logger.Get().Infow("activity",
		"event", eventType,
		"resource_id", resourceID,
		"month", month.String(),
	)

	err := r.publisher.Publish(ctx, events.New(eventType, resourceID, month.String(), data))
	r.metrics.RecordPublish(eventType, err)
	if err != nil {
		logger.Get().Errorw("failed to publish change event",
			"error", err,
			"event", eventType,
			"resource_id", resourceID,
		)
	}
}
