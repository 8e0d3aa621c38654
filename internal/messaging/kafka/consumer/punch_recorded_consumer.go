package consumer

import (
	"context"
	"encoding/json"

	"github.com/pauldemian98/portal-rh/internal/events"
	"github.com/pauldemian98/portal-rh/internal/report"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePunchRecorded drops the cached report entries of an employee
// whenever one of their punches lands, so the next report read rebuilds
// from the ledger.
func ConsumePunchRecorded(
	ctx context.Context,
	reader *kafkago.Reader,
	cache report.Cache,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.punch_recorded")
	log.Info("punch recorded consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("punch recorded consumer stopped")
				return
			}
			log.Error("fetch punch recorded message failed", zap.Error(err))
			continue
		}

		var event events.PunchRecordedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode punch_recorded event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := cache.InvalidateEmployee(ctx, event.EmployeeID); err != nil {
			log.Error("invalidate report cache failed",
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit punch recorded message failed", zap.Error(err))
			continue
		}

		log.Info("report cache invalidated",
			zap.String("employee_id", event.EmployeeID),
			zap.String("day", event.Day),
		)
	}
}
