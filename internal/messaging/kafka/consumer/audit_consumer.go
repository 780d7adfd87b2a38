package consumer

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/audit"
	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/events"
)

// ConsumePayrollRunLifecycle feeds every lifecycle transition event into the
// audit sink. Malformed messages are committed and skipped; a poison message
// must not wedge the audit trail behind it.
func ConsumePayrollRunLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	sink audit.Sink,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_run_lifecycle")
	log.Info("payroll run lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll run lifecycle consumer stopped")
				return
			}
			log.Error("fetch payroll run lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.PayrollRunTransitionedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payroll run lifecycle event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		sink.Record(ctx, audit.Entry{
			RunID:      event.RunID,
			CompanyID:  event.CompanyID,
			Period:     event.Period,
			FromStatus: event.FromStatus,
			ToStatus:   event.ToStatus,
			ActorID:    event.ActorID,
			Reason:     event.Reason,
			OccurredAt: event.OccurredAt,
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payroll run lifecycle message failed", zap.Error(err))
		}
	}
}
