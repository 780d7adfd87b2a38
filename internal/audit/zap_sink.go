package audit

import (
	"context"

	"go.uber.org/zap"
)

type ZapSink struct{}

func NewZapSink() *ZapSink {
	return &ZapSink{}
}

func (s *ZapSink) Record(_ context.Context, entry Entry) {
	zap.L().Named("audit").Info("payroll run transitioned",
		zap.String("run_id", entry.RunID),
		zap.String("company_id", entry.CompanyID),
		zap.String("period", entry.Period),
		zap.String("from_status", entry.FromStatus),
		zap.String("to_status", entry.ToStatus),
		zap.String("actor_id", entry.ActorID),
		zap.String("reason", entry.Reason),
		zap.Time("occurred_at", entry.OccurredAt),
	)
}
