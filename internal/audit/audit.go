package audit

import (
	"context"
	"time"
)

// Entry is one recorded lifecycle transition of a payroll run.
type Entry struct {
	RunID      string
	CompanyID  string
	Period     string
	FromStatus string
	ToStatus   string
	ActorID    string
	Reason     string
	OccurredAt time.Time
}

type Sink interface {
	Record(ctx context.Context, entry Entry)
}
