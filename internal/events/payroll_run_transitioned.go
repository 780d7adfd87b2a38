package events

import "time"

const PayrollRunLifecycleTopic = "payroll.run.lifecycle.v1"

// PayrollRunTransitionedEvent is the audit record of one lifecycle
// transition, emitted through the outbox in the same transaction as the
// status change.
type PayrollRunTransitionedEvent struct {
	EventType  string    `json:"event_type"`
	RunID      string    `json:"run_id"`
	CompanyID  string    `json:"company_id"`
	Period     string    `json:"period"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ActorID    string    `json:"actor_id"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
