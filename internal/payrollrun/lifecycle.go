package payrollrun

import (
	"fmt"

	payrollrunerrors "github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/payrollrun/errors"
)

const (
	StatusDraft           = "DRAFT"
	StatusPendingApproval = "PENDING_APPROVAL"
	StatusApproved        = "APPROVED"
	StatusProcessed       = "PROCESSED"
)

// Action is a lifecycle verb applied to a payroll run.
type Action string

const (
	ActionSubmit  Action = "submit"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionProcess Action = "process"
)

type transitionRule struct {
	from string
	to   string
}

// transitionTable is the single authoritative statement of the run lifecycle.
// A run only ever moves forward; reject returns a pending run to DRAFT for
// re-submission. No state is skippable, approval always requires a prior
// submit.
var transitionTable = map[Action]transitionRule{
	ActionSubmit:  {from: StatusDraft, to: StatusPendingApproval},
	ActionApprove: {from: StatusPendingApproval, to: StatusApproved},
	ActionReject:  {from: StatusPendingApproval, to: StatusDraft},
	ActionProcess: {from: StatusApproved, to: StatusProcessed},
}

// NextStatus resolves the status an action moves a run into, or an
// invalid-state error naming both the current and the required status.
func NextStatus(current string, action Action) (string, error) {
	rule, ok := transitionTable[action]
	if !ok {
		return "", fmt.Errorf("unknown action %q: %w", action, payrollrunerrors.ErrInvalidStatusTransition)
	}

	if current != rule.from {
		return "", fmt.Errorf("action %q requires status %s, current status is %s: %w",
			action, rule.from, current, payrollrunerrors.ErrInvalidStatusTransition)
	}

	return rule.to, nil
}
