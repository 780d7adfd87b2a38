package payrollrun_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/payrollrun"
	payrollrunerrors "github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/payrollrun/errors"
)

func TestNextStatus(t *testing.T) {
	allStatuses := []string{
		payrollrun.StatusDraft,
		payrollrun.StatusPendingApproval,
		payrollrun.StatusApproved,
		payrollrun.StatusProcessed,
	}

	allowed := map[payrollrun.Action]struct{ from, to string }{
		payrollrun.ActionSubmit:  {payrollrun.StatusDraft, payrollrun.StatusPendingApproval},
		payrollrun.ActionApprove: {payrollrun.StatusPendingApproval, payrollrun.StatusApproved},
		payrollrun.ActionReject:  {payrollrun.StatusPendingApproval, payrollrun.StatusDraft},
		payrollrun.ActionProcess: {payrollrun.StatusApproved, payrollrun.StatusProcessed},
	}

	for action, rule := range allowed {
		for _, current := range allStatuses {
			got, err := payrollrun.NextStatus(current, action)

			if current == rule.from {
				assert.NoError(t, err, "action %s from %s", action, current)
				assert.Equal(t, rule.to, got)
				continue
			}

			assert.ErrorIs(t, err, payrollrunerrors.ErrInvalidStatusTransition,
				"action %s from %s must be rejected", action, current)
			assert.Contains(t, err.Error(), current)
			assert.Contains(t, err.Error(), rule.from)
		}
	}
}

func TestNextStatus_UnknownAction(t *testing.T) {
	_, err := payrollrun.NextStatus(payrollrun.StatusDraft, payrollrun.Action("archive"))
	assert.ErrorIs(t, err, payrollrunerrors.ErrInvalidStatusTransition)
}

func TestNextStatus_ProcessedIsTerminal(t *testing.T) {
	for _, action := range []payrollrun.Action{
		payrollrun.ActionSubmit,
		payrollrun.ActionApprove,
		payrollrun.ActionReject,
		payrollrun.ActionProcess,
	} {
		_, err := payrollrun.NextStatus(payrollrun.StatusProcessed, action)
		assert.ErrorIs(t, err, payrollrunerrors.ErrInvalidStatusTransition)
	}
}
