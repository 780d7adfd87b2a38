package payrollcalcerrors

import (
	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/shared/apperror"
)

var (
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"pay amounts cannot be negative",
	)
	ErrGrossBelowComposition = apperror.New(
		apperror.CodeInvalidInput,
		"gross pay is less than basic pay plus transport allowance",
	)
	ErrInvalidTargetNet = apperror.New(
		apperror.CodeInvalidInput,
		"target net pay must be positive",
	)
	ErrGrossUpNotConverged = apperror.New(
		apperror.CodeNotConverged,
		"gross-up search exhausted its iteration budget without converging",
	)
)
