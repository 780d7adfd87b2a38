package taxcalcerrors

import (
	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/shared/apperror"
)

var (
	ErrNoBrackets = apperror.New(
		apperror.CodeConfigInvalid,
		"tax bracket schedule is empty",
	)
	ErrBracketsNotContiguous = apperror.New(
		apperror.CodeConfigInvalid,
		"tax brackets must be contiguous and ordered ascending",
	)
	ErrBracketBoundsInverted = apperror.New(
		apperror.CodeConfigInvalid,
		"tax bracket upper bound must be greater than or equal to its lower bound",
	)
	ErrUnboundedBracketNotLast = apperror.New(
		apperror.CodeConfigInvalid,
		"exactly the last tax bracket must be unbounded",
	)
	ErrRateOutOfRange = apperror.New(
		apperror.CodeConfigInvalid,
		"rate must be between 0 and 100 percent",
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"amount cannot be negative",
	)
)
