package taxconfigerrors

import (
	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
	)
	ErrConfigNotFound = apperror.New(
		apperror.CodeNotFound,
		"no tax configuration in force for the requested date",
	)
)
