package payrollrunerrors

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
	ErrInvalidRunID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payroll run id",
	)
	ErrInvalidPeriodFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid period format, expected YYYY-MM",
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payroll run status filter",
	)
	ErrRunNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll run not found",
	)
	ErrNoActiveStaff = apperror.New(
		apperror.CodeInvalidInput,
		"company has no active staff to run payroll for",
	)
	ErrRunExistsForPeriod = apperror.New(
		apperror.CodeConflict,
		"a payroll run already exists for this period",
	)
	ErrRunModified = apperror.New(
		apperror.CodeConflict,
		"payroll run status changed concurrently, transition aborted",
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid payroll run status transition",
	)
)
