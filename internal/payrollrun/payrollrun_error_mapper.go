package payrollrun

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	payrollrunerrors "github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/payrollrun/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollrunerrors.ErrRunNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_run_company_period" {
			return payrollrunerrors.ErrRunExistsForPeriod
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_run_company_period") {
		return payrollrunerrors.ErrRunExistsForPeriod
	}

	return err
}
