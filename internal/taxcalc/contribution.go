package taxcalc

import (
	"fmt"

	"github.com/shopspring/decimal"

	taxcalcerrors "github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/taxcalc/errors"
)

// ContributionRatePair holds the employee and employer percentage rates for
// one contribution type. An employee-only levy carries a zero employer rate.
type ContributionRatePair struct {
	Employee decimal.Decimal `json:"employee_rate"`
	Employer decimal.Decimal `json:"employer_rate"`
}

// ContributionAmounts is the rounded employee/employer pair for one base.
type ContributionAmounts struct {
	Employee int64
	Employer int64
}

// ValidateRatePair rejects negative or >100% rates.
func ValidateRatePair(rates ContributionRatePair) error {
	for _, r := range []decimal.Decimal{rates.Employee, rates.Employer} {
		if r.IsNegative() || r.GreaterThan(oneHundred) {
			return fmt.Errorf("contribution rate %s: %w", r, taxcalcerrors.ErrRateOutOfRange)
		}
	}
	return nil
}

// ComputeContribution applies a rate pair to a base. Each side is rounded
// independently; the employer amount is never derived from the employee
// amount, so the two need not sum to a combined-rate calculation.
func ComputeContribution(base int64, rates ContributionRatePair) (ContributionAmounts, error) {
	if base < 0 {
		return ContributionAmounts{}, taxcalcerrors.ErrNegativeAmount
	}
	if err := ValidateRatePair(rates); err != nil {
		return ContributionAmounts{}, err
	}

	b := decimal.NewFromInt(base)
	return ContributionAmounts{
		Employee: RoundMoney(b.Mul(rates.Employee).Div(oneHundred)),
		Employer: RoundMoney(b.Mul(rates.Employer).Div(oneHundred)),
	}, nil
}
