package taxcalc

import (
	"fmt"

	"github.com/shopspring/decimal"

	taxcalcerrors "github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/taxcalc/errors"
)

// PayeTaxBracket is one band of a progressive PAYE schedule. Amounts are in
// the smallest currency unit; Max is nil for the final, unbounded band. Rate
// is a percentage (6 means 6%).
type PayeTaxBracket struct {
	Min  int64           `json:"min"`
	Max  *int64          `json:"max"`
	Rate decimal.Decimal `json:"rate"`
}

var oneHundred = decimal.NewFromInt(100)

// RoundMoney rounds a decimal amount half-up to the nearest currency unit.
func RoundMoney(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// ValidateBrackets rejects schedules that are not contiguous, not ordered,
// carry out-of-range rates, or do not end in exactly one unbounded band.
func ValidateBrackets(brackets []PayeTaxBracket) error {
	if len(brackets) == 0 {
		return taxcalcerrors.ErrNoBrackets
	}

	if brackets[0].Min != 0 {
		return fmt.Errorf("first bracket starts at %d: %w", brackets[0].Min, taxcalcerrors.ErrBracketsNotContiguous)
	}

	for i, b := range brackets {
		if b.Rate.IsNegative() || b.Rate.GreaterThan(oneHundred) {
			return fmt.Errorf("bracket %d rate %s: %w", i, b.Rate, taxcalcerrors.ErrRateOutOfRange)
		}

		last := i == len(brackets)-1
		if last {
			if b.Max != nil {
				return fmt.Errorf("bracket %d is bounded: %w", i, taxcalcerrors.ErrUnboundedBracketNotLast)
			}
			continue
		}

		if b.Max == nil {
			return fmt.Errorf("bracket %d is unbounded: %w", i, taxcalcerrors.ErrUnboundedBracketNotLast)
		}
		if *b.Max < b.Min {
			return fmt.Errorf("bracket %d bounds [%d, %d]: %w", i, b.Min, *b.Max, taxcalcerrors.ErrBracketBoundsInverted)
		}
		if next := brackets[i+1].Min; next != *b.Max+1 {
			return fmt.Errorf("bracket %d ends at %d but bracket %d starts at %d: %w",
				i, *b.Max, i+1, next, taxcalcerrors.ErrBracketsNotContiguous)
		}
	}

	return nil
}

// ComputeBracketTax applies a progressive bracket schedule to amount. The
// per-band contributions are accumulated as exact decimals and the total is
// rounded half-up once at the end; rounding per band would drift.
func ComputeBracketTax(amount int64, brackets []PayeTaxBracket) (int64, error) {
	if amount < 0 {
		return 0, taxcalcerrors.ErrNegativeAmount
	}
	if err := ValidateBrackets(brackets); err != nil {
		return 0, err
	}

	total := decimal.Zero

	for i, b := range brackets {
		// The taxable span of band i runs from the previous band's upper
		// bound, so a schedule like (0-60000, 60001-100000) taxes exactly
		// 40000 in the second band.
		lower := int64(0)
		if i > 0 {
			lower = *brackets[i-1].Max
		}
		if amount <= lower {
			break
		}

		upper := amount
		if b.Max != nil && *b.Max < amount {
			upper = *b.Max
		}

		slice := decimal.NewFromInt(upper - lower)
		total = total.Add(slice.Mul(b.Rate).Div(oneHundred))
	}

	return RoundMoney(total), nil
}
