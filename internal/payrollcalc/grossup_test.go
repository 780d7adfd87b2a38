package payrollcalc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/payrollcalc"
	payrollcalcerrors "github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/payrollcalc/errors"
)

func TestSolveGrossUp_RoundTrip(t *testing.T) {
	config := standardConfig()

	// Forward-calculate a net, then solve back for the gross that produced it.
	for _, gross := range []int64{80000, 150000, 450000, 1200000, 5000000} {
		calc, err := payrollcalc.Calculate(payrollcalc.CalculationInput{GrossPay: gross, BasicPay: gross}, config)
		assert.NoError(t, err)
		if calc.FinalNetPay <= 0 {
			continue
		}

		result, err := payrollcalc.SolveGrossUp(calc.FinalNetPay, gross, 0, 0, config)
		assert.NoError(t, err)
		assert.LessOrEqual(t, absDiff(result.Calculation.FinalNetPay, calc.FinalNetPay), int64(1),
			"solved net must land within one unit of target for gross %d", gross)
	}
}

func TestSolveGrossUp_TargetInFreeBand(t *testing.T) {
	// Inside the zero-PAYE band only the contributions and the levy separate
	// gross from net, so the solution sits just above the target.
	result, err := payrollcalc.SolveGrossUp(50000, 0, 0, 0, standardConfig())

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, result.GrossPay, int64(50000))
	assert.LessOrEqual(t, absDiff(result.Calculation.FinalNetPay, 50000), int64(1))
}

func TestSolveGrossUp_WithCompositionAndDeductions(t *testing.T) {
	result, err := payrollcalc.SolveGrossUp(291336, 400000, 50000, 0, standardConfig())

	assert.NoError(t, err)
	// Rounding plateaus mean several adjacent grosses can share this net; the
	// solver must land on that plateau.
	assert.LessOrEqual(t, absDiff(result.GrossPay, 450000), int64(5))
	assert.Equal(t, int64(291336), result.Calculation.FinalNetPay)

	// Fixed deductions shift the required gross up by roughly the deduction.
	withDeduction, err := payrollcalc.SolveGrossUp(291336, 400000, 50000, 25000, standardConfig())
	assert.NoError(t, err)
	assert.Greater(t, withDeduction.GrossPay, result.GrossPay)
	assert.LessOrEqual(t, absDiff(withDeduction.Calculation.FinalNetPay, 291336), int64(1))
}

func TestSolveGrossUp_InvalidTarget(t *testing.T) {
	_, err := payrollcalc.SolveGrossUp(0, 0, 0, 0, standardConfig())
	assert.ErrorIs(t, err, payrollcalcerrors.ErrInvalidTargetNet)

	_, err = payrollcalc.SolveGrossUp(-100, 0, 0, 0, standardConfig())
	assert.ErrorIs(t, err, payrollcalcerrors.ErrInvalidTargetNet)
}

func TestSolveGrossUp_GrossCoversComposition(t *testing.T) {
	// Target far below the fixed composition: the search floor is lifted to
	// basic+transport so the engine never sees an impossible gross.
	result, err := payrollcalc.SolveGrossUp(10000, 400000, 50000, 0, standardConfig())

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, result.GrossPay, int64(450000))
}

func absDiff(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}
