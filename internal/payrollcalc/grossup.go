package payrollcalc

import (
	payrollcalcerrors "github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/payrollcalc/errors"
	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/taxconfig"
)

// MaxGrossUpIterations caps the binary search. The cap is a safety valve: a
// well-formed schedule converges long before it, a misconfigured one must
// surface as ErrGrossUpNotConverged instead of a silent best estimate.
const MaxGrossUpIterations = 100

// GrossUpResult is the gross pay that produces the requested net, together
// with the full calculation at that gross.
type GrossUpResult struct {
	GrossPay    int64
	Calculation PayrollCalculation
}

// SolveGrossUp finds the gross pay whose final net pay is closest to
// targetNetPay, holding the basic/transport composition and other deductions
// fixed. It binary-searches [targetNetPay, targetNetPay*2.5]; the ceiling is
// safe because the top marginal PAYE rate plus contributions stays well under
// 60%. Relies on final net being non-decreasing in gross.
func SolveGrossUp(
	targetNetPay, basicPay, transportAllowance, otherDeductions int64,
	config taxconfig.TaxConfiguration,
) (GrossUpResult, error) {
	if targetNetPay <= 0 {
		return GrossUpResult{}, payrollcalcerrors.ErrInvalidTargetNet
	}

	lo := targetNetPay
	// The engine rejects gross below the fixed composition, so the search
	// floor must cover it.
	if floor := basicPay + transportAllowance; floor > lo {
		lo = floor
	}
	hi := targetNetPay * 5 / 2
	if hi < lo {
		hi = lo
	}

	eval := func(gross int64) (PayrollCalculation, error) {
		return Calculate(CalculationInput{
			GrossPay:           gross,
			BasicPay:           basicPay,
			TransportAllowance: transportAllowance,
			OtherDeductions:    otherDeductions,
		}, config)
	}

	iterations := 0
	for hi-lo > 1 {
		if iterations >= MaxGrossUpIterations {
			return GrossUpResult{}, payrollcalcerrors.ErrGrossUpNotConverged
		}
		iterations++

		mid := lo + (hi-lo)/2
		calc, err := eval(mid)
		if err != nil {
			return GrossUpResult{}, err
		}

		if calc.FinalNetPay > targetNetPay {
			hi = mid
		} else {
			lo = mid
		}
	}

	// The bracket is down to one unit; pick whichever endpoint lands closer
	// to the target, preferring the lower gross on a tie.
	best, err := eval(lo)
	if err != nil {
		return GrossUpResult{}, err
	}
	result := GrossUpResult{GrossPay: lo, Calculation: best}

	if hi != lo {
		upper, err := eval(hi)
		if err != nil {
			return GrossUpResult{}, err
		}
		if diff(upper.FinalNetPay, targetNetPay) < diff(best.FinalNetPay, targetNetPay) {
			result = GrossUpResult{GrossPay: hi, Calculation: upper}
		}
	}

	return result, nil
}

func diff(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}
