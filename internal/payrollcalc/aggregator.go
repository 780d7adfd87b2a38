package payrollcalc

// RunTotals is the payroll-run level sum of per-staff calculations.
type RunTotals struct {
	GrossPay              int64
	FinalNetPay           int64
	EmployeeTax           int64
	EmployerContributions int64
}

// Aggregate folds per-staff calculations into run totals. It is a pure fold:
// empty input yields zero totals, and aggregating partitions then summing the
// partial totals gives the same result as one pass.
func Aggregate(calculations []PayrollCalculation) RunTotals {
	var totals RunTotals
	for _, calc := range calculations {
		totals.GrossPay += calc.GrossPay
		totals.FinalNetPay += calc.FinalNetPay
		totals.EmployeeTax += calc.EmployeeTax()
		totals.EmployerContributions += calc.EmployerContributions()
	}
	return totals
}

// Combine adds two partial totals; Aggregate(a ++ b) == Combine(Aggregate(a), Aggregate(b)).
func Combine(a, b RunTotals) RunTotals {
	return RunTotals{
		GrossPay:              a.GrossPay + b.GrossPay,
		FinalNetPay:           a.FinalNetPay + b.FinalNetPay,
		EmployeeTax:           a.EmployeeTax + b.EmployeeTax,
		EmployerContributions: a.EmployerContributions + b.EmployerContributions,
	}
}
