package payrollcalc

import (
	payrollcalcerrors "github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/payrollcalc/errors"
	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/taxcalc"
	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/taxconfig"
)

// Calculate computes all statutory deductions for one staff member. The steps
// are strictly ordered: each contribution has its own base, and the community
// health levy is charged on the net that remains after PAYE and the other
// employee contributions. Reordering changes the result.
func Calculate(in CalculationInput, config taxconfig.TaxConfiguration) (PayrollCalculation, error) {
	if in.GrossPay < 0 || in.BasicPay < 0 || in.TransportAllowance < 0 || in.OtherDeductions < 0 {
		return PayrollCalculation{}, payrollcalcerrors.ErrNegativeAmount
	}
	if in.GrossPay < in.BasicPay+in.TransportAllowance {
		return PayrollCalculation{}, payrollcalcerrors.ErrGrossBelowComposition
	}

	otherAllowances := in.GrossPay - in.BasicPay - in.TransportAllowance

	// PAYE is charged on total gross; contributions are not tax-deductible.
	paye, err := taxcalc.ComputeBracketTax(in.GrossPay, config.PayeBrackets)
	if err != nil {
		return PayrollCalculation{}, err
	}

	// Pension: full gross, transport included.
	pension, err := taxcalc.ComputeContribution(in.GrossPay, config.Pension)
	if err != nil {
		return PayrollCalculation{}, err
	}

	// Maternity: transport allowance is exempt.
	maternity, err := taxcalc.ComputeContribution(in.GrossPay-in.TransportAllowance, config.Maternity)
	if err != nil {
		return PayrollCalculation{}, err
	}

	// Medical association levy: basic pay only, allowances excluded.
	medical, err := taxcalc.ComputeContribution(in.BasicPay, config.MedicalAssociation)
	if err != nil {
		return PayrollCalculation{}, err
	}

	netBeforeLevy := in.GrossPay - paye - pension.Employee - maternity.Employee - medical.Employee

	levyBase := netBeforeLevy
	if levyBase < 0 {
		levyBase = 0
	}
	communityHealth, err := taxcalc.ComputeContribution(levyBase, config.CommunityHealth)
	if err != nil {
		return PayrollCalculation{}, err
	}

	return PayrollCalculation{
		GrossPay:            in.GrossPay,
		BasicPay:            in.BasicPay,
		TransportAllowance:  in.TransportAllowance,
		OtherAllowances:     otherAllowances,
		Paye:                paye,
		PensionEmployee:     pension.Employee,
		PensionEmployer:     pension.Employer,
		MaternityEmployee:   maternity.Employee,
		MaternityEmployer:   maternity.Employer,
		MedicalEmployee:     medical.Employee,
		MedicalEmployer:     medical.Employer,
		NetBeforeLevy:       netBeforeLevy,
		CommunityHealthLevy: communityHealth.Employee,
		OtherDeductions:     in.OtherDeductions,
		FinalNetPay:         netBeforeLevy - communityHealth.Employee - in.OtherDeductions,
	}, nil
}
