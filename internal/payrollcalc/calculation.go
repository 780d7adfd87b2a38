package payrollcalc

// CalculationInput is the gross composition and non-statutory deductions for
// one staff member in one pay period. Amounts are integers in the smallest
// currency unit.
type CalculationInput struct {
	GrossPay           int64
	BasicPay           int64
	TransportAllowance int64
	OtherDeductions    int64
}

// PayrollCalculation is the computed statutory breakdown for one staff member
// in one period. Every monetary field is rounded independently at the point
// it is produced, and the identity
//
//	FinalNetPay = GrossPay - Paye - PensionEmployee - MaternityEmployee
//	            - MedicalEmployee - CommunityHealthLevy - OtherDeductions
//
// holds exactly.
type PayrollCalculation struct {
	GrossPay           int64
	BasicPay           int64
	TransportAllowance int64
	OtherAllowances    int64

	Paye int64

	PensionEmployee   int64
	PensionEmployer   int64
	MaternityEmployee int64
	MaternityEmployer int64
	MedicalEmployee   int64
	MedicalEmployer   int64

	NetBeforeLevy       int64
	CommunityHealthLevy int64
	OtherDeductions     int64

	// FinalNetPay may be negative when deductions exceed gross; the engine
	// does not clamp it, callers decide how to treat it.
	FinalNetPay int64
}

// EmployeeTax is everything withheld from the employee: PAYE, the employee
// side of each contribution, and the community health levy.
func (c PayrollCalculation) EmployeeTax() int64 {
	return c.Paye + c.PensionEmployee + c.MaternityEmployee + c.MedicalEmployee + c.CommunityHealthLevy
}

// EmployerContributions is the employer side of the statutory contributions.
func (c PayrollCalculation) EmployerContributions() int64 {
	return c.PensionEmployer + c.MaternityEmployer + c.MedicalEmployer
}
