package payrollrun

type CreatePayrollRunRequest struct {
	Period string `json:"period" validate:"required"`
}

type RejectPayrollRunRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type GetPayrollRunsFilterRequest struct {
	Status string `json:"status"`
	Period string `json:"period"`
}

type GrossUpRequest struct {
	TargetNetPay       int64  `json:"target_net_pay" validate:"required,gt=0"`
	BasicPay           int64  `json:"basic_pay" validate:"gte=0"`
	TransportAllowance int64  `json:"transport_allowance" validate:"gte=0"`
	OtherDeductions    int64  `json:"other_deductions" validate:"gte=0"`
	Period             string `json:"period" validate:"required"`
}

type StaffPayrollRecordResponse struct {
	ID                  string `json:"id"`
	StaffID             string `json:"staff_id"`
	GrossPay            int64  `json:"gross_pay"`
	BasicPay            int64  `json:"basic_pay"`
	TransportAllowance  int64  `json:"transport_allowance"`
	OtherAllowances     int64  `json:"other_allowances"`
	Paye                int64  `json:"paye"`
	PensionEmployee     int64  `json:"pension_employee"`
	PensionEmployer     int64  `json:"pension_employer"`
	MaternityEmployee   int64  `json:"maternity_employee"`
	MaternityEmployer   int64  `json:"maternity_employer"`
	MedicalEmployee     int64  `json:"medical_employee"`
	MedicalEmployer     int64  `json:"medical_employer"`
	NetBeforeLevy       int64  `json:"net_before_levy"`
	CommunityHealthLevy int64  `json:"community_health_levy"`
	OtherDeductions     int64  `json:"other_deductions"`
	FinalNetPay         int64  `json:"final_net_pay"`
	Status              string `json:"status"`
}

type PayrollRunResponse struct {
	ID                         string                       `json:"id"`
	CompanyID                  string                       `json:"company_id"`
	Period                     string                       `json:"period"`
	Status                     string                       `json:"status"`
	TaxConfigurationID         string                       `json:"tax_configuration_id"`
	TotalGrossPay              int64                        `json:"total_gross_pay"`
	TotalNetPay                int64                        `json:"total_net_pay"`
	TotalEmployeeTax           int64                        `json:"total_employee_tax"`
	TotalEmployerContributions int64                        `json:"total_employer_contributions"`
	StaffCount                 int                          `json:"staff_count"`
	CreatedBy                  string                       `json:"created_by"`
	ApprovedBy                 *string                      `json:"approved_by,omitempty"`
	ProcessedBy                *string                      `json:"processed_by,omitempty"`
	SubmittedAt                *string                      `json:"submitted_at,omitempty"`
	ApprovedAt                 *string                      `json:"approved_at,omitempty"`
	ProcessedAt                *string                      `json:"processed_at,omitempty"`
	StaffRecords               []StaffPayrollRecordResponse `json:"staff_records,omitempty"`
}

type GrossUpResponse struct {
	GrossPay            int64 `json:"gross_pay"`
	TargetNetPay        int64 `json:"target_net_pay"`
	AchievedNetPay      int64 `json:"achieved_net_pay"`
	Paye                int64 `json:"paye"`
	PensionEmployee     int64 `json:"pension_employee"`
	MaternityEmployee   int64 `json:"maternity_employee"`
	MedicalEmployee     int64 `json:"medical_employee"`
	CommunityHealthLevy int64 `json:"community_health_levy"`
}
