package taxconfig

import (
	"github.com/shopspring/decimal"

	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/taxcalc"
)

type RatePairInput struct {
	Employee decimal.Decimal `json:"employee_rate"`
	Employer decimal.Decimal `json:"employer_rate"`
}

type CreateTaxConfigurationRequest struct {
	EffectiveDate      string                   `json:"effective_date" validate:"required"`
	PayeBrackets       []taxcalc.PayeTaxBracket `json:"paye_brackets" validate:"required,min=1"`
	Pension            RatePairInput            `json:"pension"`
	Maternity          RatePairInput            `json:"maternity"`
	MedicalAssociation RatePairInput            `json:"medical_association"`
	CommunityHealth    RatePairInput            `json:"community_health"`
}

type TaxConfigurationResponse struct {
	ID                 string                   `json:"id"`
	CompanyID          string                   `json:"company_id"`
	EffectiveDate      string                   `json:"effective_date"`
	PayeBrackets       []taxcalc.PayeTaxBracket `json:"paye_brackets"`
	Pension            RatePairInput            `json:"pension"`
	Maternity          RatePairInput            `json:"maternity"`
	MedicalAssociation RatePairInput            `json:"medical_association"`
	CommunityHealth    RatePairInput            `json:"community_health"`
	CreatedBy          string                   `json:"created_by"`
}
