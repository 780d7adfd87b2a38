package taxconfig

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/taxcalc"
)

func bound(v int64) *int64 { return &v }

// DefaultConfiguration returns the standard statutory schedule: progressive
// PAYE at 0/10/20/30, pension 6/8, maternity 0.3/0.3, medical association
// levy 7.5/7.5 on basic pay, community health levy 0.5 employee-only.
func DefaultConfiguration(companyID uuid.UUID, effectiveDate time.Time) TaxConfiguration {
	return TaxConfiguration{
		ID:            uuid.New(),
		CompanyID:     companyID,
		EffectiveDate: effectiveDate,
		PayeBrackets: []taxcalc.PayeTaxBracket{
			{Min: 0, Max: bound(60000), Rate: decimal.Zero},
			{Min: 60001, Max: bound(100000), Rate: decimal.NewFromInt(10)},
			{Min: 100001, Max: bound(200000), Rate: decimal.NewFromInt(20)},
			{Min: 200001, Max: nil, Rate: decimal.NewFromInt(30)},
		},
		Pension: taxcalc.ContributionRatePair{
			Employee: decimal.NewFromInt(6),
			Employer: decimal.NewFromInt(8),
		},
		Maternity: taxcalc.ContributionRatePair{
			Employee: decimal.NewFromFloat(0.3),
			Employer: decimal.NewFromFloat(0.3),
		},
		MedicalAssociation: taxcalc.ContributionRatePair{
			Employee: decimal.NewFromFloat(7.5),
			Employer: decimal.NewFromFloat(7.5),
		},
		CommunityHealth: taxcalc.ContributionRatePair{
			Employee: decimal.NewFromFloat(0.5),
			Employer: decimal.Zero,
		},
	}
}
