package taxconfig

import (
	"time"

	"github.com/google/uuid"

	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/taxcalc"
)

// TaxConfiguration is one immutable snapshot of the statutory schedule: the
// PAYE bracket table plus one rate pair per contribution type. A calculation
// always runs against exactly one snapshot so it can be reproduced later.
type TaxConfiguration struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID `gorm:"type:uuid;not null;index:idx_taxconfig_company_effective"`
	EffectiveDate time.Time `gorm:"type:date;not null;index:idx_taxconfig_company_effective"`

	PayeBrackets []taxcalc.PayeTaxBracket `gorm:"serializer:json;not null"`

	Pension            taxcalc.ContributionRatePair `gorm:"embedded;embeddedPrefix:pension_"`
	Maternity          taxcalc.ContributionRatePair `gorm:"embedded;embeddedPrefix:maternity_"`
	MedicalAssociation taxcalc.ContributionRatePair `gorm:"embedded;embeddedPrefix:medical_"`
	// Employee-only in the default schedule, but the employer side exists so
	// a future schedule can set it.
	CommunityHealth taxcalc.ContributionRatePair `gorm:"embedded;embeddedPrefix:community_health_"`

	CreatedAt time.Time
	CreatedBy uuid.UUID `gorm:"type:uuid"`
}

// Validate fails fast on a malformed schedule before any amount is processed.
func (c TaxConfiguration) Validate() error {
	if err := taxcalc.ValidateBrackets(c.PayeBrackets); err != nil {
		return err
	}
	for _, rates := range []taxcalc.ContributionRatePair{
		c.Pension, c.Maternity, c.MedicalAssociation, c.CommunityHealth,
	} {
		if err := taxcalc.ValidateRatePair(rates); err != nil {
			return err
		}
	}
	return nil
}
