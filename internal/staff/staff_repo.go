package staff

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffAmount is a per-staff sum produced by the aggregate queries.
type StaffAmount struct {
	StaffID uuid.UUID
	Total   int64
}

type Repository interface {
	FindActiveByCompany(ctx context.Context, companyID string) ([]StaffProfile, error)
	SumActiveAllowances(ctx context.Context, companyID string) ([]StaffAmount, error)
	SumActiveDeductions(ctx context.Context, companyID string) ([]StaffAmount, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindActiveByCompany(ctx context.Context, companyID string) ([]StaffProfile, error) {
	var profiles []StaffProfile
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("full_name ASC").
		Find(&profiles).Error
	return profiles, err
}

func (r *repository) SumActiveAllowances(ctx context.Context, companyID string) ([]StaffAmount, error) {
	query := `
SELECT
	payment_records.staff_id AS staff_id,
	COALESCE(SUM(payment_records.amount), 0) AS total
FROM payment_records
JOIN staff_profiles ON staff_profiles.id = payment_records.staff_id
WHERE payment_records.company_id = ?
	AND payment_records.active
	AND staff_profiles.deleted_at IS NULL
GROUP BY payment_records.staff_id
`

	var sums []StaffAmount
	err := r.db.WithContext(ctx).Raw(query, companyID).Scan(&sums).Error
	return sums, err
}

func (r *repository) SumActiveDeductions(ctx context.Context, companyID string) ([]StaffAmount, error) {
	query := `
SELECT
	deduction_balances.staff_id AS staff_id,
	COALESCE(SUM(deduction_balances.balance), 0) AS total
FROM deduction_balances
JOIN staff_profiles ON staff_profiles.id = deduction_balances.staff_id
WHERE deduction_balances.company_id = ?
	AND deduction_balances.active
	AND staff_profiles.deleted_at IS NULL
GROUP BY deduction_balances.staff_id
`

	var sums []StaffAmount
	err := r.db.WithContext(ctx).Raw(query, companyID).Scan(&sums).Error
	return sums, err
}
