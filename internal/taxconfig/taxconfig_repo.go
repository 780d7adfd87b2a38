package taxconfig

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, config *TaxConfiguration) error
	FindActiveForDate(ctx context.Context, companyID string, onDate time.Time) (*TaxConfiguration, error)
	FindAllByCompany(ctx context.Context, companyID string) ([]TaxConfiguration, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, config *TaxConfiguration) error {
	return r.db.WithContext(ctx).Create(config).Error
}

func (r *repository) FindActiveForDate(ctx context.Context, companyID string, onDate time.Time) (*TaxConfiguration, error) {
	var config TaxConfiguration
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Where("effective_date <= ?", onDate).
		Order("effective_date DESC").
		First(&config).Error
	return &config, err
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]TaxConfiguration, error) {
	var configs []TaxConfiguration
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("effective_date DESC").
		Find(&configs).Error
	return configs, err
}
