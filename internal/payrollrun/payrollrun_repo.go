package payrollrun

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RunQueryFilter narrows FindAllByCompany.
type RunQueryFilter struct {
	Status *string
	Period *string
}

// TransitionUpdate is one atomic status move. FromStatus is the optimistic
// guard: the UPDATE only applies while the row still holds it.
type TransitionUpdate struct {
	RunID      uuid.UUID
	CompanyID  uuid.UUID
	FromStatus string
	ToStatus   string

	SubmittedAt *time.Time
	ApprovedBy  *uuid.UUID
	ApprovedAt  *time.Time
	ProcessedBy *uuid.UUID
	ProcessedAt *time.Time
}

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, run *PayrollRun) error
	FindAllByCompany(ctx context.Context, companyID string, filter RunQueryFilter) ([]PayrollRun, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*PayrollRun, error)
	ApplyTransition(ctx context.Context, update TransitionUpdate) (bool, error)
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

// Create persists the run and every staff record as one unit; gorm wraps the
// association insert in a single transaction, so a run is never observably
// half-computed.
func (r *repository) Create(ctx context.Context, run *PayrollRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, filter RunQueryFilter) ([]PayrollRun, error) {
	db := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("period DESC")

	if filter.Status != nil {
		db = db.Where("status = ?", *filter.Status)
	}
	if filter.Period != nil {
		db = db.Where("period = ?", *filter.Period)
	}

	var runs []PayrollRun
	err := db.Find(&runs).Error
	return runs, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*PayrollRun, error) {
	var run PayrollRun
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Preload("StaffRecords").
		First(&run, "id = ?", id).Error
	return &run, err
}

// ApplyTransition is a conditional read-modify-write: it reports false when
// zero rows matched, meaning the status moved under us and the caller must
// abort instead of overwriting. Runs through the service transaction so the
// status change and its outbox event commit together.
func (r *repository) ApplyTransition(ctx context.Context, update TransitionUpdate) (bool, error) {
	query := `
UPDATE payroll_runs
SET
	status = $1,
	submitted_at = COALESCE($2, submitted_at),
	approved_by = COALESCE($3, approved_by),
	approved_at = COALESCE($4, approved_at),
	processed_by = COALESCE($5, processed_by),
	processed_at = COALESCE($6, processed_at),
	updated_at = NOW()
WHERE id = $7
	AND company_id = $8
	AND status = $9
`

	result, err := r.execer().ExecContext(
		ctx, query,
		update.ToStatus,
		update.SubmittedAt,
		update.ApprovedBy,
		update.ApprovedAt,
		update.ProcessedBy,
		update.ProcessedAt,
		update.RunID,
		update.CompanyID,
		update.FromStatus,
	)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}

	db, err := r.db.DB()
	if err != nil {
		return failingExecer{err: err}
	}
	return db
}

type failingExecer struct{ err error }

func (f failingExecer) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return nil, f.err
}
