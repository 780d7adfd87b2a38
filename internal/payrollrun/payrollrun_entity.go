package payrollrun

import (
	"time"

	"github.com/google/uuid"
)

// PayrollRun is one payroll cycle covering all active staff of a company for
// one period. Once created it is mutated only through lifecycle transitions;
// after approval the attached staff records are frozen and a correction means
// a new run.
type PayrollRun struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index:idx_run_company_status;index:uq_run_company_period,unique"`

	// Period is the pay month, YYYY-MM.
	Period string `gorm:"type:varchar(7);not null;index:uq_run_company_period,unique"`

	Status string `gorm:"type:varchar(20);not null;default:'DRAFT';index:idx_run_company_status"`

	// Snapshot used for every calculation in this run.
	TaxConfigurationID uuid.UUID `gorm:"type:uuid;not null"`

	TotalGrossPay              int64 `gorm:"type:bigint;not null;default:0"`
	TotalNetPay                int64 `gorm:"type:bigint;not null;default:0"`
	TotalEmployeeTax           int64 `gorm:"type:bigint;not null;default:0"`
	TotalEmployerContributions int64 `gorm:"type:bigint;not null;default:0"`
	StaffCount                 int   `gorm:"not null;default:0"`

	CreatedBy   uuid.UUID  `gorm:"type:uuid;not null"`
	ApprovedBy  *uuid.UUID `gorm:"type:uuid"`
	ProcessedBy *uuid.UUID `gorm:"type:uuid"`

	CreatedAt   time.Time
	UpdatedAt   time.Time
	SubmittedAt *time.Time `gorm:"index"`
	ApprovedAt  *time.Time `gorm:"index"`
	ProcessedAt *time.Time `gorm:"index"`

	StaffRecords []StaffPayrollRecord `gorm:"foreignKey:RunID"`
}

// StaffPayrollRecord binds one computed calculation to a (run, staff) pair.
// Immutable after creation; the run's status is the record's macro-state, the
// record carries no status column of its own.
type StaffPayrollRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RunID     uuid.UUID `gorm:"type:uuid;not null;index:uq_record_run_staff,unique"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	StaffID   uuid.UUID `gorm:"type:uuid;not null;index:uq_record_run_staff,unique"`

	GrossPay           int64 `gorm:"type:bigint;not null;default:0"`
	BasicPay           int64 `gorm:"type:bigint;not null;default:0"`
	TransportAllowance int64 `gorm:"type:bigint;not null;default:0"`
	OtherAllowances    int64 `gorm:"type:bigint;not null;default:0"`

	Paye                int64 `gorm:"type:bigint;not null;default:0"`
	PensionEmployee     int64 `gorm:"type:bigint;not null;default:0"`
	PensionEmployer     int64 `gorm:"type:bigint;not null;default:0"`
	MaternityEmployee   int64 `gorm:"type:bigint;not null;default:0"`
	MaternityEmployer   int64 `gorm:"type:bigint;not null;default:0"`
	MedicalEmployee     int64 `gorm:"type:bigint;not null;default:0"`
	MedicalEmployer     int64 `gorm:"type:bigint;not null;default:0"`
	NetBeforeLevy       int64 `gorm:"type:bigint;not null;default:0"`
	CommunityHealthLevy int64 `gorm:"type:bigint;not null;default:0"`
	OtherDeductions     int64 `gorm:"type:bigint;not null;default:0"`
	FinalNetPay         int64 `gorm:"type:bigint;not null;default:0"`

	CreatedAt time.Time
}
