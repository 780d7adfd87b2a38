package staff

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffProfile carries the contracted gross composition for one staff member:
// the basic pay / transport allowance split. Other allowances come from
// period payment records.
type StaffProfile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	FullName  string    `gorm:"type:varchar(120);not null"`

	// Amounts in the smallest currency unit.
	BasicPay           int64 `gorm:"type:bigint;not null;default:0"`
	TransportAllowance int64 `gorm:"type:bigint;not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// PaymentRecord is one recurring allowance on top of the contracted split.
type PaymentRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	StaffID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(120);not null"`
	Amount    int64     `gorm:"type:bigint;not null;default:0"`
	Active    bool      `gorm:"not null;default:true;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DeductionBalance is a non-statutory withholding (loan, advance) still open
// against a staff member.
type DeductionBalance struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	StaffID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(120);not null"`
	Balance   int64     `gorm:"type:bigint;not null;default:0"`
	Active    bool      `gorm:"not null;default:true;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
