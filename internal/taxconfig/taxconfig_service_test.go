package taxconfig_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/taxcalc"
	taxcalcerrors "github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/taxcalc/errors"
	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/taxconfig"
	taxconfigerrors "github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/taxconfig/errors"
)

type fakeTaxConfigRepository struct {
	withTxFn            func(tx *sql.Tx) taxconfig.Repository
	createFn            func(ctx context.Context, config *taxconfig.TaxConfiguration) error
	findActiveForDateFn func(ctx context.Context, companyID string, onDate time.Time) (*taxconfig.TaxConfiguration, error)
	findAllByCompanyFn  func(ctx context.Context, companyID string) ([]taxconfig.TaxConfiguration, error)
}

func (f *fakeTaxConfigRepository) WithTx(tx *sql.Tx) taxconfig.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeTaxConfigRepository) Create(ctx context.Context, config *taxconfig.TaxConfiguration) error {
	if f.createFn != nil {
		return f.createFn(ctx, config)
	}
	return nil
}

func (f *fakeTaxConfigRepository) FindActiveForDate(ctx context.Context, companyID string, onDate time.Time) (*taxconfig.TaxConfiguration, error) {
	if f.findActiveForDateFn != nil {
		return f.findActiveForDateFn(ctx, companyID, onDate)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTaxConfigRepository) FindAllByCompany(ctx context.Context, companyID string) ([]taxconfig.TaxConfiguration, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func bound(v int64) *int64 {
	return &v
}

func validCreateRequest() taxconfig.CreateTaxConfigurationRequest {
	return taxconfig.CreateTaxConfigurationRequest{
		EffectiveDate: "2026-01-01",
		PayeBrackets: []taxcalc.PayeTaxBracket{
			{Min: 0, Max: bound(60000), Rate: decimal.Zero},
			{Min: 60001, Max: nil, Rate: decimal.NewFromInt(20)},
		},
		Pension:         taxconfig.RatePairInput{Employee: decimal.NewFromInt(6), Employer: decimal.NewFromInt(8)},
		Maternity:       taxconfig.RatePairInput{Employee: decimal.NewFromFloat(0.3), Employer: decimal.NewFromFloat(0.3)},
		CommunityHealth: taxconfig.RatePairInput{Employee: decimal.NewFromFloat(0.5)},
	}
}

func TestTaxConfigService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	actorID := uuid.New().String()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &fakeTaxConfigRepository{}
	svc := taxconfig.NewService(db, repo)

	repo.createFn = func(ctx context.Context, config *taxconfig.TaxConfiguration) error {
		assert.Equal(t, companyID, config.CompanyID.String())
		assert.Equal(t, actorID, config.CreatedBy.String())
		assert.Len(t, config.PayeBrackets, 2)
		return nil
	}

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	resp, err := svc.Create(ctx, companyID, actorID, validCreateRequest())

	assert.NoError(t, err)
	assert.Equal(t, "2026-01-01", resp.EffectiveDate)
	assert.Equal(t, companyID, resp.CompanyID)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestTaxConfigService_Create_Rejections(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	actorID := uuid.New().String()

	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	svc := taxconfig.NewService(db, &fakeTaxConfigRepository{})

	t.Run("invalid company id", func(t *testing.T) {
		_, err := svc.Create(ctx, "not-a-uuid", actorID, validCreateRequest())
		assert.ErrorIs(t, err, taxconfigerrors.ErrInvalidCompanyID)
	})

	t.Run("invalid effective date", func(t *testing.T) {
		req := validCreateRequest()
		req.EffectiveDate = "01/01/2026"
		_, err := svc.Create(ctx, companyID, actorID, req)
		assert.ErrorIs(t, err, taxconfigerrors.ErrInvalidDateFormat)
	})

	t.Run("missing brackets", func(t *testing.T) {
		req := validCreateRequest()
		req.PayeBrackets = nil
		_, err := svc.Create(ctx, companyID, actorID, req)
		assert.Error(t, err)
	})

	t.Run("malformed schedule", func(t *testing.T) {
		req := validCreateRequest()
		req.PayeBrackets[1].Min = 70000
		_, err := svc.Create(ctx, companyID, actorID, req)
		assert.ErrorIs(t, err, taxcalcerrors.ErrBracketsNotContiguous)
	})

	t.Run("rate out of range", func(t *testing.T) {
		req := validCreateRequest()
		req.Pension.Employer = decimal.NewFromInt(150)
		_, err := svc.Create(ctx, companyID, actorID, req)
		assert.ErrorIs(t, err, taxcalcerrors.ErrRateOutOfRange)
	})
}

func TestTaxConfigService_GetActive(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	onDate := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	t.Run("returns the snapshot in force", func(t *testing.T) {
		want := taxconfig.DefaultConfiguration(uuid.MustParse(companyID), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		repo := &fakeTaxConfigRepository{
			findActiveForDateFn: func(ctx context.Context, cid string, d time.Time) (*taxconfig.TaxConfiguration, error) {
				assert.Equal(t, companyID, cid)
				assert.Equal(t, onDate, d)
				return &want, nil
			},
		}
		svc := taxconfig.NewService(db, repo)

		got, err := svc.GetActive(ctx, companyID, onDate)
		assert.NoError(t, err)
		assert.Equal(t, want.ID, got.ID)
	})

	t.Run("no snapshot covers the date", func(t *testing.T) {
		svc := taxconfig.NewService(db, &fakeTaxConfigRepository{})

		_, err := svc.GetActive(ctx, companyID, onDate)
		assert.ErrorIs(t, err, taxconfigerrors.ErrConfigNotFound)
	})
}

func TestTaxConfigurationValidate(t *testing.T) {
	config := taxconfig.DefaultConfiguration(uuid.New(), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, config.Validate())

	config.CommunityHealth.Employee = decimal.NewFromInt(-1)
	assert.ErrorIs(t, config.Validate(), taxcalcerrors.ErrRateOutOfRange)
}
