package taxconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/shared/apperror"
	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/shared/validation"
	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/taxcalc"
	taxconfigerrors "github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/taxconfig/errors"
)

// Service manages immutable tax configuration snapshots. A schedule change is
// always a new snapshot with a new effective date; existing snapshots are
// never updated so historical runs stay reproducible.
type Service interface {
	Create(ctx context.Context, companyID, actorID string, req CreateTaxConfigurationRequest) (TaxConfigurationResponse, error)
	GetActive(ctx context.Context, companyID string, onDate time.Time) (TaxConfiguration, error)
	GetAll(ctx context.Context, companyID string) ([]TaxConfigurationResponse, error)
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(
	ctx context.Context,
	companyID, actorID string,
	req CreateTaxConfigurationRequest,
) (TaxConfigurationResponse, error) {
	if err := validation.Struct(req); err != nil {
		return TaxConfigurationResponse{}, apperror.MapValidationError(err)
	}

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return TaxConfigurationResponse{}, taxconfigerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return TaxConfigurationResponse{}, taxconfigerrors.ErrInvalidActorID
	}
	effectiveDate, err := time.Parse("2006-01-02", req.EffectiveDate)
	if err != nil {
		return TaxConfigurationResponse{}, taxconfigerrors.ErrInvalidDateFormat
	}

	config := &TaxConfiguration{
		ID:                 uuid.New(),
		CompanyID:          companyUUID,
		EffectiveDate:      effectiveDate,
		PayeBrackets:       req.PayeBrackets,
		Pension:            ratePair(req.Pension),
		Maternity:          ratePair(req.Maternity),
		MedicalAssociation: ratePair(req.MedicalAssociation),
		CommunityHealth:    ratePair(req.CommunityHealth),
		CreatedBy:          actorUUID,
	}

	if err := config.Validate(); err != nil {
		return TaxConfigurationResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TaxConfigurationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Create(ctx, config); err != nil {
		return TaxConfigurationResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return TaxConfigurationResponse{}, err
	}

	return mapToResponse(*config), nil
}

func (s *service) GetActive(
	ctx context.Context,
	companyID string,
	onDate time.Time,
) (TaxConfiguration, error) {
	config, err := s.repo.FindActiveForDate(ctx, companyID, onDate)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TaxConfiguration{}, taxconfigerrors.ErrConfigNotFound
		}
		return TaxConfiguration{}, err
	}

	return *config, nil
}

func (s *service) GetAll(
	ctx context.Context,
	companyID string,
) ([]TaxConfigurationResponse, error) {
	configs, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	resp := make([]TaxConfigurationResponse, len(configs))
	for i, config := range configs {
		resp[i] = mapToResponse(config)
	}
	return resp, nil
}

func ratePair(in RatePairInput) taxcalc.ContributionRatePair {
	return taxcalc.ContributionRatePair{
		Employee: in.Employee,
		Employer: in.Employer,
	}
}

func mapToResponse(config TaxConfiguration) TaxConfigurationResponse {
	return TaxConfigurationResponse{
		ID:                 config.ID.String(),
		CompanyID:          config.CompanyID.String(),
		EffectiveDate:      config.EffectiveDate.Format("2006-01-02"),
		PayeBrackets:       config.PayeBrackets,
		Pension:            RatePairInput{Employee: config.Pension.Employee, Employer: config.Pension.Employer},
		Maternity:          RatePairInput{Employee: config.Maternity.Employee, Employer: config.Maternity.Employer},
		MedicalAssociation: RatePairInput{Employee: config.MedicalAssociation.Employee, Employer: config.MedicalAssociation.Employer},
		CommunityHealth:    RatePairInput{Employee: config.CommunityHealth.Employee, Employer: config.CommunityHealth.Employer},
		CreatedBy:          config.CreatedBy.String(),
	}
}
