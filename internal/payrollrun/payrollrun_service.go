package payrollrun

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/events"
	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/messaging/kafka"
	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/payrollcalc"
	payrollrunerrors "github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/payrollrun/errors"
	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/shared/apperror"
	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/shared/contextutil"
	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/shared/validation"
	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/staff"
	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/taxconfig"
)

type Service interface {
	Create(ctx context.Context, companyID, actorID string, req CreatePayrollRunRequest) (PayrollRunResponse, error)
	GetAll(ctx context.Context, companyID string, req GetPayrollRunsFilterRequest) ([]PayrollRunResponse, error)
	GetByID(ctx context.Context, companyID, id string) (PayrollRunResponse, error)
	Submit(ctx context.Context, companyID, actorID, id string) (PayrollRunResponse, error)
	Approve(ctx context.Context, companyID, actorID, id string) (PayrollRunResponse, error)
	Reject(ctx context.Context, companyID, actorID, id string, req RejectPayrollRunRequest) (PayrollRunResponse, error)
	Process(ctx context.Context, companyID, actorID, id string) (PayrollRunResponse, error)
	GrossUp(ctx context.Context, companyID string, req GrossUpRequest) (GrossUpResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	staffRepo  staff.Repository
	taxConfigs taxconfig.Service
	outbox     kafka.OutboxRepository
}

func NewService(db *sql.DB, repo Repository, staffRepo staff.Repository, taxConfigs taxconfig.Service) Service {
	return &service{db: db, repo: repo, staffRepo: staffRepo, taxConfigs: taxConfigs}
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	staffRepo staff.Repository,
	taxConfigs taxconfig.Service,
	outbox kafka.OutboxRepository,
) Service {
	return &service{db: db, repo: repo, staffRepo: staffRepo, taxConfigs: taxConfigs, outbox: outbox}
}

// Create computes a StaffPayrollRecord for every active staff member from
// then-current payment and deduction data and persists the run as one unit.
// Any single staff calculation failure aborts the whole run; a run with a
// silent subset of staff covered is worse than no run.
func (s *service) Create(
	ctx context.Context,
	companyID, actorID string,
	req CreatePayrollRunRequest,
) (PayrollRunResponse, error) {
	if err := validation.Struct(req); err != nil {
		return PayrollRunResponse{}, apperror.MapValidationError(err)
	}

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return PayrollRunResponse{}, payrollrunerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PayrollRunResponse{}, payrollrunerrors.ErrInvalidActorID
	}
	periodStart, err := parsePeriod(req.Period)
	if err != nil {
		return PayrollRunResponse{}, err
	}

	config, err := s.taxConfigs.GetActive(ctx, companyID, periodStart)
	if err != nil {
		return PayrollRunResponse{}, err
	}

	profiles, err := s.staffRepo.FindActiveByCompany(ctx, companyID)
	if err != nil {
		return PayrollRunResponse{}, err
	}
	if len(profiles) == 0 {
		return PayrollRunResponse{}, payrollrunerrors.ErrNoActiveStaff
	}

	allowances, err := amountsByStaff(s.staffRepo.SumActiveAllowances, ctx, companyID)
	if err != nil {
		return PayrollRunResponse{}, err
	}
	deductions, err := amountsByStaff(s.staffRepo.SumActiveDeductions, ctx, companyID)
	if err != nil {
		return PayrollRunResponse{}, err
	}

	runID := uuid.New()
	records := make([]StaffPayrollRecord, 0, len(profiles))
	calculations := make([]payrollcalc.PayrollCalculation, 0, len(profiles))

	for _, profile := range profiles {
		input := payrollcalc.CalculationInput{
			GrossPay:           profile.BasicPay + profile.TransportAllowance + allowances[profile.ID],
			BasicPay:           profile.BasicPay,
			TransportAllowance: profile.TransportAllowance,
			OtherDeductions:    deductions[profile.ID],
		}

		calc, err := payrollcalc.Calculate(input, config)
		if err != nil {
			return PayrollRunResponse{}, fmt.Errorf("staff %s: %w", profile.ID, err)
		}

		calculations = append(calculations, calc)
		records = append(records, newStaffRecord(runID, companyUUID, profile.ID, calc))
	}

	totals := payrollcalc.Aggregate(calculations)

	run := &PayrollRun{
		ID:                         runID,
		CompanyID:                  companyUUID,
		Period:                     req.Period,
		Status:                     StatusDraft,
		TaxConfigurationID:         config.ID,
		TotalGrossPay:              totals.GrossPay,
		TotalNetPay:                totals.FinalNetPay,
		TotalEmployeeTax:           totals.EmployeeTax,
		TotalEmployerContributions: totals.EmployerContributions,
		StaffCount:                 len(records),
		CreatedBy:                  actorUUID,
		StaffRecords:               records,
	}

	if err := s.repo.Create(ctx, run); err != nil {
		return PayrollRunResponse{}, mapRepositoryError(err)
	}

	zap.L().Named("payrollrun").Info("payroll run created",
		zap.String("run_id", run.ID.String()),
		zap.String("company_id", companyID),
		zap.String("period", run.Period),
		zap.Int("staff_count", run.StaffCount),
		zap.Int64("total_gross", run.TotalGrossPay),
	)

	return mapToResponse(*run, true), nil
}

func (s *service) GetAll(
	ctx context.Context,
	companyID string,
	req GetPayrollRunsFilterRequest,
) ([]PayrollRunResponse, error) {
	filter := RunQueryFilter{}

	status, err := parseStatusFilter(req.Status)
	if err != nil {
		return nil, err
	}
	filter.Status = status

	if req.Period != "" {
		if _, err := parsePeriod(req.Period); err != nil {
			return nil, err
		}
		period := req.Period
		filter.Period = &period
	}

	runs, err := s.repo.FindAllByCompany(ctx, companyID, filter)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]PayrollRunResponse, len(runs))
	for i, run := range runs {
		resp[i] = mapToResponse(run, false)
	}
	return resp, nil
}

func (s *service) GetByID(
	ctx context.Context,
	companyID, id string,
) (PayrollRunResponse, error) {
	run, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayrollRunResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*run, true), nil
}

func (s *service) Submit(ctx context.Context, companyID, actorID, id string) (PayrollRunResponse, error) {
	return s.transition(ctx, companyID, actorID, id, ActionSubmit, "")
}

func (s *service) Approve(ctx context.Context, companyID, actorID, id string) (PayrollRunResponse, error) {
	return s.transition(ctx, companyID, actorID, id, ActionApprove, "")
}

func (s *service) Reject(
	ctx context.Context,
	companyID, actorID, id string,
	req RejectPayrollRunRequest,
) (PayrollRunResponse, error) {
	if err := validation.Struct(req); err != nil {
		return PayrollRunResponse{}, apperror.MapValidationError(err)
	}
	return s.transition(ctx, companyID, actorID, id, ActionReject, req.Reason)
}

func (s *service) Process(ctx context.Context, companyID, actorID, id string) (PayrollRunResponse, error) {
	return s.transition(ctx, companyID, actorID, id, ActionProcess, "")
}

// GrossUp finds the gross pay that yields the requested net under the
// schedule in force for the period.
func (s *service) GrossUp(
	ctx context.Context,
	companyID string,
	req GrossUpRequest,
) (GrossUpResponse, error) {
	if err := validation.Struct(req); err != nil {
		return GrossUpResponse{}, apperror.MapValidationError(err)
	}

	periodStart, err := parsePeriod(req.Period)
	if err != nil {
		return GrossUpResponse{}, err
	}

	config, err := s.taxConfigs.GetActive(ctx, companyID, periodStart)
	if err != nil {
		return GrossUpResponse{}, err
	}

	result, err := payrollcalc.SolveGrossUp(
		req.TargetNetPay,
		req.BasicPay,
		req.TransportAllowance,
		req.OtherDeductions,
		config,
	)
	if err != nil {
		return GrossUpResponse{}, err
	}

	return GrossUpResponse{
		GrossPay:            result.GrossPay,
		TargetNetPay:        req.TargetNetPay,
		AchievedNetPay:      result.Calculation.FinalNetPay,
		Paye:                result.Calculation.Paye,
		PensionEmployee:     result.Calculation.PensionEmployee,
		MaternityEmployee:   result.Calculation.MaternityEmployee,
		MedicalEmployee:     result.Calculation.MedicalEmployee,
		CommunityHealthLevy: result.Calculation.CommunityHealthLevy,
	}, nil
}

var transitionEventTypes = map[Action]string{
	ActionSubmit:  "payroll_run.submitted",
	ActionApprove: "payroll_run.approved",
	ActionReject:  "payroll_run.rejected",
	ActionProcess: "payroll_run.processed",
}

// transition is the single path for every lifecycle action: resolve the
// target status from the transition table, apply it as an optimistic
// check-then-set, and queue the audit event in the same transaction.
func (s *service) transition(
	ctx context.Context,
	companyID, actorID, id string,
	action Action,
	reason string,
) (PayrollRunResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return PayrollRunResponse{}, payrollrunerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PayrollRunResponse{}, payrollrunerrors.ErrInvalidActorID
	}
	if _, err := uuid.Parse(id); err != nil {
		return PayrollRunResponse{}, payrollrunerrors.ErrInvalidRunID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollRunResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	run, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayrollRunResponse{}, mapRepositoryError(err)
	}

	fromStatus := run.Status
	toStatus, err := NextStatus(fromStatus, action)
	if err != nil {
		return PayrollRunResponse{}, err
	}

	now := time.Now().UTC()
	update := TransitionUpdate{
		RunID:      run.ID,
		CompanyID:  companyUUID,
		FromStatus: fromStatus,
		ToStatus:   toStatus,
	}

	switch action {
	case ActionSubmit:
		update.SubmittedAt = &now
	case ActionApprove:
		update.ApprovedBy = &actorUUID
		update.ApprovedAt = &now
	case ActionProcess:
		update.ProcessedBy = &actorUUID
		update.ProcessedAt = &now
	}

	applied, err := qtx.ApplyTransition(ctx, update)
	if err != nil {
		return PayrollRunResponse{}, err
	}
	if !applied {
		return PayrollRunResponse{}, payrollrunerrors.ErrRunModified
	}

	if s.outbox != nil {
		if err := s.queueTransitionEvent(ctx, tx, run, action, fromStatus, toStatus, actorID, reason, now); err != nil {
			return PayrollRunResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return PayrollRunResponse{}, err
	}

	run.Status = toStatus
	run.SubmittedAt = coalesceTime(update.SubmittedAt, run.SubmittedAt)
	run.ApprovedAt = coalesceTime(update.ApprovedAt, run.ApprovedAt)
	run.ProcessedAt = coalesceTime(update.ProcessedAt, run.ProcessedAt)
	if update.ApprovedBy != nil {
		run.ApprovedBy = update.ApprovedBy
	}
	if update.ProcessedBy != nil {
		run.ProcessedBy = update.ProcessedBy
	}

	zap.L().Named("payrollrun").Info("payroll run transitioned",
		zap.String("run_id", run.ID.String()),
		zap.String("company_id", companyID),
		zap.String("action", string(action)),
		zap.String("from_status", fromStatus),
		zap.String("to_status", toStatus),
		zap.String("actor_id", actorID),
	)

	return mapToResponse(*run, false), nil
}

func (s *service) queueTransitionEvent(
	ctx context.Context,
	tx *sql.Tx,
	run *PayrollRun,
	action Action,
	fromStatus, toStatus, actorID, reason string,
	occurredAt time.Time,
) error {
	event := events.PayrollRunTransitionedEvent{
		EventType:  transitionEventTypes[action],
		RunID:      run.ID.String(),
		CompanyID:  run.CompanyID.String(),
		Period:     run.Period,
		FromStatus: fromStatus,
		ToStatus:   toStatus,
		ActorID:    actorID,
		Reason:     reason,
		OccurredAt: occurredAt,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "payroll_run",
		AggregateID:   event.RunID,
		EventType:     event.EventType,
		Topic:         events.PayrollRunLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func parsePeriod(v string) (time.Time, error) {
	t, err := time.Parse("2006-01", v)
	if err != nil {
		return time.Time{}, payrollrunerrors.ErrInvalidPeriodFormat
	}
	return t, nil
}

func parseStatusFilter(v string) (*string, error) {
	if v == "" {
		return nil, nil
	}

	status := strings.ToUpper(v)
	switch status {
	case StatusDraft, StatusPendingApproval, StatusApproved, StatusProcessed:
		return &status, nil
	}
	return nil, payrollrunerrors.ErrInvalidStatusFilter
}

func amountsByStaff(
	query func(ctx context.Context, companyID string) ([]staff.StaffAmount, error),
	ctx context.Context,
	companyID string,
) (map[uuid.UUID]int64, error) {
	sums, err := query(ctx, companyID)
	if err != nil {
		return nil, err
	}

	byStaff := make(map[uuid.UUID]int64, len(sums))
	for _, sum := range sums {
		byStaff[sum.StaffID] = sum.Total
	}
	return byStaff, nil
}

func newStaffRecord(runID, companyID, staffID uuid.UUID, calc payrollcalc.PayrollCalculation) StaffPayrollRecord {
	return StaffPayrollRecord{
		ID:                  uuid.New(),
		RunID:               runID,
		CompanyID:           companyID,
		StaffID:             staffID,
		GrossPay:            calc.GrossPay,
		BasicPay:            calc.BasicPay,
		TransportAllowance:  calc.TransportAllowance,
		OtherAllowances:     calc.OtherAllowances,
		Paye:                calc.Paye,
		PensionEmployee:     calc.PensionEmployee,
		PensionEmployer:     calc.PensionEmployer,
		MaternityEmployee:   calc.MaternityEmployee,
		MaternityEmployer:   calc.MaternityEmployer,
		MedicalEmployee:     calc.MedicalEmployee,
		MedicalEmployer:     calc.MedicalEmployer,
		NetBeforeLevy:       calc.NetBeforeLevy,
		CommunityHealthLevy: calc.CommunityHealthLevy,
		OtherDeductions:     calc.OtherDeductions,
		FinalNetPay:         calc.FinalNetPay,
	}
}

func coalesceTime(updated, existing *time.Time) *time.Time {
	if updated != nil {
		return updated
	}
	return existing
}

func mapToResponse(run PayrollRun, includeRecords bool) PayrollRunResponse {
	resp := PayrollRunResponse{
		ID:                         run.ID.String(),
		CompanyID:                  run.CompanyID.String(),
		Period:                     run.Period,
		Status:                     run.Status,
		TaxConfigurationID:         run.TaxConfigurationID.String(),
		TotalGrossPay:              run.TotalGrossPay,
		TotalNetPay:                run.TotalNetPay,
		TotalEmployeeTax:           run.TotalEmployeeTax,
		TotalEmployerContributions: run.TotalEmployerContributions,
		StaffCount:                 run.StaffCount,
		CreatedBy:                  run.CreatedBy.String(),
	}

	if run.ApprovedBy != nil {
		v := run.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if run.ProcessedBy != nil {
		v := run.ProcessedBy.String()
		resp.ProcessedBy = &v
	}
	if run.SubmittedAt != nil {
		v := run.SubmittedAt.Format(time.RFC3339)
		resp.SubmittedAt = &v
	}
	if run.ApprovedAt != nil {
		v := run.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	if run.ProcessedAt != nil {
		v := run.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &v
	}

	if includeRecords {
		resp.StaffRecords = make([]StaffPayrollRecordResponse, len(run.StaffRecords))
		for i, record := range run.StaffRecords {
			resp.StaffRecords[i] = StaffPayrollRecordResponse{
				ID:                  record.ID.String(),
				StaffID:             record.StaffID.String(),
				GrossPay:            record.GrossPay,
				BasicPay:            record.BasicPay,
				TransportAllowance:  record.TransportAllowance,
				OtherAllowances:     record.OtherAllowances,
				Paye:                record.Paye,
				PensionEmployee:     record.PensionEmployee,
				PensionEmployer:     record.PensionEmployer,
				MaternityEmployee:   record.MaternityEmployee,
				MaternityEmployer:   record.MaternityEmployer,
				MedicalEmployee:     record.MedicalEmployee,
				MedicalEmployer:     record.MedicalEmployer,
				NetBeforeLevy:       record.NetBeforeLevy,
				CommunityHealthLevy: record.CommunityHealthLevy,
				OtherDeductions:     record.OtherDeductions,
				FinalNetPay:         record.FinalNetPay,
				// Records mirror the run's macro-state.
				Status: run.Status,
			}
		}
	}

	return resp
}
