package schedule

import (
	"context"

	"github.com/chalbrik/planner/internal/employee"
	scheduleerrors "github.com/chalbrik/planner/internal/schedule/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ShiftSource supplies the shift snapshot for one location and month. The
// engine never queries storage itself; persistence sits behind this contract.
//
//go:generate mockgen -source=conflict_service.go -destination=mock/conflict_service_mock.go -package=mock
type ShiftSource interface {
	FindByLocationAndMonth(ctx context.Context, locationID uuid.UUID, month, year int) ([]ShiftRecord, error)
}

// EmployeeSource resolves the employees appearing in a shift snapshot.
type EmployeeSource interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]employee.Employee, error)
}

type Service interface {
	DetectConflicts(ctx context.Context, locationID string, month, year int) (ConflictReport, error)
}

// DetectOptions carries the boundary policies a caller may vary per run.
type DetectOptions struct {
	// ExcludeTrailingPartialWeek skips the weekly-rest check for the
	// month's final ISO week when that week extends into the next month.
	ExcludeTrailingPartialWeek bool
}

type service struct {
	shifts    ShiftSource
	employees EmployeeSource
	opts      DetectOptions
	logger    *zap.Logger
}

var validate = validator.New()

func NewService(shifts ShiftSource, employees EmployeeSource, opts DetectOptions, logger ...*zap.Logger) Service {
	l := zap.L().Named("schedule.conflicts")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.conflicts")
	}
	return &service{shifts: shifts, employees: employees, opts: opts, logger: l}
}

// detectionPeriod is the caller-supplied calendar window. Anything outside
// these bounds is caller misuse, not data noise.
type detectionPeriod struct {
	Month int `validate:"min=1,max=12"`
	Year  int `validate:"min=1"`
}

func (s *service) DetectConflicts(ctx context.Context, locationID string, month, year int) (ConflictReport, error) {
	s.logger.Debug("detect conflicts requested",
		zap.String("location_id", locationID),
		zap.Int("month", month),
		zap.Int("year", year),
	)

	locationUUID, err := uuid.Parse(locationID)
	if err != nil {
		s.logger.Warn("detect conflicts invalid location id", zap.String("location_id", locationID))
		return ConflictReport{}, scheduleerrors.ErrInvalidLocationID
	}
	if err := validate.Struct(detectionPeriod{Month: month, Year: year}); err != nil {
		s.logger.Warn("detect conflicts invalid period",
			zap.Int("month", month),
			zap.Int("year", year),
			zap.Error(err),
		)
		return ConflictReport{}, scheduleerrors.ErrInvalidPeriod
	}

	shifts, err := s.shifts.FindByLocationAndMonth(ctx, locationUUID, month, year)
	if err != nil {
		s.logger.Error("detect conflicts load shifts failed", zap.Error(err))
		return ConflictReport{}, err
	}

	employees, err := s.employees.FindByIDs(ctx, distinctEmployeeIDs(shifts))
	if err != nil {
		s.logger.Error("detect conflicts load employees failed", zap.Error(err))
		return ConflictReport{}, err
	}

	report := DetectAll(shifts, employees, month, year, s.opts)
	s.logger.Info("detect conflicts success",
		zap.String("location_id", locationID),
		zap.Int("shifts", len(shifts)),
		zap.Int("daily_rest_conflicts", len(report.DailyRest)),
		zap.Int("weekly_rest_employees", len(report.WeeklyRest)),
		zap.Int("max_shift_conflicts", len(report.MaxShift)),
	)
	return report, nil
}

// DetectAll runs the three rule validators over one month's snapshot and
// merges their results. Shifts outside the month or belonging to employees
// who are absent from the eligible list, or not on a permanent contract,
// are dropped first: mandate-type employees are never flagged, whatever
// their shift pattern.
func DetectAll(shifts []ShiftRecord, employees []employee.Employee, month, year int, opts DetectOptions) ConflictReport {
	eligible := make(map[uuid.UUID]struct{}, len(employees))
	for _, e := range employees {
		if e.AgreementType == employee.AgreementPermanent {
			eligible[e.ID] = struct{}{}
		}
	}

	filtered := make([]ShiftRecord, 0, len(shifts))
	for _, s := range shifts {
		if int(s.Date.Month()) != month || s.Date.Year() != year {
			continue
		}
		if _, ok := eligible[s.EmployeeID]; !ok {
			continue
		}
		filtered = append(filtered, s)
	}

	daily := DailyRestValidator{MinRestHours: DailyRestMinHours}
	weekly := WeeklyRestValidator{
		MinRestHours:               WeeklyRestMinHours,
		Month:                      month,
		Year:                       year,
		ExcludeTrailingPartialWeek: opts.ExcludeTrailingPartialWeek,
	}
	maxShift := MaxShiftValidator{MaxHours: ShiftMaxHours}

	return ConflictReport{
		DailyRest:  daily.Validate(filtered),
		WeeklyRest: weekly.Validate(filtered),
		MaxShift:   maxShift.Validate(filtered),
	}
}

func distinctEmployeeIDs(shifts []ShiftRecord) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(shifts))
	ids := make([]uuid.UUID, 0, len(shifts))
	for _, s := range shifts {
		if _, ok := seen[s.EmployeeID]; ok {
			continue
		}
		seen[s.EmployeeID] = struct{}{}
		ids = append(ids, s.EmployeeID)
	}
	return ids
}
