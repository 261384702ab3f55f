package employee

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Statutory annual vacation allotment: 26 days once the combined education
// and employment experience reaches 10 years, 20 days below that.
const (
	experienceThresholdYears = 10
	vacationDaysBase         = 20
	vacationDaysExtended     = 26
	hoursPerVacationDay      = 8
)

// EducationExperience maps an education code to the years of work
// experience it counts for. It is injected rather than baked in so a
// deployment under different rules can swap the table without code changes.
type EducationExperience map[string]int

// DefaultEducationExperience returns the statutory table. Unknown codes
// count for zero years.
func DefaultEducationExperience() EducationExperience {
	return EducationExperience{
		"basic_vocational":               3,
		"secondary_vocational":           5,
		"secondary_vocational_graduates": 5,
		"secondary_general":              4,
		"post_secondary":                 6,
		"higher_education":               8,
	}
}

// CalculateVacationRequest is the intake collaborator's input at employee
// creation. BirthDate is accepted but does not affect the thresholds;
// age-based first-job allowances are an open domain question.
type CalculateVacationRequest struct {
	BirthDate         string
	AgreementType     string
	SchoolType        string
	PreviousEmployers []PreviousEmployment
}

type VacationService interface {
	Calculate(req CalculateVacationRequest) VacationEntitlement
	WorkExperienceYears(schoolType string, employers []PreviousEmployment) int
}

type vacationService struct {
	education EducationExperience
	logger    *zap.Logger
}

func NewVacationService(education EducationExperience, logger ...*zap.Logger) VacationService {
	l := zap.L().Named("employee.vacation")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.vacation")
	}
	if education == nil {
		education = DefaultEducationExperience()
	}
	return &vacationService{education: education, logger: l}
}

// Calculate derives the annual entitlement. Mandate-type employees accrue
// nothing; for permanent employees the allotment follows the combined
// experience. The result always has remaining and used at zero.
func (s *vacationService) Calculate(req CalculateVacationRequest) VacationEntitlement {
	if req.AgreementType != AgreementPermanent {
		s.logger.Debug("vacation calculation skipped for non-permanent agreement",
			zap.String("agreement_type", req.AgreementType),
		)
		return VacationEntitlement{}
	}

	experience := s.WorkExperienceYears(req.SchoolType, req.PreviousEmployers)

	days := int64(vacationDaysBase)
	if experience >= experienceThresholdYears {
		days = vacationDaysExtended
	}
	s.logger.Debug("vacation calculated",
		zap.Int("total_experience_years", experience),
		zap.Int64("vacation_days", days),
	)

	return VacationEntitlement{
		CurrentDays:  decimal.NewFromInt(days),
		CurrentHours: decimal.NewFromInt(days * hoursPerVacationDay),
	}
}

// WorkExperienceYears sums the education years with the prior-employment
// years. Each employment interval contributes its whole years plus whole
// months as a fraction; the sum is truncated to whole years only once, after
// all intervals are added. Intervals that fail to parse, or run backwards,
// are skipped so one bad row never aborts the calculation.
func (s *vacationService) WorkExperienceYears(schoolType string, employers []PreviousEmployment) int {
	educationYears := s.education[schoolType]

	var employmentYears float64
	for _, e := range employers {
		start, err := parseIntakeDate(e.StartDate)
		if err != nil {
			s.logger.Warn("skipping prior employment with bad start date",
				zap.String("employer", e.EmployerName),
				zap.String("start_date", e.StartDate),
			)
			continue
		}
		end, err := parseIntakeDate(e.EndDate)
		if err != nil {
			s.logger.Warn("skipping prior employment with bad end date",
				zap.String("employer", e.EmployerName),
				zap.String("end_date", e.EndDate),
			)
			continue
		}
		if end.Before(start) {
			s.logger.Warn("skipping prior employment with inverted dates",
				zap.String("employer", e.EmployerName),
			)
			continue
		}

		years, months := elapsedYearsMonths(start, end)
		employmentYears += float64(years) + float64(months)/12
	}

	return educationYears + int(employmentYears)
}

// parseIntakeDate reads "YYYY-MM-DD", tolerating a trailing "T..." time part
// as intake forms ship ISO timestamps for plain dates.
func parseIntakeDate(v string) (time.Time, error) {
	if i := strings.IndexByte(v, 'T'); i >= 0 {
		v = v[:i]
	}
	return time.Parse("2006-01-02", v)
}

// elapsedYearsMonths returns the whole years and remaining whole months
// between two dates. A final month is only counted once complete: days
// within a month are ignored.
func elapsedYearsMonths(start, end time.Time) (years, months int) {
	total := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		total--
	}
	if total < 0 {
		total = 0
	}
	return total / 12, total % 12
}
