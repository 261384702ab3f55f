package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Agreement kinds. Only permanent-contract employees fall under the
// statutory rest rules and accrue statutory vacation; mandate-type
// employees are exempt from both.
const (
	AgreementPermanent = "permanent"
	AgreementContract  = "contract"
)

type Employee struct {
	ID            uuid.UUID
	FullName      string
	AgreementType string
}

// VacationEntitlement is the annual paid-leave allotment derived from an
// employee's education and prior employment. On creation the current
// quantities hold the freshly computed allotment and remaining/used are
// zero; later bookkeeping belongs to the record's owner, not this engine.
type VacationEntitlement struct {
	CurrentDays    decimal.Decimal
	CurrentHours   decimal.Decimal
	RemainingDays  decimal.Decimal
	RemainingHours decimal.Decimal
	UsedDays       decimal.Decimal
	UsedHours      decimal.Decimal
}

// PreviousEmployment is one prior-employer interval from the intake form.
// Dates arrive as strings ("YYYY-MM-DD", possibly with a trailing time
// part); malformed entries are skipped during calculation, not rejected.
type PreviousEmployment struct {
	EmployerName string
	StartDate    string
	EndDate      string
}

// School is the education record backing the experience lookup.
type School struct {
	ID         uuid.UUID
	EmployeeID uuid.UUID
	SchoolType string
	SchoolName string
	Graduated  *time.Time
}
