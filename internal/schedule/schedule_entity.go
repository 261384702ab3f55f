package schedule

import (
	"time"

	"github.com/google/uuid"
)

// ShiftRecord is one cell of a location's monthly schedule grid, as supplied
// by the persistence collaborator. Hours is free text: either a time range
// like "8:00-16:00" or a short day-off code ("dwh", "dwn", ...). The engine
// never mutates records, it only reads the snapshot handed to it.
type ShiftRecord struct {
	ID         uuid.UUID
	EmployeeID uuid.UUID
	LocationID uuid.UUID
	Date       time.Time
	Hours      string
}

// ShiftCell identifies one (employee, date) cell of the grid. Reports use it
// to point at the exact cells that violate a rule.
type ShiftCell struct {
	EmployeeID uuid.UUID
	Date       time.Time
}

// ConflictReport is the merged result of one detection run. DailyRest and
// MaxShift are deduplicated and sorted by date then employee; WeeklyRest maps
// an employee to the ascending ISO week numbers that lack a 35h rest.
type ConflictReport struct {
	DailyRest  []ShiftCell
	WeeklyRest map[uuid.UUID][]int
	MaxShift   []ShiftCell
}
