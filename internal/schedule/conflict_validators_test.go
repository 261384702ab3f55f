package schedule_test

import (
	"testing"
	"time"

	"github.com/chalbrik/planner/internal/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func shift(employeeID uuid.UUID, date time.Time, hours string) schedule.ShiftRecord {
	return schedule.ShiftRecord{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Date:       date,
		Hours:      hours,
	}
}

func TestDailyRestValidator(t *testing.T) {
	v := schedule.DailyRestValidator{MinRestHours: schedule.DailyRestMinHours}
	employeeID := uuid.New()

	t.Run("sixteen hours between night shifts is fine", func(t *testing.T) {
		cells := v.Validate([]schedule.ShiftRecord{
			shift(employeeID, day(t, "2025-01-01"), "22:00-06:00"),
			shift(employeeID, day(t, "2025-01-02"), "22:00-06:00"),
		})
		assert.Empty(t, cells)
	})

	t.Run("overlap with the previous night shift marks the later day", func(t *testing.T) {
		cells := v.Validate([]schedule.ShiftRecord{
			shift(employeeID, day(t, "2025-01-01"), "22:00-06:00"),
			shift(employeeID, day(t, "2025-01-02"), "04:00-12:00"),
		})
		assert.Equal(t, []schedule.ShiftCell{
			{EmployeeID: employeeID, Date: day(t, "2025-01-02")},
		}, cells)
	})

	t.Run("one hour after an overnight shift is a violation", func(t *testing.T) {
		cells := v.Validate([]schedule.ShiftRecord{
			shift(employeeID, day(t, "2025-01-01"), "20:00-07:00"),
			shift(employeeID, day(t, "2025-01-02"), "08:00-16:00"),
		})
		assert.Equal(t, []schedule.ShiftCell{
			{EmployeeID: employeeID, Date: day(t, "2025-01-02")},
		}, cells)
	})

	t.Run("day-off codes do not break the pairing", func(t *testing.T) {
		// A free day in between means the rest spans it; no violation here.
		cells := v.Validate([]schedule.ShiftRecord{
			shift(employeeID, day(t, "2025-01-01"), "8:00-16:00"),
			shift(employeeID, day(t, "2025-01-02"), "dwh"),
			shift(employeeID, day(t, "2025-01-03"), "9:00-17:00"),
		})
		assert.Empty(t, cells)
	})

	t.Run("employees are checked independently", func(t *testing.T) {
		other := uuid.New()
		cells := v.Validate([]schedule.ShiftRecord{
			shift(employeeID, day(t, "2025-01-01"), "22:00-06:00"),
			shift(other, day(t, "2025-01-02"), "04:00-12:00"),
		})
		assert.Empty(t, cells)
	})
}

func TestWeeklyRestValidator(t *testing.T) {
	newValidator := func(month, year int, excludeTrailing bool) schedule.WeeklyRestValidator {
		return schedule.WeeklyRestValidator{
			MinRestHours:               schedule.WeeklyRestMinHours,
			Month:                      month,
			Year:                       year,
			ExcludeTrailingPartialWeek: excludeTrailing,
		}
	}
	employeeID := uuid.New()

	t.Run("a single short shift leaves the week satisfied", func(t *testing.T) {
		conflicts := newValidator(6, 2025, false).Validate([]schedule.ShiftRecord{
			shift(employeeID, day(t, "2025-06-04"), "8:00-16:00"),
		})
		assert.Empty(t, conflicts)
	})

	t.Run("a week of day-off codes is a free week", func(t *testing.T) {
		conflicts := newValidator(6, 2025, false).Validate([]schedule.ShiftRecord{
			shift(employeeID, day(t, "2025-06-02"), "dwh"),
			shift(employeeID, day(t, "2025-06-03"), "dwh"),
			shift(employeeID, day(t, "2025-06-04"), "dwn"),
		})
		assert.Empty(t, conflicts)
	})

	t.Run("a full week of long shifts has no 35h rest", func(t *testing.T) {
		// Mon 2025-06-02 .. Sun 2025-06-08, 12h every day: the longest gap
		// is the 12h overnight break.
		var shifts []schedule.ShiftRecord
		for d := 2; d <= 8; d++ {
			shifts = append(shifts, shift(employeeID, time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC), "8:00-20:00"))
		}
		conflicts := newValidator(6, 2025, false).Validate(shifts)

		_, week := day(t, "2025-06-02").ISOWeek()
		assert.Equal(t, map[uuid.UUID][]int{employeeID: {week}}, conflicts)
	})

	t.Run("a free weekend satisfies the week", func(t *testing.T) {
		// Mon..Fri 12h shifts, Sat+Sun free: Fri 20:00 to Mon 00:00 is 52h.
		var shifts []schedule.ShiftRecord
		for d := 2; d <= 6; d++ {
			shifts = append(shifts, shift(employeeID, time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC), "8:00-20:00"))
		}
		conflicts := newValidator(6, 2025, false).Validate(shifts)
		assert.Empty(t, conflicts)
	})

	t.Run("trailing partial week policy", func(t *testing.T) {
		// May 2025 ends on Saturday the 31st. Working Mon the 26th through
		// Sat the 31st leaves only 28h before the next Monday.
		var shifts []schedule.ShiftRecord
		for d := 26; d <= 31; d++ {
			shifts = append(shifts, shift(employeeID, time.Date(2025, 5, d, 0, 0, 0, 0, time.UTC), "8:00-20:00"))
		}
		_, week := time.Date(2025, 5, 26, 0, 0, 0, 0, time.UTC).ISOWeek()

		included := newValidator(5, 2025, false).Validate(shifts)
		assert.Equal(t, map[uuid.UUID][]int{employeeID: {week}}, included)

		excluded := newValidator(5, 2025, true).Validate(shifts)
		assert.Empty(t, excluded)
	})

	t.Run("exclusion leaves complete weeks checked", func(t *testing.T) {
		// The violating week ends inside May, so the trailing-week policy
		// must not touch it.
		var shifts []schedule.ShiftRecord
		for d := 5; d <= 11; d++ {
			shifts = append(shifts, shift(employeeID, time.Date(2025, 5, d, 0, 0, 0, 0, time.UTC), "8:00-20:00"))
		}
		_, week := time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC).ISOWeek()

		conflicts := newValidator(5, 2025, true).Validate(shifts)
		assert.Equal(t, map[uuid.UUID][]int{employeeID: {week}}, conflicts)
	})

	t.Run("multiple bad weeks are all reported", func(t *testing.T) {
		var shifts []schedule.ShiftRecord
		for d := 2; d <= 15; d++ {
			shifts = append(shifts, shift(employeeID, time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC), "8:00-20:00"))
		}
		conflicts := newValidator(6, 2025, false).Validate(shifts)

		_, firstWeek := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC).ISOWeek()
		_, secondWeek := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC).ISOWeek()
		assert.Equal(t, map[uuid.UUID][]int{employeeID: {firstWeek, secondWeek}}, conflicts)
	})
}

func TestMaxShiftValidator(t *testing.T) {
	v := schedule.MaxShiftValidator{MaxHours: schedule.ShiftMaxHours}
	employeeID := uuid.New()

	t.Run("thirteen hours is flagged, exactly twelve is not", func(t *testing.T) {
		cells := v.Validate([]schedule.ShiftRecord{
			shift(employeeID, day(t, "2025-01-07"), "7:00-20:00"),
			shift(employeeID, day(t, "2025-01-08"), "7:00-19:00"),
		})
		assert.Equal(t, []schedule.ShiftCell{
			{EmployeeID: employeeID, Date: day(t, "2025-01-07")},
		}, cells)
	})

	t.Run("overnight shifts are measured across midnight", func(t *testing.T) {
		cells := v.Validate([]schedule.ShiftRecord{
			shift(employeeID, day(t, "2025-01-07"), "20:00-09:00"), // 13h
			shift(employeeID, day(t, "2025-01-08"), "22:00-06:00"), // 8h
		})
		assert.Equal(t, []schedule.ShiftCell{
			{EmployeeID: employeeID, Date: day(t, "2025-01-07")},
		}, cells)
	})

	t.Run("day-off codes are ignored", func(t *testing.T) {
		cells := v.Validate([]schedule.ShiftRecord{
			shift(employeeID, day(t, "2025-01-07"), "dwh"),
		})
		assert.Empty(t, cells)
	})
}
