package schedule

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Statutory limits from the Polish Labor Code. The validators take them as
// fields so a deployment under different rules can adjust them, with these
// as the defaults.
const (
	DailyRestMinHours  = 11.0
	WeeklyRestMinHours = 35.0
	ShiftMaxHours      = 12.0
)

// workingShift is a schedule cell whose hours text parsed as a time range.
type workingShift struct {
	date     time.Time
	interval WorkInterval
}

// workingShiftsByEmployee keeps only parseable cells, grouped per employee
// and sorted chronologically. Day-off codes and unreadable text drop out
// here, so every validator sees the same classification.
func workingShiftsByEmployee(shifts []ShiftRecord) map[uuid.UUID][]workingShift {
	grouped := make(map[uuid.UUID][]workingShift)
	for _, s := range shifts {
		interval, ok := ParseShiftHours(s.Hours)
		if !ok {
			continue
		}
		grouped[s.EmployeeID] = append(grouped[s.EmployeeID], workingShift{date: s.Date, interval: interval})
	}
	for _, ws := range grouped {
		sort.Slice(ws, func(i, j int) bool {
			if !ws[i].date.Equal(ws[j].date) {
				return ws[i].date.Before(ws[j].date)
			}
			return ws[i].interval.Start < ws[j].interval.Start
		})
	}
	return grouped
}

// DailyRestValidator checks the daily rest rule: between the end of one
// shift and the start of the employee's next working shift at least
// MinRestHours must elapse. Free days between two working shifts do not
// break the pair; the elapsed time simply spans them.
type DailyRestValidator struct {
	MinRestHours float64
}

// Validate returns the violated cells. A too-short rest is charged to the
// later shift of the pair.
func (v DailyRestValidator) Validate(shifts []ShiftRecord) []ShiftCell {
	seen := make(map[ShiftCell]struct{})
	for employeeID, ws := range workingShiftsByEmployee(shifts) {
		for i := 0; i+1 < len(ws); i++ {
			rest := RestHours(ws[i].date, ws[i].interval, ws[i+1].date, ws[i+1].interval)
			if rest < v.MinRestHours {
				seen[ShiftCell{EmployeeID: employeeID, Date: ws[i+1].date}] = struct{}{}
			}
		}
	}
	return sortedCells(seen)
}

// WeeklyRestValidator checks the weekly rest rule: every ISO week that has
// working shifts must contain at least one continuous rest of MinRestHours.
// Rest is measured inside the Monday-to-Monday week window: before the first
// shift, between consecutive shifts, and after the last one. A week without
// working shifts trivially satisfies the rule.
//
// ExcludeTrailingPartialWeek skips the month's final ISO week when it runs
// into the next month, for callers whose qualifying rest may legitimately
// fall on the far side of the month boundary.
type WeeklyRestValidator struct {
	MinRestHours               float64
	Month                      int
	Year                       int
	ExcludeTrailingPartialWeek bool
}

// Validate returns employee -> ascending ISO week numbers without a
// sufficient continuous rest.
func (v WeeklyRestValidator) Validate(shifts []ShiftRecord) map[uuid.UUID][]int {
	skipWeek := 0
	if v.ExcludeTrailingPartialWeek {
		skipWeek = trailingPartialWeek(v.Year, v.Month)
	}

	conflicts := make(map[uuid.UUID][]int)
	for employeeID, ws := range workingShiftsByEmployee(shifts) {
		weeks := make(map[int][]workingShift)
		for _, s := range ws {
			_, week := s.date.ISOWeek()
			weeks[week] = append(weeks[week], s)
		}
		for week, weekShifts := range weeks {
			if week == skipWeek {
				continue
			}
			if !v.hasContinuousRest(weekShifts) {
				conflicts[employeeID] = append(conflicts[employeeID], week)
			}
		}
		sort.Ints(conflicts[employeeID])
	}
	return conflicts
}

func (v WeeklyRestValidator) hasContinuousRest(weekShifts []workingShift) bool {
	if len(weekShifts) == 0 {
		return true
	}

	weekStart := mondayOf(weekShifts[0].date)
	weekEnd := weekStart.AddDate(0, 0, 7)

	type span struct{ start, end time.Time }
	spans := make([]span, 0, len(weekShifts))
	for _, s := range weekShifts {
		start, end := s.interval.Bounds(s.date)
		spans = append(spans, span{start: start, end: end})
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start.Before(spans[j].start) })

	if spans[0].start.Sub(weekStart).Hours() >= v.MinRestHours {
		return true
	}
	for i := 0; i+1 < len(spans); i++ {
		if spans[i+1].start.Sub(spans[i].end).Hours() >= v.MinRestHours {
			return true
		}
	}
	return weekEnd.Sub(spans[len(spans)-1].end).Hours() >= v.MinRestHours
}

// mondayOf returns midnight of the Monday opening d's ISO week.
func mondayOf(d time.Time) time.Time {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// trailingPartialWeek returns the ISO week number of the month's last day if
// that week extends into the following month, else 0.
func trailingPartialWeek(year, month int) int {
	lastDay := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	if lastDay.Weekday() == time.Sunday {
		return 0
	}
	_, week := lastDay.ISOWeek()
	return week
}

// MaxShiftValidator checks the shift length rule: a single shift, measured
// end minus start, must not exceed MaxHours. Exactly MaxHours is allowed.
type MaxShiftValidator struct {
	MaxHours float64
}

// Validate returns the cells whose shift is too long. Overnight shifts are
// measured across midnight, not as a negative difference.
func (v MaxShiftValidator) Validate(shifts []ShiftRecord) []ShiftCell {
	seen := make(map[ShiftCell]struct{})
	for _, s := range shifts {
		interval, ok := ParseShiftHours(s.Hours)
		if !ok {
			continue
		}
		if interval.Hours() > v.MaxHours {
			seen[ShiftCell{EmployeeID: s.EmployeeID, Date: s.Date}] = struct{}{}
		}
	}
	return sortedCells(seen)
}

// sortedCells flattens a cell set into a deterministic slice: by date, then
// employee id. Equal inputs always produce equal reports.
func sortedCells(seen map[ShiftCell]struct{}) []ShiftCell {
	cells := make([]ShiftCell, 0, len(seen))
	for c := range seen {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if !cells[i].Date.Equal(cells[j].Date) {
			return cells[i].Date.Before(cells[j].Date)
		}
		return cells[i].EmployeeID.String() < cells[j].EmployeeID.String()
	})
	return cells
}
