package schedule

import (
	"regexp"
	"time"
)

const minutesPerDay = 24 * 60

// shiftHoursPattern matches the working-shift form of the free-text hours
// field: "H:MM-H:MM" with 24h hours and zero-padded minutes. Everything else
// in that column (day-off codes, blanks, typos) means "not working".
var shiftHoursPattern = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)-([01]?\d|2[0-3]):([0-5]\d)$`)

// WorkInterval is a shift within one day, in minutes of day. Both bounds are
// in [0, 1440); End < Start means the shift runs over midnight and ends on
// the following calendar day.
type WorkInterval struct {
	Start int
	End   int
}

// ParseShiftHours classifies a schedule cell's hours text. It returns the
// parsed interval and true for a time range, or a zero interval and false for
// anything else. Unrecognized text is a rest day, never an error: schedules
// routinely carry free-text markers for days off.
func ParseShiftHours(hours string) (WorkInterval, bool) {
	m := shiftHoursPattern.FindStringSubmatch(hours)
	if m == nil {
		return WorkInterval{}, false
	}
	return WorkInterval{
		Start: atoi2(m[1])*60 + atoi2(m[2]),
		End:   atoi2(m[3])*60 + atoi2(m[4]),
	}, true
}

// atoi2 converts the 1-2 digit strings the pattern guarantees.
func atoi2(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

// Overnight reports whether the shift crosses midnight.
func (w WorkInterval) Overnight() bool {
	return w.End < w.Start
}

// Minutes returns the shift length, counting overnight shifts forward across
// midnight instead of producing a negative difference.
func (w WorkInterval) Minutes() int {
	if w.Overnight() {
		return (minutesPerDay - w.Start) + w.End
	}
	return w.End - w.Start
}

// Hours returns the shift length in hours.
func (w WorkInterval) Hours() float64 {
	return float64(w.Minutes()) / 60
}

// Bounds resolves the interval against its calendar date into absolute
// instants. For an overnight shift the end instant falls on the next day.
func (w WorkInterval) Bounds(date time.Time) (start, end time.Time) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	start = day.Add(time.Duration(w.Start) * time.Minute)
	end = day.Add(time.Duration(w.End) * time.Minute)
	if w.Overnight() {
		end = end.AddDate(0, 0, 1)
	}
	return start, end
}

// RestHours returns the elapsed rest between the end of shift a and the start
// of the chronologically later shift b. The result is negative when the
// shifts overlap; rule checks treat that the same as too little rest.
func RestHours(dateA time.Time, a WorkInterval, dateB time.Time, b WorkInterval) float64 {
	_, endA := a.Bounds(dateA)
	startB, _ := b.Bounds(dateB)
	return startB.Sub(endA).Hours()
}
