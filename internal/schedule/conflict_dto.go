package schedule

import "fmt"

// ConflictReportResponse is the report in the shape the schedule grid
// consumes: daily-rest and max-shift conflicts as "<employee-id>-YYYY-MM-DD"
// cell keys, weekly-rest conflicts as employee id -> ISO week numbers.
type ConflictReportResponse struct {
	Rest11h   []string         `json:"rest_11h"`
	Rest35h   map[string][]int `json:"rest_35h"`
	Exceed12h []string         `json:"exceed_12h"`
}

func MapToResponse(r ConflictReport) ConflictReportResponse {
	resp := ConflictReportResponse{
		Rest11h:   make([]string, len(r.DailyRest)),
		Rest35h:   make(map[string][]int, len(r.WeeklyRest)),
		Exceed12h: make([]string, len(r.MaxShift)),
	}
	for i, c := range r.DailyRest {
		resp.Rest11h[i] = cellKey(c)
	}
	for employeeID, weeks := range r.WeeklyRest {
		resp.Rest35h[employeeID.String()] = weeks
	}
	for i, c := range r.MaxShift {
		resp.Exceed12h[i] = cellKey(c)
	}
	return resp
}

func cellKey(c ShiftCell) string {
	return fmt.Sprintf("%s-%s", c.EmployeeID, c.Date.Format("2006-01-02"))
}
