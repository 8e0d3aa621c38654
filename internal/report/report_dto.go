package report

import (
	"github.com/pauldemian98/portal-rh/internal/punch"
)

// DailySummary groups one day's events with the worked-hours
// approximation the dashboard shows.
type DailySummary struct {
	Date        string                     `json:"data"`
	Events      []punch.PunchEventResponse `json:"pontos"`
	WorkedHours int                        `json:"horas_trabalhadas"`
}

// EmployeeReport is one employee's summaries inside the HR-wide view.
type EmployeeReport struct {
	EmployeeID string         `json:"employee_id"`
	Name       string         `json:"nome"`
	Days       []DailySummary `json:"dias"`
}

// workedHours is a coarse placeholder, not an elapsed-time
// computation: min(N*2, 8) for N >= 2 punches, else 0. Kept exactly as
// the dashboard has always computed it.
func workedHours(eventCount int) int {
	if eventCount < 2 {
		return 0
	}
	h := eventCount * 2
	if h > 8 {
		h = 8
	}
	return h
}
