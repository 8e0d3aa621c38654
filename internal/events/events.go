package events

const PunchRecordedTopic = "punch.recorded"

// PunchRecordedEvent is appended to the outbox in the same transaction
// as the ledger write and published asynchronously by cmd/worker.
type PunchRecordedEvent struct {
	EmployeeID string `json:"employee_id"`
	PunchDayID string `json:"punch_day_id"`
	Day        string `json:"day"`
	Slot       string `json:"slot"`
	Time       string `json:"time"`
}
