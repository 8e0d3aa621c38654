package punch

import (
	"time"

	"github.com/google/uuid"
)

// Slot column names, in the fixed fill order of the ledger.
const (
	SlotIn1  = "in1"
	SlotOut1 = "out1"
	SlotIn2  = "in2"
	SlotOut2 = "out2"
)

var slotLabels = map[string]string{
	SlotIn1:  "Entrada 1",
	SlotOut1: "Saída 1",
	SlotIn2:  "Entrada 2",
	SlotOut2: "Saída 2",
}

// PunchDay is the ledger row: at most one per (employee, day), with
// four ordered timestamp slots filled strictly left to right. Day is a
// UTC calendar date; the slots store the raw client instants.
type PunchDay struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_punch_day_employee_day"`
	Day        time.Time  `gorm:"column:day;type:date;not null;uniqueIndex:uq_punch_day_employee_day"`
	In1        *time.Time `gorm:"column:in1;type:timestamptz"`
	Out1       *time.Time `gorm:"column:out1;type:timestamptz"`
	In2        *time.Time `gorm:"column:in2;type:timestamptz"`
	Out2       *time.Time `gorm:"column:out2;type:timestamptz"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (PunchDay) TableName() string {
	return "punch_days"
}

// NextEmptySlot returns the first unset slot after in1, or "" when the
// day is fully punched. in1 is always set at creation, so the scan
// starts at out1.
func (p *PunchDay) NextEmptySlot() string {
	switch {
	case p.Out1 == nil:
		return SlotOut1
	case p.In2 == nil:
		return SlotIn2
	case p.Out2 == nil:
		return SlotOut2
	default:
		return ""
	}
}

// applySlot mirrors a persisted slot assignment on the in-memory row.
func (p *PunchDay) applySlot(slot string, t time.Time) {
	switch slot {
	case SlotIn1:
		p.In1 = &t
	case SlotOut1:
		p.Out1 = &t
	case SlotIn2:
		p.In2 = &t
	case SlotOut2:
		p.Out2 = &t
	}
}

// slotEvent is one populated slot paired with its 1-based position.
type slotEvent struct {
	Index int
	Slot  string
	At    time.Time
}

// populatedSlots expands the row into its events in fixed slot order.
func (p *PunchDay) populatedSlots() []slotEvent {
	ordered := []struct {
		slot string
		at   *time.Time
	}{
		{SlotIn1, p.In1},
		{SlotOut1, p.Out1},
		{SlotIn2, p.In2},
		{SlotOut2, p.Out2},
	}

	var out []slotEvent
	for i, s := range ordered {
		if s.at != nil {
			out = append(out, slotEvent{Index: i + 1, Slot: s.slot, At: *s.at})
		}
	}
	return out
}
