package punch

import (
	"fmt"

	"github.com/pauldemian98/portal-rh/internal/shared/timeutil"
)

type RecordPunchRequest struct {
	// Wall-clock instant from the client, without offset marker, e.g.
	// "2024-09-17T09:00:00.000". Interpreted as already-UTC.
	Timestamp string `json:"timestamp" binding:"required"`
}

type PunchDayResponse struct {
	ID   string  `json:"id"`
	Day  string  `json:"data"`
	In1  *string `json:"entrada1,omitempty"`
	Out1 *string `json:"saida1,omitempty"`
	In2  *string `json:"entrada2,omitempty"`
	Out2 *string `json:"saida2,omitempty"`
}

// PunchEventResponse is one populated slot rendered for display or
// export. Wire keys are what the web dashboard expects.
type PunchEventResponse struct {
	ID   string `json:"id"`
	Date string `json:"data"`
	Time string `json:"hora"`
	Type string `json:"tipo"`
}

func mapToDayResponse(p PunchDay) PunchDayResponse {
	clock := func(t *PunchDay, slot string) *string {
		for _, ev := range t.populatedSlots() {
			if ev.Slot == slot {
				v := timeutil.FormatClock(ev.At)
				return &v
			}
		}
		return nil
	}

	return PunchDayResponse{
		ID:   p.ID.String(),
		Day:  timeutil.FormatDay(p.Day),
		In1:  clock(&p, SlotIn1),
		Out1: clock(&p, SlotOut1),
		In2:  clock(&p, SlotIn2),
		Out2: clock(&p, SlotOut2),
	}
}

// expandEvents flattens a row into labeled events. Event ids are
// derived from (row id, slot position) so they stay stable across
// reads.
func expandEvents(p PunchDay) []PunchEventResponse {
	date := timeutil.FormatDay(p.Day)

	var out []PunchEventResponse
	for _, ev := range p.populatedSlots() {
		out = append(out, PunchEventResponse{
			ID:   fmt.Sprintf("%s-%d", p.ID, ev.Index),
			Date: date,
			Time: timeutil.FormatClock(ev.At),
			Type: slotLabels[ev.Slot],
		})
	}
	return out
}
