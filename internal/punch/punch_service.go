package punch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/pauldemian98/portal-rh/internal/events"
	"github.com/pauldemian98/portal-rh/internal/messaging/kafka"
	puncherrors "github.com/pauldemian98/portal-rh/internal/punch/errors"
	"github.com/pauldemian98/portal-rh/internal/shared/apperror"
	"github.com/pauldemian98/portal-rh/internal/shared/contextutil"
	"github.com/pauldemian98/portal-rh/internal/shared/timeutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// errLostRace marks a transaction that lost a concurrent write race:
// duplicate-key on create, or a slot guard that matched no row. The
// operation is retried once before surfacing a conflict.
var errLostRace = errors.New("punch: lost write race")

//go:generate mockgen -source=punch_service.go -destination=mock/punch_service_mock.go -package=mock
type Service interface {
	RecordPunch(ctx context.Context, employeeID string, req RecordPunchRequest) (PunchDayResponse, bool, error)
	ListEvents(ctx context.Context, employeeID, start, end string) ([]PunchEventResponse, error)
	ListEventsForToday(ctx context.Context, employeeID string) ([]PunchEventResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
}

func NewService(db *gorm.DB, repo Repository, outbox kafka.OutboxRepository) Service {
	return &service{db: db, repo: repo, outbox: outbox}
}

// RecordPunch creates or advances the employee's ledger row for the
// event's UTC day. The bool result reports whether a new row was
// created (first punch of the day) or an existing one advanced.
func (s *service) RecordPunch(ctx context.Context, employeeID string, req RecordPunchRequest) (PunchDayResponse, bool, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return PunchDayResponse{}, false, apperror.ErrUnauthorized
	}

	ts, err := timeutil.ParseClientTimestamp(req.Timestamp)
	if err != nil {
		return PunchDayResponse{}, false, puncherrors.ErrInvalidTimestamp
	}
	day := timeutil.DayKey(ts)

	resp, created, err := s.recordOnce(ctx, empID, day, ts)
	if errors.Is(err, errLostRace) {
		// Lost a race; the row now exists (or the slot advanced), so a
		// single retry resolves against current state.
		resp, created, err = s.recordOnce(ctx, empID, day, ts)
		if errors.Is(err, errLostRace) {
			return PunchDayResponse{}, false, puncherrors.ErrPunchConflict
		}
	}
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return PunchDayResponse{}, false, err
		}
		contextutil.GetLogger(ctx, zap.L()).Error("record punch failed", zap.Error(err))
		return PunchDayResponse{}, false, apperror.Wrap(err, apperror.CodeInternalError, "Falha ao registrar o ponto", http.StatusInternalServerError)
	}
	return resp, created, nil
}

func (s *service) recordOnce(ctx context.Context, empID uuid.UUID, day, ts time.Time) (PunchDayResponse, bool, error) {
	var (
		row     *PunchDay
		slot    string
		created bool
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		existing, err := qtx.FindByEmployeeAndDayForUpdate(ctx, empID, day)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			row = &PunchDay{
				ID:         uuid.New(),
				EmployeeID: empID,
				Day:        day,
				In1:        &ts,
			}
			if err := qtx.Create(ctx, row); err != nil {
				if isUniqueViolation(err) {
					return errLostRace
				}
				return err
			}
			slot = SlotIn1
			created = true

		case err != nil:
			return err

		default:
			row = existing
			slot = row.NextEmptySlot()
			if slot == "" {
				return puncherrors.ErrAllSlotsFilled
			}

			ok, err := qtx.SetSlot(ctx, row.ID, slot, ts)
			if err != nil {
				return err
			}
			if !ok {
				return errLostRace
			}
			row.applySlot(slot, ts)
		}

		return s.appendOutbox(ctx, tx, row, slot, ts)
	})
	if err != nil {
		return PunchDayResponse{}, false, err
	}
	return mapToDayResponse(*row), created, nil
}

// appendOutbox records the punch event in the same transaction as the
// ledger write so it is published iff the punch committed.
func (s *service) appendOutbox(ctx context.Context, tx *gorm.DB, row *PunchDay, slot string, ts time.Time) error {
	payload, err := json.Marshal(events.PunchRecordedEvent{
		EmployeeID: row.EmployeeID.String(),
		PunchDayID: row.ID.String(),
		Day:        timeutil.FormatDay(row.Day),
		Slot:       slot,
		Time:       timeutil.FormatClock(ts),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "punch_day",
		AggregateID:   row.ID.String(),
		EventType:     "punch.recorded",
		Topic:         events.PunchRecordedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

// ListEvents expands every ledger row in the inclusive [start, end]
// range into labeled events, day-ascending then slot-ascending.
func (s *service) ListEvents(ctx context.Context, employeeID, start, end string) ([]PunchEventResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, apperror.ErrUnauthorized
	}

	if start == "" || end == "" {
		return nil, puncherrors.ErrMissingRange
	}

	startDay, err := timeutil.ParseDay(start)
	if err != nil {
		return nil, apperror.InvalidField("start")
	}
	endDay, err := timeutil.ParseDay(end)
	if err != nil {
		return nil, apperror.InvalidField("end")
	}
	// Contract decision: an inverted range fails fast instead of
	// silently returning nothing.
	if startDay.After(endDay) {
		return nil, puncherrors.ErrInvalidRange
	}

	rows, err := s.repo.FindRange(ctx, empID, startDay, endDay)
	if err != nil {
		contextutil.GetLogger(ctx, zap.L()).Error("list punch events failed", zap.Error(err))
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "Falha ao buscar os pontos", http.StatusInternalServerError)
	}

	events := make([]PunchEventResponse, 0)
	for _, row := range rows {
		events = append(events, expandEvents(row)...)
	}
	return events, nil
}

// ListEventsForToday is the same expansion restricted to the current
// UTC day key. No row yet means an empty list, not an error.
func (s *service) ListEventsForToday(ctx context.Context, employeeID string) ([]PunchEventResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, apperror.ErrUnauthorized
	}

	row, err := s.repo.FindByEmployeeAndDay(ctx, empID, timeutil.Today())
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []PunchEventResponse{}, nil
	}
	if err != nil {
		contextutil.GetLogger(ctx, zap.L()).Error("list today punches failed", zap.Error(err))
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "Falha ao buscar os pontos", http.StatusInternalServerError)
	}

	return expandEvents(*row), nil
}
