package punch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pauldemian98/portal-rh/internal/messaging/kafka"
	puncherrors "github.com/pauldemian98/portal-rh/internal/punch/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn        func(ctx context.Context, p *PunchDay) error
	findFn          func(ctx context.Context, employeeID uuid.UUID, day time.Time) (*PunchDay, error)
	findForUpdateFn func(ctx context.Context, employeeID uuid.UUID, day time.Time) (*PunchDay, error)
	setSlotFn       func(ctx context.Context, id uuid.UUID, slot string, t time.Time) (bool, error)
	findRangeFn     func(ctx context.Context, employeeID uuid.UUID, start, end time.Time) ([]PunchDay, error)
}

func (f *fakeRepo) WithTx(tx *gorm.DB) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, p *PunchDay) error {
	return f.createFn(ctx, p)
}
func (f *fakeRepo) FindByEmployeeAndDay(ctx context.Context, employeeID uuid.UUID, day time.Time) (*PunchDay, error) {
	return f.findFn(ctx, employeeID, day)
}
func (f *fakeRepo) FindByEmployeeAndDayForUpdate(ctx context.Context, employeeID uuid.UUID, day time.Time) (*PunchDay, error) {
	return f.findForUpdateFn(ctx, employeeID, day)
}
func (f *fakeRepo) SetSlot(ctx context.Context, id uuid.UUID, slot string, t time.Time) (bool, error) {
	return f.setSlotFn(ctx, id, slot, t)
}
func (f *fakeRepo) FindRange(ctx context.Context, employeeID uuid.UUID, start, end time.Time) ([]PunchDay, error) {
	return f.findRangeFn(ctx, employeeID, start, end)
}

type fakeOutbox struct {
	created []kafka.OutboxEvent
	err     error
}

func (f *fakeOutbox) WithTx(tx *gorm.DB) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, event)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, r string) error { return nil }

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	assert.NoError(t, err)
	return db, mock
}

func ts(hour, minute int) time.Time {
	return time.Date(2024, 9, 17, hour, minute, 0, 0, time.UTC)
}

func TestService_RecordPunch_CreatesThenAdvances(t *testing.T) {
	db, mock := newTestDB(t)
	employeeID := uuid.New()
	ctx := context.Background()

	var saved *PunchDay
	repo := &fakeRepo{}
	repo.createFn = func(ctx context.Context, p *PunchDay) error {
		copied := *p
		saved = &copied
		return nil
	}
	repo.findForUpdateFn = func(ctx context.Context, id uuid.UUID, day time.Time) (*PunchDay, error) {
		if saved == nil {
			return nil, gorm.ErrRecordNotFound
		}
		copied := *saved
		return &copied, nil
	}
	repo.setSlotFn = func(ctx context.Context, id uuid.UUID, slot string, at time.Time) (bool, error) {
		saved.applySlot(slot, at)
		return true, nil
	}

	outbox := &fakeOutbox{}
	svc := NewService(db, repo, outbox)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, created, err := svc.RecordPunch(ctx, employeeID.String(), RecordPunchRequest{Timestamp: "2024-09-17T09:00:00"})
	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "2024-09-17", resp.Day)
	assert.NotNil(t, resp.In1)
	assert.Equal(t, "09:00", *resp.In1)
	assert.Nil(t, resp.Out1)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, created, err = svc.RecordPunch(ctx, employeeID.String(), RecordPunchRequest{Timestamp: "2024-09-17T13:00:00"})
	assert.NoError(t, err)
	assert.False(t, created)
	assert.NotNil(t, resp.Out1)
	assert.Equal(t, "13:00", *resp.Out1)

	assert.Len(t, outbox.created, 2)
	assert.Equal(t, "punch.recorded", outbox.created[0].EventType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_RecordPunch_FifthPunchRejected(t *testing.T) {
	db, mock := newTestDB(t)
	employeeID := uuid.New()
	ctx := context.Background()

	full := &PunchDay{ID: uuid.New(), EmployeeID: employeeID, Day: ts(0, 0)}
	for _, slot := range []string{SlotIn1, SlotOut1, SlotIn2, SlotOut2} {
		full.applySlot(slot, ts(9, 0))
	}

	setSlotCalled := false
	repo := &fakeRepo{
		findForUpdateFn: func(ctx context.Context, id uuid.UUID, day time.Time) (*PunchDay, error) {
			copied := *full
			return &copied, nil
		},
		setSlotFn: func(ctx context.Context, id uuid.UUID, slot string, at time.Time) (bool, error) {
			setSlotCalled = true
			return true, nil
		},
	}
	outbox := &fakeOutbox{}
	svc := NewService(db, repo, outbox)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, _, err := svc.RecordPunch(ctx, employeeID.String(), RecordPunchRequest{Timestamp: "2024-09-17T18:00:00"})
	assert.ErrorIs(t, err, puncherrors.ErrAllSlotsFilled)
	assert.False(t, setSlotCalled)
	assert.Empty(t, outbox.created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_RecordPunch_RetriesLostCreateRace(t *testing.T) {
	db, mock := newTestDB(t)
	employeeID := uuid.New()
	ctx := context.Background()

	in1 := ts(9, 0)
	winner := &PunchDay{ID: uuid.New(), EmployeeID: employeeID, Day: ts(0, 0), In1: &in1}

	findCalls := 0
	repo := &fakeRepo{
		findForUpdateFn: func(ctx context.Context, id uuid.UUID, day time.Time) (*PunchDay, error) {
			findCalls++
			if findCalls == 1 {
				// First attempt saw no row yet.
				return nil, gorm.ErrRecordNotFound
			}
			copied := *winner
			return &copied, nil
		},
		createFn: func(ctx context.Context, p *PunchDay) error {
			return errors.New(`duplicate key value violates unique constraint "uq_punch_day_employee_day"`)
		},
		setSlotFn: func(ctx context.Context, id uuid.UUID, slot string, at time.Time) (bool, error) {
			assert.Equal(t, SlotOut1, slot)
			winner.applySlot(slot, at)
			return true, nil
		},
	}
	outbox := &fakeOutbox{}
	svc := NewService(db, repo, outbox)

	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, created, err := svc.RecordPunch(ctx, employeeID.String(), RecordPunchRequest{Timestamp: "2024-09-17T09:00:05"})
	assert.NoError(t, err)
	assert.False(t, created)
	assert.NotNil(t, resp.Out1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_RecordPunch_ConflictAfterSecondLoss(t *testing.T) {
	db, mock := newTestDB(t)
	employeeID := uuid.New()
	ctx := context.Background()

	in1 := ts(9, 0)
	repo := &fakeRepo{
		findForUpdateFn: func(ctx context.Context, id uuid.UUID, day time.Time) (*PunchDay, error) {
			return &PunchDay{ID: uuid.New(), EmployeeID: employeeID, Day: ts(0, 0), In1: &in1}, nil
		},
		setSlotFn: func(ctx context.Context, id uuid.UUID, slot string, at time.Time) (bool, error) {
			return false, nil // a concurrent writer keeps winning
		},
	}
	svc := NewService(db, repo, &fakeOutbox{})

	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectRollback()
	_, _, err := svc.RecordPunch(ctx, employeeID.String(), RecordPunchRequest{Timestamp: "2024-09-17T13:00:00"})
	assert.ErrorIs(t, err, puncherrors.ErrPunchConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_RecordPunch_InvalidTimestamp(t *testing.T) {
	db, _ := newTestDB(t)
	svc := NewService(db, &fakeRepo{}, &fakeOutbox{})

	_, _, err := svc.RecordPunch(context.Background(), uuid.New().String(), RecordPunchRequest{Timestamp: "17/09/2024 09:00"})
	assert.ErrorIs(t, err, puncherrors.ErrInvalidTimestamp)
}

func TestService_ListEvents_ExpandsRangeInclusive(t *testing.T) {
	db, _ := newTestDB(t)
	employeeID := uuid.New()

	in1 := ts(9, 0)
	out1 := ts(13, 0)
	rowID := uuid.New()
	repo := &fakeRepo{
		findRangeFn: func(ctx context.Context, id uuid.UUID, start, end time.Time) ([]PunchDay, error) {
			assert.Equal(t, "2024-09-17", start.Format("2006-01-02"))
			assert.Equal(t, "2024-09-17", end.Format("2006-01-02"))
			return []PunchDay{{ID: rowID, EmployeeID: employeeID, Day: ts(0, 0), In1: &in1, Out1: &out1}}, nil
		},
	}
	svc := NewService(db, repo, &fakeOutbox{})

	events, err := svc.ListEvents(context.Background(), employeeID.String(), "2024-09-17", "2024-09-17")
	assert.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, "Entrada 1", events[0].Type)
	assert.Equal(t, "09:00", events[0].Time)
	assert.Equal(t, "2024-09-17", events[0].Date)
	assert.Equal(t, "Saída 1", events[1].Type)
	assert.Equal(t, "13:00", events[1].Time)
	assert.Equal(t, "2024-09-17", events[1].Date)
	assert.Equal(t, rowID.String()+"-1", events[0].ID)
	assert.Equal(t, rowID.String()+"-2", events[1].ID)
}

func TestService_ListEvents_MissingRange(t *testing.T) {
	db, _ := newTestDB(t)
	svc := NewService(db, &fakeRepo{}, &fakeOutbox{})

	_, err := svc.ListEvents(context.Background(), uuid.New().String(), "", "2024-09-17")
	assert.ErrorIs(t, err, puncherrors.ErrMissingRange)
}

func TestService_ListEvents_InvertedRangeFailsFast(t *testing.T) {
	db, _ := newTestDB(t)
	svc := NewService(db, &fakeRepo{}, &fakeOutbox{})

	_, err := svc.ListEvents(context.Background(), uuid.New().String(), "2024-09-18", "2024-09-17")
	assert.ErrorIs(t, err, puncherrors.ErrInvalidRange)
}

func TestService_ListEventsForToday_EmptyWhenNoRow(t *testing.T) {
	db, _ := newTestDB(t)
	repo := &fakeRepo{
		findFn: func(ctx context.Context, id uuid.UUID, day time.Time) (*PunchDay, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewService(db, repo, &fakeOutbox{})

	events, err := svc.ListEventsForToday(context.Background(), uuid.New().String())
	assert.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}
