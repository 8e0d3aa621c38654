package punch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=punch_repo.go -destination=mock/punch_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, p *PunchDay) error
	FindByEmployeeAndDay(ctx context.Context, employeeID uuid.UUID, day time.Time) (*PunchDay, error)
	FindByEmployeeAndDayForUpdate(ctx context.Context, employeeID uuid.UUID, day time.Time) (*PunchDay, error)
	SetSlot(ctx context.Context, id uuid.UUID, slot string, t time.Time) (bool, error)
	FindRange(ctx context.Context, employeeID uuid.UUID, start, end time.Time) ([]PunchDay, error)
}

type repository struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn() *gorm.DB {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *repository) Create(ctx context.Context, p *PunchDay) error {
	return r.conn().WithContext(ctx).Create(p).Error
}

func (r *repository) FindByEmployeeAndDay(ctx context.Context, employeeID uuid.UUID, day time.Time) (*PunchDay, error) {
	var p PunchDay
	err := r.conn().WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("day = ?", day.Format("2006-01-02")).
		First(&p).Error
	return &p, err
}

// FindByEmployeeAndDayForUpdate locks the row until the surrounding
// transaction ends, serializing concurrent slot assignment.
func (r *repository) FindByEmployeeAndDayForUpdate(ctx context.Context, employeeID uuid.UUID, day time.Time) (*PunchDay, error) {
	var p PunchDay
	err := r.conn().WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("employee_id = ?", employeeID).
		Where("day = ?", day.Format("2006-01-02")).
		First(&p).Error
	return &p, err
}

// SetSlot assigns a slot only if it is still empty. Returns false when
// the guard matched no row, meaning a concurrent writer got there
// first.
func (r *repository) SetSlot(ctx context.Context, id uuid.UUID, slot string, t time.Time) (bool, error) {
	if _, ok := slotLabels[slot]; !ok {
		return false, fmt.Errorf("unknown slot %q", slot)
	}

	res := r.conn().WithContext(ctx).
		Model(&PunchDay{}).
		Where("id = ?", id).
		Where(slot+" IS NULL").
		Update(slot, t)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) FindRange(ctx context.Context, employeeID uuid.UUID, start, end time.Time) ([]PunchDay, error) {
	var rows []PunchDay
	err := r.conn().WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("day >= ?", start.Format("2006-01-02")).
		Where("day <= ?", end.Format("2006-01-02")).
		Order("day ASC").
		Find(&rows).Error
	return rows, err
}
