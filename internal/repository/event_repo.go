package repository

import (
	"context"

	"github.com/gatherly/rsvp-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id uint) (*models.Event, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Event, error)
	FindAll(ctx context.Context) ([]models.Event, error)
	FindAllNewestFirst(ctx context.Context) ([]models.Event, error)
	UpdateStatus(ctx context.Context, id uint, status models.EventStatus) (int64, error)
	AdjustCounter(ctx context.Context, tx *gorm.DB, eventID uint, status models.ResponseStatus, delta int) error
	GetDB() *gorm.DB
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// FindByIDForUpdate acquires a row-level lock on the event within the given
// transaction. All counter mutations for an event serialize on this lock.
func (r *eventRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Event, error) {
	var event models.Event
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) FindAll(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) FindAllNewestFirst(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// UpdateStatus overwrites the lifecycle status unconditionally and reports how
// many rows matched, so callers can distinguish a missing event.
func (r *eventRepository) UpdateStatus(ctx context.Context, id uint, status models.EventStatus) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}

// AdjustCounter bumps the counter column matching status by delta. The column
// is resolved through the status lookup table, never by branching on status.
func (r *eventRepository) AdjustCounter(ctx context.Context, tx *gorm.DB, eventID uint, status models.ResponseStatus, delta int) error {
	col, ok := models.CounterColumn(status)
	if !ok {
		return gorm.ErrInvalidField
	}
	return tx.WithContext(ctx).
		Model(&models.Event{}).
		Where("id = ?", eventID).
		UpdateColumn(col, gorm.Expr(col+" + ?", delta)).Error
}
