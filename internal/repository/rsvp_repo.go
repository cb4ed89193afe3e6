package repository

import (
	"context"
	"time"

	"github.com/gatherly/rsvp-service/internal/models"
	"gorm.io/gorm"
)

type RsvpRepository interface {
	Create(ctx context.Context, tx *gorm.DB, rsvp *models.Rsvp) error
	FindByEventAndEmail(ctx context.Context, tx *gorm.DB, eventID uint, email string) (*models.Rsvp, error)
	UpdateResponse(ctx context.Context, tx *gorm.DB, id uint, status models.ResponseStatus, notes string, rsvpDate time.Time) error
	FindByEventID(ctx context.Context, eventID uint) ([]models.Rsvp, error)
	FindEventsForAttendee(ctx context.Context, email string) ([]models.AttendeeEvent, error)
	CountByEventID(ctx context.Context, eventID uint) (int64, error)
}

type rsvpRepository struct {
	db *gorm.DB
}

func NewRsvpRepository(db *gorm.DB) RsvpRepository {
	return &rsvpRepository{db: db}
}

func (r *rsvpRepository) Create(ctx context.Context, tx *gorm.DB, rsvp *models.Rsvp) error {
	return tx.WithContext(ctx).Create(rsvp).Error
}

func (r *rsvpRepository) FindByEventAndEmail(ctx context.Context, tx *gorm.DB, eventID uint, email string) (*models.Rsvp, error) {
	var rsvp models.Rsvp
	err := tx.WithContext(ctx).
		Where("event_id = ? AND attendee_email = ?", eventID, email).
		First(&rsvp).Error
	if err != nil {
		return nil, err
	}
	return &rsvp, nil
}

// UpdateResponse rewrites the mutable part of an rsvp row in place. The row
// identity (event, attendee) never changes after the first insert.
func (r *rsvpRepository) UpdateResponse(ctx context.Context, tx *gorm.DB, id uint, status models.ResponseStatus, notes string, rsvpDate time.Time) error {
	return tx.WithContext(ctx).
		Model(&models.Rsvp{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"response_status": status,
			"notes":           notes,
			"rsvp_date":       rsvpDate,
		}).Error
}

func (r *rsvpRepository) FindByEventID(ctx context.Context, eventID uint) ([]models.Rsvp, error) {
	var rsvps []models.Rsvp
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("id ASC").
		Find(&rsvps).Error
	if err != nil {
		return nil, err
	}
	return rsvps, nil
}

// FindEventsForAttendee joins events with the attendee's own responses; events
// the attendee never responded to are excluded.
func (r *rsvpRepository) FindEventsForAttendee(ctx context.Context, email string) ([]models.AttendeeEvent, error) {
	var rows []models.AttendeeEvent
	err := r.db.WithContext(ctx).
		Table("events").
		Select("events.id, events.event_name, events.event_date, events.event_start_time, events.event_end_time, rsvps.response_status").
		Joins("INNER JOIN rsvps ON rsvps.event_id = events.id").
		Where("rsvps.attendee_email = ?", email).
		Order("events.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *rsvpRepository) CountByEventID(ctx context.Context, eventID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Rsvp{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	return count, err
}
