package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/gatherly/rsvp-service/internal/models"
	"github.com/gatherly/rsvp-service/internal/repository"
	"github.com/gatherly/rsvp-service/pkg/rabbitmq"
	"gorm.io/gorm"
)

var (
	ErrEmailRequired = errors.New("attendeeEmail is required")
	ErrInvalidEmail  = errors.New("attendeeEmail must look like local@domain.tld")
	ErrInvalidStatus = errors.New("responseStatus must be one of: Pending, Attending, Not Attending, Maybe")
	ErrRsvpConflict  = errors.New("an rsvp for this attendee and event already exists")
)

// Deliberately loose: one @, a dot somewhere in the domain, no whitespace.
// The email is an unverified identifier, not a principal.
var emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type RsvpService interface {
	SubmitResponse(ctx context.Context, eventID uint, email, status, notes string) (*models.Rsvp, bool, error)
	ListAttendees(ctx context.Context, eventID uint) ([]models.Rsvp, error)
	ListEventsForAttendee(ctx context.Context, email string) ([]models.AttendeeEvent, error)
}

type rsvpService struct {
	rsvpRepo  repository.RsvpRepository
	eventRepo repository.EventRepository
	publisher *rabbitmq.Publisher
}

func NewRsvpService(rsvpRepo repository.RsvpRepository, eventRepo repository.EventRepository, publisher *rabbitmq.Publisher) RsvpService {
	return &rsvpService{rsvpRepo: rsvpRepo, eventRepo: eventRepo, publisher: publisher}
}

// ResolveStatus validates an optional wire status and applies the Pending
// default. An empty string is "not supplied".
func ResolveStatus(status string) (models.ResponseStatus, error) {
	if status == "" {
		return models.StatusPending, nil
	}
	rs := models.ResponseStatus(status)
	if !models.ValidResponseStatus(rs) {
		return "", ErrInvalidStatus
	}
	return rs, nil
}

// ValidateAttendeeEmail enforces the basic local@domain.tld shape.
func ValidateAttendeeEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if !emailShape.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// SubmitResponse inserts or updates the attendee's rsvp for the event and
// adjusts the event's counters to match, all inside one transaction. The event
// row is locked first, so two submissions against the same event can never
// interleave their counter writes. Returns created=true on first insert.
func (s *rsvpService) SubmitResponse(ctx context.Context, eventID uint, email, status, notes string) (*models.Rsvp, bool, error) {
	// Fail fast, before any store access.
	if err := ValidateAttendeeEmail(email); err != nil {
		return nil, false, err
	}
	resolved, err := ResolveStatus(status)
	if err != nil {
		return nil, false, err
	}

	var result *models.Rsvp
	var created bool

	err = s.eventRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the event row — serializes counter mutations per event.
		if _, err := s.eventRepo.FindByIDForUpdate(ctx, tx, eventID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		// 2. Existing rsvp for this (event, attendee)?
		existing, err := s.rsvpRepo.FindByEventAndEmail(ctx, tx, eventID, email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		now := time.Now()

		// 3a. First response: insert and bump the matching counter.
		if existing == nil {
			rsvp := &models.Rsvp{
				EventID:        eventID,
				AttendeeEmail:  email,
				ResponseStatus: resolved,
				Notes:          notes,
				RsvpDate:       now,
			}
			if err := s.rsvpRepo.Create(ctx, tx, rsvp); err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return ErrRsvpConflict
				}
				return err
			}
			if err := s.eventRepo.AdjustCounter(ctx, tx, eventID, resolved, +1); err != nil {
				return err
			}
			result = rsvp
			created = true
			return nil
		}

		// 3b. Repeat response: update in place and move one unit between
		// counters. Both bumps are applied even when old == new, keeping the
		// two branches symmetric.
		old := existing.ResponseStatus
		if err := s.rsvpRepo.UpdateResponse(ctx, tx, existing.ID, resolved, notes, now); err != nil {
			return err
		}
		if err := s.eventRepo.AdjustCounter(ctx, tx, eventID, old, -1); err != nil {
			return err
		}
		if err := s.eventRepo.AdjustCounter(ctx, tx, eventID, resolved, +1); err != nil {
			return err
		}

		existing.ResponseStatus = resolved
		existing.Notes = notes
		existing.RsvpDate = now
		result = existing
		created = false
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("rsvp.submitted", result)
	}

	return result, created, nil
}

func (s *rsvpService) ListAttendees(ctx context.Context, eventID uint) ([]models.Rsvp, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return s.rsvpRepo.FindByEventID(ctx, eventID)
}

func (s *rsvpService) ListEventsForAttendee(ctx context.Context, email string) ([]models.AttendeeEvent, error) {
	return s.rsvpRepo.FindEventsForAttendee(ctx, email)
}
