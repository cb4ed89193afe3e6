package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherly/rsvp-service/internal/models"
	"github.com/gatherly/rsvp-service/internal/repository"
	"github.com/gatherly/rsvp-service/pkg/rabbitmq"
	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type EventService interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	GetEvent(ctx context.Context, id uint) (*models.Event, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
	ListEventsWithCounts(ctx context.Context) ([]models.Event, error)
	Publish(ctx context.Context, id uint) error
	Cancel(ctx context.Context, id uint) error
}

type eventService struct {
	repo      repository.EventRepository
	publisher *rabbitmq.Publisher
}

func NewEventService(repo repository.EventRepository, publisher *rabbitmq.Publisher) EventService {
	return &eventService{repo: repo, publisher: publisher}
}

func (s *eventService) CreateEvent(ctx context.Context, event *models.Event) error {
	event.Status = models.EventCreated
	if err := s.repo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("event.created", event)
	}

	return nil
}

func (s *eventService) GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	return s.repo.FindAll(ctx)
}

// ListEventsWithCounts returns all events with their running RSVP counters,
// newest-created first.
func (s *eventService) ListEventsWithCounts(ctx context.Context) ([]models.Event, error) {
	return s.repo.FindAllNewestFirst(ctx)
}

func (s *eventService) Publish(ctx context.Context, id uint) error {
	return s.transition(ctx, id, models.EventPublished, "event.published")
}

func (s *eventService) Cancel(ctx context.Context, id uint) error {
	return s.transition(ctx, id, models.EventCancelled, "event.cancelled")
}

// transition overwrites the lifecycle status unconditionally; last write wins.
// Zero matched rows means the event does not exist.
func (s *eventService) transition(ctx context.Context, id uint, status models.EventStatus, routingKey string) error {
	rows, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return fmt.Errorf("update event status: %w", err)
	}
	if rows == 0 {
		return ErrEventNotFound
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(routingKey, map[string]interface{}{"eventId": id, "status": status})
	}

	return nil
}
