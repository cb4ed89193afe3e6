package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gatherly/rsvp-service/internal/dto"
	"github.com/gatherly/rsvp-service/internal/models"
	"github.com/gatherly/rsvp-service/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// --- Mock EventService ---

type mockEventService struct {
	createFn     func(ctx context.Context, event *models.Event) error
	getFn        func(ctx context.Context, id uint) (*models.Event, error)
	listFn       func(ctx context.Context) ([]models.Event, error)
	listCountsFn func(ctx context.Context) ([]models.Event, error)
	publishFn    func(ctx context.Context, id uint) error
	cancelFn     func(ctx context.Context, id uint) error
}

func (m *mockEventService) CreateEvent(ctx context.Context, event *models.Event) error {
	return m.createFn(ctx, event)
}
func (m *mockEventService) GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	return m.getFn(ctx, id)
}
func (m *mockEventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	return m.listFn(ctx)
}
func (m *mockEventService) ListEventsWithCounts(ctx context.Context) ([]models.Event, error) {
	return m.listCountsFn(ctx)
}
func (m *mockEventService) Publish(ctx context.Context, id uint) error {
	return m.publishFn(ctx, id)
}
func (m *mockEventService) Cancel(ctx context.Context, id uint) error {
	return m.cancelFn(ctx, id)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

const createEventBody = `{
	"creatorEmail": "organizer@corp.example",
	"eventName": "Quarterly All-Hands",
	"description": "Q3 review and roadmap",
	"targetedAttendees": 120,
	"eventDate": "2026-09-12",
	"eventStartTime": "09:00",
	"eventEndTime": "11:30"
}`

// --- Tests ---

func TestCreateEvent_Handler_Success(t *testing.T) {
	svc := &mockEventService{
		createFn: func(ctx context.Context, event *models.Event) error {
			event.ID = 1
			event.Status = models.EventCreated
			event.CreatedAt = time.Now()
			return nil
		},
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/create-event", strings.NewReader(createEventBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewEventHandler(svc)
	err := h.CreateEvent(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.CreateEventResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint(1), resp.EventID)
	assert.Equal(t, 1, resp.Changes)
	assert.Equal(t, "Event created successfully", resp.Message)
}

func TestCreateEvent_Handler_MissingEventDate(t *testing.T) {
	body := `{
		"creatorEmail": "organizer@corp.example",
		"eventName": "Quarterly All-Hands",
		"description": "Q3 review and roadmap",
		"targetedAttendees": 120,
		"eventStartTime": "09:00",
		"eventEndTime": "11:30"
	}`

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/create-event", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Service must never be reached on a validation failure.
	h := NewEventHandler(nil)
	err := h.CreateEvent(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCreateEvent_Handler_NonPositiveTarget(t *testing.T) {
	body := strings.Replace(createEventBody, "120", "0", 1)

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/create-event", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewEventHandler(nil)
	err := h.CreateEvent(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestGetEvent_Handler_RoundTrip(t *testing.T) {
	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	svc := &mockEventService{
		getFn: func(ctx context.Context, id uint) (*models.Event, error) {
			return &models.Event{
				ID:                1,
				CreatorEmail:      "organizer@corp.example",
				EventName:         "Quarterly All-Hands",
				Description:       "Q3 review and roadmap",
				TargetedAttendees: 120,
				EventDate:         "2026-09-12",
				EventStartTime:    "09:00",
				EventEndTime:      "11:30",
				Status:            models.EventCreated,
				CreatedAt:         created,
			}, nil
		},
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/events/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := NewEventHandler(svc)
	err := h.GetEvent(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.EventResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, "Quarterly All-Hands", resp.EventName)
	assert.Equal(t, "2026-09-12", resp.EventDate)
	assert.Equal(t, models.EventCreated, resp.Status)
	assert.True(t, resp.CreatedAt.Equal(created))
}

func TestGetEvent_Handler_NotFound(t *testing.T) {
	svc := &mockEventService{
		getFn: func(ctx context.Context, id uint) (*models.Event, error) {
			return nil, service.ErrEventNotFound
		},
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/events/999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	h := NewEventHandler(svc)
	err := h.GetEvent(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestGetEvent_Handler_InvalidID(t *testing.T) {
	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/events/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	h := NewEventHandler(nil)
	err := h.GetEvent(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestPublishEvent_Handler_Success(t *testing.T) {
	svc := &mockEventService{
		publishFn: func(ctx context.Context, id uint) error { return nil },
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodPut, "/api/events/1/publish", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := NewEventHandler(svc)
	err := h.PublishEvent(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.LifecycleResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Event published successfully", resp.Message)
}

func TestPublishEvent_Handler_NotFound(t *testing.T) {
	svc := &mockEventService{
		publishFn: func(ctx context.Context, id uint) error { return service.ErrEventNotFound },
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodPut, "/api/events/999/publish", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	h := NewEventHandler(svc)
	err := h.PublishEvent(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestCancelEvent_Handler_Success(t *testing.T) {
	svc := &mockEventService{
		cancelFn: func(ctx context.Context, id uint) error { return nil },
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodPut, "/api/events/1/cancel", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := NewEventHandler(svc)
	err := h.CancelEvent(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListEventsWithCounts_Handler_Success(t *testing.T) {
	svc := &mockEventService{
		listCountsFn: func(ctx context.Context) ([]models.Event, error) {
			return []models.Event{
				{ID: 2, EventName: "Newer", PendingCount: 1, AttendingCount: 2},
				{ID: 1, EventName: "Older"},
			}, nil
		},
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/events-with-rsvp-counts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewEventHandler(svc)
	err := h.ListEventsWithCounts(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.EventResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, uint(2), resp[0].ID)
	assert.Equal(t, 2, resp[0].AttendingCount)
}

func TestListEvents_Handler_StoreError(t *testing.T) {
	svc := &mockEventService{
		listFn: func(ctx context.Context) ([]models.Event, error) {
			return nil, errors.New("connection reset")
		},
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewEventHandler(svc)
	err := h.ListEvents(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, he.Code)
}
