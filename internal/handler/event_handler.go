package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gatherly/rsvp-service/internal/dto"
	"github.com/gatherly/rsvp-service/internal/models"
	"github.com/gatherly/rsvp-service/internal/service"
	"github.com/labstack/echo/v4"
)

type EventHandler struct {
	svc service.EventService
}

func NewEventHandler(svc service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

func (h *EventHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/create-event", h.CreateEvent)
	g.GET("/events", h.ListEvents)
	g.GET("/events/:id", h.GetEvent)
	g.PUT("/events/:id/publish", h.PublishEvent)
	g.PUT("/events/:id/cancel", h.CancelEvent)
	g.GET("/events-with-rsvp-counts", h.ListEventsWithCounts)
}

func parseEventID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}
	return uint(id), nil
}

func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req dto.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	event := &models.Event{
		CreatorEmail:      req.CreatorEmail,
		EventName:         req.EventName,
		Description:       req.Description,
		TargetedAttendees: req.TargetedAttendees,
		EventDate:         req.EventDate,
		EventStartTime:    req.EventStartTime,
		EventEndTime:      req.EventEndTime,
		EventDuration:     req.EventDuration,
	}

	if err := h.svc.CreateEvent(c.Request().Context(), event); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.CreateEventResponse{
		Message: "Event created successfully",
		EventID: event.ID,
		Changes: 1,
	})
}

func (h *EventHandler) GetEvent(c echo.Context) error {
	id, err := parseEventID(c)
	if err != nil {
		return err
	}

	event, err := h.svc.GetEvent(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "event not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *EventHandler) ListEvents(c echo.Context) error {
	events, err := h.svc.ListEvents(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.EventResponse, len(events))
	for i, e := range events {
		resp[i] = dto.ToEventResponse(&e)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *EventHandler) ListEventsWithCounts(c echo.Context) error {
	events, err := h.svc.ListEventsWithCounts(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.EventResponse, len(events))
	for i, e := range events {
		resp[i] = dto.ToEventResponse(&e)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *EventHandler) PublishEvent(c echo.Context) error {
	return h.transition(c, h.svc.Publish, "Event published successfully")
}

func (h *EventHandler) CancelEvent(c echo.Context) error {
	return h.transition(c, h.svc.Cancel, "Event cancelled successfully")
}

func (h *EventHandler) transition(c echo.Context, op func(ctx context.Context, id uint) error, message string) error {
	id, err := parseEventID(c)
	if err != nil {
		return err
	}

	if err := op(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "event not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.LifecycleResponse{Success: true, Message: message})
}
