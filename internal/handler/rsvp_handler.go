package handler

import (
	"errors"
	"net/http"

	"github.com/gatherly/rsvp-service/internal/dto"
	"github.com/gatherly/rsvp-service/internal/service"
	"github.com/labstack/echo/v4"
)

type RsvpHandler struct {
	svc service.RsvpService
}

func NewRsvpHandler(svc service.RsvpService) *RsvpHandler {
	return &RsvpHandler{svc: svc}
}

func (h *RsvpHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/events/:id/attendees", h.SubmitResponse)
	g.GET("/events/:id/attendees", h.ListAttendees)
	g.GET("/attendee/:email/events", h.ListEventsForAttendee)
}

func (h *RsvpHandler) SubmitResponse(c echo.Context) error {
	eventID, err := parseEventID(c)
	if err != nil {
		return err
	}

	var req dto.SubmitRsvpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	rsvp, created, err := h.svc.SubmitResponse(c.Request().Context(), eventID, req.AttendeeEmail, req.ResponseStatus, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrRsvpConflict):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrEmailRequired),
			errors.Is(err, service.ErrInvalidEmail),
			errors.Is(err, service.ErrInvalidStatus):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	code := http.StatusOK
	message := "RSVP updated"
	if created {
		code = http.StatusCreated
		message = "RSVP recorded"
	}

	return c.JSON(code, dto.SubmitRsvpResponse{
		Message: message,
		Created: created,
		Rsvp:    dto.ToRsvpResponse(rsvp),
	})
}

func (h *RsvpHandler) ListAttendees(c echo.Context) error {
	eventID, err := parseEventID(c)
	if err != nil {
		return err
	}

	rsvps, err := h.svc.ListAttendees(c.Request().Context(), eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "event not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.RsvpResponse, len(rsvps))
	for i, r := range rsvps {
		resp[i] = dto.ToRsvpResponse(&r)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *RsvpHandler) ListEventsForAttendee(c echo.Context) error {
	email := c.Param("email")

	rows, err := h.svc.ListEventsForAttendee(c.Request().Context(), email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.AttendeeEventResponse, len(rows))
	for i, row := range rows {
		resp[i] = dto.ToAttendeeEventResponse(&row)
	}

	return c.JSON(http.StatusOK, resp)
}
