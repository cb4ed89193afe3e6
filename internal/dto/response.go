package dto

import (
	"time"

	"github.com/gatherly/rsvp-service/internal/models"
)

type EventResponse struct {
	ID                uint               `json:"id"`
	CreatorEmail      string             `json:"creatorEmail"`
	EventName         string             `json:"eventName"`
	Description       string             `json:"description"`
	TargetedAttendees int                `json:"targetedAttendees"`
	EventDate         string             `json:"eventDate"`
	EventStartTime    string             `json:"eventStartTime"`
	EventEndTime      string             `json:"eventEndTime"`
	EventDuration     string             `json:"eventDuration"`
	Status            models.EventStatus `json:"status"`
	AttendingCount    int                `json:"attendingCount"`
	NotAttendingCount int                `json:"notAttendingCount"`
	MaybeCount        int                `json:"maybeCount"`
	PendingCount      int                `json:"pendingCount"`
	CreatedAt         time.Time          `json:"created_at"`
}

type CreateEventResponse struct {
	Message string `json:"message"`
	EventID uint   `json:"eventId"`
	Changes int    `json:"changes"`
}

type LifecycleResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type RsvpResponse struct {
	ID             uint                  `json:"id"`
	EventID        uint                  `json:"eventId"`
	AttendeeEmail  string                `json:"attendeeEmail"`
	ResponseStatus models.ResponseStatus `json:"responseStatus"`
	Notes          string                `json:"notes"`
	RsvpDate       time.Time             `json:"rsvpDate"`
	CreatedAt      time.Time             `json:"created_at"`
}

type SubmitRsvpResponse struct {
	Message string       `json:"message"`
	Created bool         `json:"created"`
	Rsvp    RsvpResponse `json:"rsvp"`
}

type AttendeeEventResponse struct {
	ID             uint                  `json:"id"`
	EventName      string                `json:"eventName"`
	EventDate      string                `json:"eventDate"`
	EventStartTime string                `json:"eventStartTime"`
	EventEndTime   string                `json:"eventEndTime"`
	ResponseStatus models.ResponseStatus `json:"responseStatus"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToEventResponse(e *models.Event) EventResponse {
	return EventResponse{
		ID:                e.ID,
		CreatorEmail:      e.CreatorEmail,
		EventName:         e.EventName,
		Description:       e.Description,
		TargetedAttendees: e.TargetedAttendees,
		EventDate:         e.EventDate,
		EventStartTime:    e.EventStartTime,
		EventEndTime:      e.EventEndTime,
		EventDuration:     e.EventDuration,
		Status:            e.Status,
		AttendingCount:    e.AttendingCount,
		NotAttendingCount: e.NotAttendingCount,
		MaybeCount:        e.MaybeCount,
		PendingCount:      e.PendingCount,
		CreatedAt:         e.CreatedAt,
	}
}

func ToRsvpResponse(r *models.Rsvp) RsvpResponse {
	return RsvpResponse{
		ID:             r.ID,
		EventID:        r.EventID,
		AttendeeEmail:  r.AttendeeEmail,
		ResponseStatus: r.ResponseStatus,
		Notes:          r.Notes,
		RsvpDate:       r.RsvpDate,
		CreatedAt:      r.CreatedAt,
	}
}

func ToAttendeeEventResponse(a *models.AttendeeEvent) AttendeeEventResponse {
	return AttendeeEventResponse{
		ID:             a.ID,
		EventName:      a.EventName,
		EventDate:      a.EventDate,
		EventStartTime: a.EventStartTime,
		EventEndTime:   a.EventEndTime,
		ResponseStatus: a.ResponseStatus,
	}
}
