package dto

type CreateEventRequest struct {
	CreatorEmail      string `json:"creatorEmail" validate:"required"`
	EventName         string `json:"eventName" validate:"required"`
	Description       string `json:"description" validate:"required"`
	TargetedAttendees int    `json:"targetedAttendees" validate:"required,gt=0"`
	EventDate         string `json:"eventDate" validate:"required"`
	EventStartTime    string `json:"eventStartTime" validate:"required"`
	EventEndTime      string `json:"eventEndTime" validate:"required"`
	EventDuration     string `json:"eventDuration"`
}

type SubmitRsvpRequest struct {
	AttendeeEmail  string `json:"attendeeEmail"`
	ResponseStatus string `json:"responseStatus"`
	Notes          string `json:"notes"`
}
