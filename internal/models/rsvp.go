package models

import "time"

type ResponseStatus string

const (
	StatusPending      ResponseStatus = "Pending"
	StatusAttending    ResponseStatus = "Attending"
	StatusNotAttending ResponseStatus = "Not Attending"
	StatusMaybe        ResponseStatus = "Maybe"
)

// counterColumns maps a response status to the events column that tracks it.
// Adding a status means adding exactly one entry here.
var counterColumns = map[ResponseStatus]string{
	StatusPending:      "pending_count",
	StatusAttending:    "attending_count",
	StatusNotAttending: "not_attending_count",
	StatusMaybe:        "maybe_count",
}

// CounterColumn returns the events counter column for a status, and whether
// the status is one of the four known values.
func CounterColumn(status ResponseStatus) (string, bool) {
	col, ok := counterColumns[status]
	return col, ok
}

// ValidResponseStatus reports whether s is one of the four allowed values.
func ValidResponseStatus(s ResponseStatus) bool {
	_, ok := counterColumns[s]
	return ok
}

type Rsvp struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	EventID        uint           `gorm:"not null;uniqueIndex:idx_rsvps_event_attendee" json:"eventId"`
	AttendeeEmail  string         `gorm:"not null;uniqueIndex:idx_rsvps_event_attendee" json:"attendeeEmail"`
	ResponseStatus ResponseStatus `gorm:"type:varchar(20);not null;default:'Pending';check:chk_rsvps_response_status,response_status IN ('Pending','Attending','Not Attending','Maybe')" json:"responseStatus"`
	Notes          string         `gorm:"type:text" json:"notes"`
	RsvpDate       time.Time      `json:"rsvpDate"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	Event *Event `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"event,omitempty"`
}

// AttendeeEvent is the read model for listing an attendee's responded events:
// event summary columns joined with that attendee's own status.
type AttendeeEvent struct {
	ID             uint           `json:"id"`
	EventName      string         `json:"eventName"`
	EventDate      string         `json:"eventDate"`
	EventStartTime string         `json:"eventStartTime"`
	EventEndTime   string         `json:"eventEndTime"`
	ResponseStatus ResponseStatus `json:"responseStatus"`
}
