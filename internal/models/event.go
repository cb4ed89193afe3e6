package models

import "time"

type EventStatus string

const (
	EventCreated   EventStatus = "Created"
	EventPublished EventStatus = "Published"
	EventArchived  EventStatus = "Archived"
	EventCancelled EventStatus = "Cancelled"
)

type Event struct {
	ID                uint        `gorm:"primaryKey" json:"id"`
	CreatorEmail      string      `gorm:"not null" json:"creatorEmail"`
	EventName         string      `gorm:"not null" json:"eventName"`
	Description       string      `gorm:"type:text;not null" json:"description"`
	TargetedAttendees int         `gorm:"not null" json:"targetedAttendees"`
	EventDate         string      `gorm:"not null" json:"eventDate"`
	EventStartTime    string      `gorm:"not null" json:"eventStartTime"`
	EventEndTime      string      `gorm:"not null" json:"eventEndTime"`
	EventDuration     string      `json:"eventDuration"`
	Status            EventStatus `gorm:"type:varchar(20);not null;default:'Created';check:chk_events_status,status IN ('Created','Published','Archived','Cancelled')" json:"status"`

	// Running aggregates, kept in lockstep with the rsvps table. Their sum
	// must always equal the number of rsvp rows for this event.
	AttendingCount    int `gorm:"not null;default:0" json:"attendingCount"`
	NotAttendingCount int `gorm:"not null;default:0" json:"notAttendingCount"`
	MaybeCount        int `gorm:"not null;default:0" json:"maybeCount"`
	PendingCount      int `gorm:"not null;default:0" json:"pendingCount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
