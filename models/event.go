package models

import "time"

// Event category values
const (
	EventCategoryDaily       = "daily"
	EventCategoryEducational = "educational"
	EventCategorySpecial     = "special"
)

// Event represents a recurring zoo event
// Schedule is a five-field cron expression evaluated in the server's local time.
type Event struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Schedule    string `json:"schedule"`
	Duration    int    `json:"duration"` // Minutes
	Location    string `json:"location"`
	Category    string `json:"category"`
	Price       int64  `json:"price,omitempty"` // Cents, zero for free events
}

// EventOccurrence is an event together with its next start time
type EventOccurrence struct {
	Event
	StartsAt   time.Time `json:"startsAt"`
	DateLabel  string    `json:"dateLabel"`            // e.g. "Friday, January 17, 2025"
	TimeLabel  string    `json:"timeLabel"`            // e.g. "11:00 AM"
	PriceLabel string    `json:"priceLabel,omitempty"` // e.g. "$35.99"
}
