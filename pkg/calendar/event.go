// Package calendar defines the event-draft contract between the schedule
// extractor and the external calendar service. The JSON shapes match the
// Google Calendar events API so drafts can be submitted as-is.
package calendar

import "context"

// EventTime is either a calendar date (all-day events) or a timestamp, with
// an explicit time zone identifier. Exactly one of Date and DateTime is set.
type EventTime struct {
	Date     string `json:"date,omitempty"`     // YYYY-MM-DD
	DateTime string `json:"dateTime,omitempty"` // YYYY-MM-DDTHH:MM:SS
	TimeZone string `json:"timeZone,omitempty"`
}

// EventDraft is one schedule entry ready for submission. All-day drafts span
// [start, end) with the end date exclusive. Drafts are value objects:
// constructed, returned, never mutated.
type EventDraft struct {
	Start       EventTime `json:"start"`
	End         EventTime `json:"end"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
}

// Event is a draft that exists on the calendar service.
type Event struct {
	EventDraft
	ID string `json:"id"`
}

// Service is the boundary to the external calendar system. Implementations
// live outside this module; the extractor only produces drafts shaped for it.
type Service interface {
	// List returns the events of the given year/month on a calendar.
	List(ctx context.Context, calendarID string, year, month int) ([]Event, error)

	// Insert creates one event from a draft.
	Insert(ctx context.Context, calendarID string, draft EventDraft) (Event, error)
}
