package models

import "time"

// Event is a scheduled happening tickets are sold for.
type Event struct {
	// ID is the database identifier.
	ID int64 `json:"id"`

	// Name is the public title of the event. Together with StartsAt it is
	// unique.
	Name string `json:"name"`

	// Venue is where the event takes place.
	Venue string `json:"venue"`

	// StartsAt is the start time. Tickets can no longer be bought once it has
	// passed.
	StartsAt time.Time `json:"starts_at"`

	// Capacity is the total number of seats.
	Capacity int `json:"capacity"`

	// Available is the number of seats not yet booked.
	Available int `json:"available"`

	// PriceCents is the price of a single ticket in minor currency units.
	PriceCents int64 `json:"price_cents"`

	// CreatedAt is when the event was stored.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table associated with Event.
func (e Event) TableName() string {
	return "events"
}

// CreateEventRequest is the body of POST /api/events.
type CreateEventRequest struct {
	Name       string    `json:"name" validate:"required,min=1,max=200"`
	Venue      string    `json:"venue" validate:"required,min=1,max=200"`
	StartsAt   time.Time `json:"starts_at" validate:"required"`
	Capacity   int       `json:"capacity" validate:"required,min=1,max=100000"`
	PriceCents int64     `json:"price_cents" validate:"min=0"`
}

// Page selects a window of a list result.
type Page struct {
	Page int `json:"page" validate:"min=1"`
	Size int `json:"size" validate:"min=1,max=100"`
}

// Offset returns the number of rows preceding the page.
func (p Page) Offset() uint64 {
	return uint64((p.Page - 1) * p.Size)
}

// DefaultPage is used when a list request carries no paging parameters.
var DefaultPage = Page{Page: 1, Size: 20}
