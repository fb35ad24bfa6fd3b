package models

import "time"

// TicketStatus is the lifecycle state of a Ticket.
type TicketStatus string

const (
	// TicketBooked marks a ticket holding a seat.
	TicketBooked TicketStatus = "BOOKED"

	// TicketCancelled marks a ticket whose seat went back to the event.
	TicketCancelled TicketStatus = "CANCELLED"
)

// Ticket is a single booked seat of an Event.
type Ticket struct {
	ID          int64        `json:"-"`
	TicketNo    string       `json:"ticket_no"`
	EventID     int64        `json:"event_id"`
	UserID      string       `json:"user_id"`
	HolderName  string       `json:"holder_name"`
	HolderEmail string       `json:"holder_email"`
	Status      TicketStatus `json:"status"`
	PriceCents  int64        `json:"price_cents"`
	PurchasedAt time.Time    `json:"purchased_at"`
	CancelledAt *time.Time   `json:"cancelled_at,omitempty"`
}

// TableName returns the name of the database table associated with Ticket.
func (t Ticket) TableName() string {
	return "tickets"
}

// PurchaseRequest is the body of POST /api/tickets.
//
// HolderName and HolderEmail are optional; when empty they are taken from
// the buyer's profile in the user service.
type PurchaseRequest struct {
	EventID     int64  `json:"event_id" validate:"required,min=1"`
	Quantity    int    `json:"quantity" validate:"required,min=1,max=10"`
	HolderName  string `json:"holder_name" validate:"omitempty,max=100"`
	HolderEmail string `json:"holder_email" validate:"omitempty,email_addr"`
}

// Reservation is what the storage layer needs to book seats.
type Reservation struct {
	EventID int64
	UserID  string
	Tickets []Ticket
}

// UserProfile is the subset of a user-service account the ticket service
// consumes.
type UserProfile struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// ServiceInstance describes one running service process registered in
// service discovery.
type ServiceInstance struct {
	Name         string    `json:"name"`
	InstanceID   string    `json:"instance_id"`
	Address      string    `json:"address"`
	RegisteredAt time.Time `json:"registered_at"`
}
