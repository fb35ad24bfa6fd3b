package service

// EventServiceWrapper defines middleware composition for EventService.
// Implementations wrap an existing EventService to add behavior such as
// logging or validating.
type EventServiceWrapper interface {
	Wrap(EventService) EventService
}

// TicketServiceWrapper defines middleware composition for TicketService.
type TicketServiceWrapper interface {
	Wrap(TicketService) TicketService
}
