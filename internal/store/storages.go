package store

import "github.com/project/ticket-service/internal/logger"

// Storages groups the repositories the service layer depends on.
type Storages struct {
	EventRepository  EventRepository
	TicketRepository TicketRepository
}

// NewStorages builds all repositories on top of db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		EventRepository:  NewEventRepository(db, logger),
		TicketRepository: NewTicketRepository(db, logger),
	}
}
