package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEventAlreadyExists is returned when an event with the same name and
	// start time is already stored.
	ErrEventAlreadyExists = errors.New("event already exists")

	// ErrEventNotFound is returned when no event matches the requested id.
	ErrEventNotFound = errors.New("event was not found")

	// ErrNotEnoughSeats is returned by Reserve when the guarded decrement of
	// available seats matches no row.
	ErrNotEnoughSeats = errors.New("not enough seats left")

	// ErrTicketNotFound is returned when no ticket matches the requested
	// ticket number.
	ErrTicketNotFound = errors.New("ticket was not found")

	// ErrTicketAlreadyCancelled is returned by Cancel when the ticket is no
	// longer booked.
	ErrTicketAlreadyCancelled = errors.New("ticket is already cancelled")

	// ErrUnsupportedDSN is returned by NewDB for a DSN whose scheme selects
	// no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrMigrating is returned when schema migrations cannot be applied.
	ErrMigrating = errors.New("failed to apply migrations")
)
