// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/project/ticket-service/models"
)

var (
	eventColumns = []string{
		"id", "name", "venue", "starts_at", "capacity", "available", "price_cents", "created_at",
	}
	ticketColumns = []string{
		"id", "ticket_no", "event_id", "user_id", "holder_name", "holder_email",
		"status", "price_cents", "purchased_at", "cancelled_at",
	}
)

func (db *DB) buildCreateEventQuery(event models.Event) (string, []any, error) {
	query, args, err := db.builder.
		Insert(models.Event{}.TableName()).
		Columns("name", "venue", "starts_at", "capacity", "available", "price_cents", "created_at").
		Values(event.Name, event.Venue, event.StartsAt, event.Capacity, event.Available, event.PriceCents, event.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildFindEventQuery(id int64) (string, []any, error) {
	query, args, err := db.builder.
		Select(eventColumns...).
		From(models.Event{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildListEventsQuery(page models.Page) (string, []any, error) {
	query, args, err := db.builder.
		Select(eventColumns...).
		From(models.Event{}.TableName()).
		OrderBy("starts_at ASC", "id ASC").
		Limit(uint64(page.Size)).
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildCountEventsQuery() (string, []any, error) {
	query, args, err := db.builder.
		Select("COUNT(*)").
		From(models.Event{}.TableName()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildTakeSeatsQuery decrements available seats only while enough are left.
func (db *DB) buildTakeSeatsQuery(eventID int64, quantity int) (string, []any, error) {
	query, args, err := db.builder.
		Update(models.Event{}.TableName()).
		Set("available", sq.Expr("available - ?", quantity)).
		Where(sq.Eq{"id": eventID}).
		Where(sq.GtOrEq{"available": quantity}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildReturnSeatQuery(eventID int64) (string, []any, error) {
	query, args, err := db.builder.
		Update(models.Event{}.TableName()).
		Set("available", sq.Expr("available + 1")).
		Where(sq.Eq{"id": eventID}).
		Where("available < capacity").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildInsertTicketsQuery(tickets []models.Ticket) (string, []any, error) {
	insert := db.builder.
		Insert(models.Ticket{}.TableName()).
		Columns("ticket_no", "event_id", "user_id", "holder_name", "holder_email", "status", "price_cents", "purchased_at")

	for _, ticket := range tickets {
		insert = insert.Values(ticket.TicketNo, ticket.EventID, ticket.UserID, ticket.HolderName,
			ticket.HolderEmail, string(ticket.Status), ticket.PriceCents, ticket.PurchasedAt)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildFindTicketQuery(ticketNo string) (string, []any, error) {
	query, args, err := db.builder.
		Select(ticketColumns...).
		From(models.Ticket{}.TableName()).
		Where(sq.Eq{"ticket_no": ticketNo}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildListTicketsQuery(userID string) (string, []any, error) {
	query, args, err := db.builder.
		Select(ticketColumns...).
		From(models.Ticket{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("purchased_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildCancelTicketQuery only matches a ticket that is still booked.
func (db *DB) buildCancelTicketQuery(ticketNo string, cancelledAt time.Time) (string, []any, error) {
	query, args, err := db.builder.
		Update(models.Ticket{}.TableName()).
		Set("status", string(models.TicketCancelled)).
		Set("cancelled_at", cancelledAt).
		Where(sq.Eq{"ticket_no": ticketNo, "status": string(models.TicketBooked)}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
