// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/project/ticket-service/internal/logger"
	"github.com/project/ticket-service/models"
	"github.com/stretchr/testify/require"
)

func testDB(dialect Dialect) *DB {
	return newDB(nil, dialect, logger.Nop())
}

func Test_buildCreateEventQuery(t *testing.T) {
	startsAt := time.Date(2026, 12, 1, 19, 0, 0, 0, time.UTC)
	event := models.Event{
		Name:       "Concert",
		Venue:      "Hall",
		StartsAt:   startsAt,
		Capacity:   100,
		Available:  100,
		PriceCents: 2500,
		CreatedAt:  startsAt.Add(-time.Hour),
	}

	query, args, err := testDB(DialectPostgres).buildCreateEventQuery(event)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.True(t, strings.HasPrefix(q, "insert into events"))
	require.Contains(t, q, "returning id")
	require.Contains(t, query, "$7")
	require.Equal(t, []any{"Concert", "Hall", startsAt, 100, 100, int64(2500), event.CreatedAt}, args)
}

func Test_buildFindEventQuery_Placeholders(t *testing.T) {
	tests := []struct {
		name        string
		dialect     Dialect
		placeholder string
	}{
		{name: "postgres uses dollar", dialect: DialectPostgres, placeholder: "id = $1"},
		{name: "sqlite uses question mark", dialect: DialectSQLite, placeholder: "id = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := testDB(tt.dialect).buildFindEventQuery(7)
			require.NoError(t, err)
			require.Contains(t, query, tt.placeholder)
			require.Equal(t, []any{int64(7)}, args)
		})
	}
}

func Test_buildListEventsQuery_Paging(t *testing.T) {
	query, args, err := testDB(DialectSQLite).buildListEventsQuery(models.Page{Page: 3, Size: 10})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "order by starts_at asc, id asc")
	require.Contains(t, q, "limit 10")
	require.Contains(t, q, "offset 20")
	require.Empty(t, args)
}

func Test_buildTakeSeatsQuery_Guarded(t *testing.T) {
	query, args, err := testDB(DialectPostgres).buildTakeSeatsQuery(5, 3)
	require.NoError(t, err)

	require.Equal(t, "UPDATE events SET available = available - $1 WHERE id = $2 AND available >= $3", query)
	require.Equal(t, []any{3, int64(5), 3}, args)
}

func Test_buildReturnSeatQuery(t *testing.T) {
	query, args, err := testDB(DialectSQLite).buildReturnSeatQuery(5)
	require.NoError(t, err)

	require.Equal(t, "UPDATE events SET available = available + 1 WHERE id = ? AND available < capacity", query)
	require.Equal(t, []any{int64(5)}, args)
}

func Test_buildInsertTicketsQuery_MultiRow(t *testing.T) {
	now := time.Now()
	tickets := []models.Ticket{
		{TicketNo: "a", EventID: 1, UserID: "u", HolderName: "N", HolderEmail: "n@x.io", Status: models.TicketBooked, PriceCents: 10, PurchasedAt: now},
		{TicketNo: "b", EventID: 1, UserID: "u", HolderName: "N", HolderEmail: "n@x.io", Status: models.TicketBooked, PriceCents: 10, PurchasedAt: now},
	}

	query, args, err := testDB(DialectPostgres).buildInsertTicketsQuery(tickets)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(query, "INSERT INTO tickets"))
	require.Contains(t, query, "$16")
	require.Len(t, args, 16)
	require.Equal(t, "a", args[0])
	require.Equal(t, "BOOKED", args[5])
	require.Equal(t, "b", args[8])
}

func Test_buildListTicketsQuery(t *testing.T) {
	query, args, err := testDB(DialectPostgres).buildListTicketsQuery("u-1")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from tickets")
	require.Contains(t, q, "where user_id = $1")
	require.Contains(t, q, "order by purchased_at desc, id desc")
	require.Equal(t, []any{"u-1"}, args)
}

func Test_buildCancelTicketQuery_OnlyBooked(t *testing.T) {
	at := time.Now()

	query, args, err := testDB(DialectPostgres).buildCancelTicketQuery("t-1", at)
	require.NoError(t, err)

	require.Equal(t, "UPDATE tickets SET status = $1, cancelled_at = $2 WHERE status = $3 AND ticket_no = $4", query)
	require.Equal(t, []any{"CANCELLED", at, "BOOKED", "t-1"}, args)
}
