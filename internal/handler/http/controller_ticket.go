package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/project/ticket-service/models"
)

const ticketNoParam = "ticketNo"

// purchase handles POST /api/tickets.
func (h *Handler) purchase(r *http.Request) (any, error) {
	userID, err := requestUserID(r)
	if err != nil {
		return nil, err
	}

	var req models.PurchaseRequest
	if err = decodeBody(r, &req); err != nil {
		return nil, err
	}

	tickets, err := h.services.TicketService.Purchase(r.Context(), userID, req)
	if err != nil {
		return nil, err
	}

	return models.NewAPIResponse(tickets), nil
}

// listTickets handles GET /api/tickets.
func (h *Handler) listTickets(r *http.Request) (any, error) {
	userID, err := requestUserID(r)
	if err != nil {
		return nil, err
	}

	tickets, err := h.services.TicketService.ListTickets(r.Context(), userID)
	if err != nil {
		return nil, err
	}

	return models.NewAPIResponse(tickets), nil
}

// getTicket handles GET /api/tickets/{ticketNo}.
func (h *Handler) getTicket(r *http.Request) (any, error) {
	userID, err := requestUserID(r)
	if err != nil {
		return nil, err
	}

	ticket, err := h.services.TicketService.GetTicket(r.Context(), userID, chi.URLParam(r, ticketNoParam))
	if err != nil {
		return nil, err
	}

	return models.NewAPIResponse(ticket), nil
}

// cancel handles DELETE /api/tickets/{ticketNo}.
func (h *Handler) cancel(r *http.Request) (any, error) {
	userID, err := requestUserID(r)
	if err != nil {
		return nil, err
	}

	ticket, err := h.services.TicketService.Cancel(r.Context(), userID, chi.URLParam(r, ticketNoParam))
	if err != nil {
		return nil, err
	}

	return models.NewAPIResponse(ticket), nil
}
