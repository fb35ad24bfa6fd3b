package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/project/ticket-service/internal/validators"
	"github.com/project/ticket-service/models"
)

const eventIDParam = "eventID"

// listEvents handles GET /api/events?page=&size=.
func (h *Handler) listEvents(r *http.Request) (any, error) {
	page, err := queryInt(r, "page", models.DefaultPage.Page)
	if err != nil {
		return nil, err
	}
	size, err := queryInt(r, "size", models.DefaultPage.Size)
	if err != nil {
		return nil, err
	}

	result, err := h.services.EventService.ListEvents(r.Context(), models.Page{Page: page, Size: size})
	if err != nil {
		return nil, err
	}

	return models.NewAPIResponse(result), nil
}

// getEvent handles GET /api/events/{eventID}.
func (h *Handler) getEvent(r *http.Request) (any, error) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, eventIDParam), 10, 64)
	if err != nil {
		return nil, validators.NewViolationError(models.Violation{Field: "eventId", Message: "must be a number"})
	}

	event, err := h.services.EventService.GetEvent(r.Context(), eventID)
	if err != nil {
		return nil, err
	}

	return models.NewAPIResponse(event), nil
}

// createEvent handles POST /api/events.
func (h *Handler) createEvent(r *http.Request) (any, error) {
	var req models.CreateEventRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}

	event, err := h.services.EventService.CreateEvent(r.Context(), req)
	if err != nil {
		return nil, err
	}

	return models.NewAPIResponse(event), nil
}
