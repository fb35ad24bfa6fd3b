package http

import (
	"net/http"

	"github.com/project/ticket-service/models"
)

// health handles GET /api/health.
func (h *Handler) health(r *http.Request) (any, error) {
	return models.NewAPIResponse(h.services.AppInfoService.Health(r.Context())), nil
}
