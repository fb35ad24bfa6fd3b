// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/project/ticket-service/internal/apperror"
)

// routeNotFound answers unregistered paths and unsupported methods alike
// with a 404 RouteNotFound envelope.
func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	err := apperror.New(apperror.RouteNotFound, r.Method, r.URL.Path)
	h.writeResponse(w, r, errorResponse(err.Code.Code, err.Message()), err.HTTPStatus())
}
