package handler

import (
	"encoding/json"
	"net/http"

	"upsc_portal/internal/app/service"
	"upsc_portal/internal/common"

	"github.com/go-chi/chi/v5"
)

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) RegisterRoutes(r chi.Router) {
	r.Post("/formsubmit", h.submit)
}

func (h *ContactHandler) submit(w http.ResponseWriter, r *http.Request) {
	var req service.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, common.Errorf("invalid request payload: %w", common.ErrBadRequest))
		return
	}

	msg, err := h.contactService.Submit(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusOK, msg)
}
