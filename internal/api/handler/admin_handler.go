package handler

import (
	"encoding/json"
	"net/http"

	"upsc_portal/internal/api/middleware"
	"upsc_portal/internal/app/service"
	"upsc_portal/internal/common"

	"github.com/go-chi/chi/v5"
)

type AdminHandler struct {
	adminService *service.AdminService
}

func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func (h *AdminHandler) RegisterRoutes(r chi.Router, auth *middleware.Auth) {
	r.Post("/admin/signup", h.signup)
	r.Post("/admin", h.login)
	r.With(auth.Admin).Get("/admin", h.details)
}

func (h *AdminHandler) signup(w http.ResponseWriter, r *http.Request) {
	var req service.AdminCredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, common.Errorf("invalid request payload: %w", common.ErrBadRequest))
		return
	}

	admin, err := h.adminService.Register(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusCreated, admin)
}

func (h *AdminHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.AdminCredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, common.Errorf("invalid request payload: %w", common.ErrBadRequest))
		return
	}

	token, err := h.adminService.Login(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusOK, map[string]string{"token": token})
}

func (h *AdminHandler) details(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.GetAdminIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, common.ErrUnauthorized)
		return
	}

	admin, err := h.adminService.Details(r.Context(), id)
	if err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusOK, admin)
}
