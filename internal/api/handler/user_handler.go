package handler

import (
	"encoding/json"
	"net/http"

	"upsc_portal/internal/api/middleware"
	"upsc_portal/internal/app/service"
	"upsc_portal/internal/common"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	userService  *service.UserService
	resetService *service.ResetService
}

func NewUserHandler(userService *service.UserService, resetService *service.ResetService) *UserHandler {
	return &UserHandler{userService: userService, resetService: resetService}
}

func (h *UserHandler) RegisterRoutes(r chi.Router, auth *middleware.Auth) {
	r.Post("/signup", h.signup)
	r.Route("/user", func(ur chi.Router) {
		ur.Post("/", h.login)
		ur.Group(func(authed chi.Router) {
			authed.Use(auth.User)
			authed.Get("/", h.details)
			authed.Put("/", h.updatePassword)
			authed.Delete("/", h.remove)
		})
	})
	r.With(auth.User).Post("/resetpassword", h.requestReset)
	r.Put("/resetpassword/{token}", h.confirmReset)
}

func (h *UserHandler) signup(w http.ResponseWriter, r *http.Request) {
	var req service.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, common.Errorf("invalid request payload: %w", common.ErrBadRequest))
		return
	}

	user, err := h.userService.Register(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusCreated, user)
}

func (h *UserHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, common.Errorf("invalid request payload: %w", common.ErrBadRequest))
		return
	}

	// The whole bearer-prefixed string is the payload; clients store it as-is.
	token, err := h.userService.Login(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusOK, token)
}

func (h *UserHandler) details(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, common.ErrUnauthorized)
		return
	}

	user, err := h.userService.Details(r.Context(), id)
	if err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusOK, user)
}

func (h *UserHandler) updatePassword(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, common.ErrUnauthorized)
		return
	}

	var req service.UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, common.Errorf("invalid request payload: %w", common.ErrBadRequest))
		return
	}

	if err := h.userService.UpdatePassword(r.Context(), id, req); err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusOK, map[string]string{"id": id})
}

func (h *UserHandler) remove(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, common.ErrUnauthorized)
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusOK, map[string]string{"id": id})
}

type resetRequest struct {
	Email string `json:"email"`
}

type confirmResetRequest struct {
	Password string `json:"password"`
}

func (h *UserHandler) requestReset(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, common.Errorf("invalid request payload: %w", common.ErrBadRequest))
		return
	}

	token, err := h.resetService.Request(r.Context(), req.Email)
	if err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusOK, map[string]string{"token": token})
}

func (h *UserHandler) confirmReset(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var req confirmResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, common.Errorf("invalid request payload: %w", common.ErrBadRequest))
		return
	}

	if err := h.resetService.Confirm(r.Context(), token, req.Password); err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusOK, map[string]string{"status": "password updated"})
}
