package handler

import (
	"encoding/json"
	"net/http"

	"upsc_portal/internal/api/middleware"
	"upsc_portal/internal/app/service"
	"upsc_portal/internal/common"

	"github.com/go-chi/chi/v5"
)

type DatedArticleHandler struct {
	datedService *service.DatedArticleService
}

func NewDatedArticleHandler(datedService *service.DatedArticleService) *DatedArticleHandler {
	return &DatedArticleHandler{datedService: datedService}
}

// RegisterRoutes mounts under /article, alongside the plain article routes.
func (h *DatedArticleHandler) RegisterRoutes(r chi.Router, auth *middleware.Auth) {
	r.Get("/daily/{date}/{type}", h.listForDate)

	r.Group(func(admin chi.Router) {
		admin.Use(auth.Admin)
		admin.Post("/daily", h.create)
		admin.Put("/daily/{id}", h.update)
		admin.Delete("/daily/{id}", h.remove)
	})
}

func (h *DatedArticleHandler) listForDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	typ := chi.URLParam(r, "type")

	articles, err := h.datedService.ListForDate(r.Context(), date, typ)
	if err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusOK, articles)
}

func (h *DatedArticleHandler) create(w http.ResponseWriter, r *http.Request) {
	var req service.DatedArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, common.Errorf("invalid request payload: %w", common.ErrBadRequest))
		return
	}

	article, err := h.datedService.Create(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusCreated, article)
}

func (h *DatedArticleHandler) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req service.DatedArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, common.Errorf("invalid request payload: %w", common.ErrBadRequest))
		return
	}

	article, err := h.datedService.Update(r.Context(), id, req)
	if err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusOK, article)
}

func (h *DatedArticleHandler) remove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.datedService.Delete(r.Context(), id); err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusOK, map[string]string{"id": id})
}
