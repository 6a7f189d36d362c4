package handler

import (
	"encoding/json"
	"net/http"

	"upsc_portal/internal/api/middleware"
	"upsc_portal/internal/app/service"
	"upsc_portal/internal/common"

	"github.com/go-chi/chi/v5"
)

type ArticleHandler struct {
	articleService *service.ArticleService
}

func NewArticleHandler(articleService *service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// RegisterRoutes mounts under /article. Reads are public; every write is
// admin-scoped.
func (h *ArticleHandler) RegisterRoutes(r chi.Router, auth *middleware.Auth) {
	r.Get("/{slug}", h.listByParent)
	r.Get("/slug/{slug}", h.getBySlug)
	r.Get("/parentART/{slug}", h.getParent)

	r.Group(func(admin chi.Router) {
		admin.Use(auth.Admin)
		admin.Post("/", h.create)
		admin.Put("/{id}", h.update)
		admin.Put("/parent/{slug}", h.relink)
		admin.Delete("/{id}", h.remove)

		admin.Post("/parentART", h.createParent)
		admin.Put("/parentART/{slug}", h.updateParent)
		admin.Delete("/parentART/{slug}", h.removeParent)
	})
}

// listByParent returns the child-article summaries of a parent topic.
func (h *ArticleHandler) listByParent(w http.ResponseWriter, r *http.Request) {
	parentSlug := chi.URLParam(r, "slug")

	summaries, err := h.articleService.ListByParent(r.Context(), parentSlug)
	if err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusOK, summaries)
}

func (h *ArticleHandler) getBySlug(w http.ResponseWriter, r *http.Request) {
	articleSlug := chi.URLParam(r, "slug")

	article, err := h.articleService.GetBySlug(r.Context(), articleSlug)
	if err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusOK, article)
}

func (h *ArticleHandler) create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, common.Errorf("invalid request payload: %w", common.ErrBadRequest))
		return
	}

	article, err := h.articleService.Create(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusCreated, article)
}

func (h *ArticleHandler) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req service.UpdateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, common.Errorf("invalid request payload: %w", common.ErrBadRequest))
		return
	}

	article, err := h.articleService.Update(r.Context(), id, req)
	if err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusOK, article)
}

type relinkRequest struct {
	ParentSlug string `json:"parentSlug"`
}

func (h *ArticleHandler) relink(w http.ResponseWriter, r *http.Request) {
	articleSlug := chi.URLParam(r, "slug")

	var req relinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, common.Errorf("invalid request payload: %w", common.ErrBadRequest))
		return
	}
	if req.ParentSlug == "" {
		common.RespondWithError(w, common.Errorf("parentSlug is required: %w", common.ErrValidation))
		return
	}

	if err := h.articleService.Relink(r.Context(), articleSlug, req.ParentSlug); err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusOK, map[string]string{"slug": articleSlug, "parent_slug": req.ParentSlug})
}

func (h *ArticleHandler) remove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.articleService.Delete(r.Context(), id); err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusOK, map[string]string{"id": id})
}

func (h *ArticleHandler) getParent(w http.ResponseWriter, r *http.Request) {
	parentSlug := chi.URLParam(r, "slug")

	parent, err := h.articleService.GetParent(r.Context(), parentSlug)
	if err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusOK, parent)
}

func (h *ArticleHandler) createParent(w http.ResponseWriter, r *http.Request) {
	var req service.ParentArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, common.Errorf("invalid request payload: %w", common.ErrBadRequest))
		return
	}

	parent, err := h.articleService.CreateParent(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusCreated, parent)
}

func (h *ArticleHandler) updateParent(w http.ResponseWriter, r *http.Request) {
	parentSlug := chi.URLParam(r, "slug")

	var req service.ParentArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, common.Errorf("invalid request payload: %w", common.ErrBadRequest))
		return
	}

	parent, err := h.articleService.UpdateParent(r.Context(), parentSlug, req)
	if err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusOK, parent)
}

func (h *ArticleHandler) removeParent(w http.ResponseWriter, r *http.Request) {
	parentSlug := chi.URLParam(r, "slug")

	if err := h.articleService.DeleteParent(r.Context(), parentSlug); err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusOK, map[string]string{"slug": parentSlug})
}
