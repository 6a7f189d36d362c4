package api

import (
	"net/http"
	"time"

	"upsc_portal/internal/api/handler"
	"upsc_portal/internal/api/middleware"
	"upsc_portal/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
	"go.uber.org/zap"
)

func NewRouter(
	log *zap.Logger,
	issuer *security.TokenIssuer,
	auth *middleware.Auth,
	userHandler *handler.UserHandler,
	adminHandler *handler.AdminHandler,
	articleHandler *handler.ArticleHandler,
	datedHandler *handler.DatedArticleHandler,
	contactHandler *handler.ContactHandler,
) http.Handler {
	r := chi.NewRouter()

	// Base middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifies any bearer token in "Authorization: Bearer T" and puts claims
	// in the request context. Routes opt in to the store-membership check via
	// auth.User / auth.Admin.
	r.Use(jwtauth.Verifier(issuer.JWTAuth()))

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Get("/healthCheck", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"success": true, "data": "Working fine!"}`))
		})

		userHandler.RegisterRoutes(v1, auth)
		adminHandler.RegisterRoutes(v1, auth)
		contactHandler.RegisterRoutes(v1)

		v1.Route("/article", func(ar chi.Router) {
			articleHandler.RegisterRoutes(ar, auth)
			datedHandler.RegisterRoutes(ar, auth)
		})
	})

	return r
}
