package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/notinrange/blackrose-task-backend/internal/middleware"
)

func (h *Handler) Routes() http.Handler {
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.Origins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Post("/register", h.Register)
	router.Post("/login", h.Login)

	router.Route("/csv", func(r chi.Router) {
		r.Use(middleware.Auth(h.cfg.JWTSecret))
		r.Get("/", h.ListRecords)
		r.Post("/", h.CreateRecord)
		r.Put("/", h.UpdateRecord)
		r.Delete("/", h.DeleteRecord)
		r.Post("/restore", h.RestoreRecords)
	})

	router.With(middleware.Auth(h.cfg.JWTSecret)).Get("/numbers", h.ListNumbers)
	// Token arrives as a query parameter on the websocket handshake, so the
	// bearer middleware does not apply here.
	router.Get("/ws/numbers", h.WSNumbers)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return router
}
