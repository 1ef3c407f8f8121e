package routes

import (
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/mbolis/quick-forms/app"
	"github.com/mbolis/quick-forms/routes/middlewares"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middlewares.RequestID, middlewares.RequestLogger, middleware.Recoverer)
	root.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	root.Mount("/api", apiRouter(app))
	root.Mount("/", servePublicFiles())

	return root
}

func apiRouter(app app.App) http.Handler {
	api := chi.NewRouter()

	api.Route("/forms", func(r chi.Router) {
		r.Get("/", ListForms(app))
		r.Post("/", CreateForm(app))

		// id is parsed by the handlers: a non-numeric value is a 400, not a 404
		r.Get("/{id}", GetForm(app))
		r.Put("/{id}", UpdateForm(app))
		r.Delete("/{id}", DeleteForm(app))

		r.Post("/{id}/responses", SubmitResponse(app))
		r.Get("/{id}/responses", ListResponses(app))
	})

	return api
}

func servePublicFiles() http.Handler {
	return http.FileServer(http.Dir("public"))
}
