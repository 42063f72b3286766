package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the JSON API. Handlers are thin adapters over the domain
// services; field validation beyond decoding is the client's job.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/user", h.GetUser)
		r.Get("/stats", h.GetStats)

		r.Route("/ideas", func(r chi.Router) {
			r.Get("/", h.ListIdeas)
			r.Post("/", h.CreateIdea)
			r.Patch("/{ideaID}", h.UpdateIdea)
			r.Delete("/{ideaID}", h.DeleteIdea)
		})

		r.Get("/investments", h.ListInvestments)
		r.Post("/investments", h.Invest)
		r.Get("/leaderboard", h.GetLeaderboard)

		r.Route("/chat", func(r chi.Router) {
			r.Get("/messages", h.ListChatMessages)
			r.Post("/messages", h.SendChatMessage)
		})

		r.Route("/pitch", func(r chi.Router) {
			r.Get("/questions", h.ListQuestions)
			r.Get("/sessions", h.ListPitchSessions)
			r.Post("/sessions", h.StartPitchSession)
			r.Get("/sessions/{sessionID}", h.GetPitchSession)
			r.Post("/sessions/{sessionID}/answers", h.SubmitPitchAnswer)
		})

		r.Route("/canvas", func(r chi.Router) {
			r.Post("/{ideaID}", h.GenerateCanvas)
			r.Get("/{ideaID}/document", h.GetCanvasDocument)
		})

		r.Route("/recruitment", func(r chi.Router) {
			r.Get("/posts", h.ListRecruitmentPosts)
			r.Post("/posts", h.CreateRecruitmentPost)
			r.Post("/posts/{postID}/applications", h.SubmitApplication)
		})
	})

	return r
}
