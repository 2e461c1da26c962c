package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/camara-backend/internal/transport/middleware"
)

// Handlers groups every REST handler the router mounts.
type Handlers struct {
	Health    *HealthHandler
	Public    *PublicHandler
	Councilor *CouncilorHandler
	Session   *SessionHandler
	Document  *DocumentHandler
	Matter    *MatterHandler
	Voting    *VotingHandler
	Speech    *SpeechHandler
	Audit     *AuditHandler
	Metrics   http.Handler
}

// RouterConfig holds the middleware applied around the routes. Global runs
// on every request in order. PublicLimit and CouncilorLimit are per-group
// budgets; nil disables them.
type RouterConfig struct {
	Global         []middleware.Middleware
	PublicLimit    middleware.Middleware
	CouncilorLimit middleware.Middleware
}

// NewRouter builds the chi router for the whole HTTP surface.
func NewRouter(h Handlers, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Chain(cfg.Global...))

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)
	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Use(middleware.Chain(cfg.PublicLimit))
		r.Get("/current-session", h.Public.CurrentSession)
		r.Get("/speech-requests", h.Public.SpeechQueue)
		r.Get("/attendance", h.Public.Attendance)
	})

	r.Route("/api/councilor", func(r chi.Router) {
		r.Use(middleware.Chain(cfg.CouncilorLimit))
		r.Post("/presence", h.Councilor.Presence)
		r.Get("/status", h.Councilor.Status)
		r.Post("/votes", h.Councilor.Vote)
		r.Post("/speech-requests", h.Councilor.SubmitSpeech)
	})

	r.Route("/api/sessions", func(r chi.Router) {
		r.Get("/", h.Session.List)
		r.Post("/", h.Session.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Session.Get)
			r.Patch("/", h.Session.Update)
			r.Delete("/", h.Session.Delete)
			r.Put("/phase", h.Session.SetPhase)
			r.Post("/start", h.Session.Start)
			r.Post("/close", h.Session.Close)
			r.Put("/attendance", h.Session.SetAttendance)
			r.Put("/speech-requests-toggle", h.Session.SetSpeechRequests)
			r.Post("/timer", h.Session.StartTimer)
			r.Delete("/timer", h.Session.StopTimer)

			r.Get("/documents", h.Document.List)
			r.Post("/documents", h.Document.Create)
			r.Post("/matters/{matterId}", h.Matter.Attach)
			r.Delete("/matters/{matterId}", h.Matter.Detach)
			r.Get("/speech-requests", h.Speech.List)
		})
	})

	r.Route("/api/documents/{id}", func(r chi.Router) {
		r.Get("/", h.Document.Get)
		r.Patch("/", h.Document.Update)
		r.Delete("/", h.Document.Delete)
		r.Post("/agenda", h.Document.AddToAgenda)
		r.Delete("/agenda", h.Document.RemoveFromAgenda)
	})
	r.Put("/api/reading", h.Document.SetReading)

	r.Route("/api/matters", func(r chi.Router) {
		r.Get("/", h.Matter.List)
		r.Post("/", h.Matter.Create)
		r.Get("/{id}", h.Matter.Get)
		r.Patch("/{id}", h.Matter.Update)
	})

	r.Route("/api/voting", func(r chi.Router) {
		r.Post("/start", h.Voting.Start)
		r.Post("/end", h.Voting.End)
		r.Get("/{itemType}/{itemId}/tally", h.Voting.Tally)
		r.Get("/{itemType}/{itemId}/result", h.Voting.Result)
	})

	r.Route("/api/speech-requests", func(r chi.Router) {
		r.Post("/", h.Councilor.SubmitSpeech)
		r.Route("/{id}", func(r chi.Router) {
			r.Delete("/", h.Speech.Delete)
			r.Post("/approve", h.Speech.Approve)
			r.Post("/reject", h.Speech.Reject)
			r.Put("/order", h.Speech.Reorder)
			r.Post("/start", h.Speech.Start)
			r.Post("/end", h.Speech.End)
		})
	})

	r.Get("/api/audit", h.Audit.List)

	return r
}
