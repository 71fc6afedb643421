package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/fieldservice/docs"
	authhandlers "github.com/GlebRadaev/fieldservice/internal/handlers/auth"
	ordershandlers "github.com/GlebRadaev/fieldservice/internal/handlers/orders"
	rateshandlers "github.com/GlebRadaev/fieldservice/internal/handlers/rates"
	sessionshandlers "github.com/GlebRadaev/fieldservice/internal/handlers/sessions"
	statisticshandlers "github.com/GlebRadaev/fieldservice/internal/handlers/statistics"
	"github.com/GlebRadaev/fieldservice/internal/service"
	"github.com/GlebRadaev/fieldservice/pkg/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	SwitchRole(w http.ResponseWriter, r *http.Request)
	ResetRole(w http.ResponseWriter, r *http.Request)
	CreateUser(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	AssignEngineer(w http.ResponseWriter, r *http.Request)
	AcceptOrder(w http.ResponseWriter, r *http.Request)
	StartOrder(w http.ResponseWriter, r *http.Request)
	CompleteWork(w http.ResponseWriter, r *http.Request)
	CompleteOrder(w http.ResponseWriter, r *http.Request)
	ResetOrder(w http.ResponseWriter, r *http.Request)
	ReopenOrder(w http.ResponseWriter, r *http.Request)
	DeletionPreview(w http.ResponseWriter, r *http.Request)
	DeleteOrder(w http.ResponseWriter, r *http.Request)
}

type SessionHandler interface {
	LogWork(w http.ResponseWriter, r *http.Request)
	ListWork(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	UpdateWork(w http.ResponseWriter, r *http.Request)
	DeleteWork(w http.ResponseWriter, r *http.Request)
}

type RateHandler interface {
	PreviewRates(w http.ResponseWriter, r *http.Request)
	SetProfile(w http.ResponseWriter, r *http.Request)
	SetOverride(w http.ResponseWriter, r *http.Request)
	DeactivateOverride(w http.ResponseWriter, r *http.Request)
	SetOrganizationRates(w http.ResponseWriter, r *http.Request)
}

type StatisticsHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	Organization(w http.ResponseWriter, r *http.Request)
	EngineerDetailed(w http.ResponseWriter, r *http.Request)
	Engineers(w http.ResponseWriter, r *http.Request)
	ExportEngineers(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	OrderHandler      OrderHandler
	SessionHandler    SessionHandler
	RateHandler       RateHandler
	StatisticsHandler StatisticsHandler
	Tokens            auth.JWTServiceInterface
	CORSOrigins       []string
}

func New(s *service.Services, corsOrigins []string) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		OrderHandler:      ordershandlers.New(s.OrderService),
		SessionHandler:    sessionshandlers.New(s.SessionService),
		RateHandler:       rateshandlers.New(s.RateService),
		StatisticsHandler: statisticshandlers.New(s.StatsService),
		Tokens:            s.Tokens,
		CORSOrigins:       corsOrigins,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins: h.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
			ExposedHeaders: []string{"Authorization", "Content-Disposition"},
			MaxAge:         300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Post("/auth/login", h.AuthHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(h.Tokens))

		r.Post("/auth/switch-role", h.AuthHandler.SwitchRole)
		r.Post("/auth/reset-role", h.AuthHandler.ResetRole)
		r.Post("/users", h.AuthHandler.CreateUser)

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.OrderHandler.CreateOrder)
			r.Get("/", h.OrderHandler.GetOrders)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.OrderHandler.GetOrder)
				r.Delete("/", h.OrderHandler.DeleteOrder)
				r.Get("/deletion-preview", h.OrderHandler.DeletionPreview)
				r.Post("/assign-engineer", h.OrderHandler.AssignEngineer)
				r.Post("/accept", h.OrderHandler.AcceptOrder)
				r.Post("/start", h.OrderHandler.StartOrder)
				r.Post("/complete-work", h.OrderHandler.CompleteWork)
				r.Post("/complete", h.OrderHandler.CompleteOrder)
				r.Post("/reset", h.OrderHandler.ResetOrder)
				r.Post("/reopen", h.OrderHandler.ReopenOrder)
				r.Post("/work-sessions", h.SessionHandler.LogWork)
				r.Get("/work-sessions", h.SessionHandler.ListWork)
				r.Get("/work-sessions/summary", h.SessionHandler.Summary)
			})
		})
		r.Route("/work-sessions/{id}", func(r chi.Router) {
			r.Patch("/", h.SessionHandler.UpdateWork)
			r.Delete("/", h.SessionHandler.DeleteWork)
		})

		r.Route("/engineers/{id}", func(r chi.Router) {
			r.Get("/rates", h.RateHandler.PreviewRates)
			r.Put("/profile", h.RateHandler.SetProfile)
			r.Post("/overrides", h.RateHandler.SetOverride)
		})
		r.Delete("/overrides/{id}", h.RateHandler.DeactivateOverride)
		r.Put("/organizations/{id}/rates", h.RateHandler.SetOrganizationRates)

		r.Route("/statistics", func(r chi.Router) {
			r.Get("/monthly", h.StatisticsHandler.Monthly)
			r.Get("/organization", h.StatisticsHandler.Organization)
			r.Get("/engineer/detailed", h.StatisticsHandler.EngineerDetailed)
			r.Get("/admin/engineers", h.StatisticsHandler.Engineers)
			r.Get("/admin/engineers/export", h.StatisticsHandler.ExportEngineers)
		})
	})

	return r
}
