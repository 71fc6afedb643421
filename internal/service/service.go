package service

import (
	"context"

	"github.com/GlebRadaev/fieldservice/internal/config"
	"github.com/GlebRadaev/fieldservice/internal/handlers/auth"
	"github.com/GlebRadaev/fieldservice/internal/handlers/orders"
	"github.com/GlebRadaev/fieldservice/internal/handlers/rates"
	"github.com/GlebRadaev/fieldservice/internal/handlers/sessions"
	"github.com/GlebRadaev/fieldservice/internal/handlers/statistics"
	"github.com/GlebRadaev/fieldservice/internal/repo"
	"github.com/GlebRadaev/fieldservice/internal/service/authservice"
	"github.com/GlebRadaev/fieldservice/internal/service/orderservice"
	"github.com/GlebRadaev/fieldservice/internal/service/rateservice"
	"github.com/GlebRadaev/fieldservice/internal/service/sessionservice"
	"github.com/GlebRadaev/fieldservice/internal/service/statsservice"

	pkgauth "github.com/GlebRadaev/fieldservice/pkg/auth"
)

// AdminSeeder creates the bootstrap administrator.
type AdminSeeder interface {
	EnsureAdmin(ctx context.Context, login, password string) error
}

type Services struct {
	AuthService    auth.Service
	OrderService   orders.Service
	SessionService sessions.Service
	RateService    rates.Service
	StatsService   statistics.Service
	Admin          AdminSeeder
	Tokens         pkgauth.JWTServiceInterface
}

// New wires the services. A nil cache disables statistics caching.
func New(cfg *config.Config, repos *repo.Repositories, cache statsservice.Cache) *Services {
	tokens := pkgauth.NewJWTService(cfg.JWTSecret)
	rateService := rateservice.New(repos.RateRepo, rateservice.DefaultsFromConfig(cfg.Rates))
	sessionService := sessionservice.New(repos.SessionRepo, repos.OrderRepo, rateService, repos.TxManager, cfg.Ledger)
	orderService := orderservice.New(repos.OrderRepo, sessionService, repos.EventRepo, rateService, repos.TxManager)
	statsService := statsservice.New(repos.StatsRepo, cache, cfg.StatsCacheTTL)
	authService := authservice.New(repos.UserRepo, &pkgauth.HashService{}, tokens, cfg.TokenTTL)

	return &Services{
		AuthService:    authService,
		OrderService:   orderService,
		SessionService: sessionService,
		RateService:    rateService,
		StatsService:   statsService,
		Admin:          authService,
		Tokens:         tokens,
	}
}
