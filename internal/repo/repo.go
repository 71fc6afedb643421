package repo

import (
	"github.com/GlebRadaev/fieldservice/internal/events"
	"github.com/GlebRadaev/fieldservice/internal/pg"
	eventrepo "github.com/GlebRadaev/fieldservice/internal/repo/event-repo"
	orderrepo "github.com/GlebRadaev/fieldservice/internal/repo/order-repo"
	raterepo "github.com/GlebRadaev/fieldservice/internal/repo/rate-repo"
	sessionrepo "github.com/GlebRadaev/fieldservice/internal/repo/session-repo"
	statsrepo "github.com/GlebRadaev/fieldservice/internal/repo/stats-repo"
	userrepo "github.com/GlebRadaev/fieldservice/internal/repo/user-repo"
	"github.com/GlebRadaev/fieldservice/internal/service/authservice"
	"github.com/GlebRadaev/fieldservice/internal/service/orderservice"
	"github.com/GlebRadaev/fieldservice/internal/service/rateservice"
	"github.com/GlebRadaev/fieldservice/internal/service/sessionservice"
	"github.com/GlebRadaev/fieldservice/internal/service/statsservice"
)

// EventRepo is the outbox as seen by both its writer and its dispatcher.
type EventRepo interface {
	orderservice.EventRepo
	events.Repo
}

type Repositories struct {
	UserRepo    authservice.Repo
	OrderRepo   orderservice.Repo
	SessionRepo sessionservice.Repo
	RateRepo    rateservice.Repo
	StatsRepo   statsservice.Repo
	EventRepo   EventRepo
	TxManager   pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn),
		OrderRepo:   orderrepo.New(conn),
		SessionRepo: sessionrepo.New(conn),
		RateRepo:    raterepo.New(conn, txManager),
		StatsRepo:   statsrepo.New(conn),
		EventRepo:   eventrepo.New(conn),
		TxManager:   txManager,
	}
}
