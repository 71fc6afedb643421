package service

import (
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/fieldservice/internal/config"
	"github.com/GlebRadaev/fieldservice/internal/pg"
	"github.com/GlebRadaev/fieldservice/internal/repo"
	"github.com/GlebRadaev/fieldservice/internal/service/authservice"
	"github.com/GlebRadaev/fieldservice/internal/service/orderservice"
	"github.com/GlebRadaev/fieldservice/internal/service/rateservice"
	"github.com/GlebRadaev/fieldservice/internal/service/sessionservice"
	"github.com/GlebRadaev/fieldservice/internal/service/statsservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	repos := repo.New(mockDB, pg.NewMockTXManager(ctrl))
	cfg := &config.Config{JWTSecret: "secret", TokenTTL: time.Hour, StatsCacheTTL: time.Minute}

	services := New(cfg, repos, statsservice.NewMockCache(ctrl))

	assert.IsType(t, &authservice.Service{}, services.AuthService)
	assert.IsType(t, &orderservice.Service{}, services.OrderService)
	assert.IsType(t, &sessionservice.Service{}, services.SessionService)
	assert.IsType(t, &rateservice.Service{}, services.RateService)
	assert.IsType(t, &statsservice.Service{}, services.StatsService)
	assert.Same(t, services.AuthService, services.Admin)
	assert.NotNil(t, services.Tokens)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
