package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/fieldservice/internal/config"
)

type ApplicationSuite struct {
	suite.Suite
	app       *Application
	testError error
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestOptionalConnectionsDisabled() {
	cfg := &config.Config{}

	statsCache, err := s.app.connectCache(context.Background(), cfg)
	s.Require().NoError(err)
	s.Nil(statsCache)
	s.Nil(s.app.redis)

	publisher, err := s.app.connectNats(cfg)
	s.Require().NoError(err)
	s.Nil(publisher)
	s.Nil(s.app.nats)
}

func (s *ApplicationSuite) TestConnectCacheUnreachable() {
	_, err := s.app.connectCache(context.Background(), &config.Config{RedisAddress: "127.0.0.1:1"})

	s.Require().Error(err)
	s.Contains(err.Error(), "can't connect to redis")
}

func (s *ApplicationSuite) TestConnectNatsUnreachable() {
	_, err := s.app.connectNats(&config.Config{NatsURL: "nats://127.0.0.1:1"})

	s.Require().Error(err)
	s.Contains(err.Error(), "can't connect to nats")
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}
