package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/fieldservice/internal/config"
	"github.com/GlebRadaev/fieldservice/internal/domain"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Dispatcher, *MockRepo, *MockPublisher) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	publisher := NewMockPublisher(ctrl)

	cfg := &config.Config{EventsInterval: 10 * time.Millisecond, EventsBatch: 50}
	d := New(cfg, repo, publisher)
	d.now = func() time.Time { return fixedNow }
	t.Cleanup(d.workerPool.Close)
	return d, repo, publisher
}

func event(id string, typ domain.EventType) domain.OrderEvent {
	engineerID := 7
	return domain.OrderEvent{
		ID:         id,
		OrderID:    3,
		Type:       typ,
		ActorID:    2,
		EngineerID: &engineerID,
		Status:     domain.StatusAssigned,
		CreatedAt:  fixedNow,
	}
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "fieldservice.order.nominated", Subject(domain.EventNominated))
	assert.Equal(t, "fieldservice.order.deleted", Subject(domain.EventDeleted))
}

func TestDispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes and marks each event", func(t *testing.T) {
		d, repo, publisher := NewMock(t)
		repo.EXPECT().FindUnpublished(ctx, 50).Return([]domain.OrderEvent{
			event("e1", domain.EventNominated),
			event("e2", domain.EventAccepted),
		}, nil)
		publisher.EXPECT().Publish("fieldservice.order.nominated", gomock.Any()).DoAndReturn(
			func(_ string, data []byte) error {
				var got map[string]any
				require.NoError(t, json.Unmarshal(data, &got))
				assert.Equal(t, "e1", got["id"])
				assert.Equal(t, "order.nominated", got["type"])
				assert.EqualValues(t, 7, got["engineerId"])
				assert.NotContains(t, got, "PublishedAt")
				return nil
			})
		publisher.EXPECT().Publish("fieldservice.order.accepted", gomock.Any()).Return(nil)
		repo.EXPECT().MarkPublished(ctx, "e1", fixedNow).Return(nil)
		repo.EXPECT().MarkPublished(ctx, "e2", fixedNow).Return(nil)

		assert.Equal(t, 2, d.dispatch(ctx))
	})

	t.Run("fetch error", func(t *testing.T) {
		d, repo, _ := NewMock(t)
		repo.EXPECT().FindUnpublished(ctx, 50).Return(nil, errors.New("db error"))

		assert.Zero(t, d.dispatch(ctx))
	})

	t.Run("publish retried then left pending", func(t *testing.T) {
		d, repo, publisher := NewMock(t)
		repo.EXPECT().FindUnpublished(ctx, 50).Return([]domain.OrderEvent{event("e1", domain.EventCompleted)}, nil)
		publisher.EXPECT().Publish("fieldservice.order.completed", gomock.Any()).Return(errors.New("no responders")).Times(maxRetries)

		assert.Zero(t, d.dispatch(ctx))
	})

	t.Run("publish recovers on retry", func(t *testing.T) {
		d, repo, publisher := NewMock(t)
		repo.EXPECT().FindUnpublished(ctx, 50).Return([]domain.OrderEvent{event("e1", domain.EventReset)}, nil)
		gomock.InOrder(
			publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("timeout")),
			publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil),
		)
		repo.EXPECT().MarkPublished(ctx, "e1", fixedNow).Return(nil)

		assert.Equal(t, 1, d.dispatch(ctx))
	})

	t.Run("mark error keeps event pending", func(t *testing.T) {
		d, repo, publisher := NewMock(t)
		repo.EXPECT().FindUnpublished(ctx, 50).Return([]domain.OrderEvent{event("e1", domain.EventNominated)}, nil)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().MarkPublished(ctx, "e1", fixedNow).Return(errors.New("db error"))

		assert.Zero(t, d.dispatch(ctx))
	})

	t.Run("in-flight events are skipped", func(t *testing.T) {
		d, repo, _ := NewMock(t)
		d.inFlight.Store("e1", struct{}{})
		repo.EXPECT().FindUnpublished(ctx, 50).Return([]domain.OrderEvent{event("e1", domain.EventNominated)}, nil)

		assert.Zero(t, d.dispatch(ctx))
	})

	t.Run("pool rejects task", func(t *testing.T) {
		d, repo, _ := NewMock(t)
		pool := NewMockWorkerPoolI(gomock.NewController(t))
		d.workerPool = pool
		repo.EXPECT().FindUnpublished(ctx, 50).Return([]domain.OrderEvent{event("e1", domain.EventNominated)}, nil)
		pool.EXPECT().AddTask(ctx, gomock.Any()).Return(context.Canceled)

		assert.Zero(t, d.dispatch(ctx))
		_, loaded := d.inFlight.Load("e1")
		assert.False(t, loaded)
	})
}

func TestStart(t *testing.T) {
	d, repo, _ := NewMock(t)
	repo.EXPECT().FindUnpublished(gomock.Any(), 50).Return(nil, nil).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)
	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)
}

func TestLogPublisher(t *testing.T) {
	d := New(&config.Config{EventsInterval: time.Second, EventsBatch: 1}, nil, nil)
	defer d.workerPool.Close()
	assert.IsType(t, LogPublisher{}, d.publisher)
	assert.NoError(t, d.publisher.Publish("fieldservice.order.accepted", []byte(`{}`)))
}
