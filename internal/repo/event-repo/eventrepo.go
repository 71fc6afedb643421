package eventrepo

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/fieldservice/internal/domain"
	"github.com/GlebRadaev/fieldservice/internal/pg"
)

// Repository is the transactional outbox of order events. Events are written
// in the same transaction as the transition that caused them.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Insert(ctx context.Context, e *domain.OrderEvent) error {
	query := `
        INSERT INTO order_events (id, order_id, type, actor_id, engineer_id, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at
    `
	err := r.db.QueryRow(ctx, query, e.ID, e.OrderID, e.Type, e.ActorID, e.EngineerID, e.Status).
		Scan(&e.CreatedAt)
	if err != nil {
		zap.L().Error("can't save order event", zap.String("type", string(e.Type)), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindUnpublished(ctx context.Context, limit int) ([]domain.OrderEvent, error) {
	query := `
        SELECT id, order_id, type, actor_id, engineer_id, status, created_at, published_at
        FROM order_events
        WHERE published_at IS NULL
        ORDER BY created_at
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get unpublished events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var events []domain.OrderEvent
	for rows.Next() {
		var e domain.OrderEvent
		if err := rows.Scan(&e.ID, &e.OrderID, &e.Type, &e.ActorID, &e.EngineerID, &e.Status, &e.CreatedAt, &e.PublishedAt); err != nil {
			zap.L().Error("can't scan event row", zap.Error(err))
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *Repository) MarkPublished(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.Exec(ctx, "UPDATE order_events SET published_at = $1 WHERE id = $2", at, id)
	if err != nil {
		zap.L().Error("can't mark event published", zap.String("eventID", id), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CountPending(ctx context.Context, orderID int) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM order_events WHERE order_id = $1 AND published_at IS NULL", orderID).Scan(&n)
	if err != nil {
		zap.L().Error("can't count pending events", zap.Int("orderID", orderID), zap.Error(err))
		return 0, err
	}
	return n, nil
}
