package orderrepo

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fieldservice/internal/apperrors"
	"github.com/GlebRadaev/fieldservice/internal/domain"
	"github.com/GlebRadaev/fieldservice/internal/pg"
)

const defaultListLimit = 100

var orderColumns = []string{
	"id", "organization_id", "title", "description", "location", "distance_km",
	"territory_type", "status", "source", "assigned_engineer_id", "created_by",
	"planned_start_date", "actual_start_date", "completion_date",
	"needs_reconciliation", "version", "created_at", "updated_at",
}

const selectOrder = `
        SELECT id, organization_id, title, description, location, distance_km,
               territory_type, status, source, assigned_engineer_id, created_by,
               planned_start_date, actual_start_date, completion_date,
               needs_reconciliation, version, created_at, updated_at
        FROM orders
        WHERE id = $1
    `

type Repository struct {
	db pg.Database
	qb sq.StatementBuilderType
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID, &o.OrganizationID, &o.Title, &o.Description, &o.Location, &o.DistanceKm,
		&o.TerritoryType, &o.Status, &o.Source, &o.AssignedEngineerID, &o.CreatedBy,
		&o.PlannedStartDate, &o.ActualStartDate, &o.CompletionDate,
		&o.NeedsReconciliation, &o.Version, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	query := `
        INSERT INTO orders (organization_id, title, description, location, distance_km,
                            territory_type, status, source, created_by, planned_start_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, version, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query,
		order.OrganizationID, order.Title, order.Description, order.Location, order.DistanceKm,
		order.TerritoryType, order.Status, order.Source, order.CreatedBy, order.PlannedStartDate,
	).Scan(&order.ID, &order.Version, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Order, error) {
	return r.get(ctx, selectOrder, id)
}

// GetForUpdate locks the order row until the surrounding transaction ends.
func (r *Repository) GetForUpdate(ctx context.Context, id int) (*domain.Order, error) {
	return r.get(ctx, selectOrder+" FOR UPDATE", id)
}

func (r *Repository) get(ctx context.Context, query string, id int) (*domain.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("order %d not found", id)
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Int("orderID", id), zap.Error(err))
		return nil, err
	}
	return order, nil
}

// Update writes the mutable state of an order guarded by its version. A lost
// race yields ConflictingUpdate and leaves the row untouched.
func (r *Repository) Update(ctx context.Context, order *domain.Order) error {
	query := `
        UPDATE orders
        SET status = $1, assigned_engineer_id = $2, actual_start_date = $3,
            completion_date = $4, needs_reconciliation = $5,
            version = version + 1, updated_at = NOW()
        WHERE id = $6 AND version = $7
        RETURNING version, updated_at
    `
	err := r.db.QueryRow(ctx, query,
		order.Status, order.AssignedEngineerID, order.ActualStartDate,
		order.CompletionDate, order.NeedsReconciliation, order.ID, order.Version,
	).Scan(&order.Version, &order.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.Conflict("order %d was modified concurrently, reload and retry", order.ID)
	}
	if err != nil {
		zap.L().Error("failed to update order", zap.Int("orderID", order.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	q := r.qb.Select(orderColumns...).From("orders")
	if filter.Status != "" {
		q = q.Where(sq.Eq{"status": filter.Status})
	}
	if filter.OrganizationID != 0 {
		q = q.Where(sq.Eq{"organization_id": filter.OrganizationID})
	}
	if filter.EngineerID != 0 {
		q = q.Where(sq.Eq{"assigned_engineer_id": filter.EngineerID})
	}
	limit := filter.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	q = q.OrderBy("created_at DESC", "id DESC").Limit(limit).Offset(filter.Offset)

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete order", zap.Int("orderID", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("order %d not found", id)
	}
	return nil
}
