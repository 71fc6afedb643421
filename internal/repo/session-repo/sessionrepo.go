package sessionrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fieldservice/internal/apperrors"
	"github.com/GlebRadaev/fieldservice/internal/domain"
	"github.com/GlebRadaev/fieldservice/internal/pg"
)

const sessionColumns = `id, order_id, engineer_id, work_date, regular_hours, overtime_hours,
        distance_km, territory_type, rate_snapshot, car_payment, zone_surcharge,
        calculated_amount, organization_payment, profit, notes, can_be_invoiced,
        status, created_by, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*domain.WorkSession, error) {
	var s domain.WorkSession
	err := row.Scan(
		&s.ID, &s.OrderID, &s.EngineerID, &s.WorkDate, &s.RegularHours, &s.OvertimeHours,
		&s.DistanceKm, &s.TerritoryType, &s.Rates, &s.CarPayment, &s.ZoneSurcharge,
		&s.CalculatedAmount, &s.OrganizationPayment, &s.Profit, &s.Notes, &s.CanBeInvoiced,
		&s.Status, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Create(ctx context.Context, s *domain.WorkSession) error {
	query := `
        INSERT INTO work_sessions (order_id, engineer_id, work_date, regular_hours, overtime_hours,
            distance_km, territory_type, rate_snapshot, car_payment, zone_surcharge,
            calculated_amount, organization_payment, profit, notes, can_be_invoiced,
            status, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query,
		s.OrderID, s.EngineerID, s.WorkDate, s.RegularHours, s.OvertimeHours,
		s.DistanceKm, s.TerritoryType, s.Rates, s.CarPayment, s.ZoneSurcharge,
		s.CalculatedAmount, s.OrganizationPayment, s.Profit, s.Notes, s.CanBeInvoiced,
		s.Status, s.CreatedBy,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save work session", zap.Int("orderID", s.OrderID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.WorkSession, error) {
	s, err := scanSession(r.db.QueryRow(ctx, "SELECT "+sessionColumns+" FROM work_sessions WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("work session %d not found", id)
	}
	if err != nil {
		zap.L().Error("can't find work session", zap.Int("sessionID", id), zap.Error(err))
		return nil, err
	}
	return s, nil
}

func (r *Repository) Update(ctx context.Context, s *domain.WorkSession) error {
	query := `
        UPDATE work_sessions
        SET work_date = $1, regular_hours = $2, overtime_hours = $3, distance_km = $4,
            territory_type = $5, rate_snapshot = $6, car_payment = $7, zone_surcharge = $8,
            calculated_amount = $9, organization_payment = $10, profit = $11, notes = $12,
            can_be_invoiced = $13, updated_at = NOW()
        WHERE id = $14
        RETURNING updated_at
    `
	err := r.db.QueryRow(ctx, query,
		s.WorkDate, s.RegularHours, s.OvertimeHours, s.DistanceKm,
		s.TerritoryType, s.Rates, s.CarPayment, s.ZoneSurcharge,
		s.CalculatedAmount, s.OrganizationPayment, s.Profit, s.Notes,
		s.CanBeInvoiced, s.ID,
	).Scan(&s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NotFound("work session %d not found", s.ID)
	}
	if err != nil {
		zap.L().Error("failed to update work session", zap.Int("sessionID", s.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM work_sessions WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete work session", zap.Int("sessionID", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("work session %d not found", id)
	}
	return nil
}

func (r *Repository) DeleteByOrder(ctx context.Context, orderID int) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM work_sessions WHERE order_id = $1", orderID)
	if err != nil {
		zap.L().Error("can't delete order work sessions", zap.Int("orderID", orderID), zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) ListByOrder(ctx context.Context, orderID int) ([]domain.WorkSession, error) {
	query := "SELECT " + sessionColumns + " FROM work_sessions WHERE order_id = $1 ORDER BY work_date, id"
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get work sessions", zap.Int("orderID", orderID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	sessions := make([]domain.WorkSession, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			zap.L().Error("can't scan work session row", zap.Error(err))
			return nil, err
		}
		sessions = append(sessions, *s)
	}
	return sessions, rows.Err()
}

// Totals sums the live (non-cancelled) sessions of an order. It always hits
// the database so state machine guards never see a stale count.
func (r *Repository) Totals(ctx context.Context, orderID int) (*domain.OrderTotals, error) {
	query := `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE can_be_invoiced),
               COALESCE(SUM(regular_hours), 0),
               COALESCE(SUM(overtime_hours), 0),
               COALESCE(SUM(calculated_amount), 0),
               COALESCE(SUM(zone_surcharge), 0),
               COALESCE(SUM(car_payment), 0),
               COALESCE(SUM(organization_payment), 0),
               COALESCE(SUM(profit), 0)
        FROM work_sessions
        WHERE order_id = $1 AND status = $2
    `
	t := domain.OrderTotals{OrderID: orderID}
	err := r.db.QueryRow(ctx, query, orderID, domain.SessionCompleted).Scan(
		&t.Sessions, &t.InvoiceableSessions, &t.RegularHours, &t.OvertimeHours,
		&t.CalculatedAmount, &t.ZoneSurcharge, &t.CarPayment, &t.OrganizationPayment, &t.Profit,
	)
	if err != nil {
		zap.L().Error("can't sum work sessions", zap.Int("orderID", orderID), zap.Error(err))
		return nil, err
	}
	return &t, nil
}

// DailyHours returns the hours an engineer already has on a date, leaving out
// excludeID so an edited session is not counted twice.
func (r *Repository) DailyHours(ctx context.Context, engineerID int, workDate time.Time, excludeID int) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(regular_hours + overtime_hours), 0)
        FROM work_sessions
        WHERE engineer_id = $1 AND work_date = $2 AND id <> $3 AND status = $4
    `
	var hours decimal.Decimal
	err := r.db.QueryRow(ctx, query, engineerID, workDate, excludeID, domain.SessionCompleted).Scan(&hours)
	if err != nil {
		zap.L().Error("can't sum daily hours", zap.Int("engineerID", engineerID), zap.Error(err))
		return decimal.Zero, err
	}
	return hours, nil
}
