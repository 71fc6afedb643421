package statsrepo

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fieldservice/internal/domain"
	"github.com/GlebRadaev/fieldservice/internal/pg"
)

const defaultDetailsLimit = 500

var totalsColumns = []string{
	"COUNT(ws.id)",
	"COUNT(DISTINCT o.id) FILTER (WHERE o.status = 'completed')",
	"COALESCE(SUM(ws.regular_hours), 0)",
	"COALESCE(SUM(ws.overtime_hours), 0)",
	"COALESCE(SUM(ws.calculated_amount), 0)",
	"COALESCE(SUM(ws.zone_surcharge), 0)",
	"COALESCE(SUM(ws.car_payment), 0)",
	"COALESCE(SUM(ws.organization_payment), 0)",
	"COALESCE(SUM(ws.profit), 0)",
}

// Repository aggregates work sessions in the database so a period is never
// loaded into memory row by row.
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

func (r *Repository) scoped(q sq.SelectBuilder, query domain.StatsQuery) sq.SelectBuilder {
	q = q.From("work_sessions ws").
		Join("orders o ON o.id = ws.order_id").
		Where(sq.GtOrEq{"ws.work_date": query.From}).
		Where(sq.Lt{"ws.work_date": query.To}).
		Where(sq.Eq{"ws.status": domain.SessionCompleted})
	if query.Include != domain.IncludeAll {
		q = q.Where(sq.Eq{"o.status": domain.StatusCompleted})
	}
	if query.EngineerID != 0 {
		q = q.Where(sq.Eq{"ws.engineer_id": query.EngineerID})
	}
	if query.OrganizationID != 0 {
		q = q.Where(sq.Eq{"o.organization_id": query.OrganizationID})
	}
	return q
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTotals(row scanner, extra ...any) (domain.PeriodTotals, error) {
	var t domain.PeriodTotals
	dest := append(extra,
		&t.Sessions, &t.CompletedOrders, &t.RegularHours, &t.OvertimeHours,
		&t.EngineerEarnings, &t.ZoneSurcharges, &t.CarEarnings, &t.OrganizationPayments, &t.Profit,
	)
	if err := row.Scan(dest...); err != nil {
		return t, err
	}
	t.TotalHours = t.RegularHours.Add(t.OvertimeHours)
	return t, nil
}

func (r *Repository) Totals(ctx context.Context, query domain.StatsQuery) (*domain.PeriodTotals, error) {
	sql, args, err := r.scoped(r.qb.Select(totalsColumns...), query).ToSql()
	if err != nil {
		return nil, err
	}
	totals, err := scanTotals(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		zap.L().Error("can't aggregate work sessions", zap.Error(err))
		return nil, err
	}
	return &totals, nil
}

func (r *Repository) ByEngineer(ctx context.Context, query domain.StatsQuery) ([]domain.EngineerTotals, error) {
	columns := append([]string{"ws.engineer_id", "u.full_name"}, totalsColumns...)
	q := r.scoped(r.qb.Select(columns...), query).
		Join("users u ON u.id = ws.engineer_id").
		GroupBy("ws.engineer_id", "u.full_name").
		OrderBy("ws.engineer_id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		zap.L().Error("can't aggregate work sessions by engineer", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.EngineerTotals, 0)
	for rows.Next() {
		var row domain.EngineerTotals
		totals, err := scanTotals(rows, &row.EngineerID, &row.FullName)
		if err != nil {
			zap.L().Error("can't scan engineer totals", zap.Error(err))
			return nil, err
		}
		row.PeriodTotals = totals
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *Repository) Details(ctx context.Context, query domain.StatsQuery) ([]domain.SessionDetail, error) {
	limit := query.Limit
	if limit == 0 {
		limit = defaultDetailsLimit
	}
	q := r.scoped(r.qb.Select(
		"ws.id", "o.id", "o.title", "o.organization_id", "o.status", "ws.work_date",
		"ws.regular_hours", "ws.overtime_hours", "ws.calculated_amount", "ws.zone_surcharge",
		"ws.car_payment", "ws.organization_payment", "ws.profit",
	), query).
		OrderBy("ws.work_date", "ws.id").
		Limit(limit).
		Offset(query.Offset)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		zap.L().Error("can't list session details", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	details := make([]domain.SessionDetail, 0)
	for rows.Next() {
		var d domain.SessionDetail
		err := rows.Scan(
			&d.SessionID, &d.OrderID, &d.OrderTitle, &d.OrganizationID, &d.OrderStatus, &d.WorkDate,
			&d.RegularHours, &d.OvertimeHours, &d.CalculatedAmount, &d.ZoneSurcharge,
			&d.CarPayment, &d.OrganizationPayment, &d.Profit,
		)
		if err != nil {
			zap.L().Error("can't scan session detail", zap.Error(err))
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}
