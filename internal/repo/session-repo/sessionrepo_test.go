package sessionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/fieldservice/internal/apperrors"
	"github.com/GlebRadaev/fieldservice/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

var sessionRowColumns = []string{
	"id", "order_id", "engineer_id", "work_date", "regular_hours", "overtime_hours",
	"distance_km", "territory_type", "rate_snapshot", "car_payment", "zone_surcharge",
	"calculated_amount", "organization_payment", "profit", "notes", "can_be_invoiced",
	"status", "created_by", "created_at", "updated_at",
}

func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleSession(now time.Time) domain.WorkSession {
	coef := d("1.6")
	return domain.WorkSession{
		ID:            4,
		OrderID:       1,
		EngineerID:    7,
		WorkDate:      time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC),
		RegularHours:  d("8"),
		OvertimeHours: d("1"),
		DistanceKm:    d("0"),
		TerritoryType: domain.TerritoryHome,
		Rates: domain.RateSnapshot{
			BaseRate:               d("700"),
			OvertimeCoefficient:    &coef,
			OrgBaseRate:            d("1200"),
			OrgOvertimeCoefficient: d("1.5"),
			ResolvedAt:             now,
		},
		CarPayment:          d("0"),
		ZoneSurcharge:       d("0"),
		CalculatedAmount:    d("6720"),
		OrganizationPayment: d("11400"),
		Profit:              d("4680"),
		CanBeInvoiced:       true,
		Status:              domain.SessionCompleted,
		CreatedBy:           7,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

func sessionRows(sessions ...domain.WorkSession) *pgxmock.Rows {
	rows := pgxmock.NewRows(sessionRowColumns)
	for _, s := range sessions {
		rows.AddRow(
			s.ID, s.OrderID, s.EngineerID, s.WorkDate, s.RegularHours, s.OvertimeHours,
			s.DistanceKm, s.TerritoryType, s.Rates, s.CarPayment, s.ZoneSurcharge,
			s.CalculatedAmount, s.OrganizationPayment, s.Profit, s.Notes, s.CanBeInvoiced,
			s.Status, s.CreatedBy, s.CreatedAt, s.UpdatedAt,
		)
	}
	return rows
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	session := sampleSession(now)
	session.ID = 0

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Session stored",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO work_sessions")).
					WithArgs(1, 7, session.WorkDate, session.RegularHours, session.OvertimeHours,
						session.DistanceKm, domain.TerritoryHome, session.Rates, session.CarPayment,
						session.ZoneSurcharge, session.CalculatedAmount, session.OrganizationPayment,
						session.Profit, "", true, domain.SessionCompleted, 7).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(4, now, now))
			},
		},
		{
			name: "Check constraint violated",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO work_sessions")).
					WithArgs(anyArgs(17)...).
					WillReturnError(errors.New("violates check constraint"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			s := session
			err := repo.Create(context.Background(), &s)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 4, s.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	session := sampleSession(time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("FROM work_sessions WHERE id = $1")).
		WithArgs(4).
		WillReturnRows(sessionRows(session))
	got, err := repo.GetByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, &session, got)

	mock.ExpectQuery(regexp.QuoteMeta("FROM work_sessions WHERE id = $1")).
		WithArgs(5).
		WillReturnError(pgx.ErrNoRows)
	_, err = repo.GetByID(context.Background(), 5)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	session := sampleSession(now)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE work_sessions")).
		WithArgs(session.WorkDate, session.RegularHours, session.OvertimeHours, session.DistanceKm,
			session.TerritoryType, session.Rates, session.CarPayment, session.ZoneSurcharge,
			session.CalculatedAmount, session.OrganizationPayment, session.Profit, session.Notes,
			session.CanBeInvoiced, 4).
		WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(now.Add(time.Minute)))

	require.NoError(t, repo.Update(context.Background(), &session))
	assert.Equal(t, now.Add(time.Minute), session.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM work_sessions WHERE id = $1")).
		WithArgs(4).
		WillReturnResult(pgconn.NewCommandTag("DELETE 1"))
	assert.NoError(t, repo.Delete(context.Background(), 4))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM work_sessions WHERE id = $1")).
		WithArgs(5).
		WillReturnResult(pgconn.NewCommandTag("DELETE 0"))
	assert.ErrorIs(t, repo.Delete(context.Background(), 5), apperrors.ErrNotFound)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM work_sessions WHERE order_id = $1")).
		WithArgs(1).
		WillReturnResult(pgconn.NewCommandTag("DELETE 3"))
	n, err := repo.DeleteByOrder(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByOrder(t *testing.T) {
	repo, mock := NewMock(t)
	first := sampleSession(time.Now())
	second := first
	second.ID = 5

	mock.ExpectQuery(regexp.QuoteMeta("FROM work_sessions WHERE order_id = $1 ORDER BY work_date, id")).
		WithArgs(1).
		WillReturnRows(sessionRows(first, second))

	sessions, err := repo.ListByOrder(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
	assert.Equal(t, 5, sessions[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Totals(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		sessions  int
	}{
		{
			name: "Sessions present",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM work_sessions WHERE order_id = $1 AND status = $2")).
					WithArgs(1, domain.SessionCompleted).
					WillReturnRows(pgxmock.NewRows([]string{"count", "invoiceable", "regular", "overtime",
						"calculated", "zone", "car", "org", "profit"}).
						AddRow(2, 1, d("16"), d("2"), d("13440"), d("0"), d("0"), d("22800"), d("9360")))
			},
			sessions: 2,
		},
		{
			name: "Query failed",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM work_sessions WHERE order_id = $1")).
					WithArgs(1, domain.SessionCompleted).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			totals, err := repo.Totals(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, totals)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.sessions, totals.Sessions)
				assert.True(t, totals.CalculatedAmount.Equal(d("13440")))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_DailyHours(t *testing.T) {
	repo, mock := NewMock(t)
	day := time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(regular_hours + overtime_hours), 0)")).
		WithArgs(7, day, 4, domain.SessionCompleted).
		WillReturnRows(pgxmock.NewRows([]string{"hours"}).AddRow(d("10.5")))

	hours, err := repo.DailyHours(context.Background(), 7, day, 4)
	require.NoError(t, err)
	assert.True(t, hours.Equal(d("10.5")))
	assert.NoError(t, mock.ExpectationsWereMet())
}
