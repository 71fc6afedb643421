package orderrepo

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

func orderRows(orders ...domain.Order) *pgxmock.Rows {
	rows := pgxmock.NewRows(orderColumns)
	for _, o := range orders {
		rows.AddRow(
			o.ID, o.OrganizationID, o.Title, o.Description, o.Location, o.DistanceKm,
			o.TerritoryType, o.Status, o.Source, o.AssignedEngineerID, o.CreatedBy,
			o.PlannedStartDate, o.ActualStartDate, o.CompletionDate,
			o.NeedsReconciliation, o.Version, o.CreatedAt, o.UpdatedAt,
		)
	}
	return rows
}

func sampleOrder(now time.Time) domain.Order {
	engineer := 7
	return domain.Order{
		ID:                 1,
		OrganizationID:     3,
		Title:              "Espresso machine leaking",
		Description:        "Boiler gasket",
		Location:           "Main st. 1",
		DistanceKm:         decimal.NewFromInt(75),
		TerritoryType:      domain.TerritoryZone1,
		Status:             domain.StatusAssigned,
		Source:             domain.SourceManual,
		AssignedEngineerID: &engineer,
		CreatedBy:          2,
		Version:            3,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	order := sampleOrder(now)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr error
		result    *domain.Order
	}{
		{
			name: "Order exists",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE id = $1")).
					WithArgs(1).
					WillReturnRows(orderRows(order))
			},
			result: &order,
		},
		{
			name: "Order does not exist",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE id = $1")).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: apperrors.ErrNotFound,
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE id = $1")).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByID(context.Background(), tt.id)
			if tt.expectErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectErr, apperrors.ErrNotFound) {
					assert.ErrorIs(t, err, apperrors.ErrNotFound)
				}
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	order := sampleOrder(time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE id = $1 FOR UPDATE")).
		WithArgs(1).
		WillReturnRows(orderRows(order))

	result, err := repo.GetForUpdate(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 7, *result.AssignedEngineerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	order := &domain.Order{
		OrganizationID: 3,
		Title:          "Grinder jammed",
		DistanceKm:     decimal.NewFromInt(12),
		TerritoryType:  domain.TerritoryHome,
		Status:         domain.StatusWaiting,
		Source:         domain.SourceEmail,
		CreatedBy:      2,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders")).
		WithArgs(3, "Grinder jammed", "", "", pgxmock.AnyArg(), domain.TerritoryHome,
			domain.StatusWaiting, domain.SourceEmail, 2, (*time.Time)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "version", "created_at", "updated_at"}).
			AddRow(11, 1, now, now))

	created, err := repo.Create(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, 11, created.ID)
	assert.Equal(t, 1, created.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func(o *domain.Order)
		expectErr error
		version   int
	}{
		{
			name: "Version matches",
			mockSetup: func(o *domain.Order) {
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE orders")).
					WithArgs(o.Status, o.AssignedEngineerID, o.ActualStartDate, o.CompletionDate,
						false, o.ID, 3).
					WillReturnRows(pgxmock.NewRows([]string{"version", "updated_at"}).AddRow(4, now))
			},
			version: 4,
		},
		{
			name: "Concurrent modification",
			mockSetup: func(o *domain.Order) {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $6 AND version = $7")).
					WithArgs(o.Status, o.AssignedEngineerID, o.ActualStartDate, o.CompletionDate,
						false, o.ID, 3).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: apperrors.ErrConflictingUpdate,
			version:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := sampleOrder(now)
			order.Status = domain.StatusWorking
			tt.mockSetup(&order)

			err := repo.Update(context.Background(), &order)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.version, order.Version)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	order := sampleOrder(now)

	tests := []struct {
		name      string
		filter    domain.OrderFilter
		mockSetup func()
		expected  int
	}{
		{
			name:   "Engineer scoped with status",
			filter: domain.OrderFilter{Status: domain.StatusAssigned, EngineerID: 7},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE status = $1 AND assigned_engineer_id = $2 ORDER BY created_at DESC, id DESC LIMIT 100 OFFSET 0")).
					WithArgs(domain.StatusAssigned, 7).
					WillReturnRows(orderRows(order))
			},
			expected: 1,
		},
		{
			name:   "Organization page",
			filter: domain.OrderFilter{OrganizationID: 3, Limit: 20, Offset: 40},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE organization_id = $1 ORDER BY created_at DESC, id DESC LIMIT 20 OFFSET 40")).
					WithArgs(3).
					WillReturnRows(orderRows())
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			orders, err := repo.List(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Len(t, orders, tt.expected)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM orders WHERE id = $1")).
		WithArgs(1).
		WillReturnResult(pgconn.NewCommandTag("DELETE 1"))
	assert.NoError(t, repo.Delete(context.Background(), 1))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM orders WHERE id = $1")).
		WithArgs(2).
		WillReturnResult(pgconn.NewCommandTag("DELETE 0"))
	assert.ErrorIs(t, repo.Delete(context.Background(), 2), apperrors.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
