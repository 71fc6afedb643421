package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/fieldservice/internal/access"
	"github.com/GlebRadaev/fieldservice/internal/apperrors"
	"github.com/GlebRadaev/fieldservice/internal/domain"
	"github.com/GlebRadaev/fieldservice/internal/dto"
	"github.com/GlebRadaev/fieldservice/pkg/auth"
	"github.com/GlebRadaev/fieldservice/pkg/utils"
)

var (
	manager  = access.Session{UserID: 2, PrimaryRole: access.RoleManager, ActiveRole: access.RoleManager}
	engineer = access.Session{UserID: 7, PrimaryRole: access.RoleUser, ActiveRole: access.RoleUser}
)

func NewMock(t *testing.T) (*OrderHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func request(sess access.Session, method, target, id, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	rctx := chi.NewRouteContext()
	if id != "" {
		rctx.URLParams.Add("id", id)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	return req.WithContext(auth.WithSession(ctx, sess))
}

func order(status domain.OrderStatus) *domain.Order {
	engineerID := 7
	return &domain.Order{
		ID:                 12,
		OrganizationID:     3,
		Title:              "Boiler maintenance",
		DistanceKm:         decimal.NewFromInt(75),
		TerritoryType:      domain.TerritoryZone1,
		Status:             status,
		Source:             domain.SourceManual,
		AssignedEngineerID: &engineerID,
		CreatedBy:          2,
		Version:            1,
	}
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

func TestCreateOrderHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedKind string
	}{
		{
			name: "Created",
			body: `{"organizationId":3,"title":"Boiler maintenance","distanceKm":75,"territoryType":"zone_1","plannedStartDate":"2026-03-12"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), manager, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ access.Session, o *domain.Order) (*domain.Order, error) {
						assert.Equal(t, "Boiler maintenance", o.Title)
						assert.Equal(t, domain.TerritoryZone1, o.TerritoryType)
						require.NotNil(t, o.PlannedStartDate)
						assert.Equal(t, time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC), *o.PlannedStartDate)
						created := *o
						created.ID = 12
						created.Status = domain.StatusWaiting
						return &created, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Missing title",
			body:         `{"organizationId":3}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedKind: "ValidationFailed",
		},
		{
			name:         "Unknown territory",
			body:         `{"organizationId":3,"title":"x","territoryType":"moon"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedKind: "ValidationFailed",
		},
		{
			name: "Engineer may not create",
			body: `{"organizationId":3,"title":"x"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), manager, gomock.Any()).Return(nil, apperrors.Denied("not allowed"))
			},
			expectedCode: http.StatusForbidden,
			expectedKind: "AuthorizationDenied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			handler.CreateOrder(rr, request(manager, http.MethodPost, "/orders", "", tt.body))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedKind != "" {
				assert.Equal(t, tt.expectedKind, decodeError(t, rr).Error)
				return
			}
			var resp dto.OrderResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, 12, resp.ID)
			assert.Equal(t, "waiting", resp.Status)
			require.NotNil(t, resp.PlannedStartDate)
			assert.Equal(t, "2026-03-12", *resp.PlannedStartDate)
		})
	}
}

func TestGetOrdersHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Filters are passed through", func(t *testing.T) {
		service.EXPECT().List(gomock.Any(), manager, domain.OrderFilter{
			Status:         domain.StatusWorking,
			OrganizationID: 3,
			Limit:          10,
			Offset:         20,
		}).Return([]domain.Order{*order(domain.StatusWorking)}, nil)
		rr := httptest.NewRecorder()

		handler.GetOrders(rr, request(manager, http.MethodGet, "/orders?status=working&organizationId=3&limit=10&offset=20", "", ""))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.OrderResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "working", resp[0].Status)
	})

	t.Run("Empty list is an empty array", func(t *testing.T) {
		service.EXPECT().List(gomock.Any(), engineer, domain.OrderFilter{}).Return(nil, nil)
		rr := httptest.NewRecorder()

		handler.GetOrders(rr, request(engineer, http.MethodGet, "/orders", "", ""))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("Unknown status", func(t *testing.T) {
		rr := httptest.NewRecorder()

		handler.GetOrders(rr, request(manager, http.MethodGet, "/orders?status=lost", "", ""))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Negative offset", func(t *testing.T) {
		rr := httptest.NewRecorder()

		handler.GetOrders(rr, request(manager, http.MethodGet, "/orders?offset=-1", "", ""))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestTransitionHandlers(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		call         func(w http.ResponseWriter, r *http.Request)
		method       string
		target       string
		id           string
		body         string
		sess         access.Session
		prepareMock  func()
		expectedCode int
		expectedKind string
	}{
		{
			name:   "Get",
			call:   handler.GetOrder,
			method: http.MethodGet,
			target: "/orders/12",
			id:     "12",
			sess:   engineer,
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), engineer, 12).Return(order(domain.StatusAssigned), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Get not found",
			call:   handler.GetOrder,
			method: http.MethodGet,
			target: "/orders/99",
			id:     "99",
			sess:   engineer,
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), engineer, 99).Return(nil, apperrors.NotFound("order 99 not found"))
			},
			expectedCode: http.StatusNotFound,
			expectedKind: "NotFound",
		},
		{
			name:         "Bad id",
			call:         handler.GetOrder,
			method:       http.MethodGet,
			target:       "/orders/abc",
			id:           "abc",
			sess:         engineer,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedKind: "ValidationFailed",
		},
		{
			name:   "Assign engineer",
			call:   handler.AssignEngineer,
			method: http.MethodPost,
			target: "/orders/12/assign-engineer",
			id:     "12",
			sess:   manager,
			body:   `{"engineerId":7}`,
			prepareMock: func() {
				service.EXPECT().Nominate(gomock.Any(), manager, 12, 7, 0).Return(order(domain.StatusAssigned), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Assign engineer without id",
			call:         handler.AssignEngineer,
			method:       http.MethodPost,
			target:       "/orders/12/assign-engineer",
			id:           "12",
			sess:         manager,
			body:         `{}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Reassign with a stale version",
			call:   handler.AssignEngineer,
			method: http.MethodPost,
			target: "/orders/12/assign-engineer",
			id:     "12",
			sess:   manager,
			body:   `{"engineerId":9,"version":1}`,
			prepareMock: func() {
				service.EXPECT().Nominate(gomock.Any(), manager, 12, 9, 1).Return(nil, apperrors.Conflict("order 12 is at version 2, not 1"))
			},
			expectedCode: http.StatusConflict,
			expectedKind: "ConflictingUpdate",
		},
		{
			name:   "Assign engineer with unresolved rate",
			call:   handler.AssignEngineer,
			method: http.MethodPost,
			target: "/orders/12/assign-engineer",
			id:     "12",
			sess:   manager,
			body:   `{"engineerId":7}`,
			prepareMock: func() {
				service.EXPECT().Nominate(gomock.Any(), manager, 12, 7, 0).Return(nil, apperrors.Unresolved("no base rate"))
			},
			expectedCode: http.StatusUnprocessableEntity,
			expectedKind: "RateUnresolved",
		},
		{
			name:   "Accept",
			call:   handler.AcceptOrder,
			method: http.MethodPost,
			target: "/orders/12/accept",
			id:     "12",
			sess:   engineer,
			prepareMock: func() {
				service.EXPECT().Accept(gomock.Any(), engineer, 12).Return(order(domain.StatusProcessing), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Start illegal",
			call:   handler.StartOrder,
			method: http.MethodPost,
			target: "/orders/12/start",
			id:     "12",
			sess:   engineer,
			prepareMock: func() {
				service.EXPECT().Start(gomock.Any(), engineer, 12).Return(nil, apperrors.Illegal("order 12 is assigned"))
			},
			expectedCode: http.StatusConflict,
			expectedKind: "IllegalTransition",
		},
		{
			name:   "Complete",
			call:   handler.CompleteOrder,
			method: http.MethodPost,
			target: "/orders/12/complete",
			id:     "12",
			sess:   manager,
			prepareMock: func() {
				service.EXPECT().Complete(gomock.Any(), manager, 12).Return(order(domain.StatusCompleted), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Reset with force",
			call:   handler.ResetOrder,
			method: http.MethodPost,
			target: "/orders/12/reset?force=true",
			id:     "12",
			sess:   manager,
			prepareMock: func() {
				service.EXPECT().Reset(gomock.Any(), manager, 12, true).Return(order(domain.StatusWaiting), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Reset with bad force",
			call:         handler.ResetOrder,
			method:       http.MethodPost,
			target:       "/orders/12/reset?force=maybe",
			id:           "12",
			sess:         manager,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Reopen",
			call:   handler.ReopenOrder,
			method: http.MethodPost,
			target: "/orders/12/reopen",
			id:     "12",
			sess:   manager,
			prepareMock: func() {
				service.EXPECT().Reopen(gomock.Any(), manager, 12).Return(order(domain.StatusReview), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Internal error is hidden",
			call:   handler.ReopenOrder,
			method: http.MethodPost,
			target: "/orders/12/reopen",
			id:     "12",
			sess:   manager,
			prepareMock: func() {
				service.EXPECT().Reopen(gomock.Any(), manager, 12).Return(nil, errors.New("connection reset"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedKind: "Internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			tt.call(rr, request(tt.sess, tt.method, tt.target, tt.id, tt.body))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedKind != "" {
				assert.Equal(t, tt.expectedKind, decodeError(t, rr).Error)
			}
		})
	}
}

func TestCompleteWorkHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Defaults to invoiceable", func(t *testing.T) {
		service.EXPECT().CompleteWork(gomock.Any(), engineer, 12, gomock.Any(), true).DoAndReturn(
			func(_ context.Context, _ access.Session, _ int, in domain.WorkSessionInput, _ bool) (*domain.Order, error) {
				assert.True(t, in.CanBeInvoiced)
				assert.True(t, in.RegularHours.Equal(decimal.NewFromInt(8)))
				assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), in.WorkDate)
				return order(domain.StatusCompleted), nil
			})
		rr := httptest.NewRecorder()
		body := `{"workDate":"2026-03-09","regularHours":8,"isFullyCompleted":true}`

		handler.CompleteWork(rr, request(engineer, http.MethodPost, "/orders/12/complete-work", "12", body))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Explicitly not invoiceable", func(t *testing.T) {
		service.EXPECT().CompleteWork(gomock.Any(), engineer, 12, gomock.Any(), false).DoAndReturn(
			func(_ context.Context, _ access.Session, _ int, in domain.WorkSessionInput, _ bool) (*domain.Order, error) {
				assert.False(t, in.CanBeInvoiced)
				return order(domain.StatusReview), nil
			})
		rr := httptest.NewRecorder()
		body := `{"workDate":"2026-03-09","regularHours":0,"canBeInvoiced":false}`

		handler.CompleteWork(rr, request(engineer, http.MethodPost, "/orders/12/complete-work", "12", body))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Missing work date", func(t *testing.T) {
		rr := httptest.NewRecorder()

		handler.CompleteWork(rr, request(engineer, http.MethodPost, "/orders/12/complete-work", "12", `{"regularHours":8}`))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeletionHandlers(t *testing.T) {
	handler, service := NewMock(t)
	admin := access.Session{UserID: 1, PrimaryRole: access.RoleAdmin, ActiveRole: access.RoleAdmin}
	report := &domain.DeletionReport{OrderID: 12, Status: domain.StatusReview, Sessions: 2, InvoiceableSessions: 0}

	t.Run("Preview", func(t *testing.T) {
		service.EXPECT().DeletionPreview(gomock.Any(), admin, 12).Return(report, nil)
		rr := httptest.NewRecorder()

		handler.DeletionPreview(rr, request(admin, http.MethodGet, "/orders/12/deletion-preview", "12", ""))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp domain.DeletionReport
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, 2, resp.Sessions)
	})

	t.Run("Unconfirmed delete", func(t *testing.T) {
		service.EXPECT().Delete(gomock.Any(), admin, 12, false).Return(report, nil)
		rr := httptest.NewRecorder()

		handler.DeleteOrder(rr, request(admin, http.MethodDelete, "/orders/12", "12", ""))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Confirmed delete blocked", func(t *testing.T) {
		service.EXPECT().Delete(gomock.Any(), admin, 12, true).Return(nil, apperrors.Illegal("order 12 has invoiceable work"))
		rr := httptest.NewRecorder()

		handler.DeleteOrder(rr, request(admin, http.MethodDelete, "/orders/12?confirm=true", "12", ""))

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("No session", func(t *testing.T) {
		rr := httptest.NewRecorder()

		handler.DeletionPreview(rr, httptest.NewRequest(http.MethodGet, "/orders/12/deletion-preview", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
