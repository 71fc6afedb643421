package remediation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/fieldservice/pkg/clients"
)

const base = "http://localhost:8080"

func NewMock(t *testing.T) (*Runner, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	api := clients.NewMockHTTPClientI(ctrl)
	return New(api, base+"/", "operator-token"), api
}

func item() Item {
	return Item{
		OrderID:          3,
		EngineerID:       7,
		EngineerLogin:    "ivan",
		EngineerPassword: "secret",
		WorkDate:         "2026-03-09",
		RegularHours:     decimal.NewFromInt(8),
		OvertimeHours:    decimal.NewFromInt(2),
	}
}

func orderBody(status string) []byte {
	return []byte(`{"id":3,"status":"` + status + `"}`)
}

func errBody(kind, message string) []byte {
	return []byte(`{"error":"` + kind + `","message":"` + message + `"}`)
}

func bearer(token string) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		h, ok := x.(http.Header)
		return ok && h.Get("Authorization") == "Bearer "+token && h.Get("X-Request-Id") != ""
	})
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("closes a waiting order", func(t *testing.T) {
		runner, api := NewMock(t)
		api.EXPECT().Get(base+"/orders/3", bearer("operator-token")).Return(http.StatusOK, orderBody("waiting"), nil, nil)
		gomock.InOrder(
			api.EXPECT().PostJSON(base+"/orders/3/assign-engineer", bearer("operator-token"), []byte(`{"engineerId":7}`)).
				Return(http.StatusOK, orderBody("assigned"), nil),
			api.EXPECT().PostJSON(base+"/auth/login", gomock.Any(), gomock.Any()).
				Return(http.StatusOK, []byte(`{"token":"engineer-token"}`), nil),
			api.EXPECT().PostJSON(base+"/orders/3/accept", bearer("engineer-token"), nil).
				Return(http.StatusOK, orderBody("working"), nil),
			api.EXPECT().Get(base+"/orders/3/work-sessions", bearer("operator-token")).Return(http.StatusOK, []byte(`[]`), nil, nil),
			api.EXPECT().PostJSON(base+"/orders/3/work-sessions", bearer("operator-token"), gomock.Any()).DoAndReturn(
				func(_ string, _ http.Header, body []byte) (int, []byte, error) {
					var got map[string]any
					require.NoError(t, json.Unmarshal(body, &got))
					assert.Equal(t, "8", got["regularHours"])
					assert.Equal(t, "2026-03-09", got["workDate"])
					assert.Equal(t, true, got["canBeInvoiced"])
					return http.StatusCreated, []byte(`{}`), nil
				}),
			api.EXPECT().PostJSON(base+"/orders/3/complete-work", bearer("operator-token"), gomock.Any()).DoAndReturn(
				func(_ string, _ http.Header, body []byte) (int, []byte, error) {
					var got map[string]any
					require.NoError(t, json.Unmarshal(body, &got))
					assert.Equal(t, false, got["isFullyCompleted"])
					assert.Equal(t, false, got["canBeInvoiced"])
					return http.StatusOK, orderBody("review"), nil
				}),
			api.EXPECT().PostJSON(base+"/orders/3/complete", bearer("operator-token"), nil).
				Return(http.StatusOK, orderBody("completed"), nil),
		)

		report := runner.Run(ctx, []Item{item()})
		assert.Equal(t, runner.RunID(), report.RunID)
		assert.Equal(t, 1, report.Closed)
		assert.Zero(t, report.Failed)
		require.Len(t, report.Results, 5)
		for _, res := range report.Results {
			assert.Equal(t, OutcomeDone, res.Outcome, res.Step)
		}
	})

	t.Run("already advanced steps are skipped", func(t *testing.T) {
		runner, api := NewMock(t)
		runner.tokens["ivan"] = "engineer-token"
		api.EXPECT().Get(base+"/orders/3", gomock.Any()).Return(http.StatusOK, orderBody("working"), nil, nil)
		api.EXPECT().PostJSON(base+"/orders/3/assign-engineer", gomock.Any(), gomock.Any()).
			Return(http.StatusConflict, errBody("IllegalTransition", "order 3 is working"), nil)
		api.EXPECT().PostJSON(base+"/orders/3/accept", gomock.Any(), gomock.Any()).Return(http.StatusOK, orderBody("working"), nil)
		api.EXPECT().Get(base+"/orders/3/work-sessions", gomock.Any()).
			Return(http.StatusOK, []byte(`[{"engineerId":7,"notes":"checked boiler","canBeInvoiced":true}]`), nil, nil)
		api.EXPECT().PostJSON(base+"/orders/3/work-sessions", gomock.Any(), gomock.Any()).Return(http.StatusCreated, []byte(`{}`), nil)
		api.EXPECT().PostJSON(base+"/orders/3/complete-work", gomock.Any(), gomock.Any()).Return(http.StatusOK, orderBody("review"), nil)
		api.EXPECT().PostJSON(base+"/orders/3/complete", gomock.Any(), gomock.Any()).Return(http.StatusOK, orderBody("completed"), nil)

		report := runner.Run(ctx, []Item{item()})
		assert.Equal(t, 1, report.Closed)
		assert.Equal(t, OutcomeSkipped, report.Results[0].Outcome)
		assert.Equal(t, "409 IllegalTransition: order 3 is working", report.Results[0].Message)
	})

	t.Run("rerun on a review order only completes it", func(t *testing.T) {
		runner, api := NewMock(t)
		api.EXPECT().Get(base+"/orders/3", gomock.Any()).Return(http.StatusOK, orderBody("review"), nil, nil)
		api.EXPECT().PostJSON(base+"/orders/3/complete", bearer("operator-token"), nil).
			Return(http.StatusOK, orderBody("completed"), nil)

		report := runner.Run(ctx, []Item{item()})
		assert.Equal(t, 1, report.Closed)
		require.Len(t, report.Results, 1)
		assert.Equal(t, StepComplete, report.Results[0].Step)
		assert.Equal(t, OutcomeDone, report.Results[0].Outcome)
	})

	t.Run("rerun does not log the same work twice", func(t *testing.T) {
		runner, api := NewMock(t)
		runner.tokens["ivan"] = "engineer-token"
		logged := `[{"engineerId":7,"notes":"remediation 0b0c","canBeInvoiced":true},` +
			`{"engineerId":7,"notes":"remediation 0b0c","canBeInvoiced":false}]`
		gomock.InOrder(
			api.EXPECT().Get(base+"/orders/3", gomock.Any()).Return(http.StatusOK, orderBody("working"), nil, nil),
			api.EXPECT().PostJSON(base+"/orders/3/assign-engineer", gomock.Any(), gomock.Any()).
				Return(http.StatusConflict, errBody("IllegalTransition", "order 3 is working"), nil),
			api.EXPECT().PostJSON(base+"/orders/3/accept", gomock.Any(), gomock.Any()).Return(http.StatusOK, orderBody("working"), nil),
			api.EXPECT().Get(base+"/orders/3/work-sessions", gomock.Any()).Return(http.StatusOK, []byte(logged), nil, nil),
			api.EXPECT().PostJSON(base+"/orders/3/complete-work", gomock.Any(), gomock.Any()).Return(http.StatusOK, orderBody("review"), nil),
			api.EXPECT().PostJSON(base+"/orders/3/complete", gomock.Any(), gomock.Any()).Return(http.StatusOK, orderBody("completed"), nil),
		)

		report := runner.Run(ctx, []Item{item()})
		assert.Equal(t, 1, report.Closed)
		require.Len(t, report.Results, 5)
		assert.Equal(t, StepLog, report.Results[2].Step)
		assert.Equal(t, OutcomeSkipped, report.Results[2].Outcome)
	})

	t.Run("session list failure stops the order", func(t *testing.T) {
		runner, api := NewMock(t)
		runner.tokens["ivan"] = "engineer-token"
		api.EXPECT().Get(base+"/orders/3", gomock.Any()).Return(http.StatusOK, orderBody("processing"), nil, nil)
		api.EXPECT().PostJSON(base+"/orders/3/assign-engineer", gomock.Any(), gomock.Any()).
			Return(http.StatusConflict, errBody("IllegalTransition", "order 3 is processing"), nil)
		api.EXPECT().PostJSON(base+"/orders/3/accept", gomock.Any(), gomock.Any()).Return(http.StatusOK, orderBody("processing"), nil)
		api.EXPECT().Get(base+"/orders/3/work-sessions", gomock.Any()).
			Return(http.StatusForbidden, errBody("AuthorizationDenied", "order 3 is not visible"), nil, nil)

		report := runner.Run(ctx, []Item{item()})
		assert.Equal(t, 1, report.Failed)
		require.Len(t, report.Results, 3)
		assert.Equal(t, "work sessions of order 3: 403 AuthorizationDenied: order 3 is not visible", report.Results[2].Message)
	})

	t.Run("completed orders are left alone", func(t *testing.T) {
		runner, api := NewMock(t)
		api.EXPECT().Get(gomock.Any(), gomock.Any()).Return(http.StatusOK, orderBody("completed"), nil, nil)

		report := runner.Run(ctx, []Item{item()})
		assert.Equal(t, 1, report.Closed)
		require.Len(t, report.Results, 1)
		assert.Equal(t, OutcomeSkipped, report.Results[0].Outcome)
	})

	t.Run("failure stops the order but not the run", func(t *testing.T) {
		runner, api := NewMock(t)
		second := item()
		second.OrderID = 4
		api.EXPECT().Get(base+"/orders/3", gomock.Any()).Return(http.StatusOK, orderBody("waiting"), nil, nil)
		api.EXPECT().PostJSON(base+"/orders/3/assign-engineer", gomock.Any(), gomock.Any()).
			Return(http.StatusUnprocessableEntity, errBody("RateUnresolved", "no base rate"), nil)
		api.EXPECT().Get(base+"/orders/4", gomock.Any()).Return(http.StatusNotFound, errBody("NotFound", "order 4 not found"), nil, nil)

		report := runner.Run(ctx, []Item{item(), second})
		assert.Zero(t, report.Closed)
		assert.Equal(t, 2, report.Failed)
		require.Len(t, report.Results, 2)
		assert.Equal(t, "422 RateUnresolved: no base rate", report.Results[0].Message)
		assert.Equal(t, "order 4: 404 NotFound: order 4 not found", report.Results[1].Message)
	})

	t.Run("engineer login failure", func(t *testing.T) {
		runner, api := NewMock(t)
		api.EXPECT().Get(gomock.Any(), gomock.Any()).Return(http.StatusOK, orderBody("waiting"), nil, nil)
		api.EXPECT().PostJSON(base+"/orders/3/assign-engineer", gomock.Any(), gomock.Any()).Return(http.StatusOK, orderBody("assigned"), nil)
		api.EXPECT().PostJSON(base+"/auth/login", gomock.Any(), gomock.Any()).Return(http.StatusUnauthorized, []byte(`{"message":"invalid credentials"}`), nil)

		report := runner.Run(ctx, []Item{item()})
		assert.Equal(t, 1, report.Failed)
		assert.Equal(t, StepAccept, report.Results[1].Step)
		assert.Equal(t, "login ivan: 401: invalid credentials", report.Results[1].Message)
	})

	t.Run("transport error", func(t *testing.T) {
		runner, api := NewMock(t)
		api.EXPECT().Get(gomock.Any(), gomock.Any()).Return(0, nil, nil, errors.New("connection refused"))

		report := runner.Run(ctx, []Item{item()})
		assert.Equal(t, 1, report.Failed)
		assert.Equal(t, "order 3: connection refused", report.Results[0].Message)
	})

	t.Run("canceled context stops the run", func(t *testing.T) {
		runner, _ := NewMock(t)
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		report := runner.Run(canceled, []Item{item()})
		assert.Empty(t, report.Results)
	})
}

func TestLogin(t *testing.T) {
	runner, api := NewMock(t)
	api.EXPECT().PostJSON(base+"/auth/login", gomock.Any(), []byte(`{"login":"admin","password":"secret"}`)).
		Return(http.StatusOK, []byte(`{"token":"t"}`), nil)

	require.NoError(t, runner.SignIn("admin", "secret"))
	assert.Equal(t, "t", runner.operator)
}
