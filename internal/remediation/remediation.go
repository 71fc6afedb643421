// Package remediation force-closes stuck orders by driving the public API
// through nominate, accept, log, complete-work and complete.
package remediation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fieldservice/internal/apperrors"
	"github.com/GlebRadaev/fieldservice/pkg/utils"
)

// API is satisfied by clients.HTTPClient.
type API interface {
	Get(url string, headers http.Header) (statusCode int, respBody []byte, respHeaders http.Header, err error)
	PostJSON(url string, headers http.Header, body []byte) (statusCode int, respBody []byte, err error)
}

// Item is one order to close. The engineer credentials are needed because
// only the assignee may accept.
type Item struct {
	OrderID          int             `json:"orderId"`
	EngineerID       int             `json:"engineerId"`
	EngineerLogin    string          `json:"engineerLogin"`
	EngineerPassword string          `json:"engineerPassword"`
	WorkDate         string          `json:"workDate"`
	RegularHours     decimal.Decimal `json:"regularHours"`
	OvertimeHours    decimal.Decimal `json:"overtimeHours"`
}

// marker prefixes the notes of every session a run logs.
const marker = "remediation"

type Step string

const (
	StepNominate     Step = "nominate"
	StepAccept       Step = "accept"
	StepLog          Step = "log"
	StepCompleteWork Step = "complete-work"
	StepComplete     Step = "complete"
)

var steps = []Step{StepNominate, StepAccept, StepLog, StepCompleteWork, StepComplete}

type Outcome string

const (
	OutcomeDone    Outcome = "done"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

type Result struct {
	OrderID int     `json:"orderId"`
	Step    Step    `json:"step"`
	Outcome Outcome `json:"outcome"`
	Status  int     `json:"status,omitempty"`
	Message string  `json:"message,omitempty"`
}

type Report struct {
	RunID   string   `json:"runId"`
	Results []Result `json:"results"`
	Closed  int      `json:"closed"`
	Failed  int      `json:"failed"`
}

type Runner struct {
	api      API
	baseURL  string
	operator string
	runID    string
	tokens   map[string]string
}

// New prepares a run authenticated as the operator, a manager or admin.
func New(api API, baseURL, operatorToken string) *Runner {
	return &Runner{
		api:      api,
		baseURL:  strings.TrimRight(baseURL, "/"),
		operator: operatorToken,
		runID:    uuid.NewString(),
		tokens:   make(map[string]string),
	}
}

func (r *Runner) RunID() string {
	return r.runID
}

// Login obtains a bearer token.
func (r *Runner) Login(login, password string) (string, error) {
	status, body, err := r.post("/auth/login", "", map[string]string{"login": login, "password": password})
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("login %s: %s", login, describe(status, body))
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("login %s: %w", login, err)
	}
	return resp.Token, nil
}

// SignIn replaces the operator token with one issued for the credentials.
func (r *Runner) SignIn(login, password string) error {
	token, err := r.Login(login, password)
	if err != nil {
		return err
	}
	r.operator = token
	return nil
}

// Run closes every item in order. An order stops at its first failed step;
// steps rejected as illegal or denied are treated as already done.
func (r *Runner) Run(ctx context.Context, items []Item) Report {
	report := Report{RunID: r.runID}
	for _, item := range items {
		if ctx.Err() != nil {
			break
		}
		status, err := r.status(item.OrderID)
		if err != nil {
			report.Results = append(report.Results, Result{OrderID: item.OrderID, Step: StepNominate, Outcome: OutcomeFailed, Message: err.Error()})
			report.Failed++
			continue
		}
		if status == statusCompleted {
			report.Results = append(report.Results, Result{OrderID: item.OrderID, Step: StepComplete, Outcome: OutcomeSkipped, Message: "order is already completed"})
			report.Closed++
			continue
		}

		closed := true
		for _, step := range r.plan(status) {
			res := r.run(step, item)
			report.Results = append(report.Results, res)
			zap.L().Info("remediation step",
				zap.String("runId", r.runID),
				zap.Int("orderId", item.OrderID),
				zap.String("step", string(step)),
				zap.String("outcome", string(res.Outcome)),
				zap.String("message", res.Message),
			)
			if res.Outcome == OutcomeFailed {
				closed = false
				report.Failed++
				break
			}
		}
		if closed {
			report.Closed++
		}
	}
	return report
}

const (
	statusCompleted = "completed"
	statusReview    = "review"
)

// plan returns the steps still needed for an order in the given status.
// A review order already carries its work, logging again would bill it twice.
func (r *Runner) plan(status string) []Step {
	if status == statusReview {
		return []Step{StepComplete}
	}
	return steps
}

func (r *Runner) run(step Step, item Item) Result {
	if step == StepLog {
		logged, err := r.logged(item)
		if err != nil {
			return Result{OrderID: item.OrderID, Step: step, Outcome: OutcomeFailed, Message: err.Error()}
		}
		if logged {
			return Result{OrderID: item.OrderID, Step: step, Outcome: OutcomeSkipped, Message: "work is already logged by remediation"}
		}
	}
	return r.do(step, item)
}

// status reads the order's current status. Rerunning a plan must not log
// sessions on orders that an earlier run already moved on.
func (r *Runner) status(orderID int) (string, error) {
	body, err := r.get(fmt.Sprintf("/orders/%d", orderID))
	if err != nil {
		return "", fmt.Errorf("order %d: %w", orderID, err)
	}
	var order struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &order); err != nil {
		return "", fmt.Errorf("order %d: %w", orderID, err)
	}
	return order.Status, nil
}

// logged reports whether an earlier run already logged the billable session
// of this item.
func (r *Runner) logged(item Item) (bool, error) {
	body, err := r.get(fmt.Sprintf("/orders/%d/work-sessions", item.OrderID))
	if err != nil {
		return false, fmt.Errorf("work sessions of order %d: %w", item.OrderID, err)
	}
	var sessions []struct {
		EngineerID    int    `json:"engineerId"`
		Notes         string `json:"notes"`
		CanBeInvoiced bool   `json:"canBeInvoiced"`
	}
	if err := json.Unmarshal(body, &sessions); err != nil {
		return false, fmt.Errorf("work sessions of order %d: %w", item.OrderID, err)
	}
	for _, ws := range sessions {
		if ws.EngineerID == item.EngineerID && ws.CanBeInvoiced && strings.HasPrefix(ws.Notes, marker) {
			return true, nil
		}
	}
	return false, nil
}

func (r *Runner) get(path string) ([]byte, error) {
	status, body, _, err := r.api.Get(r.baseURL+path, r.headers(r.operator))
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, errors.New(describe(status, body))
	}
	return body, nil
}

func (r *Runner) do(step Step, item Item) Result {
	res := Result{OrderID: item.OrderID, Step: step}
	path := fmt.Sprintf("/orders/%d", item.OrderID)
	token := r.operator

	var payload any
	switch step {
	case StepNominate:
		path += "/assign-engineer"
		payload = map[string]int{"engineerId": item.EngineerID}
	case StepAccept:
		path += "/accept"
		t, err := r.engineerToken(item)
		if err != nil {
			res.Outcome, res.Message = OutcomeFailed, err.Error()
			return res
		}
		token = t
	case StepLog:
		path += "/work-sessions"
		payload = r.session(item, item.RegularHours, item.OvertimeHours, true)
	case StepCompleteWork:
		path += "/complete-work"
		closing := r.session(item, decimal.Zero, decimal.Zero, false)
		closing["isFullyCompleted"] = false
		payload = closing
	case StepComplete:
		path += "/complete"
	}

	status, body, err := r.post(path, token, payload)
	res.Status = status
	switch {
	case err != nil:
		res.Outcome, res.Message = OutcomeFailed, err.Error()
	case status >= 200 && status < 300:
		res.Outcome = OutcomeDone
	case skippable(body):
		res.Outcome, res.Message = OutcomeSkipped, describe(status, body)
	default:
		res.Outcome, res.Message = OutcomeFailed, describe(status, body)
	}
	return res
}

func (r *Runner) session(item Item, regular, overtime decimal.Decimal, invoiceable bool) map[string]any {
	return map[string]any{
		"engineerId":    item.EngineerID,
		"workDate":      item.WorkDate,
		"regularHours":  regular,
		"overtimeHours": overtime,
		"notes":         marker + " " + r.runID,
		"canBeInvoiced": invoiceable,
	}
}

func (r *Runner) engineerToken(item Item) (string, error) {
	if t, ok := r.tokens[item.EngineerLogin]; ok {
		return t, nil
	}
	t, err := r.Login(item.EngineerLogin, item.EngineerPassword)
	if err != nil {
		return "", err
	}
	r.tokens[item.EngineerLogin] = t
	return t, nil
}

func (r *Runner) post(path, token string, payload any) (int, []byte, error) {
	var body []byte
	if payload != nil {
		var err error
		if body, err = json.Marshal(payload); err != nil {
			return 0, nil, err
		}
	}
	return r.api.PostJSON(r.baseURL+path, r.headers(token), body)
}

func (r *Runner) headers(token string) http.Header {
	headers := http.Header{}
	headers.Set("X-Request-Id", r.runID)
	if token != "" {
		headers.Set("Authorization", "Bearer "+token)
	}
	return headers
}

// skippable reports rejections that mean the order is already past the step.
func skippable(body []byte) bool {
	var resp utils.Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return false
	}
	kind := apperrors.Kind(resp.Error)
	return kind == apperrors.KindIllegalTransition || kind == apperrors.KindAuthorizationDenied
}

func describe(status int, body []byte) string {
	var resp utils.Response
	if err := json.Unmarshal(body, &resp); err == nil && resp.Message != "" {
		if resp.Error != "" {
			return fmt.Sprintf("%d %s: %s", status, resp.Error, resp.Message)
		}
		return fmt.Sprintf("%d: %s", status, resp.Message)
	}
	return fmt.Sprintf("%d %s", status, http.StatusText(status))
}
