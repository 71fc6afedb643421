package sessions

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/fieldservice/internal/access"
	"github.com/GlebRadaev/fieldservice/internal/domain"
	"github.com/GlebRadaev/fieldservice/internal/dto"
	"github.com/GlebRadaev/fieldservice/internal/service/sessionservice"
	"github.com/GlebRadaev/fieldservice/pkg/auth"
	"github.com/GlebRadaev/fieldservice/pkg/utils"
	"github.com/GlebRadaev/fieldservice/pkg/validate"
)

type Service interface {
	Log(ctx context.Context, sess access.Session, orderID int, in domain.WorkSessionInput) (*domain.WorkSession, error)
	Update(ctx context.Context, sess access.Session, id int, patch sessionservice.Patch) (*domain.WorkSession, error)
	Delete(ctx context.Context, sess access.Session, id int, force bool) error
	ListByOrder(ctx context.Context, sess access.Session, orderID int) ([]domain.WorkSession, error)
	Summary(ctx context.Context, sess access.Session, orderID int) (*domain.OrderTotals, error)
}

type SessionHandler struct {
	sessionService Service
}

func New(sessionService Service) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

func identify(w http.ResponseWriter, r *http.Request) (access.Session, int, bool) {
	sess, ok := auth.RequireSession(w, r)
	if !ok {
		return sess, 0, false
	}
	id, err := utils.PathID(r, "id")
	if err != nil {
		utils.RespondWithAppError(w, err)
		return sess, 0, false
	}
	return sess, id, true
}

// LogWork godoc
//
//	@Summary		Log a work session
//	@Description	Rates are resolved and frozen into the session. engineerId defaults to the caller.
//	@Tags			Work sessions
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Order ID"
//	@Param			request	body	dto.WorkSessionRequestDTO	true	"Work done"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.WorkSessionResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid work session"
//	@Failure		403	{object}	utils.Response	"Not the assignee"
//	@Failure		409	{object}	utils.Response	"Order does not accept work"
//	@Failure		422	{object}	utils.Response	"Rate could not be resolved"
//	@Router			/orders/{id}/work-sessions [post]
func (h *SessionHandler) LogWork(w http.ResponseWriter, r *http.Request) {
	sess, orderID, ok := identify(w, r)
	if !ok {
		return
	}
	var req dto.WorkSessionRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	ws, err := h.sessionService.Log(r.Context(), sess, orderID, in)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromSession(ws))
}

// ListWork godoc
//
//	@Summary	List an order's work sessions
//	@Tags		Work sessions
//	@Produce	json
//	@Param		id	path	int	true	"Order ID"
//	@Security	BearerAuth
//	@Success	200	{array}		dto.WorkSessionResponseDTO
//	@Failure	403	{object}	utils.Response	"Order is not visible"
//	@Failure	404	{object}	utils.Response	"Order not found"
//	@Router		/orders/{id}/work-sessions [get]
func (h *SessionHandler) ListWork(w http.ResponseWriter, r *http.Request) {
	sess, orderID, ok := identify(w, r)
	if !ok {
		return
	}
	sessions, err := h.sessionService.ListByOrder(r.Context(), sess, orderID)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromSessions(sessions))
}

// Summary godoc
//
//	@Summary	Sum an order's work sessions
//	@Tags		Work sessions
//	@Produce	json
//	@Param		id	path	int	true	"Order ID"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.OrderTotalsResponseDTO
//	@Failure	403	{object}	utils.Response	"Order is not visible"
//	@Router		/orders/{id}/work-sessions/summary [get]
func (h *SessionHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sess, orderID, ok := identify(w, r)
	if !ok {
		return
	}
	totals, err := h.sessionService.Summary(r.Context(), sess, orderID)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromTotals(totals))
}

// UpdateWork godoc
//
//	@Summary		Edit a work session
//	@Description	Amounts are recomputed from the frozen rates unless refreshRates is set.
//	@Tags			Work sessions
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Work session ID"
//	@Param			request	body	dto.UpdateSessionRequestDTO	true	"Changed fields"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.WorkSessionResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid change"
//	@Failure		409	{object}	utils.Response	"Concurrent edit"
//	@Failure		423	{object}	utils.Response	"Order is locked for editing"
//	@Router			/work-sessions/{id} [patch]
func (h *SessionHandler) UpdateWork(w http.ResponseWriter, r *http.Request) {
	sess, id, ok := identify(w, r)
	if !ok {
		return
	}
	var req dto.UpdateSessionRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	ws, err := h.sessionService.Update(r.Context(), sess, id, patch)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromSession(ws))
}

// DeleteWork godoc
//
//	@Summary		Delete a work session
//	@Description	Invoiceable sessions and the last session of a reviewed order need an admin and force=true.
//	@Tags			Work sessions
//	@Param			id		path	int		true	"Work session ID"
//	@Param			force	query	bool	false	"Admin override"
//	@Security		BearerAuth
//	@Success		204
//	@Failure		403	{object}	utils.Response	"Not allowed"
//	@Failure		409	{object}	utils.Response	"Session is protected"
//	@Failure		423	{object}	utils.Response	"Order is locked for editing"
//	@Router			/work-sessions/{id} [delete]
func (h *SessionHandler) DeleteWork(w http.ResponseWriter, r *http.Request) {
	sess, id, ok := identify(w, r)
	if !ok {
		return
	}
	force, err := utils.QueryBool(r, "force")
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	if err := h.sessionService.Delete(r.Context(), sess, id, force); err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
