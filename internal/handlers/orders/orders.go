package orders

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/fieldservice/internal/access"
	"github.com/GlebRadaev/fieldservice/internal/apperrors"
	"github.com/GlebRadaev/fieldservice/internal/domain"
	"github.com/GlebRadaev/fieldservice/internal/dto"
	"github.com/GlebRadaev/fieldservice/pkg/auth"
	"github.com/GlebRadaev/fieldservice/pkg/utils"
	"github.com/GlebRadaev/fieldservice/pkg/validate"
)

type Service interface {
	Create(ctx context.Context, sess access.Session, order *domain.Order) (*domain.Order, error)
	Get(ctx context.Context, sess access.Session, id int) (*domain.Order, error)
	List(ctx context.Context, sess access.Session, filter domain.OrderFilter) ([]domain.Order, error)
	Nominate(ctx context.Context, sess access.Session, id, engineerID, expectedVersion int) (*domain.Order, error)
	Accept(ctx context.Context, sess access.Session, id int) (*domain.Order, error)
	Start(ctx context.Context, sess access.Session, id int) (*domain.Order, error)
	CompleteWork(ctx context.Context, sess access.Session, id int, in domain.WorkSessionInput, fullyCompleted bool) (*domain.Order, error)
	Complete(ctx context.Context, sess access.Session, id int) (*domain.Order, error)
	Reset(ctx context.Context, sess access.Session, id int, force bool) (*domain.Order, error)
	Reopen(ctx context.Context, sess access.Session, id int) (*domain.Order, error)
	DeletionPreview(ctx context.Context, sess access.Session, id int) (*domain.DeletionReport, error)
	Delete(ctx context.Context, sess access.Session, id int, confirm bool) (*domain.DeletionReport, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

type transition func(ctx context.Context, sess access.Session, id int) (*domain.Order, error)

// apply runs a body-less transition on the order named in the path.
func (h *OrderHandler) apply(w http.ResponseWriter, r *http.Request, fn transition) {
	sess, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}
	id, err := utils.PathID(r, "id")
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	order, err := fn(r.Context(), sess, id)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromOrder(order))
}

// CreateOrder godoc
//
//	@Summary		Create an order
//	@Description	Create a waiting order for an organization. Managers and administrators only.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateOrderRequestDTO	true	"New order"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Action not allowed for the active role"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}
	var req dto.CreateOrderRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	order, err := req.ToOrder()
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	created, err := h.orderService.Create(r.Context(), sess, order)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromOrder(created))
}

// GetOrder godoc
//
//	@Summary	Get an order
//	@Tags		Orders
//	@Produce	json
//	@Param		id	path	int	true	"Order ID"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.OrderResponseDTO
//	@Failure	403	{object}	utils.Response	"Order is assigned to someone else"
//	@Failure	404	{object}	utils.Response	"Order not found"
//	@Router		/orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, h.orderService.Get)
}

// GetOrders godoc
//
//	@Summary		List orders
//	@Description	Engineers only see orders assigned to them.
//	@Tags			Orders
//	@Produce		json
//	@Param			status			query	string	false	"Order status"
//	@Param			organizationId	query	int		false	"Organization ID"
//	@Param			engineerId		query	int		false	"Assigned engineer ID"
//	@Param			limit			query	int		false	"Page size"	default(100)
//	@Param			offset			query	int		false	"Page offset"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid filter"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}
	filter, err := parseFilter(r)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	orders, err := h.orderService.List(r.Context(), sess, filter)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromOrders(orders))
}

func parseFilter(r *http.Request) (domain.OrderFilter, error) {
	var filter domain.OrderFilter
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = domain.OrderStatus(status)
		if !filter.Status.Valid() {
			return filter, apperrors.Invalid("unknown order status %q", status)
		}
	}
	params := []struct {
		name string
		dst  func(v int)
	}{
		{"organizationId", func(v int) { filter.OrganizationID = v }},
		{"engineerId", func(v int) { filter.EngineerID = v }},
		{"limit", func(v int) { filter.Limit = uint64(v) }},
		{"offset", func(v int) { filter.Offset = uint64(v) }},
	}
	for _, p := range params {
		v, err := utils.QueryInt(r, p.name, 0)
		if err != nil {
			return filter, err
		}
		if v < 0 {
			return filter, apperrors.Invalid("%s must not be negative", p.name)
		}
		p.dst(v)
	}
	return filter, nil
}

// AssignEngineer godoc
//
//	@Summary		Nominate an engineer
//	@Description	Assign a waiting order, or replace the nominee before acceptance. Replacing requires the order version.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int								true	"Order ID"
//	@Param			request	body	dto.AssignEngineerRequestDTO	true	"Engineer"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		403	{object}	utils.Response	"Action not allowed for the active role"
//	@Failure		409	{object}	utils.Response	"Order can no longer be nominated or its version changed"
//	@Failure		422	{object}	utils.Response	"Engineer has no resolvable rate"
//	@Router			/orders/{id}/assign-engineer [post]
func (h *OrderHandler) AssignEngineer(w http.ResponseWriter, r *http.Request) {
	var req dto.AssignEngineerRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	h.apply(w, r, func(ctx context.Context, sess access.Session, id int) (*domain.Order, error) {
		return h.orderService.Nominate(ctx, sess, id, req.EngineerID, req.Version)
	})
}

// AcceptOrder godoc
//
//	@Summary		Accept an assignment
//	@Description	The assigned engineer accepts the order. Repeating the call is harmless.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path	int	true	"Order ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		403	{object}	utils.Response	"Not the assignee"
//	@Failure		409	{object}	utils.Response	"Order is not assigned"
//	@Router			/orders/{id}/accept [post]
func (h *OrderHandler) AcceptOrder(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, h.orderService.Accept)
}

// StartOrder godoc
//
//	@Summary	Start work on an order
//	@Tags		Orders
//	@Produce	json
//	@Param		id	path	int	true	"Order ID"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.OrderResponseDTO
//	@Failure	403	{object}	utils.Response	"Not the assignee"
//	@Failure	409	{object}	utils.Response	"Order is not processing"
//	@Router		/orders/{id}/start [post]
func (h *OrderHandler) StartOrder(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, h.orderService.Start)
}

// CompleteWork godoc
//
//	@Summary		Log final work and hand the order to review
//	@Description	Records a work session and moves the order to review. With isFullyCompleted the order is completed at once.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Order ID"
//	@Param			request	body	dto.CompleteWorkRequestDTO	true	"Closing work session"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid work session"
//	@Failure		409	{object}	utils.Response	"Order is not in a working state"
//	@Failure		422	{object}	utils.Response	"Rate could not be resolved"
//	@Router			/orders/{id}/complete-work [post]
func (h *OrderHandler) CompleteWork(w http.ResponseWriter, r *http.Request) {
	var req dto.CompleteWorkRequestDTO
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
	h.apply(w, r, func(ctx context.Context, sess access.Session, id int) (*domain.Order, error) {
		return h.orderService.CompleteWork(ctx, sess, id, in, req.IsFullyCompleted)
	})
}

// CompleteOrder godoc
//
//	@Summary		Complete an order
//	@Description	Requires at least one invoiceable work session.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path	int	true	"Order ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		409	{object}	utils.Response	"Order cannot be completed"
//	@Router			/orders/{id}/complete [post]
func (h *OrderHandler) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, h.orderService.Complete)
}

// ResetOrder godoc
//
//	@Summary		Return an order to waiting
//	@Description	Clears the assignment. Orders with work sessions need force=true.
//	@Tags			Orders
//	@Produce		json
//	@Param			id		path	int		true	"Order ID"
//	@Param			force	query	bool	false	"Reset even when work was logged"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		409	{object}	utils.Response	"Order has work sessions"
//	@Router			/orders/{id}/reset [post]
func (h *OrderHandler) ResetOrder(w http.ResponseWriter, r *http.Request) {
	force, err := utils.QueryBool(r, "force")
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	h.apply(w, r, func(ctx context.Context, sess access.Session, id int) (*domain.Order, error) {
		return h.orderService.Reset(ctx, sess, id, force)
	})
}

// ReopenOrder godoc
//
//	@Summary	Reopen a completed order for review
//	@Tags		Orders
//	@Produce	json
//	@Param		id	path	int	true	"Order ID"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.OrderResponseDTO
//	@Failure	409	{object}	utils.Response	"Order is not completed"
//	@Router		/orders/{id}/reopen [post]
func (h *OrderHandler) ReopenOrder(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, h.orderService.Reopen)
}

// DeletionPreview godoc
//
//	@Summary		Preview an order deletion
//	@Description	Lists the work sessions and pending events a deletion would remove.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path	int	true	"Order ID"
//	@Security		BearerAuth
//	@Success		200	{object}	domain.DeletionReport
//	@Failure		403	{object}	utils.Response	"Administrators only"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Router			/orders/{id}/deletion-preview [get]
func (h *OrderHandler) DeletionPreview(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, h.orderService.DeletionPreview)
}

// DeleteOrder godoc
//
//	@Summary		Delete an order
//	@Description	Without confirm=true only the preview is returned and nothing is removed.
//	@Tags			Orders
//	@Produce		json
//	@Param			id		path	int		true	"Order ID"
//	@Param			confirm	query	bool	false	"Actually delete"
//	@Security		BearerAuth
//	@Success		200	{object}	domain.DeletionReport
//	@Failure		403	{object}	utils.Response	"Administrators only"
//	@Failure		409	{object}	utils.Response	"Order has invoiceable work"
//	@Router			/orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	confirm, err := utils.QueryBool(r, "confirm")
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	h.report(w, r, func(ctx context.Context, sess access.Session, id int) (*domain.DeletionReport, error) {
		return h.orderService.Delete(ctx, sess, id, confirm)
	})
}

func (h *OrderHandler) report(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, sess access.Session, id int) (*domain.DeletionReport, error)) {
	sess, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}
	id, err := utils.PathID(r, "id")
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	report, err := fn(r.Context(), sess, id)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}
