package sessionservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fieldservice/internal/access"
	"github.com/GlebRadaev/fieldservice/internal/apperrors"
	"github.com/GlebRadaev/fieldservice/internal/config"
	"github.com/GlebRadaev/fieldservice/internal/domain"
	"github.com/GlebRadaev/fieldservice/internal/pg"
	"github.com/GlebRadaev/fieldservice/pkg/money"
)

type Repo interface {
	Create(ctx context.Context, s *domain.WorkSession) error
	GetByID(ctx context.Context, id int) (*domain.WorkSession, error)
	Update(ctx context.Context, s *domain.WorkSession) error
	Delete(ctx context.Context, id int) error
	DeleteByOrder(ctx context.Context, orderID int) (int64, error)
	ListByOrder(ctx context.Context, orderID int) ([]domain.WorkSession, error)
	Totals(ctx context.Context, orderID int) (*domain.OrderTotals, error)
	DailyHours(ctx context.Context, engineerID int, workDate time.Time, excludeID int) (decimal.Decimal, error)
}

type Orders interface {
	GetByID(ctx context.Context, id int) (*domain.Order, error)
	GetForUpdate(ctx context.Context, id int) (*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
}

type Resolver interface {
	Resolve(ctx context.Context, engineerID, organizationID int, workDate time.Time) (*domain.RateSnapshot, error)
}

// Patch is a partial work session edit. Nil fields keep their value.
type Patch struct {
	WorkDate      *time.Time
	RegularHours  *decimal.Decimal
	OvertimeHours *decimal.Decimal
	DistanceKm    *decimal.Decimal
	TerritoryType *domain.TerritoryType
	CarPayment    *decimal.Decimal
	Notes         *string
	CanBeInvoiced *bool
	RefreshRates  bool
}

type Service struct {
	repo      Repo
	orders    Orders
	rates     Resolver
	txManager pg.TXManager
	cfg       config.LedgerConfig
	now       func() time.Time
}

func New(repo Repo, orders Orders, rates Resolver, txManager pg.TXManager, cfg config.LedgerConfig) *Service {
	return &Service{
		repo:      repo,
		orders:    orders,
		rates:     rates,
		txManager: txManager,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Log records work against an order on behalf of the session user.
func (s *Service) Log(ctx context.Context, sess access.Session, orderID int, in domain.WorkSessionInput) (*domain.WorkSession, error) {
	var created *domain.WorkSession
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.orders.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if !sess.Can(access.ActionLogWork, sess.OwnershipOf(order.AssignedEngineerID)) {
			return apperrors.Denied("order %d is not assigned to user %d", orderID, sess.UserID)
		}
		created, err = s.Record(ctx, order, sess, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Record creates a session for an order the caller has already locked and
// authorized. It must run inside the caller's transaction.
func (s *Service) Record(ctx context.Context, order *domain.Order, sess access.Session, in domain.WorkSessionInput) (*domain.WorkSession, error) {
	if err := s.checkEditable(order); err != nil {
		return nil, err
	}
	if in.EngineerID == 0 {
		if order.AssignedEngineerID == nil {
			return nil, apperrors.Illegal("order %d has no assigned engineer", order.ID)
		}
		in.EngineerID = *order.AssignedEngineerID
	}
	if in.EngineerID != sess.UserID && !sess.ActiveRole.AtLeast(access.RoleManager) {
		return nil, apperrors.Denied("engineers log only their own work")
	}
	if in.TerritoryType == "" {
		in.TerritoryType = order.TerritoryType
	}
	distance := order.DistanceKm
	if in.DistanceKm != nil {
		distance = *in.DistanceKm
	}

	ws := &domain.WorkSession{
		OrderID:       order.ID,
		EngineerID:    in.EngineerID,
		WorkDate:      dateOnly(in.WorkDate),
		RegularHours:  in.RegularHours,
		OvertimeHours: in.OvertimeHours,
		DistanceKm:    distance,
		TerritoryType: in.TerritoryType,
		CarPayment:    in.CarPayment,
		Notes:         in.Notes,
		CanBeInvoiced: in.CanBeInvoiced,
		Status:        domain.SessionCompleted,
		CreatedBy:     sess.UserID,
	}
	if err := s.validate(ctx, ws); err != nil {
		return nil, err
	}

	snap, err := s.rates.Resolve(ctx, ws.EngineerID, order.OrganizationID, ws.WorkDate)
	if err != nil {
		return nil, err
	}
	ws.Rates = *snap
	apply(ws)

	if err := s.repo.Create(ctx, ws); err != nil {
		return nil, err
	}
	zap.L().Info("work session logged",
		zap.Int("sessionID", ws.ID), zap.Int("orderID", order.ID), zap.Int("engineerID", ws.EngineerID),
		zap.String("calculatedAmount", ws.CalculatedAmount.StringFixed(2)))
	return ws, nil
}

// Update edits a session. Amounts are recomputed from the stored snapshot
// unless RefreshRates asks for a new resolution.
func (s *Service) Update(ctx context.Context, sess access.Session, id int, patch Patch) (*domain.WorkSession, error) {
	var ws *domain.WorkSession
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		ws, err = s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		order, err := s.orders.GetForUpdate(ctx, ws.OrderID)
		if err != nil {
			return err
		}
		if !sess.Can(access.ActionEditSession, sess.OwnershipOf(&ws.EngineerID)) {
			return apperrors.Denied("work session %d belongs to another engineer", id)
		}
		if err := s.checkEditable(order); err != nil {
			return err
		}

		distanceChanged := patch.DistanceKm != nil && !patch.DistanceKm.Equal(ws.DistanceKm)
		if patch.WorkDate != nil {
			ws.WorkDate = dateOnly(*patch.WorkDate)
		}
		if patch.RegularHours != nil {
			ws.RegularHours = *patch.RegularHours
		}
		if patch.OvertimeHours != nil {
			ws.OvertimeHours = *patch.OvertimeHours
		}
		if patch.DistanceKm != nil {
			ws.DistanceKm = *patch.DistanceKm
		}
		if patch.TerritoryType != nil {
			ws.TerritoryType = *patch.TerritoryType
		}
		switch {
		case patch.CarPayment != nil:
			ws.CarPayment = *patch.CarPayment
		case distanceChanged && ws.Rates.CarKmRate != nil:
			// per-km payment follows the new distance
			ws.CarPayment = decimal.Zero
		}
		if patch.Notes != nil {
			ws.Notes = *patch.Notes
		}
		if patch.CanBeInvoiced != nil {
			ws.CanBeInvoiced = *patch.CanBeInvoiced
		}

		if err := s.validate(ctx, ws); err != nil {
			return err
		}
		if patch.RefreshRates {
			snap, err := s.rates.Resolve(ctx, ws.EngineerID, order.OrganizationID, ws.WorkDate)
			if err != nil {
				return err
			}
			ws.Rates = *snap
		}
		apply(ws)
		return s.repo.Update(ctx, ws)
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("work session updated", zap.Int("sessionID", id), zap.Bool("refreshRates", patch.RefreshRates))
	return ws, nil
}

// Delete removes a session. Invoiceable sessions and the last session of a
// review or completed order need an admin force; a forced removal of the
// last session flags the order for reconciliation.
func (s *Service) Delete(ctx context.Context, sess access.Session, id int, force bool) error {
	if force && !sess.Can(access.ActionForceDeleteSession, access.OwnershipNone) {
		return apperrors.Denied("only admins may force session deletion")
	}
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		ws, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		order, err := s.orders.GetForUpdate(ctx, ws.OrderID)
		if err != nil {
			return err
		}
		if !sess.Can(access.ActionDeleteSession, sess.OwnershipOf(&ws.EngineerID)) {
			return apperrors.Denied("work session %d belongs to another engineer", id)
		}
		if !force {
			if err := s.checkEditable(order); err != nil {
				return err
			}
			if ws.CanBeInvoiced {
				return apperrors.Illegal("work session %d is invoiceable, admin override required", id)
			}
		}

		if order.Status == domain.StatusReview || order.Status == domain.StatusCompleted {
			totals, err := s.repo.Totals(ctx, order.ID)
			if err != nil {
				return err
			}
			if totals.Sessions <= 1 {
				if !force {
					return apperrors.Illegal("work session %d is the last one of %s order %d", id, order.Status, order.ID)
				}
				order.NeedsReconciliation = true
				if err := s.orders.Update(ctx, order); err != nil {
					return err
				}
				zap.L().Warn("order left without work sessions, flagged for reconciliation", zap.Int("orderID", order.ID))
			}
		}

		if err := s.repo.Delete(ctx, id); err != nil {
			return err
		}
		zap.L().Info("work session deleted", zap.Int("sessionID", id), zap.Bool("force", force))
		return nil
	})
}

func (s *Service) ListByOrder(ctx context.Context, sess access.Session, orderID int) ([]domain.WorkSession, error) {
	if err := s.canView(ctx, sess, orderID); err != nil {
		return nil, err
	}
	return s.repo.ListByOrder(ctx, orderID)
}

// Summary is the per-order total for callers allowed to see the order.
func (s *Service) Summary(ctx context.Context, sess access.Session, orderID int) (*domain.OrderTotals, error) {
	if err := s.canView(ctx, sess, orderID); err != nil {
		return nil, err
	}
	return s.repo.Totals(ctx, orderID)
}

// Totals re-queries the ledger on every call; state machine guards rely on it.
func (s *Service) Totals(ctx context.Context, orderID int) (*domain.OrderTotals, error) {
	return s.repo.Totals(ctx, orderID)
}

func (s *Service) DeleteForOrder(ctx context.Context, orderID int) (int64, error) {
	return s.repo.DeleteByOrder(ctx, orderID)
}

func (s *Service) canView(ctx context.Context, sess access.Session, orderID int) error {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if !sess.Can(access.ActionViewOrder, sess.OwnershipOf(order.AssignedEngineerID)) {
		return apperrors.Denied("order %d is not visible to user %d", orderID, sess.UserID)
	}
	return nil
}

// checkEditable allows work on eligible orders and on completed orders
// within the edit lock window.
func (s *Service) checkEditable(order *domain.Order) error {
	if order.Status.WorkEligible() {
		return nil
	}
	if order.Status != domain.StatusCompleted {
		return apperrors.Illegal("order %d is %s, work cannot be logged", order.ID, order.Status)
	}
	if order.CompletionDate == nil || s.now().Sub(*order.CompletionDate) > s.cfg.EditLockWindow {
		return apperrors.Locked("order %d was completed more than %s ago", order.ID, s.cfg.EditLockWindow)
	}
	return nil
}

func (s *Service) validate(ctx context.Context, ws *domain.WorkSession) error {
	if ws.WorkDate.IsZero() {
		return apperrors.Invalid("workDate is required")
	}
	amounts := []struct {
		name  string
		value decimal.Decimal
	}{
		{"regularHours", ws.RegularHours},
		{"overtimeHours", ws.OvertimeHours},
		{"distanceKm", ws.DistanceKm},
		{"carPayment", ws.CarPayment},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return apperrors.Invalid("%s must not be negative", a.name)
		}
		if !money.FitsCents(a.value) {
			return apperrors.Invalid("%s must have at most two decimal places", a.name)
		}
	}
	if !ws.TerritoryType.Valid() {
		return apperrors.Invalid("unknown territory type %q", ws.TerritoryType)
	}

	ceiling := decimal.NewFromInt(s.cfg.MaxDailyHours)
	hours := ws.RegularHours.Add(ws.OvertimeHours)
	if hours.GreaterThan(ceiling) {
		return apperrors.Invalid("%s hours exceed the daily limit of %s", hours, ceiling)
	}
	logged, err := s.repo.DailyHours(ctx, ws.EngineerID, ws.WorkDate, ws.ID)
	if err != nil {
		return err
	}
	if logged.Add(hours).GreaterThan(ceiling) {
		return apperrors.Invalid("engineer %d would have %s hours on %s, limit is %s",
			ws.EngineerID, logged.Add(hours), ws.WorkDate.Format(time.DateOnly), ceiling)
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
