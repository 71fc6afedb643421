package orderservice

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fieldservice/internal/access"
	"github.com/GlebRadaev/fieldservice/internal/apperrors"
	"github.com/GlebRadaev/fieldservice/internal/domain"
	"github.com/GlebRadaev/fieldservice/internal/pg"
	"github.com/GlebRadaev/fieldservice/pkg/money"
)

type Repo interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int) (*domain.Order, error)
	GetForUpdate(ctx context.Context, id int) (*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	Delete(ctx context.Context, id int) error
}

type Ledger interface {
	Record(ctx context.Context, order *domain.Order, sess access.Session, in domain.WorkSessionInput) (*domain.WorkSession, error)
	Totals(ctx context.Context, orderID int) (*domain.OrderTotals, error)
	DeleteForOrder(ctx context.Context, orderID int) (int64, error)
}

type EventRepo interface {
	Insert(ctx context.Context, e *domain.OrderEvent) error
	CountPending(ctx context.Context, orderID int) (int, error)
}

type Resolver interface {
	Resolve(ctx context.Context, engineerID, organizationID int, workDate time.Time) (*domain.RateSnapshot, error)
}

type Service struct {
	repo      Repo
	ledger    Ledger
	events    EventRepo
	rates     Resolver
	txManager pg.TXManager
	now       func() time.Time
}

func New(repo Repo, ledger Ledger, events EventRepo, rates Resolver, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		ledger:    ledger,
		events:    events,
		rates:     rates,
		txManager: txManager,
		now:       time.Now,
	}
}

func (s *Service) Create(ctx context.Context, sess access.Session, order *domain.Order) (*domain.Order, error) {
	if !sess.Can(access.ActionCreateOrder, access.OwnershipNone) {
		return nil, apperrors.Denied("only managers create orders")
	}
	order.Title = strings.TrimSpace(order.Title)
	if order.Title == "" {
		return nil, apperrors.Invalid("title is required")
	}
	if order.OrganizationID <= 0 {
		return nil, apperrors.Invalid("organizationId is required")
	}
	if order.Source == "" {
		order.Source = domain.SourceManual
	}
	if !order.Source.Valid() {
		return nil, apperrors.Invalid("unknown order source %q", order.Source)
	}
	if order.TerritoryType == "" {
		order.TerritoryType = domain.TerritoryHome
	}
	if !order.TerritoryType.Valid() {
		return nil, apperrors.Invalid("unknown territory type %q", order.TerritoryType)
	}
	if order.DistanceKm.IsNegative() {
		return nil, apperrors.Invalid("distanceKm must not be negative")
	}
	if !money.FitsCents(order.DistanceKm) {
		return nil, apperrors.Invalid("distanceKm must have at most two decimal places")
	}

	order.Status = domain.StatusWaiting
	order.AssignedEngineerID = nil
	order.CompletionDate = nil
	order.CreatedBy = sess.UserID

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	zap.L().Info("order created", zap.Int("orderID", created.ID), zap.String("source", string(created.Source)))
	return created, nil
}

func (s *Service) Get(ctx context.Context, sess access.Session, id int) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !sess.Can(access.ActionViewOrder, sess.OwnershipOf(order.AssignedEngineerID)) {
		return nil, apperrors.Denied("order %d is not visible to user %d", id, sess.UserID)
	}
	return order, nil
}

// List narrows engineers to their own orders.
func (s *Service) List(ctx context.Context, sess access.Session, filter domain.OrderFilter) ([]domain.Order, error) {
	if !sess.Can(access.ActionListAllOrders, access.OwnershipNone) {
		filter.EngineerID = sess.UserID
	}
	return s.repo.List(ctx, filter)
}

// mutate loads the order under a row lock, applies fn and writes it back
// with a version check. Nothing is persisted when fn fails.
func (s *Service) mutate(ctx context.Context, id int, fn func(ctx context.Context, order *domain.Order) (bool, error)) (*domain.Order, error) {
	var result *domain.Order
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		changed, err := fn(ctx, order)
		if err != nil {
			return err
		}
		if changed {
			if err := s.repo.Update(ctx, order); err != nil {
				return err
			}
		}
		result = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) emit(ctx context.Context, order *domain.Order, eventType domain.EventType, actorID int) error {
	return s.events.Insert(ctx, &domain.OrderEvent{
		ID:         uuid.NewString(),
		OrderID:    order.ID,
		Type:       eventType,
		ActorID:    actorID,
		EngineerID: order.AssignedEngineerID,
		Status:     order.Status,
	})
}

// Nominate assigns an engineer to a waiting order, or replaces the nominee
// while the order is still unaccepted. expectedVersion is the order version
// the caller last saw, 0 when unknown. Replacing a different nominee requires
// it, so two managers nominating at once cannot silently overwrite each other.
func (s *Service) Nominate(ctx context.Context, sess access.Session, id, engineerID, expectedVersion int) (*domain.Order, error) {
	if !sess.Can(access.ActionNominate, access.OwnershipNone) {
		return nil, apperrors.Denied("only managers nominate engineers")
	}
	if engineerID <= 0 {
		return nil, apperrors.Invalid("engineerId is required")
	}
	if expectedVersion < 0 {
		return nil, apperrors.Invalid("version must not be negative")
	}
	return s.mutate(ctx, id, func(ctx context.Context, order *domain.Order) (bool, error) {
		if expectedVersion > 0 && expectedVersion != order.Version {
			return false, apperrors.Conflict("order %d is at version %d, not %d, reload and retry", order.ID, order.Version, expectedVersion)
		}
		switch order.Status {
		case domain.StatusWaiting:
		case domain.StatusAssigned:
			if order.AssignedEngineerID == nil {
				return false, apperrors.Illegal("order %d is assigned without an engineer, reset it", order.ID)
			}
			if *order.AssignedEngineerID == engineerID {
				return false, nil
			}
			if expectedVersion == 0 {
				return false, apperrors.Conflict("order %d is already assigned to engineer %d, pass its version to reassign", order.ID, *order.AssignedEngineerID)
			}
		default:
			return false, apperrors.Illegal("order %d is %s, reset it before reassigning", order.ID, order.Status)
		}
		// the engineer must have rates for the organization before work starts
		if _, err := s.rates.Resolve(ctx, engineerID, order.OrganizationID, s.now()); err != nil {
			return false, err
		}

		order.Status = domain.StatusAssigned
		order.AssignedEngineerID = &engineerID
		if err := s.emit(ctx, order, domain.EventNominated, sess.UserID); err != nil {
			return false, err
		}
		zap.L().Info("engineer nominated", zap.Int("orderID", order.ID), zap.Int("engineerID", engineerID))
		return true, nil
	})
}

// Accept is idempotent: accepting an order the engineer already accepted
// returns it unchanged.
func (s *Service) Accept(ctx context.Context, sess access.Session, id int) (*domain.Order, error) {
	return s.mutate(ctx, id, func(ctx context.Context, order *domain.Order) (bool, error) {
		if !sess.Can(access.ActionAccept, sess.OwnershipOf(order.AssignedEngineerID)) {
			return false, apperrors.Denied("order %d is not assigned to user %d", order.ID, sess.UserID)
		}
		switch order.Status {
		case domain.StatusAssigned:
		case domain.StatusProcessing, domain.StatusWorking, domain.StatusReview, domain.StatusCompleted:
			zap.L().Info("order already accepted", zap.Int("orderID", order.ID))
			return false, nil
		default:
			return false, apperrors.Illegal("order %d is %s and cannot be accepted", order.ID, order.Status)
		}

		now := s.now()
		if order.PlannedStartDate != nil && dateOnly(*order.PlannedStartDate).After(dateOnly(now)) {
			order.Status = domain.StatusProcessing
		} else {
			order.Status = domain.StatusWorking
			order.ActualStartDate = &now
		}
		if err := s.emit(ctx, order, domain.EventAccepted, sess.UserID); err != nil {
			return false, err
		}
		zap.L().Info("order accepted", zap.Int("orderID", order.ID), zap.String("status", string(order.Status)))
		return true, nil
	})
}

func (s *Service) Start(ctx context.Context, sess access.Session, id int) (*domain.Order, error) {
	return s.mutate(ctx, id, func(ctx context.Context, order *domain.Order) (bool, error) {
		if !sess.Can(access.ActionStartWork, sess.OwnershipOf(order.AssignedEngineerID)) {
			return false, apperrors.Denied("order %d is not assigned to user %d", order.ID, sess.UserID)
		}
		switch order.Status {
		case domain.StatusProcessing:
			s.startWork(order)
			return true, nil
		case domain.StatusWorking:
			return false, nil
		}
		return false, apperrors.Illegal("order %d is %s and cannot be started", order.ID, order.Status)
	})
}

func (s *Service) startWork(order *domain.Order) {
	now := s.now()
	order.Status = domain.StatusWorking
	if order.ActualStartDate == nil {
		order.ActualStartDate = &now
	}
}

// CompleteWork logs a session and moves the order to review, or to
// completed when the engineer marks the work as fully done.
func (s *Service) CompleteWork(ctx context.Context, sess access.Session, id int, in domain.WorkSessionInput, fullyCompleted bool) (*domain.Order, error) {
	return s.mutate(ctx, id, func(ctx context.Context, order *domain.Order) (bool, error) {
		if !sess.Can(access.ActionSubmitWork, sess.OwnershipOf(order.AssignedEngineerID)) {
			return false, apperrors.Denied("order %d is not assigned to user %d", order.ID, sess.UserID)
		}
		switch order.Status {
		case domain.StatusProcessing:
			s.startWork(order)
		case domain.StatusWorking, domain.StatusReview:
		default:
			return false, apperrors.Illegal("order %d is %s, work cannot be submitted", order.ID, order.Status)
		}

		if _, err := s.ledger.Record(ctx, order, sess, in); err != nil {
			return false, err
		}
		if err := s.requireSessions(ctx, order); err != nil {
			return false, err
		}

		if !fullyCompleted {
			order.Status = domain.StatusReview
			return true, nil
		}
		return true, s.completeOrder(ctx, order, sess.UserID)
	})
}

// Complete is the manager's final completion of submitted work.
func (s *Service) Complete(ctx context.Context, sess access.Session, id int) (*domain.Order, error) {
	if !sess.Can(access.ActionComplete, access.OwnershipNone) {
		return nil, apperrors.Denied("only managers complete orders")
	}
	return s.mutate(ctx, id, func(ctx context.Context, order *domain.Order) (bool, error) {
		if order.Status != domain.StatusWorking && order.Status != domain.StatusReview {
			return false, apperrors.Illegal("order %d is %s and cannot be completed", order.ID, order.Status)
		}
		if err := s.requireSessions(ctx, order); err != nil {
			return false, err
		}
		return true, s.completeOrder(ctx, order, sess.UserID)
	})
}

func (s *Service) completeOrder(ctx context.Context, order *domain.Order, actorID int) error {
	now := s.now()
	order.Status = domain.StatusCompleted
	order.CompletionDate = &now
	order.NeedsReconciliation = false
	if err := s.emit(ctx, order, domain.EventCompleted, actorID); err != nil {
		return err
	}
	zap.L().Info("order completed", zap.Int("orderID", order.ID))
	return nil
}

func (s *Service) requireSessions(ctx context.Context, order *domain.Order) error {
	totals, err := s.ledger.Totals(ctx, order.ID)
	if err != nil {
		return err
	}
	if totals.Sessions == 0 {
		return apperrors.Illegal("order %d has no work sessions", order.ID)
	}
	return nil
}

// Reset returns an order to waiting and clears the assignee. Completed
// orders need an admin and an explicit force.
func (s *Service) Reset(ctx context.Context, sess access.Session, id int, force bool) (*domain.Order, error) {
	if !sess.Can(access.ActionReset, access.OwnershipNone) {
		return nil, apperrors.Denied("only managers reset orders")
	}
	if force && !sess.Can(access.ActionForceReset, access.OwnershipNone) {
		return nil, apperrors.Denied("only admins force a reset")
	}
	return s.mutate(ctx, id, func(ctx context.Context, order *domain.Order) (bool, error) {
		switch order.Status {
		case domain.StatusWaiting:
			return false, nil
		case domain.StatusCompleted:
			if !force {
				return false, apperrors.Illegal("order %d is completed, reset requires force", order.ID)
			}
		}

		previous := order.AssignedEngineerID
		order.Status = domain.StatusWaiting
		order.AssignedEngineerID = nil
		order.ActualStartDate = nil
		order.CompletionDate = nil

		event := *order
		event.AssignedEngineerID = previous
		if err := s.emit(ctx, &event, domain.EventReset, sess.UserID); err != nil {
			return false, err
		}
		zap.L().Warn("order reset", zap.Int("orderID", order.ID), zap.Int("actorID", sess.UserID))
		return true, nil
	})
}

// Reopen moves a completed order back to review, lifting the edit lock.
func (s *Service) Reopen(ctx context.Context, sess access.Session, id int) (*domain.Order, error) {
	if !sess.Can(access.ActionReopen, access.OwnershipNone) {
		return nil, apperrors.Denied("only admins reopen orders")
	}
	return s.mutate(ctx, id, func(ctx context.Context, order *domain.Order) (bool, error) {
		if order.Status != domain.StatusCompleted {
			return false, apperrors.Illegal("order %d is %s, only completed orders reopen", order.ID, order.Status)
		}
		order.Status = domain.StatusReview
		order.CompletionDate = nil
		if err := s.emit(ctx, order, domain.EventReopened, sess.UserID); err != nil {
			return false, err
		}
		zap.L().Warn("order reopened", zap.Int("orderID", order.ID), zap.Int("actorID", sess.UserID))
		return true, nil
	})
}

// DeletionPreview reports what a confirmed delete would remove.
func (s *Service) DeletionPreview(ctx context.Context, sess access.Session, id int) (*domain.DeletionReport, error) {
	if !sess.Can(access.ActionDeleteOrder, access.OwnershipNone) {
		return nil, apperrors.Denied("only admins delete orders")
	}
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	totals, err := s.ledger.Totals(ctx, id)
	if err != nil {
		return nil, err
	}
	pending, err := s.events.CountPending(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.DeletionReport{
		OrderID:             id,
		Status:              order.Status,
		Sessions:            totals.Sessions,
		InvoiceableSessions: totals.InvoiceableSessions,
		OrganizationPayment: totals.OrganizationPayment,
		PendingEvents:       pending,
		Blocked:             totals.Sessions > 0,
	}, nil
}

// Delete removes an order. Orders with work sessions are only removed
// together with them when confirm is set.
func (s *Service) Delete(ctx context.Context, sess access.Session, id int, confirm bool) (*domain.DeletionReport, error) {
	if !sess.Can(access.ActionDeleteOrder, access.OwnershipNone) {
		return nil, apperrors.Denied("only admins delete orders")
	}
	report := &domain.DeletionReport{OrderID: id}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		totals, err := s.ledger.Totals(ctx, id)
		if err != nil {
			return err
		}
		report.Status = order.Status
		report.Sessions = totals.Sessions
		report.InvoiceableSessions = totals.InvoiceableSessions
		report.OrganizationPayment = totals.OrganizationPayment

		if totals.Sessions > 0 && !confirm {
			report.Blocked = true
			return apperrors.Illegal("order %d has %d work sessions, confirm to delete them", id, totals.Sessions)
		}
		if _, err := s.ledger.DeleteForOrder(ctx, id); err != nil {
			return err
		}
		if err := s.repo.Delete(ctx, id); err != nil {
			return err
		}
		return s.emit(ctx, order, domain.EventDeleted, sess.UserID)
	})
	if err != nil {
		return nil, err
	}
	zap.L().Warn("order deleted", zap.Int("orderID", id), zap.Int("sessions", report.Sessions), zap.Int("actorID", sess.UserID))
	return report, nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
