package rateservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fieldservice/internal/access"
	"github.com/GlebRadaev/fieldservice/internal/apperrors"
	"github.com/GlebRadaev/fieldservice/internal/config"
	"github.com/GlebRadaev/fieldservice/internal/domain"
	"github.com/GlebRadaev/fieldservice/pkg/money"
)

type Repo interface {
	ProfileByUser(ctx context.Context, userID int) (*domain.EngineerProfile, error)
	ActiveOverride(ctx context.Context, engineerID, organizationID int) (*domain.RateOverride, error)
	Organization(ctx context.Context, id int) (*domain.Organization, error)
	UpsertProfile(ctx context.Context, p *domain.EngineerProfile) error
	SupersedeOverride(ctx context.Context, o *domain.RateOverride) error
	DeactivateOverride(ctx context.Context, id int) error
	UpdateOrganizationRates(ctx context.Context, org *domain.Organization) error
}

// Defaults is the system-wide tier. Nil base rates mean no fallback exists.
type Defaults struct {
	BaseRate            *decimal.Decimal
	OrgBaseRate         *decimal.Decimal
	OvertimeCoefficient decimal.Decimal
	Zone1Extra          decimal.Decimal
	Zone2Extra          decimal.Decimal
	Zone3Extra          decimal.Decimal
}

var defaultCoefficient = decimal.RequireFromString("1.6")

func DefaultsFromConfig(cfg config.RateDefaults) Defaults {
	orZero := func(s string) decimal.Decimal {
		if d := config.Decimal(s); d != nil {
			return *d
		}
		return decimal.Zero
	}
	coef := defaultCoefficient
	if d := config.Decimal(cfg.OvertimeCoefficient); d != nil {
		coef = *d
	}
	return Defaults{
		BaseRate:            config.Decimal(cfg.BaseRate),
		OrgBaseRate:         config.Decimal(cfg.OrgBaseRate),
		OvertimeCoefficient: coef,
		Zone1Extra:          orZero(cfg.Zone1Extra),
		Zone2Extra:          orZero(cfg.Zone2Extra),
		Zone3Extra:          orZero(cfg.Zone3Extra),
	}
}

type Service struct {
	repo     Repo
	defaults Defaults
	now      func() time.Time
}

func New(repo Repo, defaults Defaults) *Service {
	return &Service{
		repo:     repo,
		defaults: defaults,
		now:      time.Now,
	}
}

// Resolve builds the rate snapshot for one engineer working for one
// organization. Each field takes the first non-nil value of: active
// override, engineer profile, organization default, system default.
// Rates are not versioned by date, so workDate only documents intent;
// the snapshot frozen into the session is the audit record.
func (s *Service) Resolve(ctx context.Context, engineerID, organizationID int, workDate time.Time) (*domain.RateSnapshot, error) {
	profile, err := s.repo.ProfileByUser(ctx, engineerID)
	if err != nil {
		return nil, err
	}
	if profile == nil || !profile.IsActive {
		zap.L().Info("no active engineer profile", zap.Int("engineerID", engineerID))
		return nil, apperrors.Unresolved("engineer %d has no active profile", engineerID)
	}

	org, err := s.repo.Organization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	override, err := s.repo.ActiveOverride(ctx, engineerID, organizationID)
	if err != nil {
		return nil, err
	}
	if override != nil && !override.IsActive {
		override = nil
	}
	ov := override
	if ov == nil {
		ov = &domain.RateOverride{}
	}

	base := money.FirstOf(ov.BaseRate, profile.BaseRate, org.EngineerBaseRate, s.defaults.BaseRate)
	if base == nil {
		return nil, apperrors.Unresolved("no base rate for engineer %d in organization %d", engineerID, organizationID)
	}
	orgBase := money.FirstOf(org.BaseRate, s.defaults.OrgBaseRate)
	if orgBase == nil {
		return nil, apperrors.Unresolved("no billing rate for organization %d", organizationID)
	}

	snap := &domain.RateSnapshot{
		BaseRate:               *base,
		Zone1Extra:             *money.FirstOf(ov.Zone1Extra, &s.defaults.Zone1Extra),
		Zone2Extra:             *money.FirstOf(ov.Zone2Extra, &s.defaults.Zone2Extra),
		Zone3Extra:             *money.FirstOf(ov.Zone3Extra, &s.defaults.Zone3Extra),
		CarKmRate:              money.FirstOf(ov.CarKmRate, profile.CarKmRate),
		FixedCarAmount:         money.FirstOf(ov.FixedCarAmount, profile.FixedCarAmount),
		FixedSalary:            money.FirstOf(ov.FixedSalary, profile.FixedSalary),
		OrgBaseRate:            *orgBase,
		OrgOvertimeCoefficient: *money.FirstOf(org.OvertimeMultiplier, &s.defaults.OvertimeCoefficient),
		ResolvedAt:             s.now(),
	}
	if override != nil {
		snap.OverrideID = &override.ID
	}

	// overtime mode comes as a whole from the first tier that sets one
	switch {
	case ov.FixedOvertimeRate != nil || ov.OvertimeCoefficient != nil:
		snap.FixedOvertimeRate, snap.OvertimeCoefficient = ov.FixedOvertimeRate, ov.OvertimeCoefficient
	case profile.FixedOvertimeRate != nil || profile.OvertimeCoefficient != nil:
		snap.FixedOvertimeRate, snap.OvertimeCoefficient = profile.FixedOvertimeRate, profile.OvertimeCoefficient
	case org.EngineerOvertime != nil:
		snap.OvertimeCoefficient = org.EngineerOvertime
	default:
		snap.OvertimeCoefficient = money.Ptr(s.defaults.OvertimeCoefficient)
	}
	if snap.FixedOvertimeRate != nil {
		snap.OvertimeCoefficient = nil
	}

	return snap, nil
}

// Preview resolves rates for display. Engineers may only preview their own.
func (s *Service) Preview(ctx context.Context, sess access.Session, engineerID, organizationID int) (*domain.RateSnapshot, error) {
	if !sess.Can(access.ActionViewRates, sess.OwnershipOf(&engineerID)) {
		return nil, apperrors.Denied("cannot view rates of engineer %d", engineerID)
	}
	return s.Resolve(ctx, engineerID, organizationID, s.now())
}

func (s *Service) SetProfile(ctx context.Context, sess access.Session, p *domain.EngineerProfile) error {
	if !sess.Can(access.ActionManageRates, access.OwnershipNone) {
		return apperrors.Denied("only admins manage rates")
	}
	if p.EngineerType != "" && !p.EngineerType.Valid() {
		return apperrors.Invalid("unknown engineer type %q", p.EngineerType)
	}
	if err := nonNegative(p.BaseRate, p.OvertimeCoefficient, p.FixedOvertimeRate, p.FixedSalary,
		p.FixedCarAmount, p.CarKmRate, p.PlannedMonthlyHours, p.HomeTerritoryFixedAmount); err != nil {
		return err
	}
	if err := s.repo.UpsertProfile(ctx, p); err != nil {
		return err
	}
	zap.L().Info("engineer profile saved", zap.Int("userID", p.UserID), zap.Int("adminID", sess.UserID))
	return nil
}

// SetOverride replaces the active override of the pair. The previous one
// is kept with is_active=false.
func (s *Service) SetOverride(ctx context.Context, sess access.Session, o *domain.RateOverride) error {
	if !sess.Can(access.ActionManageRates, access.OwnershipNone) {
		return apperrors.Denied("only admins manage rates")
	}
	if err := nonNegative(o.BaseRate, o.OvertimeCoefficient, o.FixedOvertimeRate, o.FixedSalary,
		o.FixedCarAmount, o.CarKmRate, o.Zone1Extra, o.Zone2Extra, o.Zone3Extra); err != nil {
		return err
	}
	if _, err := s.repo.Organization(ctx, o.OrganizationID); err != nil {
		return err
	}
	o.CreatedBy = sess.UserID
	if err := s.repo.SupersedeOverride(ctx, o); err != nil {
		return err
	}
	zap.L().Info("rate override activated",
		zap.Int("overrideID", o.ID), zap.Int("engineerID", o.EngineerID), zap.Int("organizationID", o.OrganizationID))
	return nil
}

func (s *Service) DeactivateOverride(ctx context.Context, sess access.Session, id int) error {
	if !sess.Can(access.ActionManageRates, access.OwnershipNone) {
		return apperrors.Denied("only admins manage rates")
	}
	return s.repo.DeactivateOverride(ctx, id)
}

func (s *Service) SetOrganizationRates(ctx context.Context, sess access.Session, org *domain.Organization) error {
	if !sess.Can(access.ActionManageRates, access.OwnershipNone) {
		return apperrors.Denied("only admins manage rates")
	}
	if err := nonNegative(org.BaseRate, org.OvertimeMultiplier, org.EngineerBaseRate, org.EngineerOvertime); err != nil {
		return err
	}
	return s.repo.UpdateOrganizationRates(ctx, org)
}

func nonNegative(values ...*decimal.Decimal) error {
	for _, v := range values {
		if v != nil && v.IsNegative() {
			return apperrors.Invalid("rates must not be negative, got %s", v.String())
		}
	}
	return nil
}
