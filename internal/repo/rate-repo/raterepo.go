package raterepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fieldservice/internal/apperrors"
	"github.com/GlebRadaev/fieldservice/internal/domain"
	"github.com/GlebRadaev/fieldservice/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) ProfileByUser(ctx context.Context, userID int) (*domain.EngineerProfile, error) {
	query := `
        SELECT id, user_id, base_rate, overtime_coefficient, fixed_overtime_rate, fixed_salary,
               fixed_car_amount, car_km_rate, engineer_type, planned_monthly_hours,
               home_territory_fixed_amount, is_active
        FROM engineer_profiles
        WHERE user_id = $1
    `
	var p domain.EngineerProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.BaseRate, &p.OvertimeCoefficient, &p.FixedOvertimeRate, &p.FixedSalary,
		&p.FixedCarAmount, &p.CarKmRate, &p.EngineerType, &p.PlannedMonthlyHours,
		&p.HomeTerritoryFixedAmount, &p.IsActive,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find engineer profile", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) ActiveOverride(ctx context.Context, engineerID, organizationID int) (*domain.RateOverride, error) {
	query := `
        SELECT id, engineer_id, organization_id, base_rate, overtime_coefficient,
               fixed_overtime_rate, fixed_salary, fixed_car_amount, car_km_rate,
               zone1_extra, zone2_extra, zone3_extra, is_active, created_by, created_at
        FROM engineer_rate_overrides
        WHERE engineer_id = $1 AND organization_id = $2 AND is_active
    `
	var o domain.RateOverride
	err := r.db.QueryRow(ctx, query, engineerID, organizationID).Scan(
		&o.ID, &o.EngineerID, &o.OrganizationID, &o.BaseRate, &o.OvertimeCoefficient,
		&o.FixedOvertimeRate, &o.FixedSalary, &o.FixedCarAmount, &o.CarKmRate,
		&o.Zone1Extra, &o.Zone2Extra, &o.Zone3Extra, &o.IsActive, &o.CreatedBy, &o.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find rate override", zap.Int("engineerID", engineerID),
			zap.Int("organizationID", organizationID), zap.Error(err))
		return nil, err
	}
	return &o, nil
}

func (r *Repository) Organization(ctx context.Context, id int) (*domain.Organization, error) {
	query := `
        SELECT id, name, base_rate, overtime_multiplier, engineer_base_rate, engineer_overtime_coefficient
        FROM organizations
        WHERE id = $1
    `
	var org domain.Organization
	err := r.db.QueryRow(ctx, query, id).Scan(
		&org.ID, &org.Name, &org.BaseRate, &org.OvertimeMultiplier, &org.EngineerBaseRate, &org.EngineerOvertime,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("organization %d not found", id)
	}
	if err != nil {
		zap.L().Error("can't find organization", zap.Int("organizationID", id), zap.Error(err))
		return nil, err
	}
	return &org, nil
}

func (r *Repository) UpsertProfile(ctx context.Context, p *domain.EngineerProfile) error {
	query := `
        INSERT INTO engineer_profiles (user_id, base_rate, overtime_coefficient, fixed_overtime_rate,
            fixed_salary, fixed_car_amount, car_km_rate, engineer_type, planned_monthly_hours,
            home_territory_fixed_amount, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        ON CONFLICT (user_id) DO UPDATE SET
            base_rate = EXCLUDED.base_rate,
            overtime_coefficient = EXCLUDED.overtime_coefficient,
            fixed_overtime_rate = EXCLUDED.fixed_overtime_rate,
            fixed_salary = EXCLUDED.fixed_salary,
            fixed_car_amount = EXCLUDED.fixed_car_amount,
            car_km_rate = EXCLUDED.car_km_rate,
            engineer_type = EXCLUDED.engineer_type,
            planned_monthly_hours = EXCLUDED.planned_monthly_hours,
            home_territory_fixed_amount = EXCLUDED.home_territory_fixed_amount,
            is_active = EXCLUDED.is_active
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		p.UserID, p.BaseRate, p.OvertimeCoefficient, p.FixedOvertimeRate,
		p.FixedSalary, p.FixedCarAmount, p.CarKmRate, p.EngineerType, p.PlannedMonthlyHours,
		p.HomeTerritoryFixedAmount, p.IsActive,
	).Scan(&p.ID)
	if err != nil {
		zap.L().Error("can't save engineer profile", zap.Int("userID", p.UserID), zap.Error(err))
		return err
	}
	return nil
}

// SupersedeOverride deactivates the current override of the pair and stores
// o as the active one, keeping the old row for traceability.
func (r *Repository) SupersedeOverride(ctx context.Context, o *domain.RateOverride) error {
	deactivate := `
        UPDATE engineer_rate_overrides
        SET is_active = FALSE
        WHERE engineer_id = $1 AND organization_id = $2 AND is_active
    `
	insert := `
        INSERT INTO engineer_rate_overrides (engineer_id, organization_id, base_rate,
            overtime_coefficient, fixed_overtime_rate, fixed_salary, fixed_car_amount,
            car_km_rate, zone1_extra, zone2_extra, zone3_extra, is_active, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, TRUE, $12)
        RETURNING id, created_at
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, deactivate, o.EngineerID, o.OrganizationID); err != nil {
			zap.L().Error("can't deactivate rate override", zap.Error(err))
			return err
		}
		err := r.db.QueryRow(ctx, insert,
			o.EngineerID, o.OrganizationID, o.BaseRate,
			o.OvertimeCoefficient, o.FixedOvertimeRate, o.FixedSalary, o.FixedCarAmount,
			o.CarKmRate, o.Zone1Extra, o.Zone2Extra, o.Zone3Extra, o.CreatedBy,
		).Scan(&o.ID, &o.CreatedAt)
		if err != nil {
			zap.L().Error("can't save rate override", zap.Error(err))
			return err
		}
		o.IsActive = true
		return nil
	})
}

func (r *Repository) DeactivateOverride(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, "UPDATE engineer_rate_overrides SET is_active = FALSE WHERE id = $1 AND is_active", id)
	if err != nil {
		zap.L().Error("can't deactivate rate override", zap.Int("overrideID", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("active rate override %d not found", id)
	}
	return nil
}

func (r *Repository) UpdateOrganizationRates(ctx context.Context, org *domain.Organization) error {
	query := `
        UPDATE organizations
        SET base_rate = $1, overtime_multiplier = $2, engineer_base_rate = $3, engineer_overtime_coefficient = $4
        WHERE id = $5
        RETURNING name
    `
	err := r.db.QueryRow(ctx, query,
		org.BaseRate, org.OvertimeMultiplier, org.EngineerBaseRate, org.EngineerOvertime, org.ID,
	).Scan(&org.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NotFound("organization %d not found", org.ID)
	}
	if err != nil {
		zap.L().Error("can't update organization rates", zap.Int("organizationID", org.ID), zap.Error(err))
		return err
	}
	return nil
}
