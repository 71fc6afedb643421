package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/fieldservice/internal/access"
)

type User struct {
	ID           int         `db:"id"`
	Login        string      `db:"login"`
	PasswordHash string      `db:"password_hash"`
	FullName     string      `db:"full_name"`
	PrimaryRole  access.Role `db:"primary_role"`
	CreatedAt    time.Time   `db:"created_at"`
}

type Organization struct {
	ID                 int              `db:"id"`
	Name               string           `db:"name"`
	BaseRate           *decimal.Decimal `db:"base_rate"`
	OvertimeMultiplier *decimal.Decimal `db:"overtime_multiplier"`
	EngineerBaseRate   *decimal.Decimal `db:"engineer_base_rate"`
	EngineerOvertime   *decimal.Decimal `db:"engineer_overtime_coefficient"`
}

type Order struct {
	ID                  int             `db:"id"`
	OrganizationID      int             `db:"organization_id"`
	Title               string          `db:"title"`
	Description         string          `db:"description"`
	Location            string          `db:"location"`
	DistanceKm          decimal.Decimal `db:"distance_km"`
	TerritoryType       TerritoryType   `db:"territory_type"`
	Status              OrderStatus     `db:"status"`
	Source              OrderSource     `db:"source"`
	AssignedEngineerID  *int            `db:"assigned_engineer_id"`
	CreatedBy           int             `db:"created_by"`
	PlannedStartDate    *time.Time      `db:"planned_start_date"`
	ActualStartDate     *time.Time      `db:"actual_start_date"`
	CompletionDate      *time.Time      `db:"completion_date"`
	NeedsReconciliation bool            `db:"needs_reconciliation"`
	Version             int             `db:"version"`
	CreatedAt           time.Time       `db:"created_at"`
	UpdatedAt           time.Time       `db:"updated_at"`
}

type EngineerProfile struct {
	ID                       int              `db:"id"`
	UserID                   int              `db:"user_id"`
	BaseRate                 *decimal.Decimal `db:"base_rate"`
	OvertimeCoefficient      *decimal.Decimal `db:"overtime_coefficient"`
	FixedOvertimeRate        *decimal.Decimal `db:"fixed_overtime_rate"`
	FixedSalary              *decimal.Decimal `db:"fixed_salary"`
	FixedCarAmount           *decimal.Decimal `db:"fixed_car_amount"`
	CarKmRate                *decimal.Decimal `db:"car_km_rate"`
	EngineerType             EngineerType     `db:"engineer_type"`
	PlannedMonthlyHours      *decimal.Decimal `db:"planned_monthly_hours"`
	HomeTerritoryFixedAmount *decimal.Decimal `db:"home_territory_fixed_amount"`
	IsActive                 bool             `db:"is_active"`
}

// RateOverride overrides profile fields for one (engineer, organization) pair.
// Superseded overrides stay in place with IsActive=false.
type RateOverride struct {
	ID                  int              `db:"id"`
	EngineerID          int              `db:"engineer_id"`
	OrganizationID      int              `db:"organization_id"`
	BaseRate            *decimal.Decimal `db:"base_rate"`
	OvertimeCoefficient *decimal.Decimal `db:"overtime_coefficient"`
	FixedOvertimeRate   *decimal.Decimal `db:"fixed_overtime_rate"`
	FixedSalary         *decimal.Decimal `db:"fixed_salary"`
	FixedCarAmount      *decimal.Decimal `db:"fixed_car_amount"`
	CarKmRate           *decimal.Decimal `db:"car_km_rate"`
	Zone1Extra          *decimal.Decimal `db:"zone1_extra"`
	Zone2Extra          *decimal.Decimal `db:"zone2_extra"`
	Zone3Extra          *decimal.Decimal `db:"zone3_extra"`
	IsActive            bool             `db:"is_active"`
	CreatedBy           int              `db:"created_by"`
	CreatedAt           time.Time        `db:"created_at"`
}

// RateSnapshot is the immutable result of rate resolution, frozen into every
// work session at creation time.
type RateSnapshot struct {
	BaseRate               decimal.Decimal  `json:"baseRate"`
	OvertimeCoefficient    *decimal.Decimal `json:"overtimeCoefficient,omitempty"`
	FixedOvertimeRate      *decimal.Decimal `json:"fixedOvertimeRate,omitempty"`
	Zone1Extra             decimal.Decimal  `json:"zone1Extra"`
	Zone2Extra             decimal.Decimal  `json:"zone2Extra"`
	Zone3Extra             decimal.Decimal  `json:"zone3Extra"`
	CarKmRate              *decimal.Decimal `json:"carKmRate,omitempty"`
	FixedCarAmount         *decimal.Decimal `json:"fixedCarAmount,omitempty"`
	FixedSalary            *decimal.Decimal `json:"fixedSalary,omitempty"`
	OrgBaseRate            decimal.Decimal  `json:"orgBaseRate"`
	OrgOvertimeCoefficient decimal.Decimal  `json:"orgOvertimeCoefficient"`
	OverrideID             *int             `json:"overrideId,omitempty"`
	ResolvedAt             time.Time        `json:"resolvedAt"`
}

// ZoneExtra returns the surcharge configured for a tier (1..3).
func (s RateSnapshot) ZoneExtra(tier int) decimal.Decimal {
	switch tier {
	case 1:
		return s.Zone1Extra
	case 2:
		return s.Zone2Extra
	case 3:
		return s.Zone3Extra
	}
	return decimal.Zero
}

type WorkSession struct {
	ID                  int               `db:"id"`
	OrderID             int               `db:"order_id"`
	EngineerID          int               `db:"engineer_id"`
	WorkDate            time.Time         `db:"work_date"`
	RegularHours        decimal.Decimal   `db:"regular_hours"`
	OvertimeHours       decimal.Decimal   `db:"overtime_hours"`
	DistanceKm          decimal.Decimal   `db:"distance_km"`
	TerritoryType       TerritoryType     `db:"territory_type"`
	Rates               RateSnapshot      `db:"rate_snapshot"`
	CarPayment          decimal.Decimal   `db:"car_payment"`
	ZoneSurcharge       decimal.Decimal   `db:"zone_surcharge"`
	CalculatedAmount    decimal.Decimal   `db:"calculated_amount"`
	OrganizationPayment decimal.Decimal   `db:"organization_payment"`
	Profit              decimal.Decimal   `db:"profit"`
	Notes               string            `db:"notes"`
	CanBeInvoiced       bool              `db:"can_be_invoiced"`
	Status              WorkSessionStatus `db:"status"`
	CreatedBy           int               `db:"created_by"`
	CreatedAt           time.Time         `db:"created_at"`
	UpdatedAt           time.Time         `db:"updated_at"`
}

// WorkSessionInput is what a caller supplies when logging or editing work.
type WorkSessionInput struct {
	EngineerID    int
	WorkDate      time.Time
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	DistanceKm    *decimal.Decimal // nil takes the order's distance
	TerritoryType TerritoryType
	CarPayment    decimal.Decimal
	Notes         string
	CanBeInvoiced bool
}

// OrderTotals is the per-order sum of work sessions.
type OrderTotals struct {
	OrderID             int             `db:"order_id"`
	Sessions            int             `db:"sessions"`
	InvoiceableSessions int             `db:"invoiceable_sessions"`
	RegularHours        decimal.Decimal `db:"regular_hours"`
	OvertimeHours       decimal.Decimal `db:"overtime_hours"`
	CalculatedAmount    decimal.Decimal `db:"calculated_amount"`
	ZoneSurcharge       decimal.Decimal `db:"zone_surcharge"`
	CarPayment          decimal.Decimal `db:"car_payment"`
	OrganizationPayment decimal.Decimal `db:"organization_payment"`
	Profit              decimal.Decimal `db:"profit"`
}

// OrderEvent is an outbox row. It is published as JSON.
type OrderEvent struct {
	ID          string      `db:"id"           json:"id"`
	OrderID     int         `db:"order_id"     json:"orderId"`
	Type        EventType   `db:"type"         json:"type"`
	ActorID     int         `db:"actor_id"     json:"actorId"`
	EngineerID  *int        `db:"engineer_id"  json:"engineerId,omitempty"`
	Status      OrderStatus `db:"status"       json:"status"`
	CreatedAt   time.Time   `db:"created_at"   json:"createdAt"`
	PublishedAt *time.Time  `db:"published_at" json:"-"`
}

type OrderFilter struct {
	Status         OrderStatus
	OrganizationID int
	EngineerID     int
	Limit          uint64
	Offset         uint64
}

// DeletionReport lists what a confirmed order deletion would remove.
type DeletionReport struct {
	OrderID             int             `json:"orderId"`
	Status              OrderStatus     `json:"status"`
	Sessions            int             `json:"sessions"`
	InvoiceableSessions int             `json:"invoiceableSessions"`
	OrganizationPayment decimal.Decimal `json:"organizationPayment"`
	PendingEvents       int             `json:"pendingEvents"`
	Blocked             bool            `json:"blocked"`
}
