package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/fieldservice/internal/apperrors"
	"github.com/GlebRadaev/fieldservice/internal/domain"
)

const DateLayout = "2006-01-02"

type CreateOrderRequestDTO struct {
	OrganizationID   int             `json:"organizationId"   validate:"required,gt=0"                example:"3"`
	Title            string          `json:"title"            validate:"required,max=200"             example:"Boiler maintenance"`
	Description      string          `json:"description"      validate:"max=4000"`
	Location         string          `json:"location"         validate:"max=500"                      example:"Tver, Lenina 1"`
	DistanceKm       decimal.Decimal `json:"distanceKm"       swaggertype:"number"                    example:"75"`
	TerritoryType    string          `json:"territoryType"    validate:"omitempty,territory"          example:"zone_1"`
	Source           string          `json:"source"           validate:"omitempty,order_source"       example:"manual"`
	PlannedStartDate string          `json:"plannedStartDate" validate:"omitempty,datetime=2006-01-02" example:"2026-03-12"`
}

func (d CreateOrderRequestDTO) ToOrder() (*domain.Order, error) {
	planned, err := parseDate("plannedStartDate", d.PlannedStartDate)
	if err != nil {
		return nil, err
	}
	return &domain.Order{
		OrganizationID:   d.OrganizationID,
		Title:            d.Title,
		Description:      d.Description,
		Location:         d.Location,
		DistanceKm:       d.DistanceKm,
		TerritoryType:    domain.TerritoryType(d.TerritoryType),
		Source:           domain.OrderSource(d.Source),
		PlannedStartDate: planned,
	}, nil
}

type OrderResponseDTO struct {
	ID                  int             `json:"id"                   example:"12"`
	OrganizationID      int             `json:"organizationId"       example:"3"`
	Title               string          `json:"title"                example:"Boiler maintenance"`
	Description         string          `json:"description,omitempty"`
	Location            string          `json:"location,omitempty"`
	DistanceKm          decimal.Decimal `json:"distanceKm"           swaggertype:"number" example:"75"`
	TerritoryType       string          `json:"territoryType"        example:"zone_1"`
	Status              string          `json:"status"               example:"assigned"`
	Source              string          `json:"source"               example:"manual"`
	AssignedEngineerID  *int            `json:"assignedEngineerId"   example:"7"`
	CreatedBy           int             `json:"createdBy"            example:"2"`
	PlannedStartDate    *string         `json:"plannedStartDate"     example:"2026-03-12"`
	ActualStartDate     *time.Time      `json:"actualStartDate"`
	CompletionDate      *time.Time      `json:"completionDate"`
	NeedsReconciliation bool            `json:"needsReconciliation"`
	Version             int             `json:"version"              example:"3"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

func FromOrder(o *domain.Order) OrderResponseDTO {
	resp := OrderResponseDTO{
		ID:                  o.ID,
		OrganizationID:      o.OrganizationID,
		Title:               o.Title,
		Description:         o.Description,
		Location:            o.Location,
		DistanceKm:          o.DistanceKm,
		TerritoryType:       string(o.TerritoryType),
		Status:              string(o.Status),
		Source:              string(o.Source),
		AssignedEngineerID:  o.AssignedEngineerID,
		CreatedBy:           o.CreatedBy,
		ActualStartDate:     o.ActualStartDate,
		CompletionDate:      o.CompletionDate,
		NeedsReconciliation: o.NeedsReconciliation,
		Version:             o.Version,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
	if o.PlannedStartDate != nil {
		planned := o.PlannedStartDate.Format(DateLayout)
		resp.PlannedStartDate = &planned
	}
	return resp
}

func FromOrders(orders []domain.Order) []OrderResponseDTO {
	resp := make([]OrderResponseDTO, 0, len(orders))
	for i := range orders {
		resp = append(resp, FromOrder(&orders[i]))
	}
	return resp
}

// AssignEngineerRequestDTO nominates an engineer. Version is the order
// version the caller last read and is required to replace another nominee.
type AssignEngineerRequestDTO struct {
	EngineerID int `json:"engineerId"        validate:"required,gt=0" example:"7"`
	Version    int `json:"version,omitempty" validate:"gte=0"         example:"3"`
}

// WorkSessionRequestDTO logs one day of work. CanBeInvoiced defaults to true.
type WorkSessionRequestDTO struct {
	EngineerID    int              `json:"engineerId"    validate:"gte=0"                                 example:"7"`
	WorkDate      string           `json:"workDate"      validate:"required,datetime=2006-01-02"          example:"2026-03-09"`
	RegularHours  decimal.Decimal  `json:"regularHours"  swaggertype:"number"                             example:"8"`
	OvertimeHours decimal.Decimal  `json:"overtimeHours" swaggertype:"number"                             example:"2"`
	DistanceKm    *decimal.Decimal `json:"distanceKm"    swaggertype:"number"                             example:"75"`
	TerritoryType string           `json:"territoryType" validate:"omitempty,territory"                   example:"zone_1"`
	CarPayment    decimal.Decimal  `json:"carPayment"    swaggertype:"number"                             example:"0"`
	Notes         string           `json:"notes"         validate:"max=2000"`
	CanBeInvoiced *bool            `json:"canBeInvoiced"`
}

func (d WorkSessionRequestDTO) ToInput() (domain.WorkSessionInput, error) {
	workDate, err := parseDate("workDate", d.WorkDate)
	if err != nil {
		return domain.WorkSessionInput{}, err
	}
	if workDate == nil {
		return domain.WorkSessionInput{}, apperrors.Invalid("workDate is required")
	}
	invoiceable := true
	if d.CanBeInvoiced != nil {
		invoiceable = *d.CanBeInvoiced
	}
	return domain.WorkSessionInput{
		EngineerID:    d.EngineerID,
		WorkDate:      *workDate,
		RegularHours:  d.RegularHours,
		OvertimeHours: d.OvertimeHours,
		DistanceKm:    d.DistanceKm,
		TerritoryType: domain.TerritoryType(d.TerritoryType),
		CarPayment:    d.CarPayment,
		Notes:         d.Notes,
		CanBeInvoiced: invoiceable,
	}, nil
}

type CompleteWorkRequestDTO struct {
	WorkSessionRequestDTO
	IsFullyCompleted bool `json:"isFullyCompleted" example:"false"`
}

func parseDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, apperrors.Invalid("%s must be a YYYY-MM-DD date", field)
	}
	return &t, nil
}
