package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/fieldservice/internal/domain"
	"github.com/GlebRadaev/fieldservice/internal/service/sessionservice"
)

type WorkSessionResponseDTO struct {
	ID                  int                 `json:"id"                  example:"41"`
	OrderID             int                 `json:"orderId"             example:"12"`
	EngineerID          int                 `json:"engineerId"          example:"7"`
	WorkDate            string              `json:"workDate"            example:"2026-03-09"`
	RegularHours        decimal.Decimal     `json:"regularHours"        swaggertype:"number" example:"8"`
	OvertimeHours       decimal.Decimal     `json:"overtimeHours"       swaggertype:"number" example:"2"`
	DistanceKm          decimal.Decimal     `json:"distanceKm"          swaggertype:"number" example:"75"`
	TerritoryType       string              `json:"territoryType"       example:"zone_1"`
	Rates               domain.RateSnapshot `json:"rates"`
	CarPayment          decimal.Decimal     `json:"carPayment"          swaggertype:"number" example:"0"`
	ZoneSurcharge       decimal.Decimal     `json:"zoneSurcharge"       swaggertype:"number" example:"100"`
	CalculatedAmount    decimal.Decimal     `json:"calculatedAmount"    swaggertype:"number" example:"6720"`
	OrganizationPayment decimal.Decimal     `json:"organizationPayment" swaggertype:"number" example:"11400"`
	Profit              decimal.Decimal     `json:"profit"              swaggertype:"number" example:"4580"`
	Notes               string              `json:"notes,omitempty"`
	CanBeInvoiced       bool                `json:"canBeInvoiced"`
	Status              string              `json:"status"              example:"completed"`
	CreatedBy           int                 `json:"createdBy"           example:"7"`
	CreatedAt           time.Time           `json:"createdAt"`
	UpdatedAt           time.Time           `json:"updatedAt"`
}

func FromSession(ws *domain.WorkSession) WorkSessionResponseDTO {
	return WorkSessionResponseDTO{
		ID:                  ws.ID,
		OrderID:             ws.OrderID,
		EngineerID:          ws.EngineerID,
		WorkDate:            ws.WorkDate.Format(DateLayout),
		RegularHours:        ws.RegularHours,
		OvertimeHours:       ws.OvertimeHours,
		DistanceKm:          ws.DistanceKm,
		TerritoryType:       string(ws.TerritoryType),
		Rates:               ws.Rates,
		CarPayment:          ws.CarPayment,
		ZoneSurcharge:       ws.ZoneSurcharge,
		CalculatedAmount:    ws.CalculatedAmount,
		OrganizationPayment: ws.OrganizationPayment,
		Profit:              ws.Profit,
		Notes:               ws.Notes,
		CanBeInvoiced:       ws.CanBeInvoiced,
		Status:              string(ws.Status),
		CreatedBy:           ws.CreatedBy,
		CreatedAt:           ws.CreatedAt,
		UpdatedAt:           ws.UpdatedAt,
	}
}

func FromSessions(sessions []domain.WorkSession) []WorkSessionResponseDTO {
	resp := make([]WorkSessionResponseDTO, 0, len(sessions))
	for i := range sessions {
		resp = append(resp, FromSession(&sessions[i]))
	}
	return resp
}

// UpdateSessionRequestDTO is a partial update. Absent fields are kept.
type UpdateSessionRequestDTO struct {
	WorkDate      *string          `json:"workDate"      validate:"omitempty,datetime=2006-01-02" example:"2026-03-09"`
	RegularHours  *decimal.Decimal `json:"regularHours"  swaggertype:"number"                     example:"6"`
	OvertimeHours *decimal.Decimal `json:"overtimeHours" swaggertype:"number"                     example:"0"`
	DistanceKm    *decimal.Decimal `json:"distanceKm"    swaggertype:"number"                     example:"120"`
	TerritoryType *string          `json:"territoryType" validate:"omitempty,territory"           example:"zone_2"`
	CarPayment    *decimal.Decimal `json:"carPayment"    swaggertype:"number"`
	Notes         *string          `json:"notes"         validate:"omitempty,max=2000"`
	CanBeInvoiced *bool            `json:"canBeInvoiced"`
	RefreshRates  bool             `json:"refreshRates"  example:"false"`
}

func (d UpdateSessionRequestDTO) ToPatch() (sessionservice.Patch, error) {
	patch := sessionservice.Patch{
		RegularHours:  d.RegularHours,
		OvertimeHours: d.OvertimeHours,
		DistanceKm:    d.DistanceKm,
		CarPayment:    d.CarPayment,
		Notes:         d.Notes,
		CanBeInvoiced: d.CanBeInvoiced,
		RefreshRates:  d.RefreshRates,
	}
	if d.WorkDate != nil {
		workDate, err := parseDate("workDate", *d.WorkDate)
		if err != nil {
			return patch, err
		}
		patch.WorkDate = workDate
	}
	if d.TerritoryType != nil {
		territory := domain.TerritoryType(*d.TerritoryType)
		patch.TerritoryType = &territory
	}
	return patch, nil
}

type OrderTotalsResponseDTO struct {
	OrderID             int             `json:"orderId"             example:"12"`
	Sessions            int             `json:"sessions"            example:"2"`
	InvoiceableSessions int             `json:"invoiceableSessions" example:"2"`
	RegularHours        decimal.Decimal `json:"regularHours"        swaggertype:"number" example:"16"`
	OvertimeHours       decimal.Decimal `json:"overtimeHours"       swaggertype:"number" example:"2"`
	CalculatedAmount    decimal.Decimal `json:"calculatedAmount"    swaggertype:"number"`
	ZoneSurcharge       decimal.Decimal `json:"zoneSurcharge"       swaggertype:"number"`
	CarPayment          decimal.Decimal `json:"carPayment"          swaggertype:"number"`
	OrganizationPayment decimal.Decimal `json:"organizationPayment" swaggertype:"number"`
	Profit              decimal.Decimal `json:"profit"              swaggertype:"number"`
}

func FromTotals(t *domain.OrderTotals) OrderTotalsResponseDTO {
	return OrderTotalsResponseDTO{
		OrderID:             t.OrderID,
		Sessions:            t.Sessions,
		InvoiceableSessions: t.InvoiceableSessions,
		RegularHours:        t.RegularHours,
		OvertimeHours:       t.OvertimeHours,
		CalculatedAmount:    t.CalculatedAmount,
		ZoneSurcharge:       t.ZoneSurcharge,
		CarPayment:          t.CarPayment,
		OrganizationPayment: t.OrganizationPayment,
		Profit:              t.Profit,
	}
}
