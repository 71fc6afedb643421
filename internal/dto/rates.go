package dto

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/fieldservice/internal/domain"
)

// ProfileRequestDTO replaces an engineer's compensation profile. Omitted
// amounts fall through to the organization and system defaults.
type ProfileRequestDTO struct {
	BaseRate                 *decimal.Decimal `json:"baseRate"                 swaggertype:"number" example:"500"`
	OvertimeCoefficient      *decimal.Decimal `json:"overtimeCoefficient"      swaggertype:"number" example:"1.6"`
	FixedOvertimeRate        *decimal.Decimal `json:"fixedOvertimeRate"        swaggertype:"number"`
	FixedSalary              *decimal.Decimal `json:"fixedSalary"              swaggertype:"number"`
	FixedCarAmount           *decimal.Decimal `json:"fixedCarAmount"           swaggertype:"number"`
	CarKmRate                *decimal.Decimal `json:"carKmRate"                swaggertype:"number" example:"12"`
	EngineerType             string           `json:"engineerType"             validate:"omitempty,engineer_type" example:"staff"`
	PlannedMonthlyHours      *decimal.Decimal `json:"plannedMonthlyHours"      swaggertype:"number" example:"168"`
	HomeTerritoryFixedAmount *decimal.Decimal `json:"homeTerritoryFixedAmount" swaggertype:"number"`
	IsActive                 *bool            `json:"isActive"`
}

func (d ProfileRequestDTO) ToProfile(userID int) *domain.EngineerProfile {
	engineerType := domain.EngineerType(d.EngineerType)
	if engineerType == "" {
		engineerType = domain.EngineerStaff
	}
	active := true
	if d.IsActive != nil {
		active = *d.IsActive
	}
	return &domain.EngineerProfile{
		UserID:                   userID,
		BaseRate:                 d.BaseRate,
		OvertimeCoefficient:      d.OvertimeCoefficient,
		FixedOvertimeRate:        d.FixedOvertimeRate,
		FixedSalary:              d.FixedSalary,
		FixedCarAmount:           d.FixedCarAmount,
		CarKmRate:                d.CarKmRate,
		EngineerType:             engineerType,
		PlannedMonthlyHours:      d.PlannedMonthlyHours,
		HomeTerritoryFixedAmount: d.HomeTerritoryFixedAmount,
		IsActive:                 active,
	}
}

type OverrideRequestDTO struct {
	OrganizationID      int              `json:"organizationId"      validate:"required,gt=0" example:"3"`
	BaseRate            *decimal.Decimal `json:"baseRate"            swaggertype:"number" example:"700"`
	OvertimeCoefficient *decimal.Decimal `json:"overtimeCoefficient" swaggertype:"number"`
	FixedOvertimeRate   *decimal.Decimal `json:"fixedOvertimeRate"   swaggertype:"number"`
	FixedSalary         *decimal.Decimal `json:"fixedSalary"         swaggertype:"number"`
	FixedCarAmount      *decimal.Decimal `json:"fixedCarAmount"      swaggertype:"number"`
	CarKmRate           *decimal.Decimal `json:"carKmRate"           swaggertype:"number"`
	Zone1Extra          *decimal.Decimal `json:"zone1Extra"          swaggertype:"number" example:"150"`
	Zone2Extra          *decimal.Decimal `json:"zone2Extra"          swaggertype:"number"`
	Zone3Extra          *decimal.Decimal `json:"zone3Extra"          swaggertype:"number"`
}

func (d OverrideRequestDTO) ToOverride(engineerID int) *domain.RateOverride {
	return &domain.RateOverride{
		EngineerID:          engineerID,
		OrganizationID:      d.OrganizationID,
		BaseRate:            d.BaseRate,
		OvertimeCoefficient: d.OvertimeCoefficient,
		FixedOvertimeRate:   d.FixedOvertimeRate,
		FixedSalary:         d.FixedSalary,
		FixedCarAmount:      d.FixedCarAmount,
		CarKmRate:           d.CarKmRate,
		Zone1Extra:          d.Zone1Extra,
		Zone2Extra:          d.Zone2Extra,
		Zone3Extra:          d.Zone3Extra,
		IsActive:            true,
	}
}

type OverrideResponseDTO struct {
	ID             int  `json:"id"             example:"11"`
	EngineerID     int  `json:"engineerId"     example:"7"`
	OrganizationID int  `json:"organizationId" example:"3"`
	IsActive       bool `json:"isActive"       example:"true"`
}

type OrganizationRatesRequestDTO struct {
	BaseRate                    *decimal.Decimal `json:"baseRate"                    swaggertype:"number" example:"1500"`
	OvertimeMultiplier          *decimal.Decimal `json:"overtimeMultiplier"          swaggertype:"number" example:"1.5"`
	EngineerBaseRate            *decimal.Decimal `json:"engineerBaseRate"            swaggertype:"number"`
	EngineerOvertimeCoefficient *decimal.Decimal `json:"engineerOvertimeCoefficient" swaggertype:"number"`
}

func (d OrganizationRatesRequestDTO) ToOrganization(id int) *domain.Organization {
	return &domain.Organization{
		ID:                 id,
		BaseRate:           d.BaseRate,
		OvertimeMultiplier: d.OvertimeMultiplier,
		EngineerBaseRate:   d.EngineerBaseRate,
		EngineerOvertime:   d.EngineerOvertimeCoefficient,
	}
}
