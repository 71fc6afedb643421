package sessionservice

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/fieldservice/internal/domain"
	"github.com/GlebRadaev/fieldservice/pkg/money"
)

// Amounts are the money fields derived from hours and a rate snapshot.
type Amounts struct {
	CalculatedAmount    decimal.Decimal
	ZoneSurcharge       decimal.Decimal
	CarPayment          decimal.Decimal
	OrganizationPayment decimal.Decimal
	Profit              decimal.Decimal
}

// OvertimeRate is the fixed overtime rate when configured, base×coefficient otherwise.
func OvertimeRate(snap domain.RateSnapshot) decimal.Decimal {
	if snap.FixedOvertimeRate != nil {
		return *snap.FixedOvertimeRate
	}
	coef := decimal.NewFromInt(1)
	if snap.OvertimeCoefficient != nil {
		coef = *snap.OvertimeCoefficient
	}
	return snap.BaseRate.Mul(coef)
}

// Calculate rounds only the final amounts. An explicit car payment wins over
// the per-km rate.
func Calculate(s *domain.WorkSession) Amounts {
	snap := s.Rates

	calculated := money.Round2(s.RegularHours.Mul(snap.BaseRate).Add(s.OvertimeHours.Mul(OvertimeRate(snap))))
	orgPayment := money.Round2(s.RegularHours.Mul(snap.OrgBaseRate).
		Add(s.OvertimeHours.Mul(snap.OrgBaseRate).Mul(snap.OrgOvertimeCoefficient)))
	zone := money.Round2(snap.ZoneExtra(domain.ZoneTier(s.TerritoryType, s.DistanceKm)))

	car := money.Round2(s.CarPayment)
	if car.IsZero() && snap.CarKmRate != nil {
		car = money.Round2(s.DistanceKm.Mul(*snap.CarKmRate))
	}

	return Amounts{
		CalculatedAmount:    calculated,
		ZoneSurcharge:       zone,
		CarPayment:          car,
		OrganizationPayment: orgPayment,
		Profit:              orgPayment.Sub(calculated).Sub(zone).Sub(car),
	}
}

func apply(s *domain.WorkSession) {
	a := Calculate(s)
	s.CalculatedAmount = a.CalculatedAmount
	s.ZoneSurcharge = a.ZoneSurcharge
	s.CarPayment = a.CarPayment
	s.OrganizationPayment = a.OrganizationPayment
	s.Profit = a.Profit
}
