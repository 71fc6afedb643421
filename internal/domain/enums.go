package domain

import "github.com/shopspring/decimal"

type OrderStatus string

const (
	StatusWaiting    OrderStatus = "waiting"
	StatusAssigned   OrderStatus = "assigned"
	StatusProcessing OrderStatus = "processing"
	StatusWorking    OrderStatus = "working"
	StatusReview     OrderStatus = "review"
	StatusCompleted  OrderStatus = "completed"
)

var orderStatuses = map[OrderStatus]struct{}{
	StatusWaiting: {}, StatusAssigned: {}, StatusProcessing: {},
	StatusWorking: {}, StatusReview: {}, StatusCompleted: {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatuses[s]
	return ok
}

// WorkEligible reports whether new work may be logged in this status.
func (s OrderStatus) WorkEligible() bool {
	return s == StatusProcessing || s == StatusWorking || s == StatusReview
}

type OrderSource string

const (
	SourceManual    OrderSource = "manual"
	SourceAutomatic OrderSource = "automatic"
	SourceEmail     OrderSource = "email"
	SourceAPI       OrderSource = "api"
)

func (s OrderSource) Valid() bool {
	switch s {
	case SourceManual, SourceAutomatic, SourceEmail, SourceAPI:
		return true
	}
	return false
}

type TerritoryType string

const (
	TerritoryHome     TerritoryType = "home"
	TerritoryZone1    TerritoryType = "zone_1"
	TerritoryZone2    TerritoryType = "zone_2"
	TerritoryZone3    TerritoryType = "zone_3"
	TerritoryUrban    TerritoryType = "urban"
	TerritorySuburban TerritoryType = "suburban"
	TerritoryRural    TerritoryType = "rural"
)

func (t TerritoryType) Valid() bool {
	switch t {
	case TerritoryHome, TerritoryZone1, TerritoryZone2, TerritoryZone3,
		TerritoryUrban, TerritorySuburban, TerritoryRural:
		return true
	}
	return false
}

var (
	// HomeRadiusKm is the distance up to which no zone surcharge applies.
	HomeRadiusKm = decimal.NewFromInt(60)
	zone1LimitKm = decimal.NewFromInt(100)
	zone2LimitKm = decimal.NewFromInt(200)
)

// ZoneTier returns the surcharge tier (1..3) for a trip, or 0 when no
// surcharge applies. Home territory never pays a surcharge.
func ZoneTier(territory TerritoryType, distanceKm decimal.Decimal) int {
	if territory == TerritoryHome || territory == "" || !distanceKm.GreaterThan(HomeRadiusKm) {
		return 0
	}
	switch territory {
	case TerritoryZone1:
		return 1
	case TerritoryZone2:
		return 2
	case TerritoryZone3:
		return 3
	}
	switch {
	case distanceKm.LessThanOrEqual(zone1LimitKm):
		return 1
	case distanceKm.LessThanOrEqual(zone2LimitKm):
		return 2
	default:
		return 3
	}
}

type EngineerType string

const (
	EngineerStaff    EngineerType = "staff"
	EngineerRemote   EngineerType = "remote"
	EngineerContract EngineerType = "contract"
)

func (t EngineerType) Valid() bool {
	return t == EngineerStaff || t == EngineerRemote || t == EngineerContract
}

type WorkSessionStatus string

const (
	SessionCompleted WorkSessionStatus = "completed"
	SessionCancelled WorkSessionStatus = "cancelled"
)

type EventType string

const (
	EventNominated EventType = "order.nominated"
	EventAccepted  EventType = "order.accepted"
	EventCompleted EventType = "order.completed"
	EventReset     EventType = "order.reset"
	EventReopened  EventType = "order.reopened"
	EventDeleted   EventType = "order.deleted"
)
