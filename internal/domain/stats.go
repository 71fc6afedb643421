package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatsInclusion selects which orders contribute to an aggregate.
type StatsInclusion string

const (
	IncludeCompleted StatsInclusion = "completed"
	IncludeAll       StatsInclusion = "all"
)

func (i StatsInclusion) Valid() bool {
	return i == IncludeCompleted || i == IncludeAll
}

// StatsQuery scopes an aggregation to the half-open period [From, To).
// Zero EngineerID or OrganizationID means no restriction.
type StatsQuery struct {
	From           time.Time
	To             time.Time
	EngineerID     int
	OrganizationID int
	Include        StatsInclusion
	Limit          uint64
	Offset         uint64
}

type PeriodTotals struct {
	Sessions             int             `json:"sessions"`
	CompletedOrders      int             `json:"completedOrders"`
	TotalHours           decimal.Decimal `json:"totalHours"`
	RegularHours         decimal.Decimal `json:"regularHours"`
	OvertimeHours        decimal.Decimal `json:"overtimeHours"`
	EngineerEarnings     decimal.Decimal `json:"engineerEarnings"`
	ZoneSurcharges       decimal.Decimal `json:"zoneSurcharges"`
	CarEarnings          decimal.Decimal `json:"carEarnings"`
	OrganizationPayments decimal.Decimal `json:"organizationPayments"`
	Profit               decimal.Decimal `json:"profit"`
}

type EngineerTotals struct {
	EngineerID int    `json:"engineerId"`
	FullName   string `json:"fullName"`
	PeriodTotals
}

type SessionDetail struct {
	SessionID           int             `json:"sessionId"`
	OrderID             int             `json:"orderId"`
	OrderTitle          string          `json:"orderTitle"`
	OrganizationID      int             `json:"organizationId"`
	OrderStatus         OrderStatus     `json:"orderStatus"`
	WorkDate            time.Time       `json:"workDate"`
	RegularHours        decimal.Decimal `json:"regularHours"`
	OvertimeHours       decimal.Decimal `json:"overtimeHours"`
	CalculatedAmount    decimal.Decimal `json:"calculatedAmount"`
	ZoneSurcharge       decimal.Decimal `json:"zoneSurcharge"`
	CarPayment          decimal.Decimal `json:"carPayment"`
	OrganizationPayment decimal.Decimal `json:"organizationPayment"`
	Profit              decimal.Decimal `json:"profit"`
}

// Growth holds percentage deltas against the previous month. A nil value
// means the previous month was zero and growth is undefined.
type Growth struct {
	TotalHours           *decimal.Decimal `json:"totalHours"`
	EngineerEarnings     *decimal.Decimal `json:"engineerEarnings"`
	CarEarnings          *decimal.Decimal `json:"carEarnings"`
	OrganizationPayments *decimal.Decimal `json:"organizationPayments"`
	Profit               *decimal.Decimal `json:"profit"`
	CompletedOrders      *decimal.Decimal `json:"completedOrders"`
}

// PeriodSummary is one month of aggregates. Margin is profit over
// organization payments, nil when there were no payments.
type PeriodSummary struct {
	Year           int              `json:"year"`
	Month          int              `json:"month"`
	Include        StatsInclusion   `json:"include"`
	EngineerID     int              `json:"engineerId,omitempty"`
	OrganizationID int              `json:"organizationId,omitempty"`
	Totals         PeriodTotals     `json:"totals"`
	Previous       PeriodTotals     `json:"previous"`
	Growth         Growth           `json:"growth"`
	Margin         *decimal.Decimal `json:"margin"`
}

type EngineerDetail struct {
	PeriodSummary
	Sessions []SessionDetail `json:"sessions"`
}

type EngineersReport struct {
	Year      int              `json:"year"`
	Month     int              `json:"month"`
	Include   StatsInclusion   `json:"include"`
	Engineers []EngineerTotals `json:"engineers"`
	Totals    PeriodTotals     `json:"totals"`
	Margin    *decimal.Decimal `json:"margin"`
}
