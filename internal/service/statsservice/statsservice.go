package statsservice

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/fieldservice/internal/access"
	"github.com/GlebRadaev/fieldservice/internal/apperrors"
	"github.com/GlebRadaev/fieldservice/internal/domain"
	"github.com/GlebRadaev/fieldservice/pkg/money"
)

type Repo interface {
	Totals(ctx context.Context, query domain.StatsQuery) (*domain.PeriodTotals, error)
	ByEngineer(ctx context.Context, query domain.StatsQuery) ([]domain.EngineerTotals, error)
	Details(ctx context.Context, query domain.StatsQuery) ([]domain.SessionDetail, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Period is a calendar month in UTC.
type Period struct {
	Year  int
	Month time.Month
}

func NewPeriod(year, month int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, apperrors.Invalid("month must be between 1 and 12, got %d", month)
	}
	if year < 2000 || year > 9999 {
		return Period{}, apperrors.Invalid("year %d is out of range", year)
	}
	return Period{Year: year, Month: time.Month(month)}, nil
}

// Bounds returns the half-open range [from, to) of the month.
func (p Period) Bounds() (time.Time, time.Time) {
	from := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

func (p Period) Previous() Period {
	from, _ := p.Bounds()
	prev := from.AddDate(0, -1, 0)
	return Period{Year: prev.Year(), Month: prev.Month()}
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

type Service struct {
	repo  Repo
	cache Cache
	ttl   time.Duration
}

// New builds the aggregator. A nil cache disables caching.
func New(repo Repo, cache Cache, ttl time.Duration) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		ttl:   ttl,
	}
}

func scope(p Period, include domain.StatsInclusion, engineerID, organizationID int) domain.StatsQuery {
	from, to := p.Bounds()
	if include == "" {
		include = domain.IncludeCompleted
	}
	return domain.StatsQuery{
		From:           from,
		To:             to,
		EngineerID:     engineerID,
		OrganizationID: organizationID,
		Include:        include,
	}
}

func checkInclusion(include domain.StatsInclusion) error {
	if include != "" && !include.Valid() {
		return apperrors.Invalid("include must be completed or all, got %q", include)
	}
	return nil
}

// Monthly is the caller's own month.
func (s *Service) Monthly(ctx context.Context, sess access.Session, p Period, include domain.StatsInclusion) (*domain.PeriodSummary, error) {
	if !sess.Can(access.ActionViewOwnStats, access.OwnershipNone) {
		return nil, apperrors.Denied("statistics are not available")
	}
	if err := checkInclusion(include); err != nil {
		return nil, err
	}
	return s.summary(ctx, p, include, sess.UserID, 0)
}

// Organization aggregates every engineer's work for one organization.
func (s *Service) Organization(ctx context.Context, sess access.Session, organizationID int, p Period, include domain.StatsInclusion) (*domain.PeriodSummary, error) {
	if !sess.Can(access.ActionViewOrgStats, access.OwnershipNone) {
		return nil, apperrors.Denied("only managers see organization statistics")
	}
	if organizationID <= 0 {
		return nil, apperrors.Invalid("organizationId is required")
	}
	if err := checkInclusion(include); err != nil {
		return nil, err
	}
	return s.summary(ctx, p, include, 0, organizationID)
}

// EngineerDetailed adds the session rows behind a month. Engineers see
// themselves; managers may pass another engineer.
func (s *Service) EngineerDetailed(ctx context.Context, sess access.Session, engineerID int, p Period, include domain.StatsInclusion, limit, offset uint64) (*domain.EngineerDetail, error) {
	if engineerID == 0 {
		engineerID = sess.UserID
	}
	allowed := sess.Can(access.ActionViewOwnStats, access.OwnershipNone)
	if engineerID != sess.UserID {
		allowed = sess.Can(access.ActionViewOrgStats, access.OwnershipNone)
	}
	if !allowed {
		return nil, apperrors.Denied("statistics of engineer %d are not visible to user %d", engineerID, sess.UserID)
	}
	if err := checkInclusion(include); err != nil {
		return nil, err
	}

	var (
		summary *domain.PeriodSummary
		details []domain.SessionDetail
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = s.summary(gctx, p, include, engineerID, 0)
		return err
	})
	g.Go(func() error {
		q := scope(p, include, engineerID, 0)
		q.Limit, q.Offset = limit, offset
		var err error
		details, err = s.repo.Details(gctx, q)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &domain.EngineerDetail{PeriodSummary: *summary, Sessions: details}, nil
}

// Engineers is the admin view of all engineers for a month.
func (s *Service) Engineers(ctx context.Context, sess access.Session, p Period, include domain.StatsInclusion) (*domain.EngineersReport, error) {
	if !sess.Can(access.ActionViewAllStats, access.OwnershipNone) {
		return nil, apperrors.Denied("only admins see statistics of all engineers")
	}
	if err := checkInclusion(include); err != nil {
		return nil, err
	}
	q := scope(p, include, 0, 0)

	key := "engineers:" + p.String() + ":" + string(q.Include)
	var report domain.EngineersReport
	if s.fromCache(ctx, key, &report) {
		return &report, nil
	}

	var (
		engineers []domain.EngineerTotals
		totals    *domain.PeriodTotals
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		engineers, err = s.repo.ByEngineer(gctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		totals, err = s.repo.Totals(gctx, q)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report = domain.EngineersReport{
		Year:      p.Year,
		Month:     int(p.Month),
		Include:   q.Include,
		Engineers: engineers,
		Totals:    *totals,
		Margin:    money.Ratio(totals.Profit, totals.OrganizationPayments),
	}
	s.toCache(ctx, key, report)
	return &report, nil
}

// summary runs the same aggregation for the month and the month before it.
func (s *Service) summary(ctx context.Context, p Period, include domain.StatsInclusion, engineerID, organizationID int) (*domain.PeriodSummary, error) {
	current := scope(p, include, engineerID, organizationID)
	previous := scope(p.Previous(), include, engineerID, organizationID)

	key := fmt.Sprintf("summary:%s:%s:e%d:o%d", p, current.Include, engineerID, organizationID)
	var cached domain.PeriodSummary
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	var cur, prev *domain.PeriodTotals
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cur, err = s.repo.Totals(gctx, current)
		return err
	})
	g.Go(func() error {
		var err error
		prev, err = s.repo.Totals(gctx, previous)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &domain.PeriodSummary{
		Year:           p.Year,
		Month:          int(p.Month),
		Include:        current.Include,
		EngineerID:     engineerID,
		OrganizationID: organizationID,
		Totals:         *cur,
		Previous:       *prev,
		Growth:         growth(*cur, *prev),
		Margin:         money.Ratio(cur.Profit, cur.OrganizationPayments),
	}
	s.toCache(ctx, key, summary)
	return summary, nil
}

func growth(cur, prev domain.PeriodTotals) domain.Growth {
	return domain.Growth{
		TotalHours:           money.PercentDelta(cur.TotalHours, prev.TotalHours),
		EngineerEarnings:     money.PercentDelta(cur.EngineerEarnings, prev.EngineerEarnings),
		CarEarnings:          money.PercentDelta(cur.CarEarnings, prev.CarEarnings),
		OrganizationPayments: money.PercentDelta(cur.OrganizationPayments, prev.OrganizationPayments),
		Profit:               money.PercentDelta(cur.Profit, prev.Profit),
		CompletedOrders: money.PercentDelta(
			decimal.NewFromInt(int64(cur.CompletedOrders)), decimal.NewFromInt(int64(prev.CompletedOrders))),
	}
}

// Cache failures only cost a recomputation.
func (s *Service) fromCache(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}
	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		zap.L().Warn("statistics cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return found
}

func (s *Service) toCache(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		zap.L().Warn("statistics cache write failed", zap.String("key", key), zap.Error(err))
	}
}
