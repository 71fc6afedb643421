package statistics

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/GlebRadaev/fieldservice/internal/access"
	"github.com/GlebRadaev/fieldservice/internal/apperrors"
	"github.com/GlebRadaev/fieldservice/internal/domain"
	"github.com/GlebRadaev/fieldservice/internal/service/statsservice"
	"github.com/GlebRadaev/fieldservice/pkg/auth"
	"github.com/GlebRadaev/fieldservice/pkg/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Service interface {
	Monthly(ctx context.Context, sess access.Session, p statsservice.Period, include domain.StatsInclusion) (*domain.PeriodSummary, error)
	Organization(ctx context.Context, sess access.Session, organizationID int, p statsservice.Period, include domain.StatsInclusion) (*domain.PeriodSummary, error)
	EngineerDetailed(ctx context.Context, sess access.Session, engineerID int, p statsservice.Period, include domain.StatsInclusion, limit, offset uint64) (*domain.EngineerDetail, error)
	Engineers(ctx context.Context, sess access.Session, p statsservice.Period, include domain.StatsInclusion) (*domain.EngineersReport, error)
	ExportEngineers(ctx context.Context, sess access.Session, p statsservice.Period, include domain.StatsInclusion, w io.Writer) error
}

type StatisticsHandler struct {
	statsService Service
	now          func() time.Time
}

func New(statsService Service) *StatisticsHandler {
	return &StatisticsHandler{
		statsService: statsService,
		now:          time.Now,
	}
}

type query struct {
	sess    access.Session
	period  statsservice.Period
	include domain.StatsInclusion
}

// parse reads year, month and include. Year and month default to the
// current UTC month.
func (h *StatisticsHandler) parse(w http.ResponseWriter, r *http.Request) (query, bool) {
	var q query
	sess, ok := auth.RequireSession(w, r)
	if !ok {
		return q, false
	}
	now := h.now().UTC()
	year, err := utils.QueryInt(r, "year", now.Year())
	if err != nil {
		utils.RespondWithAppError(w, err)
		return q, false
	}
	month, err := utils.QueryInt(r, "month", int(now.Month()))
	if err != nil {
		utils.RespondWithAppError(w, err)
		return q, false
	}
	period, err := statsservice.NewPeriod(year, month)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return q, false
	}
	q.sess = sess
	q.period = period
	q.include = domain.StatsInclusion(r.URL.Query().Get("include"))
	return q, true
}

// Monthly godoc
//
//	@Summary		Own monthly statistics
//	@Description	Hours, earnings and growth against the previous month for the caller.
//	@Tags			Statistics
//	@Produce		json
//	@Param			year	query	int		false	"Year, defaults to the current one"
//	@Param			month	query	int		false	"Month 1-12, defaults to the current one"
//	@Param			include	query	string	false	"completed or all"	default(completed)
//	@Security		BearerAuth
//	@Success		200	{object}	domain.PeriodSummary
//	@Failure		400	{object}	utils.Response	"Invalid period"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/statistics/monthly [get]
func (h *StatisticsHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parse(w, r)
	if !ok {
		return
	}
	summary, err := h.statsService.Monthly(r.Context(), q.sess, q.period, q.include)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, summary)
}

// Organization godoc
//
//	@Summary	Organization monthly statistics
//	@Tags		Statistics
//	@Produce	json
//	@Param		organizationId	query	int		true	"Organization ID"
//	@Param		year			query	int		false	"Year"
//	@Param		month			query	int		false	"Month 1-12"
//	@Param		include			query	string	false	"completed or all"
//	@Security	BearerAuth
//	@Success	200	{object}	domain.PeriodSummary
//	@Failure	400	{object}	utils.Response	"Invalid period or organization"
//	@Failure	403	{object}	utils.Response	"Managers and administrators only"
//	@Router		/statistics/organization [get]
func (h *StatisticsHandler) Organization(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parse(w, r)
	if !ok {
		return
	}
	orgID, err := utils.QueryInt(r, "organizationId", 0)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	summary, err := h.statsService.Organization(r.Context(), q.sess, orgID, q.period, q.include)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, summary)
}

// EngineerDetailed godoc
//
//	@Summary		Detailed engineer statistics
//	@Description	Monthly summary plus the individual work sessions. Without engineerId the caller's own data is returned.
//	@Tags			Statistics
//	@Produce		json
//	@Param			engineerId	query	int		false	"Engineer ID, managers and administrators only"
//	@Param			year		query	int		false	"Year"
//	@Param			month		query	int		false	"Month 1-12"
//	@Param			include		query	string	false	"completed or all"
//	@Param			limit		query	int		false	"Session page size"
//	@Param			offset		query	int		false	"Session page offset"
//	@Security		BearerAuth
//	@Success		200	{object}	domain.EngineerDetail
//	@Failure		400	{object}	utils.Response	"Invalid period"
//	@Failure		403	{object}	utils.Response	"Other engineers are not visible"
//	@Router			/statistics/engineer/detailed [get]
func (h *StatisticsHandler) EngineerDetailed(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parse(w, r)
	if !ok {
		return
	}
	var ints [3]int
	for i, name := range []string{"engineerId", "limit", "offset"} {
		v, err := utils.QueryInt(r, name, 0)
		if err != nil {
			utils.RespondWithAppError(w, err)
			return
		}
		if v < 0 {
			utils.RespondWithAppError(w, apperrors.Invalid("%s must not be negative", name))
			return
		}
		ints[i] = v
	}
	detail, err := h.statsService.EngineerDetailed(r.Context(), q.sess, ints[0], q.period, q.include, uint64(ints[1]), uint64(ints[2]))
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, detail)
}

// Engineers godoc
//
//	@Summary	Per-engineer totals for a month
//	@Tags		Statistics
//	@Produce	json
//	@Param		year	query	int		false	"Year"
//	@Param		month	query	int		false	"Month 1-12"
//	@Param		include	query	string	false	"completed or all"
//	@Security	BearerAuth
//	@Success	200	{object}	domain.EngineersReport
//	@Failure	403	{object}	utils.Response	"Administrators only"
//	@Router		/statistics/admin/engineers [get]
func (h *StatisticsHandler) Engineers(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parse(w, r)
	if !ok {
		return
	}
	report, err := h.statsService.Engineers(r.Context(), q.sess, q.period, q.include)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}

// ExportEngineers godoc
//
//	@Summary	Export per-engineer totals as a spreadsheet
//	@Tags		Statistics
//	@Produce	application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param		year	query	int		false	"Year"
//	@Param		month	query	int		false	"Month 1-12"
//	@Param		include	query	string	false	"completed or all"
//	@Security	BearerAuth
//	@Success	200	{file}		file
//	@Failure	403	{object}	utils.Response	"Administrators only"
//	@Router		/statistics/admin/engineers/export [get]
func (h *StatisticsHandler) ExportEngineers(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parse(w, r)
	if !ok {
		return
	}
	// Buffered so a failure can still be reported as JSON.
	var buf bytes.Buffer
	if err := h.statsService.ExportEngineers(r.Context(), q.sess, q.period, q.include, &buf); err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", statsservice.ExportFilename(q.period)))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
