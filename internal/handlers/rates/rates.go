package rates

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/fieldservice/internal/access"
	"github.com/GlebRadaev/fieldservice/internal/apperrors"
	"github.com/GlebRadaev/fieldservice/internal/domain"
	"github.com/GlebRadaev/fieldservice/internal/dto"
	"github.com/GlebRadaev/fieldservice/pkg/auth"
	"github.com/GlebRadaev/fieldservice/pkg/utils"
	"github.com/GlebRadaev/fieldservice/pkg/validate"
)

type Service interface {
	Preview(ctx context.Context, sess access.Session, engineerID, organizationID int) (*domain.RateSnapshot, error)
	SetProfile(ctx context.Context, sess access.Session, p *domain.EngineerProfile) error
	SetOverride(ctx context.Context, sess access.Session, o *domain.RateOverride) error
	DeactivateOverride(ctx context.Context, sess access.Session, id int) error
	SetOrganizationRates(ctx context.Context, sess access.Session, org *domain.Organization) error
}

type RateHandler struct {
	rateService Service
}

func New(rateService Service) *RateHandler {
	return &RateHandler{
		rateService: rateService,
	}
}

// decode authenticates, parses the path id and reads a validated body.
func decode(w http.ResponseWriter, r *http.Request, dst any) (access.Session, int, bool) {
	sess, ok := auth.RequireSession(w, r)
	if !ok {
		return sess, 0, false
	}
	id, err := utils.PathID(r, "id")
	if err != nil {
		utils.RespondWithAppError(w, err)
		return sess, 0, false
	}
	if err := utils.DecodeJSON(r, dst); err != nil {
		utils.RespondWithAppError(w, err)
		return sess, 0, false
	}
	if err := validate.Struct(dst); err != nil {
		utils.RespondWithAppError(w, err)
		return sess, 0, false
	}
	return sess, id, true
}

// PreviewRates godoc
//
//	@Summary		Resolve an engineer's current rates
//	@Description	Shows the snapshot a work session logged now would freeze.
//	@Tags			Rates
//	@Produce		json
//	@Param			id				path	int	true	"Engineer ID"
//	@Param			organizationId	query	int	true	"Organization ID"
//	@Security		BearerAuth
//	@Success		200	{object}	domain.RateSnapshot
//	@Failure		403	{object}	utils.Response	"Rates of other engineers are not visible"
//	@Failure		422	{object}	utils.Response	"Rate could not be resolved"
//	@Router			/engineers/{id}/rates [get]
func (h *RateHandler) PreviewRates(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}
	engineerID, err := utils.PathID(r, "id")
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	orgID, err := utils.QueryInt(r, "organizationId", 0)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	if orgID <= 0 {
		utils.RespondWithAppError(w, apperrors.Invalid("organizationId is required"))
		return
	}
	snap, err := h.rateService.Preview(r.Context(), sess, engineerID, orgID)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, snap)
}

// SetProfile godoc
//
//	@Summary	Replace an engineer's compensation profile
//	@Tags		Rates
//	@Accept		json
//	@Param		id		path	int						true	"Engineer ID"
//	@Param		request	body	dto.ProfileRequestDTO	true	"Profile"
//	@Security	BearerAuth
//	@Success	204
//	@Failure	400	{object}	utils.Response	"Invalid profile"
//	@Failure	403	{object}	utils.Response	"Administrators only"
//	@Router		/engineers/{id}/profile [put]
func (h *RateHandler) SetProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.ProfileRequestDTO
	sess, id, ok := decode(w, r, &req)
	if !ok {
		return
	}
	if err := h.rateService.SetProfile(r.Context(), sess, req.ToProfile(id)); err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetOverride godoc
//
//	@Summary		Override rates for one organization
//	@Description	The previous active override of the pair is deactivated, not deleted.
//	@Tags			Rates
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int						true	"Engineer ID"
//	@Param			request	body	dto.OverrideRequestDTO	true	"Override"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.OverrideResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid override"
//	@Failure		403	{object}	utils.Response	"Administrators only"
//	@Failure		404	{object}	utils.Response	"Organization not found"
//	@Router			/engineers/{id}/overrides [post]
func (h *RateHandler) SetOverride(w http.ResponseWriter, r *http.Request) {
	var req dto.OverrideRequestDTO
	sess, id, ok := decode(w, r, &req)
	if !ok {
		return
	}
	override := req.ToOverride(id)
	if err := h.rateService.SetOverride(r.Context(), sess, override); err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.OverrideResponseDTO{
		ID:             override.ID,
		EngineerID:     override.EngineerID,
		OrganizationID: override.OrganizationID,
		IsActive:       override.IsActive,
	})
}

// DeactivateOverride godoc
//
//	@Summary	Deactivate a rate override
//	@Tags		Rates
//	@Param		id	path	int	true	"Override ID"
//	@Security	BearerAuth
//	@Success	204
//	@Failure	403	{object}	utils.Response	"Administrators only"
//	@Failure	404	{object}	utils.Response	"Override not found"
//	@Router		/overrides/{id} [delete]
func (h *RateHandler) DeactivateOverride(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}
	id, err := utils.PathID(r, "id")
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	if err := h.rateService.DeactivateOverride(r.Context(), sess, id); err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetOrganizationRates godoc
//
//	@Summary	Set an organization's billing and default engineer rates
//	@Tags		Rates
//	@Accept		json
//	@Param		id		path	int								true	"Organization ID"
//	@Param		request	body	dto.OrganizationRatesRequestDTO	true	"Rates"
//	@Security	BearerAuth
//	@Success	204
//	@Failure	400	{object}	utils.Response	"Negative rate"
//	@Failure	403	{object}	utils.Response	"Administrators only"
//	@Router		/organizations/{id}/rates [put]
func (h *RateHandler) SetOrganizationRates(w http.ResponseWriter, r *http.Request) {
	var req dto.OrganizationRatesRequestDTO
	sess, id, ok := decode(w, r, &req)
	if !ok {
		return
	}
	if err := h.rateService.SetOrganizationRates(r.Context(), sess, req.ToOrganization(id)); err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
