package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/fieldservice/internal/access"
	"github.com/GlebRadaev/fieldservice/internal/domain"
	"github.com/GlebRadaev/fieldservice/internal/dto"
	"github.com/GlebRadaev/fieldservice/internal/service/authservice"
	"github.com/GlebRadaev/fieldservice/pkg/auth"
	"github.com/GlebRadaev/fieldservice/pkg/utils"
	"github.com/GlebRadaev/fieldservice/pkg/validate"
)

type Service interface {
	Login(ctx context.Context, login, password string) (*authservice.Token, error)
	SwitchRole(ctx context.Context, sess access.Session, requested string) (*authservice.Token, error)
	ResetRole(ctx context.Context, sess access.Session) (*authservice.Token, error)
	CreateUser(ctx context.Context, sess access.Session, login, password, fullName, role string) (*domain.User, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func respondWithToken(w http.ResponseWriter, token *authservice.Token) {
	w.Header().Set("Authorization", "Bearer "+token.Token)
	utils.RespondWithJSON(w, http.StatusOK, dto.TokenResponseDTO{
		Token:       token.Token,
		ExpiresAt:   token.ExpiresAt,
		UserID:      token.Session.UserID,
		PrimaryRole: string(token.Session.PrimaryRole),
		ActiveRole:  string(token.Session.ActiveRole),
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in and get a JWT whose active role is the primary role
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.TokenResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	token, err := h.authService.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.RespondWithAppError(w, err)
		return
	}
	respondWithToken(w, token)
}

// SwitchRole godoc
//
//	@Summary		Act under a lower role
//	@Description	Issue a new token with the requested active role. Only downgrades are allowed.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.SwitchRoleRequestDTO	true	"Requested role"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.TokenResponseDTO
//	@Failure		400	{object}	utils.Response	"Unknown role"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Role is above the primary role"
//	@Router			/auth/switch-role [post]
func (h *AuthHandler) SwitchRole(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}
	var req dto.SwitchRoleRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	token, err := h.authService.SwitchRole(r.Context(), sess, req.NewRole)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	respondWithToken(w, token)
}

// ResetRole godoc
//
//	@Summary		Return to the primary role
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.TokenResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"User no longer exists"
//	@Router			/auth/reset-role [post]
func (h *AuthHandler) ResetRole(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}
	token, err := h.authService.ResetRole(r.Context(), sess)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	respondWithToken(w, token)
}

// CreateUser godoc
//
//	@Summary		Create a user account
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateUserRequestDTO	true	"New user"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.UserResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		403	{object}	utils.Response	"Only administrators manage users"
//	@Failure		409	{object}	utils.Response	"Login is taken"
//	@Router			/users [post]
func (h *AuthHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}
	var req dto.CreateUserRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	user, err := h.authService.CreateUser(r.Context(), sess, req.Login, req.Password, req.FullName, req.Role)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromUser(user))
}
