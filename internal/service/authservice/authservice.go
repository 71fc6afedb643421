package authservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/fieldservice/internal/access"
	"github.com/GlebRadaev/fieldservice/internal/apperrors"
	"github.com/GlebRadaev/fieldservice/internal/domain"
	"github.com/GlebRadaev/fieldservice/pkg/auth"
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

var ErrInvalidCredentials = errors.New("invalid credentials")

// Token is an issued bearer token together with the session it carries.
type Token struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
	Session   access.Session `json:"-"`
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	ttl         time.Duration
	now         func() time.Time
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, ttl time.Duration) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
		ttl:         ttl,
		now:         time.Now,
	}
}

// Login checks the credentials and issues a token whose active role is the
// account's primary role.
func (s *Service) Login(ctx context.Context, login, password string) (*Token, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil || !s.hashService.ComparePassword(user.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return s.issue(access.Session{
		UserID:      user.ID,
		PrimaryRole: user.PrimaryRole,
		ActiveRole:  user.PrimaryRole,
	})
}

// SwitchRole downgrades the active role. Upgrades above the primary role
// are denied.
func (s *Service) SwitchRole(ctx context.Context, sess access.Session, requested string) (*Token, error) {
	role, err := access.ParseRole(requested)
	if err != nil {
		return nil, apperrors.Invalid("%v", err)
	}
	active, err := access.Downgrade(sess.PrimaryRole, role)
	if err != nil {
		return nil, apperrors.Denied("%v", err)
	}
	sess.ActiveRole = active
	zap.L().Info("active role switched", zap.Int("userId", sess.UserID), zap.String("role", string(active)))
	return s.issue(sess)
}

// ResetRole restores the primary role as stored for the account, so it is
// idempotent and picks up role changes made since login.
func (s *Service) ResetRole(ctx context.Context, sess access.Session) (*Token, error) {
	user, err := s.userRepo.FindByID(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.Denied("user %d no longer exists", sess.UserID)
	}
	return s.issue(access.Session{
		UserID:      user.ID,
		PrimaryRole: user.PrimaryRole,
		ActiveRole:  user.PrimaryRole,
	})
}

// CreateUser provisions an account. Only admins manage users.
func (s *Service) CreateUser(ctx context.Context, sess access.Session, login, password, fullName, role string) (*domain.User, error) {
	if !sess.Can(access.ActionManageUsers, access.OwnershipNone) {
		return nil, apperrors.Denied("only admins create users")
	}
	login = strings.TrimSpace(login)
	if login == "" {
		return nil, apperrors.Invalid("login is required")
	}
	primary, err := access.ParseRole(role)
	if err != nil {
		return nil, apperrors.Invalid("%v", err)
	}
	return s.create(ctx, login, password, strings.TrimSpace(fullName), primary)
}

// EnsureAdmin creates the bootstrap admin when the login is configured and
// not taken yet.
func (s *Service) EnsureAdmin(ctx context.Context, login, password string) error {
	if login == "" {
		return nil
	}
	existing, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	_, err = s.create(ctx, login, password, "Administrator", access.RoleAdmin)
	return err
}

func (s *Service) create(ctx context.Context, login, password, fullName string, role access.Role) (*domain.User, error) {
	existing, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("user already exists", zap.String("login", login))
		return nil, apperrors.Conflict("login %q is already taken", login)
	}
	hashed, err := s.hashService.HashPassword(password)
	if err != nil {
		if errors.Is(err, auth.ErrEmptyPassword) {
			return nil, apperrors.Invalid("password is required")
		}
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}
	user, err := s.userRepo.Create(ctx, &domain.User{
		Login:        login,
		PasswordHash: hashed,
		FullName:     fullName,
		PrimaryRole:  role,
	})
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}
	zap.L().Info("user created", zap.String("login", login), zap.String("role", string(role)))
	return user, nil
}

func (s *Service) issue(sess access.Session) (*Token, error) {
	expiresAt := s.now().Add(s.ttl)
	token, err := s.jwtService.GenerateJWT(sess, expiresAt)
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return nil, err
	}
	return &Token{Token: token, ExpiresAt: expiresAt, Session: sess}, nil
}
