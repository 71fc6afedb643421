package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/GlebRadaev/fieldservice/internal/access"
)

//go:generate mockgen -source=jwt.go -destination=mock_jwt.go -package=auth

type JWTServiceInterface interface {
	GenerateJWT(session access.Session, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

const issuer = "fieldservice"

type Claims struct {
	UserID      int         `json:"user_id"`
	PrimaryRole access.Role `json:"primary_role"`
	ActiveRole  access.Role `json:"active_role"`
	jwt.StandardClaims
}

// Session returns the authorization context carried by the token.
func (c *Claims) Session() access.Session {
	return access.Session{
		UserID:      c.UserID,
		PrimaryRole: c.PrimaryRole,
		ActiveRole:  c.ActiveRole,
	}
}

type JWTService struct {
	secretKey []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secretKey: []byte(secret)}
}

func (s *JWTService) GenerateJWT(session access.Session, expirationTime time.Time) (string, error) {
	claims := Claims{
		UserID:      session.UserID,
		PrimaryRole: session.PrimaryRole,
		ActiveRole:  session.ActiveRole,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == 0 || claims.Issuer != issuer {
		return nil, errors.New("invalid token claims")
	}
	if !claims.PrimaryRole.Valid() {
		return nil, errors.New("invalid token claims")
	}
	// an active role above the primary one is never issued by us
	if _, err := access.Downgrade(claims.PrimaryRole, claims.ActiveRole); err != nil {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
