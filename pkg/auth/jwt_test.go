package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/fieldservice/internal/access"
)

const testSecret = "test-secret"

func adminAsManager() access.Session {
	return access.Session{UserID: 7, PrimaryRole: access.RoleAdmin, ActiveRole: access.RoleManager}
}

func TestGenerateJWT(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	token, err := jwtService.GenerateJWT(adminAsManager(), time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, adminAsManager(), claims.Session())
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	sign := func(claims jwt.Claims, secret string) string {
		token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		return token
	}
	valid := jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix(), Issuer: issuer}

	tests := []struct {
		name        string
		tokenString string
		setup       func() string
		expectError bool
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(adminAsManager(), time.Now().Add(time.Hour))
				return token
			},
			expectError: false,
		},
		{
			name:        "Invalid Token",
			tokenString: "invalid.token.string",
			expectError: true,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(adminAsManager(), time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Foreign Secret",
			setup: func() string {
				return sign(Claims{UserID: 1, PrimaryRole: access.RoleUser, ActiveRole: access.RoleUser, StandardClaims: valid}, "other")
			},
			expectError: true,
		},
		{
			name: "Invalid Claims Type",
			setup: func() string {
				return sign(valid, testSecret)
			},
			expectError: true,
		},
		{
			name: "Active Role Above Primary",
			setup: func() string {
				return sign(Claims{UserID: 1, PrimaryRole: access.RoleUser, ActiveRole: access.RoleAdmin, StandardClaims: valid}, testSecret)
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tokenString string
			if tt.setup != nil {
				tokenString = tt.setup()
			} else {
				tokenString = tt.tokenString
			}

			claims, err := jwtService.ValidateToken(tokenString)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, claims)
			}
		})
	}
}
