package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/fieldservice/internal/access"
)

func TestMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := NewMockJWTServiceInterface(ctrl)

	var got access.Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = SessionFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	handler := Middleware(tokens)(next)

	tests := []struct {
		name         string
		header       string
		prepareMock  func()
		expectedCode int
		expected     access.Session
	}{
		{
			name:         "Missing header",
			header:       "",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Invalid token",
			header: "Bearer broken",
			prepareMock: func() {
				tokens.EXPECT().ValidateToken("broken").Return(nil, errors.New("invalid token"))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Session stored",
			header: "Bearer good",
			prepareMock: func() {
				tokens.EXPECT().ValidateToken("good").Return(&Claims{
					UserID:      3,
					PrimaryRole: access.RoleAdmin,
					ActiveRole:  access.RoleUser,
				}, nil)
			},
			expectedCode: http.StatusNoContent,
			expected:     access.Session{UserID: 3, PrimaryRole: access.RoleAdmin, ActiveRole: access.RoleUser},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got = access.Session{}
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodGet, "/orders", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSessionFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := SessionFromContext(req.Context())
	assert.False(t, ok)

	ctx := WithSession(req.Context(), access.Session{UserID: 1, PrimaryRole: access.RoleUser, ActiveRole: access.RoleUser})
	session, ok := SessionFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, 1, session.UserID)
}
