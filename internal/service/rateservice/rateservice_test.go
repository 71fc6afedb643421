package rateservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/fieldservice/internal/access"
	"github.com/GlebRadaev/fieldservice/internal/apperrors"
	"github.com/GlebRadaev/fieldservice/internal/config"
	"github.com/GlebRadaev/fieldservice/internal/domain"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo, Defaults{
		BaseRate:            d("500"),
		OrgBaseRate:         d("1500"),
		OvertimeCoefficient: decimal.RequireFromString("1.6"),
		Zone1Extra:          decimal.NewFromInt(100),
		Zone2Extra:          decimal.NewFromInt(200),
		Zone3Extra:          decimal.NewFromInt(300),
	})
	service.now = func() time.Time { return fixedNow }
	return service, repo
}

func d(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func assertDecimal(t *testing.T, want string, got *decimal.Decimal) {
	t.Helper()
	require.NotNil(t, got)
	assert.True(t, decimal.RequireFromString(want).Equal(*got), "want %s, got %s", want, got)
}

func TestDefaultsFromConfig(t *testing.T) {
	defaults := DefaultsFromConfig(config.RateDefaults{
		OvertimeCoefficient: "bad",
		BaseRate:            "650",
		Zone2Extra:          "120.50",
	})
	assertDecimal(t, "1.6", &defaults.OvertimeCoefficient)
	assertDecimal(t, "650", defaults.BaseRate)
	assert.Nil(t, defaults.OrgBaseRate)
	assert.True(t, defaults.Zone1Extra.IsZero())
	assertDecimal(t, "120.5", &defaults.Zone2Extra)
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	org := &domain.Organization{ID: 7, BaseRate: d("1200"), OvertimeMultiplier: d("2")}

	t.Run("override wins per field", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().ProfileByUser(ctx, 3).Return(&domain.EngineerProfile{
			UserID: 3, BaseRate: d("600"), OvertimeCoefficient: d("1.5"), CarKmRate: d("12"), IsActive: true,
		}, nil)
		repo.EXPECT().Organization(ctx, 7).Return(org, nil)
		repo.EXPECT().ActiveOverride(ctx, 3, 7).Return(&domain.RateOverride{
			ID: 11, BaseRate: d("700"), Zone1Extra: d("150"), IsActive: true,
		}, nil)

		snap, err := service.Resolve(ctx, 3, 7, fixedNow)
		require.NoError(t, err)
		assertDecimal(t, "700", &snap.BaseRate)
		assertDecimal(t, "1.5", snap.OvertimeCoefficient)
		assert.Nil(t, snap.FixedOvertimeRate)
		assertDecimal(t, "150", &snap.Zone1Extra)
		assertDecimal(t, "200", &snap.Zone2Extra)
		assertDecimal(t, "12", snap.CarKmRate)
		assertDecimal(t, "1200", &snap.OrgBaseRate)
		assertDecimal(t, "2", &snap.OrgOvertimeCoefficient)
		require.NotNil(t, snap.OverrideID)
		assert.Equal(t, 11, *snap.OverrideID)
		assert.Equal(t, fixedNow, snap.ResolvedAt)
	})

	t.Run("inactive override falls through to profile", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().ProfileByUser(ctx, 3).Return(&domain.EngineerProfile{
			UserID: 3, BaseRate: d("600"), FixedOvertimeRate: d("1000"), IsActive: true,
		}, nil)
		repo.EXPECT().Organization(ctx, 7).Return(org, nil)
		repo.EXPECT().ActiveOverride(ctx, 3, 7).Return(&domain.RateOverride{
			ID: 11, BaseRate: d("700"), IsActive: false,
		}, nil)

		snap, err := service.Resolve(ctx, 3, 7, fixedNow)
		require.NoError(t, err)
		assertDecimal(t, "600", &snap.BaseRate)
		assertDecimal(t, "1000", snap.FixedOvertimeRate)
		assert.Nil(t, snap.OvertimeCoefficient)
		assert.Nil(t, snap.OverrideID)
	})

	t.Run("organization and system defaults", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().ProfileByUser(ctx, 3).Return(&domain.EngineerProfile{UserID: 3, IsActive: true}, nil)
		repo.EXPECT().Organization(ctx, 8).Return(&domain.Organization{
			ID: 8, EngineerBaseRate: d("550"), EngineerOvertime: d("1.8"),
		}, nil)
		repo.EXPECT().ActiveOverride(ctx, 3, 8).Return(nil, nil)

		snap, err := service.Resolve(ctx, 3, 8, fixedNow)
		require.NoError(t, err)
		assertDecimal(t, "550", &snap.BaseRate)
		assertDecimal(t, "1.8", snap.OvertimeCoefficient)
		assertDecimal(t, "1500", &snap.OrgBaseRate)
		assertDecimal(t, "1.6", &snap.OrgOvertimeCoefficient)
		assertDecimal(t, "300", &snap.Zone3Extra)
		assert.Nil(t, snap.CarKmRate)
	})

	t.Run("system default coefficient", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().ProfileByUser(ctx, 3).Return(&domain.EngineerProfile{UserID: 3, IsActive: true}, nil)
		repo.EXPECT().Organization(ctx, 8).Return(&domain.Organization{ID: 8}, nil)
		repo.EXPECT().ActiveOverride(ctx, 3, 8).Return(nil, nil)

		snap, err := service.Resolve(ctx, 3, 8, fixedNow)
		require.NoError(t, err)
		assertDecimal(t, "500", &snap.BaseRate)
		assertDecimal(t, "1.6", snap.OvertimeCoefficient)
	})

	t.Run("no profile", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().ProfileByUser(ctx, 4).Return(nil, nil)

		_, err := service.Resolve(ctx, 4, 7, fixedNow)
		assert.ErrorIs(t, err, apperrors.ErrRateUnresolved)
	})

	t.Run("inactive profile", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().ProfileByUser(ctx, 4).Return(&domain.EngineerProfile{UserID: 4, BaseRate: d("600")}, nil)

		_, err := service.Resolve(ctx, 4, 7, fixedNow)
		assert.ErrorIs(t, err, apperrors.ErrRateUnresolved)
	})

	t.Run("no base rate anywhere", func(t *testing.T) {
		service, repo := NewMock(t)
		service.defaults.BaseRate = nil
		repo.EXPECT().ProfileByUser(ctx, 3).Return(&domain.EngineerProfile{UserID: 3, IsActive: true}, nil)
		repo.EXPECT().Organization(ctx, 8).Return(&domain.Organization{ID: 8}, nil)
		repo.EXPECT().ActiveOverride(ctx, 3, 8).Return(nil, nil)

		_, err := service.Resolve(ctx, 3, 8, fixedNow)
		assert.ErrorIs(t, err, apperrors.ErrRateUnresolved)
	})

	t.Run("unknown organization", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().ProfileByUser(ctx, 3).Return(&domain.EngineerProfile{UserID: 3, IsActive: true}, nil)
		repo.EXPECT().Organization(ctx, 99).Return(nil, apperrors.NotFound("organization 99"))

		_, err := service.Resolve(ctx, 3, 99, fixedNow)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("repository failure", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().ProfileByUser(ctx, 3).Return(nil, errors.New("db down"))

		_, err := service.Resolve(ctx, 3, 7, fixedNow)
		assert.EqualError(t, err, "db down")
	})
}

func TestPreview(t *testing.T) {
	ctx := context.Background()
	engineer := access.Session{UserID: 3, PrimaryRole: access.RoleUser, ActiveRole: access.RoleUser}

	t.Run("engineer previews foreign rates", func(t *testing.T) {
		service, _ := NewMock(t)
		_, err := service.Preview(ctx, engineer, 4, 7)
		assert.ErrorIs(t, err, apperrors.ErrAuthorizationDenied)
	})

	t.Run("engineer previews own rates", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().ProfileByUser(ctx, 3).Return(&domain.EngineerProfile{UserID: 3, IsActive: true}, nil)
		repo.EXPECT().Organization(ctx, 7).Return(&domain.Organization{ID: 7}, nil)
		repo.EXPECT().ActiveOverride(ctx, 3, 7).Return(nil, nil)

		snap, err := service.Preview(ctx, engineer, 3, 7)
		require.NoError(t, err)
		assertDecimal(t, "500", &snap.BaseRate)
	})
}

func TestAdministration(t *testing.T) {
	ctx := context.Background()
	admin := access.Session{UserID: 1, PrimaryRole: access.RoleAdmin, ActiveRole: access.RoleAdmin}
	downgraded := access.Session{UserID: 1, PrimaryRole: access.RoleAdmin, ActiveRole: access.RoleManager}

	tests := []struct {
		name        string
		call        func(s *Service) error
		prepareMock func(repo *MockRepo)
		wantErr     error
	}{
		{
			name: "set profile",
			call: func(s *Service) error {
				return s.SetProfile(ctx, admin, &domain.EngineerProfile{UserID: 3, BaseRate: d("700"), EngineerType: domain.EngineerStaff})
			},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().UpsertProfile(ctx, gomock.Any()).Return(nil)
			},
		},
		{
			name: "downgraded admin cannot manage rates",
			call: func(s *Service) error {
				return s.SetProfile(ctx, downgraded, &domain.EngineerProfile{UserID: 3})
			},
			wantErr: apperrors.ErrAuthorizationDenied,
		},
		{
			name: "negative profile rate",
			call: func(s *Service) error {
				return s.SetProfile(ctx, admin, &domain.EngineerProfile{UserID: 3, BaseRate: d("-1")})
			},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name: "unknown engineer type",
			call: func(s *Service) error {
				return s.SetProfile(ctx, admin, &domain.EngineerProfile{UserID: 3, EngineerType: "intern"})
			},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name: "set override stamps creator",
			call: func(s *Service) error {
				return s.SetOverride(ctx, admin, &domain.RateOverride{EngineerID: 3, OrganizationID: 7, BaseRate: d("800")})
			},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Organization(ctx, 7).Return(&domain.Organization{ID: 7}, nil)
				repo.EXPECT().SupersedeOverride(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, o *domain.RateOverride) error {
						assert.Equal(t, 1, o.CreatedBy)
						return nil
					})
			},
		},
		{
			name: "override for unknown organization",
			call: func(s *Service) error {
				return s.SetOverride(ctx, admin, &domain.RateOverride{EngineerID: 3, OrganizationID: 99})
			},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Organization(ctx, 99).Return(nil, apperrors.NotFound("organization 99"))
			},
			wantErr: apperrors.ErrNotFound,
		},
		{
			name: "deactivate override",
			call: func(s *Service) error { return s.DeactivateOverride(ctx, admin, 11) },
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().DeactivateOverride(ctx, 11).Return(nil)
			},
		},
		{
			name: "organization rates",
			call: func(s *Service) error {
				return s.SetOrganizationRates(ctx, admin, &domain.Organization{ID: 7, BaseRate: d("1300")})
			},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().UpdateOrganizationRates(ctx, gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(repo)
			}
			err := tt.call(service)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
