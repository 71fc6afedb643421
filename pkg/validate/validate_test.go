package validate

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/fieldservice/internal/apperrors"
)

type sessionPayload struct {
	RegularHours  decimal.Decimal  `json:"regularHours"  validate:"gte=0,lte=24"`
	OvertimeHours decimal.Decimal  `json:"overtimeHours" validate:"gte=0,lte=24"`
	CarPayment    *decimal.Decimal `json:"carPayment"    validate:"omitempty,gte=0"`
	TerritoryType string           `json:"territoryType" validate:"omitempty,territory"`
	Role          string           `json:"role"          validate:"omitempty,role"`
}

func TestStruct(t *testing.T) {
	negative := decimal.NewFromInt(-5)

	tests := []struct {
		name        string
		payload     sessionPayload
		expectError string
	}{
		{
			name: "Valid payload",
			payload: sessionPayload{
				RegularHours:  decimal.NewFromInt(8),
				OvertimeHours: decimal.NewFromInt(1),
				TerritoryType: "zone_2",
				Role:          "MANAGER",
			},
		},
		{
			name: "Regular hours above ceiling",
			payload: sessionPayload{
				RegularHours: decimal.NewFromInt(30),
			},
			expectError: "ValidationFailed: regularHours fails lte=24",
		},
		{
			name: "Negative car payment",
			payload: sessionPayload{
				RegularHours: decimal.NewFromInt(2),
				CarPayment:   &negative,
			},
			expectError: "ValidationFailed: carPayment fails gte=0",
		},
		{
			name: "Unknown territory",
			payload: sessionPayload{
				TerritoryType: "moon",
			},
			expectError: "ValidationFailed: territoryType fails territory",
		},
		{
			name: "Unknown role",
			payload: sessionPayload{
				Role: "ROOT",
			},
			expectError: "ValidationFailed: role fails role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.payload)
			if tt.expectError == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.expectError)
			assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
		})
	}
}
