package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{
			name:   "same kind matches sentinel",
			err:    Illegal("order %d is waiting", 1),
			target: ErrIllegalTransition,
			want:   true,
		},
		{
			name:   "wrapped error matches sentinel",
			err:    fmt.Errorf("nominate: %w", Denied("not a manager")),
			target: ErrAuthorizationDenied,
			want:   true,
		},
		{
			name:   "different kind does not match",
			err:    Invalid("hours"),
			target: ErrLockedForEditing,
			want:   false,
		},
		{
			name:   "plain error does not match",
			err:    errors.New("db down"),
			target: ErrNotFound,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.Is(tt.err, tt.target))
		})
	}
}

func TestKindOfAndReason(t *testing.T) {
	err := fmt.Errorf("create session: %w", Invalid("regular hours %s exceed daily ceiling", "30"))

	assert.Equal(t, KindValidationFailed, KindOf(err))
	assert.Equal(t, "regular hours 30 exceed daily ceiling", Reason(err))
	assert.Equal(t, Kind(""), KindOf(errors.New("boom")))
	assert.Equal(t, "boom", Reason(errors.New("boom")))
	assert.Equal(t, "ConflictingUpdate", Reason(ErrConflictingUpdate))
	assert.Equal(t, "LockedForEditing: window expired", Locked("window expired").Error())
}
