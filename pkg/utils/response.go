package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/fieldservice/internal/apperrors"
)

type Response struct {
	Error   string `json:"error,omitempty" example:"IllegalTransition"`
	Message string `json:"message"         example:"order is not waiting"`
}

var statusByKind = map[apperrors.Kind]int{
	apperrors.KindAuthorizationDenied: http.StatusForbidden,
	apperrors.KindIllegalTransition:   http.StatusConflict,
	apperrors.KindConflictingUpdate:   http.StatusConflict,
	apperrors.KindRateUnresolved:      http.StatusUnprocessableEntity,
	apperrors.KindValidationFailed:    http.StatusBadRequest,
	apperrors.KindLockedForEditing:    http.StatusLocked,
	apperrors.KindNotFound:            http.StatusNotFound,
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Response{Message: message})
}

// RespondWithAppError maps business rejections to their status code and kind.
// Anything else is an internal error and its text is not exposed.
func RespondWithAppError(w http.ResponseWriter, err error) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		zap.L().Error("request failed", zap.Error(err))
		RespondWithJSON(w, http.StatusInternalServerError, Response{
			Error:   "Internal",
			Message: "Internal server error",
		})
		return
	}
	code, ok := statusByKind[appErr.Kind]
	if !ok {
		code = http.StatusInternalServerError
	}
	message := appErr.Reason
	if message == "" {
		message = string(appErr.Kind)
	}
	RespondWithJSON(w, code, Response{Error: string(appErr.Kind), Message: message})
}
