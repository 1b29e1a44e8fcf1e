package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	domerrors "github.com/kalbaitzer/taskboard/internal/domain/errors"
)

// writeErr sends JSON { "error": message, "code": errCode }. If errCode is
// empty, a default is derived from the HTTP status.
func writeErr(w http.ResponseWriter, code int, errCode string, message string) {
	if errCode == "" {
		errCode = defaultErrCode(code)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message, "code": errCode})
}

func defaultErrCode(httpCode int) string {
	switch httpCode {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	default:
		return ErrCodeInternal
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDomainErr maps core sentinel errors onto HTTP statuses: not-found
// to 404, business-rule violations to 400, the report gate to 403 and
// everything else to 500.
func writeDomainErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domerrors.ErrUserNotFound),
		errors.Is(err, domerrors.ErrProjectNotFound),
		errors.Is(err, domerrors.ErrTaskNotFound):
		writeErr(w, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case errors.Is(err, domerrors.ErrTaskLimitReached),
		errors.Is(err, domerrors.ErrTaskReopen),
		errors.Is(err, domerrors.ErrProjectHasActiveTasks),
		errors.Is(err, domerrors.ErrUserOwnsProjects):
		writeErr(w, http.StatusBadRequest, ErrCodeBusinessRule, err.Error())
	case errors.Is(err, domerrors.ErrReportForbidden):
		writeErr(w, http.StatusForbidden, ErrCodeForbidden, err.Error())
	default:
		writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "internal error")
	}
}
