package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"adpulse/internal/core/port"
)

const (
	codeUnauthenticated       = "unauthenticated"
	codeInvalidRequest        = "invalid_request"
	codeWorkspaceNotFound     = "workspace_not_found"
	codeCredentialUnavailable = "credential_unavailable"
	codeUpstreamUnavailable   = "upstream_unavailable"
	codeRefreshUnavailable    = "refresh_unavailable"
	codeInternal              = "internal_error"
)

type errorResponse struct {
	Error   string   `json:"error"`
	Code    string   `json:"code"`
	Details []string `json:"details,omitempty"`
}

// statusFor maps use case errors onto HTTP statuses and error codes.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, port.ErrInvalidAdID):
		return http.StatusBadRequest, codeInvalidRequest
	case errors.Is(err, port.ErrWorkspaceNotFound):
		return http.StatusForbidden, codeWorkspaceNotFound
	case errors.Is(err, port.ErrCredentialUnavailable):
		return http.StatusPreconditionFailed, codeCredentialUnavailable
	case errors.Is(err, port.ErrUpstreamUnavailable):
		return http.StatusBadGateway, codeUpstreamUnavailable
	case errors.Is(err, port.ErrRefreshUnavailable):
		return http.StatusServiceUnavailable, codeRefreshUnavailable
	default:
		return http.StatusInternalServerError, codeInternal
	}
}

func writeError(w http.ResponseWriter, status int, code, msg string, details ...string) {
	writeJSON(w, status, errorResponse{Error: msg, Code: code, Details: details})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
