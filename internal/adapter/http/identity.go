package httpadapter

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"adpulse/internal/core/port"
)

// UserIDHeader carries the caller's user id, set by the gateway after
// authentication.
const UserIDHeader = "X-User-ID"

type identityKey struct{}

// requireIdentity rejects requests without a well-formed user id header.
func (h *Handler) requireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(strings.TrimSpace(r.Header.Get(UserIDHeader)))
		if err != nil || userID == uuid.Nil {
			writeError(w, http.StatusUnauthorized, codeUnauthenticated, "missing or invalid "+UserIDHeader+" header")
			return
		}
		ctx := context.WithValue(r.Context(), identityKey{}, port.Identity{UserID: userID})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func identityFrom(ctx context.Context) port.Identity {
	id, _ := ctx.Value(identityKey{}).(port.Identity)
	return id
}
