package middlewarex

import (
	"net/http"

	"harbour-market/pkg/contextx"
)

const headerNameUserID = "X-User-Id"

// UserID copies the authenticated caller identity set by the upstream
// gateway into the request context. Token verification happens upstream.
func UserID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(headerNameUserID)

		ctx := r.Context()
		if userID != "" {
			ctx = contextx.WithUserID(ctx, contextx.UserID(userID))
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
