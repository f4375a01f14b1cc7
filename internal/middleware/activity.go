package middleware

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
)

// ActivityStore is the single persistence call the tracker needs.
type ActivityStore interface {
	TouchLastActive(ctx context.Context, id string) error
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// TrackActivity stamps the authenticated user's last_active time after each
// successfully handled request. A failed stamp is logged and never affects
// the response that triggered it. Must be mounted inside Auth.
func TrackActivity(store ActivityStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			userID := GetUserID(r.Context())
			if userID == "" || rec.status >= http.StatusBadRequest {
				return
			}

			if err := store.TouchLastActive(r.Context(), userID); err != nil {
				log.Error().
					Err(err).
					Str("user_id", userID).
					Msg("Failed to update last active")
			}
		})
	}
}
