package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

const submissionKeyPrefix = "janseva:submissions"

// SubmissionRateLimiter caps complaint submissions per citizen per 24 hours
// using a redis counter with a TTL armed on the first increment. Requests
// without a declared citizen id pass through unlimited.
func SubmissionRateLimiter(client *redis.Client, limit int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := ActorID(r)
			if userID == "" || client == nil || limit <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.Background()
			userKey := fmt.Sprintf("%s:%s", submissionKeyPrefix, userID)

			count, err := client.Incr(ctx, userKey).Result()
			if err != nil {
				writeLimiterError(w, http.StatusInternalServerError, "failed to increment submission count")
				return
			}
			if count == 1 {
				if err := client.Expire(ctx, userKey, 24*time.Hour).Err(); err != nil {
					writeLimiterError(w, http.StatusInternalServerError, "failed to set submission window")
					return
				}
			}
			if count > int64(limit) {
				retryAfter, _ := client.TTL(ctx, userKey).Result()
				writeLimiterError(w, http.StatusTooManyRequests,
					fmt.Sprintf("daily submission limit reached, retry in %.0f seconds", retryAfter.Seconds()))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeLimiterError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
