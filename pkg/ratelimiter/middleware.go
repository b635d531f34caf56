package ratelimiter

import (
	"math"
	"net/http"
	"strconv"
)

// KeyFunc extracts the bucket key from a request.
type KeyFunc func(r *http.Request) string

// Middleware limits requests per key and sets X-RateLimit-* headers.
// Requests with an empty key pass through. Denied requests get Retry-After
// and are handed to deny.
func Middleware(l *Limiter, key KeyFunc, deny http.Handler) func(http.Handler) http.Handler {
	if deny == nil {
		deny = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		})
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := l.Allow(r.Context(), k)
			if err != nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				if wait := res.RetryAfter(l.now()); wait > 0 {
					h.Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				}
				deny.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
