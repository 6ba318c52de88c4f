package rate_limiter

import (
	"net/http"
	"strconv"

	"tms/internal/pkg/middlewares"
	"tms/pkg/logger"
)

const limitExceededBody = `{"type":"error","kind":"RATE_LIMITED","message":"Rate limit exceeded. Try again later."}`

func Middleware(log handlerLogger, qps int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := middlewares.RouteTemplate(r)
			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(qps))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			if _, err := w.Write([]byte(limitExceededBody)); err != nil {
				log.With(logger.NewField("error", err)).Error("failed to write rate limit response")
			}
		})
	}
}
