package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"shortlink/internal/config"
	"shortlink/internal/domain"
)

const bypassHeader = "X-Rate-Limit-Bypass"

type rateLimitResponse struct {
	Error      string `json:"error"`
	Code       string `json:"code"`
	RetryAfter int    `json:"retryAfter"`
}

// RateLimit applies a token bucket per client IP. Requests carrying the bypass
// secret skip the limiter; the bench seeder relies on that.
func RateLimit(cfg *config.RateLimitConfig, logger *slog.Logger) echo.MiddlewareFunc {
	retryAfter := refillSeconds(cfg.RPS)
	denied := rateLimitResponse{
		Error:      "rate limit exceeded",
		Code:       "RATE_LIMITED",
		RetryAfter: retryAfter,
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RPS),
			Burst:     cfg.Burst,
			ExpiresIn: time.Duration(cfg.ExpireMinutes) * time.Minute,
		}),
		Skipper: headerSecret(bypassHeader, cfg.BypassSecret),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, ip string, _ error) error {
			logger.Warn("request rate limited",
				slog.String("ip", ip),
				slog.String("route", c.Path()))
			c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
			return c.JSON(http.StatusTooManyRequests, denied)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logger.Error("failed to identify client for rate limiting", slog.String("error", err.Error()))
			return c.JSON(http.StatusInternalServerError, domain.ErrorResponse{
				Error: "internal server error",
				Code:  "INTERNAL",
			})
		},
	})
}

// refillSeconds is how long an empty bucket takes to regain one token,
// rounded up to whole seconds as Retry-After requires.
func refillSeconds(rps float64) int {
	if rps <= 0 {
		return 1
	}
	return max(1, int(math.Ceil(1/rps)))
}
