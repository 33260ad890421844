package middleware

import (
	"net/http"
	"net/http/pprof"

	"github.com/labstack/echo/v4"

	"shortlink/internal/domain"
)

const pprofSecretHeader = "X-Pprof-Secret"

// runtime profiles served through pprof.Handler.
var namedProfiles = []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"}

// PprofAuth guards the profiling group. Without a secret the group is open,
// which is only sensible on a private listener.
func PprofAuth(secret string) echo.MiddlewareFunc {
	authorized := headerSecret(pprofSecretHeader, secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if secret != "" && !authorized(c) {
				return c.JSON(http.StatusUnauthorized, domain.ErrorResponse{
					Error: "unauthorized",
					Code:  "UNAUTHORIZED",
				})
			}
			return next(c)
		}
	}
}

func RegisterPprof(g *echo.Group) {
	wrap := func(fn http.HandlerFunc) echo.HandlerFunc { return echo.WrapHandler(fn) }

	g.GET("/", wrap(pprof.Index))
	g.GET("/cmdline", wrap(pprof.Cmdline))
	g.GET("/profile", wrap(pprof.Profile))
	g.Match([]string{http.MethodGet, http.MethodPost}, "/symbol", wrap(pprof.Symbol))
	g.GET("/trace", wrap(pprof.Trace))
	for _, name := range namedProfiles {
		g.GET("/"+name, echo.WrapHandler(pprof.Handler(name)))
	}
}
