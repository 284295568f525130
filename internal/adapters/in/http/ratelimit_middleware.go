package http

import (
	"net/http"

	"github.com/juju/ratelimit"
	"github.com/labstack/echo/v4"

	"github.com/cnrcvk7/Asynchronous-service/internal/generated/servers"
)

// RateLimit throttles the named route templates with a shared token bucket.
// Used on the credential endpoints to slow down guessing.
func RateLimit(bucket *ratelimit.Bucket, paths ...string) echo.MiddlewareFunc {
	limited := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		limited[p] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if _, ok := limited[ctx.Path()]; !ok {
				return next(ctx)
			}
			if bucket.TakeAvailable(1) == 0 {
				return ctx.JSON(http.StatusTooManyRequests, servers.Error{
					Code:    http.StatusTooManyRequests,
					Message: "too many requests",
				})
			}
			return next(ctx)
		}
	}
}
