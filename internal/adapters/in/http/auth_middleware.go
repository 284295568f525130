package http

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/access"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/ports"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/errs"
)

// sessionCookieName is the cookie carrying the session identifier.
const sessionCookieName = "session_id"

// principalContextKey is where the resolved caller identity lives on the
// echo context.
const principalContextKey = "auth.principal"

// principal is the resolved identity of the current request.
type principal struct {
	accountID kernel.UUID
	role      access.Role
}

// isUser reports whether the caller is an authenticated human account.
func (p principal) isUser() bool {
	return p.role == access.RoleCustomer || p.role == access.RoleModerator
}

// currentPrincipal returns the caller resolved by the auth middleware,
// defaulting to anonymous.
func currentPrincipal(ctx echo.Context) principal {
	if p, ok := ctx.Get(principalContextKey).(principal); ok {
		return p
	}
	return principal{role: access.RoleAnonymous}
}

// AuthMiddleware resolves the caller identity for every request: a bearer
// token identifies the dose calculation service, a session cookie identifies
// a human account. Requests that carry neither proceed as anonymous; the
// capability checks downstream decide what anonymous callers may do.
type AuthMiddleware struct {
	sessions     ports.SessionStore
	accounts     ports.AccountRepository
	serviceToken string
	logger       *slog.Logger
}

// NewAuthMiddleware creates the identity resolution middleware.
func NewAuthMiddleware(
	sessions ports.SessionStore,
	accounts ports.AccountRepository,
	serviceToken string,
	logger *slog.Logger,
) *AuthMiddleware {
	return &AuthMiddleware{
		sessions:     sessions,
		accounts:     accounts,
		serviceToken: serviceToken,
		logger:       logger.With("component", "auth_middleware"),
	}
}

// Resolve is the echo middleware function.
func (m *AuthMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if token, ok := bearerToken(ctx.Request().Header.Get(echo.HeaderAuthorization)); ok {
			if m.serviceToken != "" &&
				subtle.ConstantTimeCompare([]byte(token), []byte(m.serviceToken)) == 1 {
				ctx.Set(principalContextKey, principal{role: access.RoleRemoteService})
			}
			// A wrong token stays anonymous rather than failing the request.
			return next(ctx)
		}

		cookie, err := ctx.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			return next(ctx)
		}

		rctx := ctx.Request().Context()
		accountID, err := m.sessions.Get(rctx, cookie.Value)
		if err != nil {
			if !errors.Is(err, errs.ErrObjectNotFound) {
				m.logger.WarnContext(rctx, "session lookup failed", "error", err)
			}
			return next(ctx)
		}

		acc, err := m.accounts.Get(rctx, accountID)
		if err != nil {
			m.logger.WarnContext(rctx, "session points at unknown account",
				"account_id", accountID.String(), "error", err)
			return next(ctx)
		}

		role := access.RoleCustomer
		if acc.IsModerator() {
			role = access.RoleModerator
		}
		ctx.Set(principalContextKey, principal{accountID: acc.ID(), role: role})
		return next(ctx)
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):], true
	}
	return "", false
}
