package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	appctx "github.com/usbtecnok/kaviar-admin-os/internal/pkg/context"
	kaviarhttp "github.com/usbtecnok/kaviar-admin-os/internal/pkg/http"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/logger"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/session"
	"github.com/usbtecnok/kaviar-admin-os/internal/utils"
)

// SessionContextKey is the echo context key holding the resolved *session.Session
const SessionContextKey = "session"

// LoginPath is where unauthenticated visitors are sent
const LoginPath = "/login"

// AuthGuard lets only sessions holding a token reach the wrapped handlers.
// Everyone else is redirected to the login page before any API call happens.
func AuthGuard(store session.Store, cookieName string) echo.MiddlewareFunc {
	return guard(store, cookieName, RedirectToLogin)
}

// APIAuthGuard is the JSON flavour of AuthGuard: it answers 401 instead of redirecting
func APIAuthGuard(store session.Store, cookieName string) echo.MiddlewareFunc {
	return guard(store, cookieName, func(c echo.Context) error {
		return utils.UnauthorizedResponse(c, kaviarhttp.MsgTokenMissing)
	})
}

func guard(store session.Store, cookieName string, deny echo.HandlerFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := ResolveSession(c, store, cookieName)
			if err != nil {
				logger.Error("Failed to resolve admin session",
					logger.String("path", c.Request().URL.Path),
					logger.Err(err))
				return echo.NewHTTPError(http.StatusServiceUnavailable, "Sessão indisponível. Tente novamente.")
			}

			if !sess.Authenticated() {
				return deny(c)
			}

			c.Set(SessionContextKey, sess)
			if sess.Admin != "" {
				c.Set(logger.AdminContextKey, sess.Admin)
				ctx := appctx.WithAdmin(c.Request().Context(), sess.Admin)
				c.SetRequest(c.Request().WithContext(ctx))
				if txn := newrelic.FromContext(ctx); txn != nil {
					txn.AddAttribute("admin", sess.Admin)
				}
			}

			return next(c)
		}
	}
}

// ResolveSession reads the session cookie and resolves its state
func ResolveSession(c echo.Context, store session.Store, cookieName string) (*session.Session, error) {
	sid := ""
	if cookie, err := c.Cookie(cookieName); err == nil {
		sid = cookie.Value
	}
	return session.Resolve(c.Request().Context(), store, sid)
}

// SessionFrom returns the session the guard attached, or nil outside guarded routes
func SessionFrom(c echo.Context) *session.Session {
	if sess, ok := c.Get(SessionContextKey).(*session.Session); ok {
		return sess
	}
	return nil
}

// RedirectToLogin sends the browser to the login page
func RedirectToLogin(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, LoginPath)
}
