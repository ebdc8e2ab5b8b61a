package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
	nrpkg "github.com/usbtecnok/kaviar-admin-os/internal/pkg/newrelic"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/session"
	"github.com/usbtecnok/kaviar-admin-os/services/auth"
	httpHandler "github.com/usbtecnok/kaviar-admin-os/services/auth/handler/http"
)

// Handler combines all handlers for login, logout and the overview
type Handler struct {
	authHTTP *httpHandler.AuthHandler
}

// NewHandler creates a new combined handler
func NewHandler(authUC auth.AuthUC, store session.Store, cfg models.SessionConfig) *Handler {
	return &Handler{
		authHTTP: httpHandler.NewAuthHandler(authUC, store, cfg),
	}
}

// RegisterRoutes registers the public login routes on e and the overview on the
// guarded pages group. loginLimit throttles credential posts.
func (h *Handler) RegisterRoutes(e *echo.Echo, pages *echo.Group, loginLimit echo.MiddlewareFunc) {
	e.GET("/login", nrpkg.TraceHandler("auth.login_form", h.authHTTP.ShowLogin))
	e.POST("/login", nrpkg.TraceHandler("auth.login", h.authHTTP.Login), loginLimit)
	e.POST("/logout", nrpkg.TraceHandler("auth.logout", h.authHTTP.Logout))

	pages.GET("/", h.authHTTP.Root)
	pages.GET("/dashboard", nrpkg.TraceHandler("auth.dashboard", h.authHTTP.Dashboard))
}
