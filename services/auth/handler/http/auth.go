package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	kaviarhttp "github.com/usbtecnok/kaviar-admin-os/internal/pkg/http"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/logger"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/middleware"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/session"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/view"
	"github.com/usbtecnok/kaviar-admin-os/services/auth"
)

// DashboardPath is where a successful login lands
const DashboardPath = "/dashboard"

// LoginPage is the data of the login screen
type LoginPage struct {
	Email string
	Error string
}

// AuthHandler handles login, logout and the overview page
type AuthHandler struct {
	authUC auth.AuthUC
	store  session.Store
	cfg    models.SessionConfig
}

// NewAuthHandler creates a new auth HTTP handler
func NewAuthHandler(authUC auth.AuthUC, store session.Store, cfg models.SessionConfig) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		store:  store,
		cfg:    cfg,
	}
}

// ShowLogin renders the login form, or skips it when the browser already holds a token
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	sess, err := middleware.ResolveSession(c, h.store, h.cfg.CookieName)
	if err == nil && sess.Authenticated() {
		return c.Redirect(http.StatusSeeOther, DashboardPath)
	}
	return h.renderLogin(c, http.StatusOK, LoginPage{})
}

// Login posts the credentials; success sets the session cookie and opens the dashboard
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return h.renderLogin(c, http.StatusBadRequest, LoginPage{Error: "Formulário inválido."})
	}

	prevSID := ""
	if cookie, err := c.Cookie(h.cfg.CookieName); err == nil {
		prevSID = cookie.Value
	}

	sess, err := h.authUC.Login(c.Request().Context(), prevSID, req)
	if err != nil {
		return h.renderLogin(c, loginStatus(err), LoginPage{Email: req.Email, Error: loginMessage(err)})
	}

	ttl := time.Duration(h.cfg.TTL) * time.Hour
	c.SetCookie(session.Cookie(h.cfg.CookieName, sess.ID, ttl, h.cfg.SecureCookie))
	return c.Redirect(http.StatusSeeOther, DashboardPath)
}

// Logout clears the held token and drops the cookie
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cfg.CookieName); err == nil {
		if err := h.authUC.Logout(c.Request().Context(), cookie.Value); err != nil {
			logger.Warn("Failed to clear admin session", logger.Err(err))
		}
	}

	c.SetCookie(session.ExpiredCookie(h.cfg.CookieName, h.cfg.SecureCookie))
	return middleware.RedirectToLogin(c)
}

// Root sends the browser to the dashboard; the guard takes over from there
func (h *AuthHandler) Root(c echo.Context) error {
	return c.Redirect(http.StatusFound, DashboardPath)
}

// Dashboard renders the overview of what the session holds
func (h *AuthHandler) Dashboard(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	overview, err := h.authUC.Overview(c.Request().Context(), sess)
	if err != nil {
		logger.Warn("Failed to build overview", logger.Err(err))
		overview = &models.Overview{Admin: sess.Admin}
	}

	p := view.AdminPage(sess, "Visão Geral", view.NavDashboard, overview)
	return c.Render(http.StatusOK, view.PageDashboard, p)
}

func (h *AuthHandler) renderLogin(c echo.Context, code int, page LoginPage) error {
	return c.Render(code, view.PageLogin, view.AdminPage(nil, "Login", "", page))
}

func loginStatus(err error) int {
	var vErr *models.ValidationError
	var apiErr *kaviarhttp.APIError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest
	case errors.As(err, &apiErr):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrEmptyToken):
		return http.StatusUnauthorized
	default:
		return http.StatusBadGateway
	}
}
