package view

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/logger"
	"github.com/usbtecnok/kaviar-admin-os/internal/utils"
)

// ErrorData is rendered by the error page
type ErrorData struct {
	Code    int
	Message string
}

// HTTPErrorHandler answers JSON on /api and health routes and the error page everywhere else
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Erro interno no painel Kaviar. Tente novamente."
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(code)
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Request failed",
			logger.String("path", c.Request().URL.Path),
			logger.Int("status", code),
			logger.Err(err))
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	if wantsJSON(c) {
		_ = utils.ErrorResponseHandler(c, code, message)
		return
	}

	renderErr := c.Render(code, PageError, Page{
		Title: "Erro",
		Data:  ErrorData{Code: code, Message: message},
	})
	if renderErr != nil {
		_ = c.String(code, message)
	}
}

func wantsJSON(c echo.Context) bool {
	path := c.Request().URL.Path
	if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/health") {
		return true
	}
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}
