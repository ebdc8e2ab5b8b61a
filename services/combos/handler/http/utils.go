package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	kaviarhttp "github.com/usbtecnok/kaviar-admin-os/internal/pkg/http"
)

func comboID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "ID de combo inválido.")
	}
	return id, nil
}

// formError is the inline message of a form action; nil means no message
func formError(err error) string {
	if err == nil {
		return ""
	}
	return kaviarhttp.UserMessage(err)
}
