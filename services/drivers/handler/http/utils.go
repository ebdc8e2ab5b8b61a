package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

func driverID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "ID de motorista inválido.")
	}
	return id, nil
}
