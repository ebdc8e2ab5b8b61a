package handler

import (
	"github.com/labstack/echo/v4"
	nrpkg "github.com/usbtecnok/kaviar-admin-os/internal/pkg/newrelic"
	"github.com/usbtecnok/kaviar-admin-os/services/drivers"
	httpHandler "github.com/usbtecnok/kaviar-admin-os/services/drivers/handler/http"
)

// Handler combines all handlers for the driver screens
type Handler struct {
	driverHTTP *httpHandler.DriverHandler
}

// NewHandler creates a new combined handler
func NewHandler(driverUC drivers.DriverUC) *Handler {
	return &Handler{
		driverHTTP: httpHandler.NewDriverHandler(driverUC),
	}
}

// RegisterRoutes registers the driver pages and the JSON listing
func (h *Handler) RegisterRoutes(pages *echo.Group, api *echo.Group) {
	pages.GET("/drivers", nrpkg.TraceHandler("drivers.list", h.driverHTTP.ListDrivers))
	pages.POST("/drivers", nrpkg.TraceHandler("drivers.create", h.driverHTTP.CreateDriver))
	pages.POST("/drivers/:id/delete", nrpkg.TraceHandler("drivers.delete", h.driverHTTP.DeleteDriver))
	pages.POST("/drivers/:id/approve", nrpkg.TraceHandler("drivers.approve", h.driverHTTP.ApproveDriver))
	pages.POST("/drivers/:id/reject", nrpkg.TraceHandler("drivers.reject", h.driverHTTP.RejectDriver))

	api.GET("/drivers", nrpkg.TraceHandler("api.drivers.list", h.driverHTTP.ListDriversJSON))
}
