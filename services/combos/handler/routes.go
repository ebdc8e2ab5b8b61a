package handler

import (
	"github.com/labstack/echo/v4"
	nrpkg "github.com/usbtecnok/kaviar-admin-os/internal/pkg/newrelic"
	"github.com/usbtecnok/kaviar-admin-os/services/combos"
	httpHandler "github.com/usbtecnok/kaviar-admin-os/services/combos/handler/http"
)

// Handler combines all handlers for the combos screens
type Handler struct {
	comboHTTP *httpHandler.ComboHandler
}

// NewHandler creates a new combined handler
func NewHandler(comboUC combos.ComboUC) *Handler {
	return &Handler{
		comboHTTP: httpHandler.NewComboHandler(comboUC),
	}
}

// RegisterRoutes registers the combo pages on the guarded group and the JSON
// listing on the api group
func (h *Handler) RegisterRoutes(pages *echo.Group, api *echo.Group) {
	pages.GET("/combos", nrpkg.TraceHandler("combos.list", h.comboHTTP.ListCombos))
	pages.POST("/combos", nrpkg.TraceHandler("combos.create", h.comboHTTP.CreateCombo))
	pages.GET("/combos/:id/edit", nrpkg.TraceHandler("combos.edit", h.comboHTTP.EditCombo))
	pages.POST("/combos/:id", nrpkg.TraceHandler("combos.update", h.comboHTTP.UpdateCombo))
	pages.POST("/combos/:id/delete", nrpkg.TraceHandler("combos.delete", h.comboHTTP.DeleteCombo))

	api.GET("/combos", nrpkg.TraceHandler("api.combos.list", h.comboHTTP.ListCombosJSON))
}
