package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/constants"
	kaviarhttp "github.com/usbtecnok/kaviar-admin-os/internal/pkg/http"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/logger"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/middleware"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/resource"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/session"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/view"
	"github.com/usbtecnok/kaviar-admin-os/internal/utils"
	"github.com/usbtecnok/kaviar-admin-os/services/drivers"
)

// DriversPage is the data of the drivers screen
type DriversPage struct {
	Form      *drivers.DriverForm
	FormError string
	Held      *resource.Collection[models.Driver]
}

// DriverHandler handles the driver pages
type DriverHandler struct {
	driverUC drivers.DriverUC
}

// NewDriverHandler creates a new driver HTTP handler
func NewDriverHandler(driverUC drivers.DriverUC) *DriverHandler {
	return &DriverHandler{
		driverUC: driverUC,
	}
}

// ListDrivers mounts the drivers screen
func (h *DriverHandler) ListDrivers(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	held, err := h.driverUC.MountDrivers(c.Request().Context(), sess)
	if errors.Is(err, kaviarhttp.ErrTokenMissing) {
		return middleware.RedirectToLogin(c)
	}

	return h.render(c, DriversPage{Form: drivers.NewDriverForm(), Held: held}, nil)
}

// CreateDriver submits the create form. The draft survives a failed submission.
func (h *DriverHandler) CreateDriver(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Formulário inválido.")
	}
	form := drivers.ParseDriverForm(values)
	page := DriversPage{Form: form}

	_, err = h.driverUC.CreateDriver(c.Request().Context(), sess, form)
	if errors.Is(err, kaviarhttp.ErrTokenMissing) {
		return middleware.RedirectToLogin(c)
	}
	if err != nil {
		page.FormError = "Erro ao criar motorista: " + kaviarhttp.UserMessage(err)
		// the password is never echoed back
		form.Password = ""
		return h.renderHeld(c, page, nil)
	}

	page.Form = drivers.NewDriverForm()
	return h.renderHeld(c, page, models.SuccessFlash(constants.MsgDriverCreated))
}

// DeleteDriver deletes a driver after the browser confirmation
func (h *DriverHandler) DeleteDriver(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	ctx := c.Request().Context()

	id, err := driverID(c)
	if err != nil {
		return err
	}

	name := h.heldName(c, id)
	err = h.driverUC.DeleteDriver(ctx, sess, id)
	if errors.Is(err, kaviarhttp.ErrTokenMissing) {
		return middleware.RedirectToLogin(c)
	}
	if err != nil {
		return h.renderHeld(c, h.blankPage(), models.ErrorFlash("Erro ao deletar motorista: "+kaviarhttp.UserMessage(err)))
	}

	return h.renderHeld(c, h.blankPage(), models.SuccessFlash(fmt.Sprintf("Motorista %s deletado com sucesso!", name)))
}

// ApproveDriver moves a driver to the approved state
func (h *DriverHandler) ApproveDriver(c echo.Context) error {
	return h.review(c, h.driverUC.ApproveDriver, "aprovado", "Erro ao aprovar motorista: ")
}

// RejectDriver moves a driver to the rejected state
func (h *DriverHandler) RejectDriver(c echo.Context) error {
	return h.review(c, h.driverUC.RejectDriver, "rejeitado", "Erro ao rejeitar motorista: ")
}

type reviewFunc func(ctx context.Context, sess *session.Session, id int64) (*models.Driver, error)

func (h *DriverHandler) review(c echo.Context, fn reviewFunc, verb, failPrefix string) error {
	sess := middleware.SessionFrom(c)

	id, err := driverID(c)
	if err != nil {
		return err
	}

	driver, err := fn(c.Request().Context(), sess, id)
	if errors.Is(err, kaviarhttp.ErrTokenMissing) {
		return middleware.RedirectToLogin(c)
	}
	if err != nil {
		return h.renderHeld(c, h.blankPage(), models.ErrorFlash(failPrefix+kaviarhttp.UserMessage(err)))
	}

	name := driver.Name
	if name == "" {
		name = strconv.FormatInt(id, 10)
	}
	return h.renderHeld(c, h.blankPage(), models.SuccessFlash(fmt.Sprintf("Motorista %s %s com sucesso!", name, verb)))
}

// ListDriversJSON returns a fresh list of drivers as JSON
func (h *DriverHandler) ListDriversJSON(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	held, err := h.driverUC.MountDrivers(c.Request().Context(), sess)
	if errors.Is(err, kaviarhttp.ErrTokenMissing) {
		return utils.UnauthorizedResponse(c, kaviarhttp.MsgTokenMissing)
	}
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, kaviarhttp.UserMessage(err))
	}

	return utils.SuccessResponse(c, http.StatusOK, "", held.Items)
}

func (h *DriverHandler) heldName(c echo.Context, id int64) string {
	held, err := h.driverUC.HeldDrivers(c.Request().Context(), middleware.SessionFrom(c))
	if err == nil {
		if driver, ok := held.Find(id); ok && driver.Name != "" {
			return driver.Name
		}
	}
	return strconv.FormatInt(id, 10)
}

func (h *DriverHandler) blankPage() DriversPage {
	return DriversPage{Form: drivers.NewDriverForm()}
}

func (h *DriverHandler) renderHeld(c echo.Context, page DriversPage, flash *models.Flash) error {
	held, err := h.driverUC.HeldDrivers(c.Request().Context(), middleware.SessionFrom(c))
	if err != nil {
		logger.Warn("Failed to load held drivers", logger.Err(err))
		held = resource.NewCollection[models.Driver]()
		held.Fail(kaviarhttp.UserMessage(err))
	}
	page.Held = held
	return h.render(c, page, flash)
}

func (h *DriverHandler) render(c echo.Context, page DriversPage, flash *models.Flash) error {
	p := view.AdminPage(middleware.SessionFrom(c), "Motoristas", view.NavDrivers, page)
	return c.Render(http.StatusOK, view.PageDrivers, p.WithFlash(flash))
}
