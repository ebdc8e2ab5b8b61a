package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	kaviarhttp "github.com/usbtecnok/kaviar-admin-os/internal/pkg/http"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/logger"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/middleware"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/resource"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/view"
	"github.com/usbtecnok/kaviar-admin-os/internal/utils"
	"github.com/usbtecnok/kaviar-admin-os/services/combos"
)

// CombosPage is the data of the combos screen
type CombosPage struct {
	Form      *combos.ComboForm
	FormError string
	Held      *resource.Collection[models.Combo]
	Edit      *EditOverlay
}

// EditOverlay is the edit dialog; it is only present while a combo is under edit
type EditOverlay struct {
	ID    int64
	Form  *combos.ComboForm
	Error string
}

// ComboHandler handles the combo pages
type ComboHandler struct {
	comboUC combos.ComboUC
}

// NewComboHandler creates a new combo HTTP handler
func NewComboHandler(comboUC combos.ComboUC) *ComboHandler {
	return &ComboHandler{
		comboUC: comboUC,
	}
}

// ListCombos mounts the combos screen: fetches the list and shows an empty create form
func (h *ComboHandler) ListCombos(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	held, err := h.comboUC.MountCombos(c.Request().Context(), sess)
	if errors.Is(err, kaviarhttp.ErrTokenMissing) {
		return middleware.RedirectToLogin(c)
	}

	return h.render(c, CombosPage{Form: combos.NewComboForm(), Held: held}, nil)
}

// CreateCombo handles the create form: waypoint add/remove actions re-render the
// draft, submission creates the combo
func (h *ComboHandler) CreateCombo(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	ctx := c.Request().Context()

	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Formulário inválido.")
	}
	form := combos.ParseComboForm(values)
	page := CombosPage{Form: form}

	submit, err := form.Apply(c.FormValue("action"))
	if err != nil || !submit {
		page.FormError = formError(err)
		return h.renderHeld(c, page, nil)
	}

	created, err := h.comboUC.CreateCombo(ctx, sess, form)
	if errors.Is(err, kaviarhttp.ErrTokenMissing) {
		return middleware.RedirectToLogin(c)
	}
	if err != nil {
		page.FormError = kaviarhttp.UserMessage(err)
		return h.renderHeld(c, page, nil)
	}

	page.Form = combos.NewComboForm()
	msg := fmt.Sprintf("Combo Turístico \"%s\" criado com sucesso! ID: %d. A IA otimizou a rota.", created.Name, created.ID)
	return h.renderHeld(c, page, models.SuccessFlash(msg))
}

// EditCombo opens the edit overlay for a held combo
func (h *ComboHandler) EditCombo(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	id, err := comboID(c)
	if err != nil {
		return err
	}

	combo, err := h.comboUC.FindHeldCombo(c.Request().Context(), sess, id)
	if errors.Is(err, combos.ErrComboNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Combo não encontrado. Recarregue a lista de combos.")
	}
	if err != nil {
		return err
	}

	page := CombosPage{
		Form: combos.NewComboForm(),
		Edit: &EditOverlay{ID: id, Form: combos.ComboFormFromCombo(*combo)},
	}
	return h.renderHeld(c, page, nil)
}

// UpdateCombo submits the edit overlay. On failure the overlay stays open with the error.
func (h *ComboHandler) UpdateCombo(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	ctx := c.Request().Context()

	id, err := comboID(c)
	if err != nil {
		return err
	}

	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Formulário inválido.")
	}
	form := combos.ParseComboForm(values)
	edit := &EditOverlay{ID: id, Form: form}
	page := CombosPage{Form: combos.NewComboForm(), Edit: edit}

	submit, err := form.Apply(c.FormValue("action"))
	if err != nil || !submit {
		edit.Error = formError(err)
		return h.renderHeld(c, page, nil)
	}

	updated, err := h.comboUC.UpdateCombo(ctx, sess, id, form)
	if errors.Is(err, kaviarhttp.ErrTokenMissing) {
		return middleware.RedirectToLogin(c)
	}
	if err != nil {
		edit.Error = kaviarhttp.UserMessage(err)
		return h.renderHeld(c, page, nil)
	}

	page.Edit = nil
	msg := fmt.Sprintf("Combo \"%s\" atualizado com sucesso!", updated.Name)
	return h.renderHeld(c, page, models.SuccessFlash(msg))
}

// DeleteCombo deletes a combo after the browser confirmation
func (h *ComboHandler) DeleteCombo(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	ctx := c.Request().Context()

	id, err := comboID(c)
	if err != nil {
		return err
	}

	name := strconv.FormatInt(id, 10)
	if combo, findErr := h.comboUC.FindHeldCombo(ctx, sess, id); findErr == nil {
		name = combo.Name
	}

	page := CombosPage{Form: combos.NewComboForm()}
	err = h.comboUC.DeleteCombo(ctx, sess, id)
	if errors.Is(err, kaviarhttp.ErrTokenMissing) {
		return middleware.RedirectToLogin(c)
	}
	if err != nil {
		return h.renderHeld(c, page, models.ErrorFlash("Erro ao deletar combo: "+kaviarhttp.UserMessage(err)))
	}

	return h.renderHeld(c, page, models.SuccessFlash(fmt.Sprintf("Combo %s deletado com sucesso!", name)))
}

// ListCombosJSON returns a fresh list of combos as JSON
func (h *ComboHandler) ListCombosJSON(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	held, err := h.comboUC.MountCombos(c.Request().Context(), sess)
	if errors.Is(err, kaviarhttp.ErrTokenMissing) {
		return utils.UnauthorizedResponse(c, kaviarhttp.MsgTokenMissing)
	}
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, kaviarhttp.UserMessage(err))
	}

	return utils.SuccessResponse(c, http.StatusOK, "", held.Items)
}

// renderHeld renders the page over the session's held collection, without fetching
func (h *ComboHandler) renderHeld(c echo.Context, page CombosPage, flash *models.Flash) error {
	held, err := h.comboUC.HeldCombos(c.Request().Context(), middleware.SessionFrom(c))
	if err != nil {
		logger.Warn("Failed to load held combos", logger.Err(err))
		held = resource.NewCollection[models.Combo]()
		held.Fail(kaviarhttp.UserMessage(err))
	}
	page.Held = held
	return h.render(c, page, flash)
}

func (h *ComboHandler) render(c echo.Context, page CombosPage, flash *models.Flash) error {
	p := view.AdminPage(middleware.SessionFrom(c), "Gestão de Combos", view.NavCombos, page)
	return c.Render(http.StatusOK, view.PageCombos, p.WithFlash(flash))
}
