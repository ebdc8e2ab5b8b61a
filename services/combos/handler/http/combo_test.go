package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/constants"
	kaviarhttp "github.com/usbtecnok/kaviar-admin-os/internal/pkg/http"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/middleware"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/resource"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/session"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/view"
	"github.com/usbtecnok/kaviar-admin-os/services/combos"
	"github.com/usbtecnok/kaviar-admin-os/services/combos/mocks"
)

func authed() *session.Session {
	return &session.Session{ID: "sid", Token: "tok", Admin: "admin@kaviar.com", State: session.StateAuthenticated}
}

func heldOf(items ...models.Combo) *resource.Collection[models.Combo] {
	held := resource.NewCollection[models.Combo]()
	held.Replace(items)
	return held
}

func newHandler(t *testing.T) (*ComboHandler, *mocks.MockComboUC) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockComboUC(ctrl)
	return NewComboHandler(mockUC), mockUC
}

func newContext(t *testing.T, method, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	renderer, err := view.NewRenderer()
	require.NoError(t, err)
	e.Renderer = renderer

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.SessionContextKey, authed())
	return c, rec
}

func validValues(action string) url.Values {
	return url.Values{
		"action":                    {action},
		"nome":                      {"Rio Histórico"},
		"preco_fixo":                {"12.5"},
		"pontos.0.nome_ponto":       {"Cristo"},
		"pontos.0.endereco":         {"Alto da Boa Vista"},
		"pontos.0.latitude":         {"-22.95"},
		"pontos.0.longitude":        {"-43.21"},
		"pontos.0.ordem_sequencial": {"1"},
	}
}

func TestNewComboHandler(t *testing.T) {
	handler, mockUC := newHandler(t)

	assert.NotNil(t, handler)
	assert.Equal(t, mockUC, handler.comboUC)
}

func TestComboHandler_ListCombos(t *testing.T) {
	handler, mockUC := newHandler(t)
	c, rec := newContext(t, http.MethodGet, "/combos", nil)

	mockUC.EXPECT().MountCombos(gomock.Any(), gomock.Any()).
		Return(heldOf(models.Combo{ID: 7, Name: "Rio", FixedPrice: 150}), nil)

	require.NoError(t, handler.ListCombos(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Combos Existentes (1)")
	assert.Contains(t, body, "R$ 150.00")
	assert.Contains(t, body, "Criar Novo Combo")
}

func TestComboHandler_ListCombos_Failure(t *testing.T) {
	handler, mockUC := newHandler(t)
	c, rec := newContext(t, http.MethodGet, "/combos", nil)

	failed := resource.NewCollection[models.Combo]()
	failed.Fail(kaviarhttp.MsgUnreachable)
	mockUC.EXPECT().MountCombos(gomock.Any(), gomock.Any()).
		Return(failed, &kaviarhttp.UnreachableError{Op: "GET", Err: errors.New("refused")})

	require.NoError(t, handler.ListCombos(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Erro ao carregar: "+kaviarhttp.MsgUnreachable)
}

func TestComboHandler_ListCombos_TokenMissing(t *testing.T) {
	handler, mockUC := newHandler(t)
	c, rec := newContext(t, http.MethodGet, "/combos", nil)

	mockUC.EXPECT().MountCombos(gomock.Any(), gomock.Any()).Return(nil, kaviarhttp.ErrTokenMissing)

	require.NoError(t, handler.ListCombos(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestComboHandler_CreateCombo_AddWaypoint(t *testing.T) {
	handler, mockUC := newHandler(t)
	c, rec := newContext(t, http.MethodPost, "/combos", validValues(combos.ActionAddWaypoint))

	mockUC.EXPECT().CreateCombo(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	mockUC.EXPECT().HeldCombos(gomock.Any(), gomock.Any()).Return(heldOf(), nil)

	require.NoError(t, handler.CreateCombo(c))

	body := rec.Body.String()
	assert.Contains(t, body, "Pontos Turísticos (2 Pontos)")
	assert.Contains(t, body, `name="pontos.0.nome_ponto" value="Cristo"`)
	assert.Contains(t, body, `name="pontos.1.ordem_sequencial" value="2"`)
}

func TestComboHandler_CreateCombo_RemoveLastWaypoint(t *testing.T) {
	handler, mockUC := newHandler(t)
	c, rec := newContext(t, http.MethodPost, "/combos", validValues(combos.ActionRemoveWaypoint+"0"))

	mockUC.EXPECT().HeldCombos(gomock.Any(), gomock.Any()).Return(heldOf(), nil)

	require.NoError(t, handler.CreateCombo(c))

	body := rec.Body.String()
	assert.Contains(t, body, constants.MsgLastWaypoint)
	assert.Contains(t, body, "Pontos Turísticos (1 Pontos)")
}

func TestComboHandler_CreateCombo_Success(t *testing.T) {
	handler, mockUC := newHandler(t)
	c, rec := newContext(t, http.MethodPost, "/combos", validValues(combos.ActionSubmit))

	mockUC.EXPECT().CreateCombo(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, _ *session.Session, form *combos.ComboForm) (*models.Combo, error) {
			assert.Equal(t, "Rio Histórico", form.Name)
			return &models.Combo{ID: 42, Name: "Rio Histórico"}, nil
		})
	mockUC.EXPECT().HeldCombos(gomock.Any(), gomock.Any()).
		Return(heldOf(models.Combo{ID: 42, Name: "Rio Histórico"}), nil)

	require.NoError(t, handler.CreateCombo(c))

	body := rec.Body.String()
	assert.Contains(t, body, "Combo Turístico &#34;Rio Histórico&#34; criado com sucesso! ID: 42. A IA otimizou a rota.")
	assert.Contains(t, body, "Combos Existentes (1)")
	// draft reset
	assert.Contains(t, body, `name="preco_fixo" value="0.00"`)
}

func TestComboHandler_CreateCombo_ServerDetail(t *testing.T) {
	handler, mockUC := newHandler(t)
	c, rec := newContext(t, http.MethodPost, "/combos", validValues(combos.ActionSubmit))

	mockUC.EXPECT().CreateCombo(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, kaviarhttp.NormalizeError(http.StatusBadRequest, []byte(`{"detail":"Invalid CPF"}`), constants.MsgComboCreateFailed))
	mockUC.EXPECT().HeldCombos(gomock.Any(), gomock.Any()).Return(heldOf(), nil)

	require.NoError(t, handler.CreateCombo(c))

	body := rec.Body.String()
	assert.Contains(t, body, `<div class="alert alert-error">Invalid CPF</div>`)
	// the draft is kept
	assert.Contains(t, body, `name="nome" value="Rio Histórico"`)
}

func TestComboHandler_CreateCombo_TokenMissing(t *testing.T) {
	handler, mockUC := newHandler(t)
	c, rec := newContext(t, http.MethodPost, "/combos", validValues(combos.ActionSubmit))

	mockUC.EXPECT().CreateCombo(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, kaviarhttp.ErrTokenMissing)

	require.NoError(t, handler.CreateCombo(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestComboHandler_EditCombo(t *testing.T) {
	handler, mockUC := newHandler(t)
	c, rec := newContext(t, http.MethodGet, "/combos/5/edit", nil)
	c.SetParamNames("id")
	c.SetParamValues("5")

	mockUC.EXPECT().FindHeldCombo(gomock.Any(), gomock.Any(), int64(5)).
		Return(&models.Combo{ID: 5, Name: "Rio", FixedPrice: 80}, nil)
	mockUC.EXPECT().HeldCombos(gomock.Any(), gomock.Any()).Return(heldOf(models.Combo{ID: 5}), nil)

	require.NoError(t, handler.EditCombo(c))

	body := rec.Body.String()
	assert.Contains(t, body, "Editando Combo ID: 5")
	assert.Contains(t, body, `value="80.00"`)
}

func TestComboHandler_EditCombo_NotHeld(t *testing.T) {
	handler, mockUC := newHandler(t)
	c, _ := newContext(t, http.MethodGet, "/combos/9/edit", nil)
	c.SetParamNames("id")
	c.SetParamValues("9")

	mockUC.EXPECT().FindHeldCombo(gomock.Any(), gomock.Any(), int64(9)).Return(nil, combos.ErrComboNotFound)

	err := handler.EditCombo(c)

	var he *echo.HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestComboHandler_EditCombo_BadID(t *testing.T) {
	handler, _ := newHandler(t)
	c, _ := newContext(t, http.MethodGet, "/combos/abc/edit", nil)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := handler.EditCombo(c)

	var he *echo.HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestComboHandler_UpdateCombo_Success(t *testing.T) {
	handler, mockUC := newHandler(t)
	c, rec := newContext(t, http.MethodPost, "/combos/5", validValues(combos.ActionSubmit))
	c.SetParamNames("id")
	c.SetParamValues("5")

	mockUC.EXPECT().UpdateCombo(gomock.Any(), gomock.Any(), int64(5), gomock.Any()).
		Return(&models.Combo{ID: 5, Name: "Novo"}, nil)
	mockUC.EXPECT().HeldCombos(gomock.Any(), gomock.Any()).Return(heldOf(models.Combo{ID: 5, Name: "Novo"}), nil)

	require.NoError(t, handler.UpdateCombo(c))

	body := rec.Body.String()
	assert.Contains(t, body, "Combo &#34;Novo&#34; atualizado com sucesso!")
	assert.NotContains(t, body, "Editando Combo")
}

func TestComboHandler_UpdateCombo_FailureKeepsOverlay(t *testing.T) {
	handler, mockUC := newHandler(t)
	c, rec := newContext(t, http.MethodPost, "/combos/5", validValues(combos.ActionSubmit))
	c.SetParamNames("id")
	c.SetParamValues("5")

	mockUC.EXPECT().UpdateCombo(gomock.Any(), gomock.Any(), int64(5), gomock.Any()).
		Return(nil, &kaviarhttp.UnreachableError{Op: "PUT", Err: errors.New("timeout")})
	mockUC.EXPECT().HeldCombos(gomock.Any(), gomock.Any()).Return(heldOf(models.Combo{ID: 5}), nil)

	require.NoError(t, handler.UpdateCombo(c))

	body := rec.Body.String()
	assert.Contains(t, body, "Editando Combo ID: 5")
	assert.Contains(t, body, kaviarhttp.MsgUnreachable)
}

func TestComboHandler_DeleteCombo(t *testing.T) {
	handler, mockUC := newHandler(t)
	c, rec := newContext(t, http.MethodPost, "/combos/7/delete", url.Values{})
	c.SetParamNames("id")
	c.SetParamValues("7")

	gomock.InOrder(
		mockUC.EXPECT().FindHeldCombo(gomock.Any(), gomock.Any(), int64(7)).Return(&models.Combo{ID: 7, Name: "Rio"}, nil),
		mockUC.EXPECT().DeleteCombo(gomock.Any(), gomock.Any(), int64(7)).Return(nil),
		mockUC.EXPECT().HeldCombos(gomock.Any(), gomock.Any()).Return(heldOf(), nil),
	)

	require.NoError(t, handler.DeleteCombo(c))

	body := rec.Body.String()
	assert.Contains(t, body, "Combo Rio deletado com sucesso!")
	assert.Contains(t, body, constants.MsgComboEmpty)
}

func TestComboHandler_DeleteCombo_Failure(t *testing.T) {
	handler, mockUC := newHandler(t)
	c, rec := newContext(t, http.MethodPost, "/combos/7/delete", url.Values{})
	c.SetParamNames("id")
	c.SetParamValues("7")

	mockUC.EXPECT().FindHeldCombo(gomock.Any(), gomock.Any(), int64(7)).Return(nil, combos.ErrComboNotFound)
	mockUC.EXPECT().DeleteCombo(gomock.Any(), gomock.Any(), int64(7)).
		Return(kaviarhttp.NormalizeError(http.StatusForbidden, []byte(`{"detail":"Sem permissão"}`), constants.MsgComboDeleteFailed))
	mockUC.EXPECT().HeldCombos(gomock.Any(), gomock.Any()).Return(heldOf(models.Combo{ID: 7, Name: "Rio"}), nil)

	require.NoError(t, handler.DeleteCombo(c))

	body := rec.Body.String()
	assert.Contains(t, body, "Erro ao deletar combo: Sem permissão")
	assert.Contains(t, body, "Combos Existentes (1)")
}

func TestComboHandler_ListCombosJSON(t *testing.T) {
	handler, mockUC := newHandler(t)
	c, rec := newContext(t, http.MethodGet, "/api/combos", nil)

	mockUC.EXPECT().MountCombos(gomock.Any(), gomock.Any()).Return(heldOf(models.Combo{ID: 1, Name: "Rio"}), nil)

	require.NoError(t, handler.ListCombosJSON(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"nome":"Rio"`)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestComboHandler_ListCombosJSON_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"token missing", kaviarhttp.ErrTokenMissing, http.StatusUnauthorized},
		{"unreachable", &kaviarhttp.UnreachableError{Op: "GET", Err: errors.New("refused")}, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockUC := newHandler(t)
			c, rec := newContext(t, http.MethodGet, "/api/combos", nil)

			mockUC.EXPECT().MountCombos(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			require.NoError(t, handler.ListCombosJSON(c))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), kaviarhttp.UserMessage(tt.err))
		})
	}
}
