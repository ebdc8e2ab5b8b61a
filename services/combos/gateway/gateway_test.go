package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	kaviarhttp "github.com/usbtecnok/kaviar-admin-os/internal/pkg/http"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
	natspkg "github.com/usbtecnok/kaviar-admin-os/internal/pkg/nats"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/session"
)

type recordingPublisher struct {
	subject string
	data    []byte
}

func (p *recordingPublisher) Publish(subject string, data []byte) error {
	p.subject = subject
	p.data = data
	return nil
}

func authed() *session.Session {
	return &session.Session{ID: "sid", Token: "tok", State: session.StateAuthenticated}
}

func newGateway(t *testing.T, handler http.HandlerFunc, pub natspkg.Publisher) *ComboGW {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := kaviarhttp.NewClient(kaviarhttp.Config{BaseURL: server.URL + "/api/v1"})
	return NewComboGW(client, natspkg.NewAuditPublisher(pub)).(*ComboGW)
}

func TestComboGW_CreateCombo(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/combos/", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var body models.ComboPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Rio Histórico", body.Name)
		assert.Equal(t, 12.5, body.FixedPrice)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":42,"nome":"Rio Histórico","preco_fixo":12.5,"distancia_total_km":8.2}`))
	}, nil)

	created, err := gw.CreateCombo(context.Background(), authed(), models.ComboPayload{Name: "Rio Histórico", FixedPrice: 12.5})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, 8.2, created.TotalDistanceKm)
}

func TestComboGW_ListCombos_ServerDetail(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{}`))
	}, nil)

	items, err := gw.ListCombos(context.Background(), authed())

	assert.Nil(t, items)
	var apiErr *kaviarhttp.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Erro ao listar combos no servidor.", kaviarhttp.UserMessage(err))
}

func TestComboGW_UpdateAndDeletePaths(t *testing.T) {
	var seen []string
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":5,"nome":"Novo"}`))
	}, nil)
	ctx := context.Background()

	updated, err := gw.UpdateCombo(ctx, authed(), 5, models.ComboPayload{Name: "Novo"})
	require.NoError(t, err)
	assert.Equal(t, "Novo", updated.Name)

	require.NoError(t, gw.DeleteCombo(ctx, authed(), 5))
	assert.Equal(t, []string{"PUT /api/v1/combos/5", "DELETE /api/v1/combos/5"}, seen)
}

func TestComboGW_NoTokenSkipsRequest(t *testing.T) {
	called := false
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	}, nil)

	err := gw.DeleteCombo(context.Background(), &session.Session{ID: "sid"}, 1)

	assert.ErrorIs(t, err, kaviarhttp.ErrTokenMissing)
	assert.False(t, called)
}

func TestComboGW_PublishComboEvent(t *testing.T) {
	pub := &recordingPublisher{}
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {}, pub)

	err := gw.PublishComboEvent(context.Background(), "kaviar.admin.combo.created", models.AuditEvent{
		Resource:   "combo",
		Action:     models.AuditCreated,
		ResourceID: 42,
	})

	require.NoError(t, err)
	assert.Equal(t, "kaviar.admin.combo.created", pub.subject)
	var event models.AuditEvent
	require.NoError(t, json.Unmarshal(pub.data, &event))
	assert.Equal(t, int64(42), event.ResourceID)
}

func TestComboGW_PublishWithoutNATS(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {}, nil)

	assert.NoError(t, gw.PublishComboEvent(context.Background(), "kaviar.admin.combo.deleted", models.AuditEvent{}))
}
