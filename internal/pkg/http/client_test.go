package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appctx "github.com/usbtecnok/kaviar-admin-os/internal/pkg/context"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{
			name:   "Production base",
			config: Config{BaseURL: "https://kaviar-backend.onrender.com/api/v1"},
		},
		{
			name:   "Localhost with timeout",
			config: Config{BaseURL: "http://localhost:8000", Timeout: 5 * time.Second},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.config)

			assert.NotNil(t, client)
			assert.Equal(t, tt.config.BaseURL, client.BaseURL())
			assert.Equal(t, tt.config.Timeout, client.httpClient.Timeout)
		})
	}
}

func TestClient_Do_SetsHeadersAndDecodes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/combos/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, "req-1", r.Header.Get("X-Request-ID"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		var payload map[string]interface{}
		assert.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, 12.5, payload["preco_fixo"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 9, "nome": "Tour"}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL + "/api/v1"})
	ctx := appctx.WithRequestID(context.Background(), "req-1")

	var out struct {
		ID   int64  `json:"id"`
		Nome string `json:"nome"`
	}
	err := client.Do(ctx, Request{
		Method:   http.MethodPost,
		Endpoint: "/combos/",
		Token:    "tok-123",
		Body:     map[string]interface{}{"preco_fixo": 12.5},
	}, &out)

	require.NoError(t, err)
	assert.Equal(t, int64(9), out.ID)
	assert.Equal(t, "Tour", out.Nome)
}

func TestClient_Do_NoTokenNoAuthorizationHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"access_token":"abc","token_type":"bearer"}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	var out map[string]string
	err := client.Do(context.Background(), Request{Method: http.MethodPost, Endpoint: "/login"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "abc", out["access_token"])
}

func TestClient_Do_EmptySuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	var out map[string]interface{}
	err := client.Do(context.Background(), Request{Method: http.MethodDelete, Endpoint: "/combos/7", Token: "t"}, &out)

	assert.NoError(t, err)
}

func TestClient_Do_ServerRejected(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
		kind     DetailKind
	}{
		{
			name:     "String detail used verbatim",
			status:   http.StatusBadRequest,
			body:     `{"detail": "Invalid CPF"}`,
			expected: "Invalid CPF",
			kind:     DetailSimple,
		},
		{
			name:     "Structured detail serialized",
			status:   http.StatusUnprocessableEntity,
			body:     `{"detail": [{"loc": ["body", "cpf"], "msg": "field required"}]}`,
			expected: "[\n  {\n    \"loc\": [\n      \"body\",\n      \"cpf\"\n    ],\n    \"msg\": \"field required\"\n  }\n]",
			kind:     DetailStructured,
		},
		{
			name:     "Missing detail falls back",
			status:   http.StatusInternalServerError,
			body:     `<html>oops</html>`,
			expected: "Erro ao criar combo no servidor.",
			kind:     DetailAbsent,
		},
		{
			name:     "Numeric detail falls back",
			status:   http.StatusBadRequest,
			body:     `{"detail": 42}`,
			expected: "Erro ao criar combo no servidor.",
			kind:     DetailAbsent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(Config{BaseURL: server.URL})
			err := client.Do(context.Background(), Request{
				Method:   http.MethodPost,
				Endpoint: "/combos/",
				Token:    "t",
				Fallback: "Erro ao criar combo no servidor.",
			}, nil)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.kind, apiErr.Detail.Kind)
			assert.Equal(t, tt.expected, apiErr.Message)
			assert.Equal(t, tt.expected, UserMessage(err))
		})
	}
}

func TestClient_Do_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(Config{BaseURL: url})

	var messages []string
	for i := 0; i < 2; i++ {
		err := client.Do(context.Background(), Request{Method: http.MethodGet, Endpoint: "/combos/", Token: "t"}, nil)

		var netErr *UnreachableError
		require.True(t, errors.As(err, &netErr))
		assert.NotNil(t, netErr.Unwrap())
		messages = append(messages, UserMessage(err))
	}

	assert.Equal(t, []string{MsgUnreachable, MsgUnreachable}, messages)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, MsgTokenMissing, UserMessage(ErrTokenMissing))
	assert.Equal(t, MsgTokenMissing, UserMessage(errors.Join(errors.New("listing"), ErrTokenMissing)))
	assert.Equal(t, "boom", UserMessage(errors.New("boom")))
}

func TestParseDetail_Object(t *testing.T) {
	d := ParseDetail([]byte(`{"detail": {"cpf": "duplicado"}}`))

	assert.Equal(t, DetailStructured, d.Kind)
	assert.Equal(t, "{\n  \"cpf\": \"duplicado\"\n}", d.Message)
	assert.JSONEq(t, `{"cpf": "duplicado"}`, string(d.Fields))
}

func TestClient_Ping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	client := NewClient(Config{BaseURL: server.URL + "/api/v1"})

	assert.NoError(t, client.Ping(context.Background()))

	server.Close()
	err := client.Ping(context.Background())
	var unreachable *UnreachableError
	assert.True(t, errors.As(err, &unreachable))
}
