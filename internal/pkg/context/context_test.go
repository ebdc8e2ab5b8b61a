package context

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestConstants(t *testing.T) {
	assert.Equal(t, "request_id", string(RequestIDKey))
	assert.Equal(t, "admin", string(AdminKey))
}

func TestWithRequestID(t *testing.T) {
	tests := []struct {
		name      string
		requestID string
		generated bool
	}{
		{name: "Valid request ID", requestID: "req-123"},
		{name: "Empty request ID generates one", requestID: "", generated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := WithRequestID(context.Background(), tt.requestID)
			got := GetRequestID(ctx)

			if tt.generated {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.requestID, got)
		})
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	assert.Empty(t, GetRequestID(context.Background()))
}

func TestWithAdmin(t *testing.T) {
	ctx := WithAdmin(context.Background(), "admin@kaviar.com")
	assert.Equal(t, "admin@kaviar.com", GetAdmin(ctx))
	assert.Empty(t, GetAdmin(context.Background()))
}
