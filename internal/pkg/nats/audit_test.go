package nats

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/constants"
	appctx "github.com/usbtecnok/kaviar-admin-os/internal/pkg/context"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
)

type recordingPublisher struct {
	subject string
	data    []byte
	err     error
}

func (r *recordingPublisher) Publish(subject string, data []byte) error {
	r.subject = subject
	r.data = data
	return r.err
}

func TestAuditPublisher_PublishAudit(t *testing.T) {
	rec := &recordingPublisher{}
	pub := NewAuditPublisher(rec)
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	pub.now = func() time.Time { return fixed }

	ctx := appctx.WithRequestID(context.Background(), "req-1")
	ctx = appctx.WithAdmin(ctx, "admin@kaviar.com.br")

	err := pub.PublishAudit(ctx, constants.SubjectComboCreated, models.AuditEvent{
		Resource:   "combo",
		Action:     models.AuditCreated,
		ResourceID: 12,
		Name:       "Cristo + Pão de Açúcar",
	})
	require.NoError(t, err)
	assert.Equal(t, constants.SubjectComboCreated, rec.subject)

	var got models.AuditEvent
	require.NoError(t, json.Unmarshal(rec.data, &got))
	assert.Equal(t, "req-1", got.RequestID)
	assert.Equal(t, "admin@kaviar.com.br", got.Actor)
	assert.Equal(t, int64(12), got.ResourceID)
	assert.True(t, fixed.Equal(got.OccurredAt))
}

func TestAuditPublisher_Disabled(t *testing.T) {
	pub := NewAuditPublisher(nil)
	assert.False(t, pub.Enabled())
	assert.NoError(t, pub.PublishAudit(context.Background(), constants.SubjectDriverDeleted, models.AuditEvent{}))

	var nilPub *AuditPublisher
	assert.NoError(t, nilPub.PublishAudit(context.Background(), constants.SubjectDriverDeleted, models.AuditEvent{}))
}

func TestAuditPublisher_PublishError(t *testing.T) {
	rec := &recordingPublisher{err: errors.New("connection closed")}
	pub := NewAuditPublisher(rec)

	err := pub.PublishAudit(context.Background(), constants.SubjectDriverApproved, models.AuditEvent{ResourceID: 3})
	assert.EqualError(t, err, "connection closed")
}

func TestNewClient_InvalidAddress(t *testing.T) {
	client, err := NewClient("invalid://address")
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to NATS server")
}
