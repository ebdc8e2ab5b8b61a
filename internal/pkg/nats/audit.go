package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	appctx "github.com/usbtecnok/kaviar-admin-os/internal/pkg/context"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/logger"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
)

// Publisher is the subset of the NATS client used for audit events
type Publisher interface {
	Publish(subject string, data []byte) error
}

// AuditPublisher emits admin mutations as JSON events.
// A nil Publisher turns every call into a no-op so NATS stays optional.
type AuditPublisher struct {
	pub Publisher
	now func() time.Time
}

// NewAuditPublisher creates an audit publisher over pub (which may be nil)
func NewAuditPublisher(pub Publisher) *AuditPublisher {
	return &AuditPublisher{pub: pub, now: time.Now}
}

// Enabled reports whether events actually leave the process
func (a *AuditPublisher) Enabled() bool {
	return a != nil && a.pub != nil
}

// PublishAudit stamps the event with request metadata and publishes it
func (a *AuditPublisher) PublishAudit(ctx context.Context, subject string, event models.AuditEvent) error {
	if !a.Enabled() {
		return nil
	}

	if event.RequestID == "" {
		event.RequestID = appctx.GetRequestID(ctx)
	}
	if event.Actor == "" {
		event.Actor = appctx.GetAdmin(ctx)
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = a.now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal audit event: %w", err)
	}

	if err := a.pub.Publish(subject, data); err != nil {
		logger.Warn("Failed to publish audit event",
			logger.String("subject", subject),
			logger.String("request_id", event.RequestID),
			logger.Err(err))
		return err
	}

	logger.Debug("Published audit event",
		logger.String("subject", subject),
		logger.Int64("resource_id", event.ResourceID))
	return nil
}
