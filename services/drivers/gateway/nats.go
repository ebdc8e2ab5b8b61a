package gateway

import (
	"context"

	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
)

// PublishDriverEvent publishes a driver mutation to the audit stream
func (g *DriverGW) PublishDriverEvent(ctx context.Context, subject string, event models.AuditEvent) error {
	return g.audit.PublishAudit(ctx, subject, event)
}
