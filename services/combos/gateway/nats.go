package gateway

import (
	"context"

	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
)

// PublishComboEvent publishes a combo mutation to the audit stream
func (g *ComboGW) PublishComboEvent(ctx context.Context, subject string, event models.AuditEvent) error {
	return g.audit.PublishAudit(ctx, subject, event)
}
