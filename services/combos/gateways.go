package combos

import (
	"context"

	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/session"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/usbtecnok/kaviar-admin-os/services/combos ComboGW

// ComboGW defines the combo gateways interface
type ComboGW interface {
	// Kaviar API
	CreateCombo(ctx context.Context, sess *session.Session, payload models.ComboPayload) (*models.Combo, error)
	ListCombos(ctx context.Context, sess *session.Session) ([]models.Combo, error)
	UpdateCombo(ctx context.Context, sess *session.Session, id int64, payload models.ComboPayload) (*models.Combo, error)
	DeleteCombo(ctx context.Context, sess *session.Session, id int64) error

	// NATS
	PublishComboEvent(ctx context.Context, subject string, event models.AuditEvent) error
}
