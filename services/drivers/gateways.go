package drivers

import (
	"context"

	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/session"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/usbtecnok/kaviar-admin-os/services/drivers DriverGW

// DriverGW defines the driver gateways interface
type DriverGW interface {
	// Kaviar API
	CreateDriver(ctx context.Context, sess *session.Session, payload models.DriverPayload) (*models.Driver, error)
	ListDrivers(ctx context.Context, sess *session.Session) ([]models.Driver, error)
	UpdateDriver(ctx context.Context, sess *session.Session, id int64, payload models.DriverPayload) (*models.Driver, error)
	DeleteDriver(ctx context.Context, sess *session.Session, id int64) error
	ApproveDriver(ctx context.Context, sess *session.Session, id int64) (*models.Driver, error)
	RejectDriver(ctx context.Context, sess *session.Session, id int64) (*models.Driver, error)

	// NATS
	PublishDriverEvent(ctx context.Context, subject string, event models.AuditEvent) error
}
