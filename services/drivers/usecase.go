package drivers

import (
	"context"

	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/resource"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/session"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/usbtecnok/kaviar-admin-os/services/drivers DriverUC

// DriverUC drives the driver screen: list mount, create form, approval and delete
type DriverUC interface {
	// MountDrivers fetches the list and makes it the session's held collection.
	// On API failure the returned collection is in the failed state alongside the error.
	MountDrivers(ctx context.Context, sess *session.Session) (*resource.Collection[models.Driver], error)
	HeldDrivers(ctx context.Context, sess *session.Session) (*resource.Collection[models.Driver], error)

	CreateDriver(ctx context.Context, sess *session.Session, form *DriverForm) (*models.Driver, error)
	UpdateDriver(ctx context.Context, sess *session.Session, id int64, form *DriverForm) (*models.Driver, error)
	DeleteDriver(ctx context.Context, sess *session.Session, id int64) error

	ApproveDriver(ctx context.Context, sess *session.Session, id int64) (*models.Driver, error)
	RejectDriver(ctx context.Context, sess *session.Session, id int64) (*models.Driver, error)
}
