package drivers

import (
	"context"

	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/resource"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/usbtecnok/kaviar-admin-os/services/drivers DriverRepo

// DriverRepo keeps the driver collection held by each admin session
type DriverRepo interface {
	LoadHeld(ctx context.Context, sid string) (*resource.Collection[models.Driver], error)
	SaveHeld(ctx context.Context, sid string, held *resource.Collection[models.Driver]) error
}
