package combos

import (
	"context"

	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/resource"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/usbtecnok/kaviar-admin-os/services/combos ComboRepo

// ComboRepo keeps the combo collection held by each admin session
type ComboRepo interface {
	LoadHeld(ctx context.Context, sid string) (*resource.Collection[models.Combo], error)
	SaveHeld(ctx context.Context, sid string, held *resource.Collection[models.Combo]) error
}
