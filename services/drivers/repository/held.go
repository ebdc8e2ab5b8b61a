package repository

import (
	"context"
	"fmt"

	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/constants"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/resource"
)

// LoadHeld returns the drivers held by session sid
func (r *DriverRepo) LoadHeld(ctx context.Context, sid string) (*resource.Collection[models.Driver], error) {
	held, err := resource.LoadCollection[models.Driver](ctx, r.store, sid, constants.ViewDrivers)
	if err != nil {
		return nil, fmt.Errorf("failed to load held drivers: %w", err)
	}
	return held, nil
}

// SaveHeld stores the drivers held by session sid
func (r *DriverRepo) SaveHeld(ctx context.Context, sid string, held *resource.Collection[models.Driver]) error {
	if err := resource.SaveCollection(ctx, r.store, sid, constants.ViewDrivers, held); err != nil {
		return fmt.Errorf("failed to save held drivers: %w", err)
	}
	return nil
}
