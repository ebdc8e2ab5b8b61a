package repository

import (
	"context"
	"fmt"

	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/constants"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/resource"
)

// LoadHeld returns the combos held by session sid
func (r *ComboRepo) LoadHeld(ctx context.Context, sid string) (*resource.Collection[models.Combo], error) {
	held, err := resource.LoadCollection[models.Combo](ctx, r.store, sid, constants.ViewCombos)
	if err != nil {
		return nil, fmt.Errorf("failed to load held combos: %w", err)
	}
	return held, nil
}

// SaveHeld stores the combos held by session sid
func (r *ComboRepo) SaveHeld(ctx context.Context, sid string, held *resource.Collection[models.Combo]) error {
	if err := resource.SaveCollection(ctx, r.store, sid, constants.ViewCombos, held); err != nil {
		return fmt.Errorf("failed to save held combos: %w", err)
	}
	return nil
}
