package repository

import (
	"context"
	"fmt"

	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/constants"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/resource"
)

// SaveToken holds token for session sid, replacing any previous value
func (r *AuthRepo) SaveToken(ctx context.Context, sid, token string) error {
	if err := r.store.SetToken(ctx, sid, token); err != nil {
		return fmt.Errorf("failed to save session token: %w", err)
	}
	return nil
}

// ClearSession drops the token and every held collection of sid
func (r *AuthRepo) ClearSession(ctx context.Context, sid string) error {
	if err := r.store.Clear(ctx, sid); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// HeldCombos reads the combos held by sid
func (r *AuthRepo) HeldCombos(ctx context.Context, sid string) (*resource.Collection[models.Combo], error) {
	held, err := resource.LoadCollection[models.Combo](ctx, r.store, sid, constants.ViewCombos)
	if err != nil {
		return nil, fmt.Errorf("failed to load held combos: %w", err)
	}
	return held, nil
}

// HeldDrivers reads the drivers held by sid
func (r *AuthRepo) HeldDrivers(ctx context.Context, sid string) (*resource.Collection[models.Driver], error) {
	held, err := resource.LoadCollection[models.Driver](ctx, r.store, sid, constants.ViewDrivers)
	if err != nil {
		return nil, fmt.Errorf("failed to load held drivers: %w", err)
	}
	return held, nil
}
