package gateway

import (
	"context"

	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/logger"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/session"
)

// CreateCombo posts a new combo; the API answers with the optimized record
func (g *ComboGW) CreateCombo(ctx context.Context, sess *session.Session, payload models.ComboPayload) (*models.Combo, error) {
	created, err := g.api.Create(ctx, sess, payload)
	if err != nil {
		logger.Warn("Failed to create combo",
			logger.String("name", payload.Name),
			logger.Err(err))
		return nil, err
	}
	return &created, nil
}

// ListCombos fetches every combo
func (g *ComboGW) ListCombos(ctx context.Context, sess *session.Session) ([]models.Combo, error) {
	items, err := g.api.List(ctx, sess)
	if err != nil {
		logger.Warn("Failed to list combos", logger.Err(err))
		return nil, err
	}
	return items, nil
}

// UpdateCombo replaces combo id
func (g *ComboGW) UpdateCombo(ctx context.Context, sess *session.Session, id int64, payload models.ComboPayload) (*models.Combo, error) {
	updated, err := g.api.Update(ctx, sess, id, payload)
	if err != nil {
		logger.Warn("Failed to update combo",
			logger.Int64("combo_id", id),
			logger.Err(err))
		return nil, err
	}
	return &updated, nil
}

// DeleteCombo removes combo id
func (g *ComboGW) DeleteCombo(ctx context.Context, sess *session.Session, id int64) error {
	if err := g.api.Delete(ctx, sess, id); err != nil {
		logger.Warn("Failed to delete combo",
			logger.Int64("combo_id", id),
			logger.Err(err))
		return err
	}
	return nil
}
