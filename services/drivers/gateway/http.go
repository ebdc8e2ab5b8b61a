package gateway

import (
	"context"

	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/constants"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/logger"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/session"
)

// CreateDriver posts a new driver
func (g *DriverGW) CreateDriver(ctx context.Context, sess *session.Session, payload models.DriverPayload) (*models.Driver, error) {
	created, err := g.api.Create(ctx, sess, payload)
	if err != nil {
		logger.Warn("Failed to create driver", logger.Err(err))
		return nil, err
	}
	return &created, nil
}

// ListDrivers fetches every driver
func (g *DriverGW) ListDrivers(ctx context.Context, sess *session.Session) ([]models.Driver, error) {
	items, err := g.api.List(ctx, sess)
	if err != nil {
		logger.Warn("Failed to list drivers", logger.Err(err))
		return nil, err
	}
	return items, nil
}

// UpdateDriver replaces driver id
func (g *DriverGW) UpdateDriver(ctx context.Context, sess *session.Session, id int64, payload models.DriverPayload) (*models.Driver, error) {
	updated, err := g.api.Update(ctx, sess, id, payload)
	if err != nil {
		logger.Warn("Failed to update driver",
			logger.Int64("driver_id", id),
			logger.Err(err))
		return nil, err
	}
	return &updated, nil
}

// DeleteDriver removes driver id
func (g *DriverGW) DeleteDriver(ctx context.Context, sess *session.Session, id int64) error {
	if err := g.api.Delete(ctx, sess, id); err != nil {
		logger.Warn("Failed to delete driver",
			logger.Int64("driver_id", id),
			logger.Err(err))
		return err
	}
	return nil
}

// ApproveDriver marks driver id as approved
func (g *DriverGW) ApproveDriver(ctx context.Context, sess *session.Session, id int64) (*models.Driver, error) {
	return g.patch(ctx, sess, id, ActionApprove, constants.MsgDriverApproveFailed)
}

// RejectDriver marks driver id as rejected
func (g *DriverGW) RejectDriver(ctx context.Context, sess *session.Session, id int64) (*models.Driver, error) {
	return g.patch(ctx, sess, id, ActionReject, constants.MsgDriverRejectFailed)
}

func (g *DriverGW) patch(ctx context.Context, sess *session.Session, id int64, action, fallback string) (*models.Driver, error) {
	driver, err := g.api.Patch(ctx, sess, id, action, fallback)
	if err != nil {
		logger.Warn("Failed to change driver approval",
			logger.Int64("driver_id", id),
			logger.String("action", action),
			logger.Err(err))
		return nil, err
	}
	return &driver, nil
}
