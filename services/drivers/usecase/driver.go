package usecase

import (
	"context"
	"errors"

	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/constants"
	kaviarhttp "github.com/usbtecnok/kaviar-admin-os/internal/pkg/http"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/logger"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
	nrpkg "github.com/usbtecnok/kaviar-admin-os/internal/pkg/newrelic"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/resource"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/session"
	"github.com/usbtecnok/kaviar-admin-os/services/drivers"
)

const auditResource = "driver"

// MountDrivers fetches every driver and makes the result the session's held collection
func (uc *DriverUC) MountDrivers(ctx context.Context, sess *session.Session) (*resource.Collection[models.Driver], error) {
	var items []models.Driver
	err := nrpkg.WithSegment(ctx, "drivers.list", func() error {
		var listErr error
		items, listErr = uc.driverGW.ListDrivers(ctx, sess)
		return listErr
	})
	if errors.Is(err, kaviarhttp.ErrTokenMissing) {
		return nil, err
	}

	held := resource.NewCollection[models.Driver]()
	if err != nil {
		held.Fail(kaviarhttp.UserMessage(err))
	} else {
		held.Replace(items)
	}

	uc.saveHeld(ctx, sess, held)
	return held, err
}

// HeldDrivers returns the session's held collection without fetching
func (uc *DriverUC) HeldDrivers(ctx context.Context, sess *session.Session) (*resource.Collection[models.Driver], error) {
	return uc.driverRepo.LoadHeld(ctx, sess.ID)
}

// CreateDriver submits the create form and appends the echoed record to the held collection
func (uc *DriverUC) CreateDriver(ctx context.Context, sess *session.Session, form *drivers.DriverForm) (*models.Driver, error) {
	var created *models.Driver
	err := nrpkg.WithSegment(ctx, "drivers.create", func() error {
		var createErr error
		created, createErr = uc.driverGW.CreateDriver(ctx, sess, form.Payload())
		return createErr
	})
	if err != nil {
		return nil, err
	}

	uc.patchHeld(ctx, sess, func(held *resource.Collection[models.Driver]) {
		held.Append(*created)
	})

	uc.publish(ctx, sess, constants.SubjectDriverCreated, models.AuditCreated, created)
	logger.Info("Driver created",
		logger.Int64("driver_id", created.ID),
		logger.Email("admin", sess.Admin))
	return created, nil
}

// UpdateDriver replaces driver id with the draft and patches the held collection
func (uc *DriverUC) UpdateDriver(ctx context.Context, sess *session.Session, id int64, form *drivers.DriverForm) (*models.Driver, error) {
	var updated *models.Driver
	err := nrpkg.WithSegment(ctx, "drivers.update", func() error {
		var updateErr error
		updated, updateErr = uc.driverGW.UpdateDriver(ctx, sess, id, form.Payload())
		return updateErr
	})
	if err != nil {
		return nil, err
	}

	uc.replaceHeld(ctx, sess, updated)
	uc.publish(ctx, sess, constants.SubjectDriverUpdated, models.AuditUpdated, updated)
	return updated, nil
}

// DeleteDriver deletes driver id and drops it from the held collection without re-fetching
func (uc *DriverUC) DeleteDriver(ctx context.Context, sess *session.Session, id int64) error {
	err := nrpkg.WithSegment(ctx, "drivers.delete", func() error {
		return uc.driverGW.DeleteDriver(ctx, sess, id)
	})
	if err != nil {
		return err
	}

	uc.patchHeld(ctx, sess, func(held *resource.Collection[models.Driver]) {
		held.Remove(id)
	})

	uc.publish(ctx, sess, constants.SubjectDriverDeleted, models.AuditDeleted, &models.Driver{ID: id})
	return nil
}

// ApproveDriver approves driver id; the returned record replaces the held one
func (uc *DriverUC) ApproveDriver(ctx context.Context, sess *session.Session, id int64) (*models.Driver, error) {
	var approved *models.Driver
	err := nrpkg.WithSegment(ctx, "drivers.approve", func() error {
		var approveErr error
		approved, approveErr = uc.driverGW.ApproveDriver(ctx, sess, id)
		return approveErr
	})
	if err != nil {
		return nil, err
	}

	uc.replaceHeld(ctx, sess, approved)
	uc.publish(ctx, sess, constants.SubjectDriverApproved, models.AuditApproved, approved)
	return approved, nil
}

// RejectDriver rejects driver id; the returned record replaces the held one
func (uc *DriverUC) RejectDriver(ctx context.Context, sess *session.Session, id int64) (*models.Driver, error) {
	var rejected *models.Driver
	err := nrpkg.WithSegment(ctx, "drivers.reject", func() error {
		var rejectErr error
		rejected, rejectErr = uc.driverGW.RejectDriver(ctx, sess, id)
		return rejectErr
	})
	if err != nil {
		return nil, err
	}

	uc.replaceHeld(ctx, sess, rejected)
	uc.publish(ctx, sess, constants.SubjectDriverRejected, models.AuditRejected, rejected)
	return rejected, nil
}

func (uc *DriverUC) replaceHeld(ctx context.Context, sess *session.Session, driver *models.Driver) {
	uc.patchHeld(ctx, sess, func(held *resource.Collection[models.Driver]) {
		if !held.Update(*driver) {
			logger.Debug("Driver not held by session", logger.Int64("driver_id", driver.ID))
		}
	})
}

// patchHeld applies a local mutation to the held collection. The API call already
// succeeded, so store failures are logged and not returned.
func (uc *DriverUC) patchHeld(ctx context.Context, sess *session.Session, patch func(*resource.Collection[models.Driver])) {
	held, err := uc.driverRepo.LoadHeld(ctx, sess.ID)
	if err != nil {
		logger.Warn("Failed to load held drivers", logger.Err(err))
		return
	}
	patch(held)
	uc.saveHeld(ctx, sess, held)
}

func (uc *DriverUC) saveHeld(ctx context.Context, sess *session.Session, held *resource.Collection[models.Driver]) {
	if err := uc.driverRepo.SaveHeld(ctx, sess.ID, held); err != nil {
		logger.Warn("Failed to save held drivers", logger.Err(err))
	}
}

func (uc *DriverUC) publish(ctx context.Context, sess *session.Session, subject string, action models.AuditAction, driver *models.Driver) {
	event := models.AuditEvent{
		Resource:   auditResource,
		Action:     action,
		ResourceID: driver.ID,
		Name:       driver.Name,
		Actor:      sess.Admin,
	}
	// errors are already logged by the publisher
	_ = uc.driverGW.PublishDriverEvent(ctx, subject, event)
}
