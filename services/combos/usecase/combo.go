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
	"github.com/usbtecnok/kaviar-admin-os/services/combos"
)

const auditResource = "combo"

// MountCombos fetches every combo and makes the result the session's held collection
func (uc *ComboUC) MountCombos(ctx context.Context, sess *session.Session) (*resource.Collection[models.Combo], error) {
	var items []models.Combo
	err := nrpkg.WithSegment(ctx, "combos.list", func() error {
		var listErr error
		items, listErr = uc.comboGW.ListCombos(ctx, sess)
		return listErr
	})
	if errors.Is(err, kaviarhttp.ErrTokenMissing) {
		return nil, err
	}

	held := resource.NewCollection[models.Combo]()
	if err != nil {
		held.Fail(kaviarhttp.UserMessage(err))
	} else {
		held.Replace(items)
	}

	uc.saveHeld(ctx, sess, held)
	return held, err
}

// HeldCombos returns the session's held collection without fetching
func (uc *ComboUC) HeldCombos(ctx context.Context, sess *session.Session) (*resource.Collection[models.Combo], error) {
	return uc.comboRepo.LoadHeld(ctx, sess.ID)
}

// FindHeldCombo resolves the entity under edit from the held collection
func (uc *ComboUC) FindHeldCombo(ctx context.Context, sess *session.Session, id int64) (*models.Combo, error) {
	held, err := uc.comboRepo.LoadHeld(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	combo, ok := held.Find(id)
	if !ok {
		return nil, combos.ErrComboNotFound
	}
	return &combo, nil
}

// CreateCombo submits the create form and appends the echoed record to the held collection
func (uc *ComboUC) CreateCombo(ctx context.Context, sess *session.Session, form *combos.ComboForm) (*models.Combo, error) {
	payload, err := form.Payload()
	if err != nil {
		return nil, err
	}

	var created *models.Combo
	err = nrpkg.WithSegment(ctx, "combos.create", func() error {
		var createErr error
		created, createErr = uc.comboGW.CreateCombo(ctx, sess, payload)
		return createErr
	})
	if err != nil {
		return nil, err
	}

	uc.patchHeld(ctx, sess, func(held *resource.Collection[models.Combo]) {
		held.Append(*created)
	})

	uc.publish(ctx, sess, constants.SubjectComboCreated, models.AuditCreated, created.ID, created.Name)
	logger.Info("Combo created",
		logger.Int64("combo_id", created.ID),
		logger.Email("admin", sess.Admin))
	return created, nil
}

// UpdateCombo submits the edit overlay and replaces the record in the held collection
func (uc *ComboUC) UpdateCombo(ctx context.Context, sess *session.Session, id int64, form *combos.ComboForm) (*models.Combo, error) {
	payload, err := form.UpdatePayload()
	if err != nil {
		return nil, err
	}

	var updated *models.Combo
	err = nrpkg.WithSegment(ctx, "combos.update", func() error {
		var updateErr error
		updated, updateErr = uc.comboGW.UpdateCombo(ctx, sess, id, payload)
		return updateErr
	})
	if err != nil {
		return nil, err
	}

	uc.patchHeld(ctx, sess, func(held *resource.Collection[models.Combo]) {
		if !held.Update(*updated) {
			logger.Debug("Updated combo not held by session", logger.Int64("combo_id", updated.ID))
		}
	})

	uc.publish(ctx, sess, constants.SubjectComboUpdated, models.AuditUpdated, updated.ID, updated.Name)
	return updated, nil
}

// DeleteCombo deletes combo id and drops it from the held collection without re-fetching
func (uc *ComboUC) DeleteCombo(ctx context.Context, sess *session.Session, id int64) error {
	err := nrpkg.WithSegment(ctx, "combos.delete", func() error {
		return uc.comboGW.DeleteCombo(ctx, sess, id)
	})
	if err != nil {
		return err
	}

	uc.patchHeld(ctx, sess, func(held *resource.Collection[models.Combo]) {
		held.Remove(id)
	})

	uc.publish(ctx, sess, constants.SubjectComboDeleted, models.AuditDeleted, id, "")
	return nil
}

// patchHeld applies a local mutation to the held collection. The API call already
// succeeded, so store failures are logged and not returned.
func (uc *ComboUC) patchHeld(ctx context.Context, sess *session.Session, patch func(*resource.Collection[models.Combo])) {
	held, err := uc.comboRepo.LoadHeld(ctx, sess.ID)
	if err != nil {
		logger.Warn("Failed to load held combos", logger.Err(err))
		return
	}
	patch(held)
	uc.saveHeld(ctx, sess, held)
}

func (uc *ComboUC) saveHeld(ctx context.Context, sess *session.Session, held *resource.Collection[models.Combo]) {
	if err := uc.comboRepo.SaveHeld(ctx, sess.ID, held); err != nil {
		logger.Warn("Failed to save held combos", logger.Err(err))
	}
}

func (uc *ComboUC) publish(ctx context.Context, sess *session.Session, subject string, action models.AuditAction, id int64, name string) {
	event := models.AuditEvent{
		Resource:   auditResource,
		Action:     action,
		ResourceID: id,
		Name:       name,
		Actor:      sess.Admin,
	}
	// errors are already logged by the publisher
	_ = uc.comboGW.PublishComboEvent(ctx, subject, event)
}
