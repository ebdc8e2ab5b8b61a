package combos

import (
	"context"
	"errors"

	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/resource"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/session"
)

// ErrComboNotFound is returned when the edit overlay targets a record the session does not hold
var ErrComboNotFound = errors.New("combo não encontrado na lista carregada")

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/usbtecnok/kaviar-admin-os/services/combos ComboUC

// ComboUC drives the combo screens: list mount, create form, edit overlay and delete
type ComboUC interface {
	// MountCombos fetches the list and makes it the session's held collection.
	// On API failure the returned collection is in the failed state alongside the error.
	MountCombos(ctx context.Context, sess *session.Session) (*resource.Collection[models.Combo], error)
	HeldCombos(ctx context.Context, sess *session.Session) (*resource.Collection[models.Combo], error)
	FindHeldCombo(ctx context.Context, sess *session.Session, id int64) (*models.Combo, error)

	CreateCombo(ctx context.Context, sess *session.Session, form *ComboForm) (*models.Combo, error)
	UpdateCombo(ctx context.Context, sess *session.Session, id int64, form *ComboForm) (*models.Combo, error)
	DeleteCombo(ctx context.Context, sess *session.Session, id int64) error
}
