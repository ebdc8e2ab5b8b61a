package repository

import (
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/session"
	"github.com/usbtecnok/kaviar-admin-os/services/combos"
)

// ComboRepo implements the combo repository over the session store
type ComboRepo struct {
	store session.Store
}

// NewComboRepo creates a new combo repository
func NewComboRepo(store session.Store) combos.ComboRepo {
	return &ComboRepo{store: store}
}
