package repository

import (
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/session"
	"github.com/usbtecnok/kaviar-admin-os/services/drivers"
)

// DriverRepo implements the driver repository over the session store
type DriverRepo struct {
	store session.Store
}

// NewDriverRepo creates a new driver repository
func NewDriverRepo(store session.Store) drivers.DriverRepo {
	return &DriverRepo{store: store}
}
