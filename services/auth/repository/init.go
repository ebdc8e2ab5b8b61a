package repository

import (
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/session"
	"github.com/usbtecnok/kaviar-admin-os/services/auth"
)

// AuthRepo implements the auth repository over the session store
type AuthRepo struct {
	store session.Store
}

// NewAuthRepo creates a new auth repository
func NewAuthRepo(store session.Store) auth.AuthRepo {
	return &AuthRepo{
		store: store,
	}
}
