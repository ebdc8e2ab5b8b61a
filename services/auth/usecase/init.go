package usecase

import (
	"github.com/usbtecnok/kaviar-admin-os/services/auth"
)

// AuthUC implements the auth usecase
type AuthUC struct {
	authRepo auth.AuthRepo
	authGW   auth.AuthGW
}

// NewAuthUC creates a new auth usecase
func NewAuthUC(authRepo auth.AuthRepo, authGW auth.AuthGW) *AuthUC {
	return &AuthUC{
		authRepo: authRepo,
		authGW:   authGW,
	}
}
