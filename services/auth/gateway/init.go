package gateway

import (
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/resource"
	"github.com/usbtecnok/kaviar-admin-os/services/auth"
)

// LoginPath is the Kaviar API login endpoint
const LoginPath = "/login"

// AuthGW handles the login call
type AuthGW struct {
	client resource.Doer
}

// NewAuthGW creates a gateway over the Kaviar API client
func NewAuthGW(client resource.Doer) auth.AuthGW {
	return &AuthGW{
		client: client,
	}
}
