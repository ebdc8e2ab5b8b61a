package auth

import (
	"context"

	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/usbtecnok/kaviar-admin-os/services/auth AuthGW

// AuthGW calls the unauthenticated login endpoint of the Kaviar API
type AuthGW interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
}
