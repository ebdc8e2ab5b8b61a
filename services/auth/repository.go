package auth

import (
	"context"

	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/resource"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/usbtecnok/kaviar-admin-os/services/auth AuthRepo

// AuthRepo holds the session token and reads the collections held by a session
type AuthRepo interface {
	SaveToken(ctx context.Context, sid, token string) error
	ClearSession(ctx context.Context, sid string) error

	HeldCombos(ctx context.Context, sid string) (*resource.Collection[models.Combo], error)
	HeldDrivers(ctx context.Context, sid string) (*resource.Collection[models.Driver], error)
}
