package auth

import (
	"context"
	"errors"

	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/constants"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/session"
)

// ErrEmptyToken is a 2xx login answer that carried no access token
var ErrEmptyToken = errors.New(constants.MsgLoginFailed)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/usbtecnok/kaviar-admin-os/services/auth AuthUC

// AuthUC represents the admin login/logout usecase
type AuthUC interface {
	// Login exchanges credentials for a token held under a fresh session id.
	// prevSID, when set, is cleared so a browser never keeps two sessions.
	Login(ctx context.Context, prevSID string, req models.LoginRequest) (*session.Session, error)
	Logout(ctx context.Context, sid string) error

	Overview(ctx context.Context, sess *session.Session) (*models.Overview, error)
}
