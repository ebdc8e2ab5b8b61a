package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/constants"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/jwt"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/logger"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
	nrpkg "github.com/usbtecnok/kaviar-admin-os/internal/pkg/newrelic"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/session"
	"github.com/usbtecnok/kaviar-admin-os/services/auth"
)

// Login authenticates against the Kaviar API and holds the token under a new session id
func (uc *AuthUC) Login(ctx context.Context, prevSID string, req models.LoginRequest) (*session.Session, error) {
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return nil, models.NewValidationError(constants.MsgLoginMissing)
	}

	var resp *models.LoginResponse
	err := nrpkg.WithSegment(ctx, "auth.login", func() error {
		var loginErr error
		resp, loginErr = uc.authGW.Login(ctx, req)
		return loginErr
	})
	if err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, auth.ErrEmptyToken
	}

	if prevSID != "" {
		if err := uc.authRepo.ClearSession(ctx, prevSID); err != nil {
			logger.Warn("Failed to clear previous session", logger.Err(err))
		}
	}

	sess := &session.Session{
		ID:    session.NewID(),
		Token: resp.AccessToken,
		State: session.StateAuthenticated,
	}
	if err := uc.authRepo.SaveToken(ctx, sess.ID, sess.Token); err != nil {
		return nil, fmt.Errorf("failed to hold admin token: %w", err)
	}

	sess.Admin = jwt.Subject(sess.Token)
	if sess.Admin == "" {
		sess.Admin = req.Email
	}

	logger.Info("Admin logged in", logger.Email("admin", sess.Admin))
	return sess, nil
}

// Logout drops the token and held collections of sid
func (uc *AuthUC) Logout(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	return uc.authRepo.ClearSession(ctx, sid)
}
