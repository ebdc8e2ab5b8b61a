package gateway

import (
	"context"
	"net/http"

	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/constants"
	kaviarhttp "github.com/usbtecnok/kaviar-admin-os/internal/pkg/http"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/logger"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
)

// Login posts the credentials without a bearer token
func (g *AuthGW) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	err := g.client.Do(ctx, kaviarhttp.Request{
		Method:   http.MethodPost,
		Endpoint: LoginPath,
		Body:     req,
		Fallback: constants.MsgLoginFailed,
	}, &resp)
	if err != nil {
		logger.Warn("Admin login rejected",
			logger.Email("email", req.Email),
			logger.Err(err))
		return nil, err
	}
	return &resp, nil
}
