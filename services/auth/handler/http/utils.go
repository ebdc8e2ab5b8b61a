package http

import (
	"errors"

	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/constants"
	kaviarhttp "github.com/usbtecnok/kaviar-admin-os/internal/pkg/http"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/logger"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
	"github.com/usbtecnok/kaviar-admin-os/services/auth"
)

const msgSessionUnavailable = "Sessão indisponível. Tente novamente."

// loginMessage is the text shown under the login form for err
func loginMessage(err error) string {
	var vErr *models.ValidationError
	var apiErr *kaviarhttp.APIError
	var netErr *kaviarhttp.UnreachableError
	switch {
	case errors.As(err, &vErr):
		return vErr.Message
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.As(err, &netErr):
		return constants.MsgLoginNetwork
	case errors.Is(err, auth.ErrEmptyToken):
		return constants.MsgLoginFailed
	}

	logger.Error("Admin login failed", logger.Err(err))
	return msgSessionUnavailable
}
