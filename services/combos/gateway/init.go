package gateway

import (
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/constants"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
	natspkg "github.com/usbtecnok/kaviar-admin-os/internal/pkg/nats"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/resource"
	"github.com/usbtecnok/kaviar-admin-os/services/combos"
)

// CombosPath is the Kaviar API collection of tour combos
const CombosPath = "/combos/"

// ComboGW handles combo gateway operations
type ComboGW struct {
	api   *resource.Service[models.Combo, models.ComboPayload]
	audit *natspkg.AuditPublisher
}

// NewComboGW creates a gateway over the Kaviar API client and the audit publisher
func NewComboGW(client resource.Doer, audit *natspkg.AuditPublisher) combos.ComboGW {
	return &ComboGW{
		api: resource.NewService[models.Combo, models.ComboPayload](client, CombosPath, resource.Messages{
			Create: constants.MsgComboCreateFailed,
			List:   constants.MsgComboListFailed,
			Update: constants.MsgComboUpdateFailed,
			Delete: constants.MsgComboDeleteFailed,
		}),
		audit: audit,
	}
}
