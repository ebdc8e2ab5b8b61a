package gateway

import (
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/constants"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
	natspkg "github.com/usbtecnok/kaviar-admin-os/internal/pkg/nats"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/resource"
	"github.com/usbtecnok/kaviar-admin-os/services/drivers"
)

// DriversPath is the Kaviar API collection of drivers (motoristas)
const DriversPath = "/motoristas/"

// Approval sub-resources of a driver
const (
	ActionApprove = "aprovar"
	ActionReject  = "rejeitar"
)

// DriverGW handles driver gateway operations
type DriverGW struct {
	api   *resource.Service[models.Driver, models.DriverPayload]
	audit *natspkg.AuditPublisher
}

// NewDriverGW creates a gateway over the Kaviar API client and the audit publisher
func NewDriverGW(client resource.Doer, audit *natspkg.AuditPublisher) drivers.DriverGW {
	return &DriverGW{
		api: resource.NewService[models.Driver, models.DriverPayload](client, DriversPath, resource.Messages{
			Create: constants.MsgDriverCreateFailed,
			List:   constants.MsgDriverListFailed,
			Update: constants.MsgDriverUpdateFailed,
			Delete: constants.MsgDriverDeleteFailed,
		}),
		audit: audit,
	}
}
