package usecase

import (
	"github.com/usbtecnok/kaviar-admin-os/services/drivers"
)

// DriverUC implements the driver use case interface
type DriverUC struct {
	driverRepo drivers.DriverRepo
	driverGW   drivers.DriverGW
}

// NewDriverUC creates a new driver use case
func NewDriverUC(
	driverRepo drivers.DriverRepo,
	driverGW drivers.DriverGW,
) *DriverUC {
	return &DriverUC{
		driverRepo: driverRepo,
		driverGW:   driverGW,
	}
}
