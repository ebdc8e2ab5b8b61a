package usecase

import (
	"github.com/usbtecnok/kaviar-admin-os/services/combos"
)

// ComboUC implements the combo use case interface
type ComboUC struct {
	comboRepo combos.ComboRepo
	comboGW   combos.ComboGW
}

// NewComboUC creates a new combo use case
func NewComboUC(
	comboRepo combos.ComboRepo,
	comboGW combos.ComboGW,
) *ComboUC {
	return &ComboUC{
		comboRepo: comboRepo,
		comboGW:   comboGW,
	}
}
