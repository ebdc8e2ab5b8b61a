package drivers

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
)

// DriverFields lists the wire names accepted by the driver form, in display order
var DriverFields = []string{
	"nome", "cpf", "email", "telefone", "chave_pix", "cnh_numero",
	"cnh_vencimento", "placa", "modelo", "cor", "ano", "senha",
}

// DriverForm is the draft behind the driver create form
type DriverForm struct {
	Name          string
	CPF           string
	Email         string
	Phone         string
	PixKey        string
	LicenseNumber string
	LicenseExpiry string
	Plate         string
	Model         string
	Color         string
	Year          int
	Password      string
}

// NewDriverForm returns an empty draft
func NewDriverForm() *DriverForm {
	return &DriverForm{}
}

// ParseDriverForm rebuilds a draft from posted values
func ParseDriverForm(values url.Values) *DriverForm {
	f := NewDriverForm()
	for _, name := range DriverFields {
		f.SetField(name, values.Get(name))
	}
	return f
}

// SetField sets a field by its wire name. A year that does not parse is stored as 0.
func (f *DriverForm) SetField(name, value string) bool {
	switch name {
	case "nome":
		f.Name = value
	case "cpf":
		f.CPF = value
	case "email":
		f.Email = value
	case "telefone":
		f.Phone = value
	case "chave_pix":
		f.PixKey = value
	case "cnh_numero":
		f.LicenseNumber = value
	case "cnh_vencimento":
		f.LicenseExpiry = value
	case "placa":
		f.Plate = value
	case "modelo":
		f.Model = value
	case "cor":
		f.Color = value
	case "ano":
		year, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			year = 0
		}
		f.Year = year
	case "senha":
		f.Password = value
	default:
		return false
	}
	return true
}

// Payload converts the draft into the create/update body
func (f *DriverForm) Payload() models.DriverPayload {
	return models.DriverPayload{
		Name:          f.Name,
		CPF:           f.CPF,
		Email:         f.Email,
		Phone:         f.Phone,
		PixKey:        f.PixKey,
		LicenseNumber: f.LicenseNumber,
		LicenseExpiry: f.LicenseExpiry,
		Plate:         f.Plate,
		Model:         f.Model,
		Color:         f.Color,
		Year:          f.Year,
		Password:      f.Password,
	}
}
