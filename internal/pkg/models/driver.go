package models

import "strings"

// ApprovalStatus is the approval workflow state of a driver
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pendente"
	ApprovalApproved ApprovalStatus = "aprovado"
	ApprovalRejected ApprovalStatus = "rejeitado"
)

// Normalize lowercases the status and maps an empty value to pending
func (s ApprovalStatus) Normalize() ApprovalStatus {
	st := ApprovalStatus(strings.ToLower(strings.TrimSpace(string(s))))
	if st == "" {
		return ApprovalPending
	}
	return st
}

// DriverPayload is the body sent on driver create and update
type DriverPayload struct {
	Name          string `json:"nome"`
	CPF           string `json:"cpf"`
	Email         string `json:"email"`
	Phone         string `json:"telefone"`
	PixKey        string `json:"chave_pix"`
	LicenseNumber string `json:"cnh_numero"`
	LicenseExpiry string `json:"cnh_vencimento"`
	Plate         string `json:"placa"`
	Model         string `json:"modelo"`
	Color         string `json:"cor"`
	Year          int    `json:"ano"`
	Password      string `json:"senha,omitempty"`
}

// Driver (motorista) is a driver record as returned by the Kaviar API
type Driver struct {
	ID             int64          `json:"id"`
	Name           string         `json:"nome"`
	CPF            string         `json:"cpf"`
	Email          string         `json:"email"`
	Phone          string         `json:"telefone"`
	PixKey         string         `json:"chave_pix"`
	LicenseNumber  string         `json:"cnh_numero"`
	LicenseExpiry  string         `json:"cnh_vencimento"`
	Plate          string         `json:"placa"`
	Model          string         `json:"modelo"`
	Color          string         `json:"cor"`
	Year           int            `json:"ano"`
	IsActive       *bool          `json:"is_ativo,omitempty"`
	Status         string         `json:"status,omitempty"`
	ApprovalStatus ApprovalStatus `json:"status_aprovacao,omitempty"`
}

// GetID returns the server-assigned identifier
func (d Driver) GetID() int64 {
	return d.ID
}

// ActivityStatus resolves the activation flag or status string into "ativo"/"inativo".
// Records carrying neither are reported as "indefinido".
func (d Driver) ActivityStatus() string {
	if d.Status != "" {
		return strings.ToLower(d.Status)
	}
	if d.IsActive == nil {
		return "indefinido"
	}
	if *d.IsActive {
		return "ativo"
	}
	return "inativo"
}
