package view

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
	"github.com/usbtecnok/kaviar-admin-os/internal/utils"
)

// Funcs returns the helpers available to every template
func Funcs() template.FuncMap {
	return template.FuncMap{
		"money":         Money,
		"km":            func(ws []models.Waypoint) string { return fmt.Sprintf("%.1f", utils.StraightLineKm(ws)) },
		"geohash":       utils.EncodeWaypoint,
		"truncate":      utils.Truncate,
		"upper":         strings.ToUpper,
		"add":           func(a, b int) int { return a + b },
		"orNA":          OrNA,
		"activeClass":   ActiveClass,
		"statusClass":   StatusClass,
		"approvalClass": ApprovalClass,
		"confirmDelete": ConfirmDeleteCombo,
	}
}

// Money formats a value with two decimals
func Money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// OrNA replaces an empty value with "N/A"
func OrNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// ActiveClass colors the combo active flag
func ActiveClass(active bool) string {
	if active {
		return "badge-green"
	}
	return "badge-red"
}

// StatusClass colors a driver activity status: only "ativo" is green
func StatusClass(status string) string {
	if strings.EqualFold(status, "ativo") {
		return "badge-green"
	}
	return "badge-red"
}

// ApprovalClass colors a driver approval status
func ApprovalClass(status models.ApprovalStatus) string {
	switch status.Normalize() {
	case models.ApprovalApproved:
		return "badge-green"
	case models.ApprovalRejected:
		return "badge-red"
	case models.ApprovalPending:
		return "badge-yellow"
	}
	return "badge-gray"
}

// ConfirmDeleteCombo is the browser confirmation shown before a combo is deleted
func ConfirmDeleteCombo(name string, id int64) string {
	return fmt.Sprintf("Tem certeza que deseja DELETAR o combo \"%s\" (ID: %d)? Esta ação é irreversível.", name, id)
}
