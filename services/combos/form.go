package combos

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/constants"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
)

// Form actions posted by the combo create and edit forms
const (
	ActionSubmit         = "submit"
	ActionAddWaypoint    = "add_ponto"
	ActionRemoveWaypoint = "remove_ponto:"
)

// MaxWaypoints bounds the waypoint indexes accepted from a posted form
const MaxWaypoints = 100

// ComboForm is the mutable draft behind the create form and the edit overlay.
// Price stays text until submission; waypoint numbers are parsed as they are set.
type ComboForm struct {
	Name         string
	Description  string
	Price        string
	HotelPartner string
	Waypoints    []models.Waypoint
}

// NewComboForm returns an empty draft with a single waypoint
func NewComboForm() *ComboForm {
	return &ComboForm{
		Price:     "0.00",
		Waypoints: []models.Waypoint{emptyWaypoint(1)},
	}
}

// ComboFormFromCombo initializes a draft from a held record, price with two decimals
func ComboFormFromCombo(c models.Combo) *ComboForm {
	waypoints := make([]models.Waypoint, len(c.Waypoints))
	copy(waypoints, c.Waypoints)
	if len(waypoints) == 0 {
		waypoints = []models.Waypoint{emptyWaypoint(1)}
	}

	return &ComboForm{
		Name:         c.Name,
		Description:  c.Description,
		Price:        strconv.FormatFloat(c.FixedPrice, 'f', 2, 64),
		HotelPartner: c.HotelPartner,
		Waypoints:    waypoints,
	}
}

// ParseComboForm rebuilds a draft from posted values. Waypoint fields are
// named "pontos.<index>.<field>".
func ParseComboForm(values url.Values) *ComboForm {
	f := &ComboForm{}
	for _, name := range []string{"nome", "descricao", "preco_fixo", "parceiro_hotel"} {
		f.SetField(name, values.Get(name))
	}

	count := 0
	for key := range values {
		if idx, _, ok := splitWaypointKey(key); ok && idx+1 > count {
			count = idx + 1
		}
	}
	f.Waypoints = make([]models.Waypoint, count)
	for key, vals := range values {
		idx, field, ok := splitWaypointKey(key)
		if !ok || len(vals) == 0 {
			continue
		}
		f.SetWaypointField(idx, field, vals[0])
	}

	if len(f.Waypoints) == 0 {
		f.Waypoints = []models.Waypoint{emptyWaypoint(1)}
	}
	return f
}

func splitWaypointKey(key string) (int, string, bool) {
	parts := strings.SplitN(key, ".", 3)
	if len(parts) != 3 || parts[0] != "pontos" {
		return 0, "", false
	}
	idx, err := strconv.Atoi(parts[1])
	if err != nil || idx < 0 || idx >= MaxWaypoints {
		return 0, "", false
	}
	return idx, parts[2], true
}

func emptyWaypoint(order int) models.Waypoint {
	return models.Waypoint{Order: order}
}

// SetField sets a combo field by its wire name
func (f *ComboForm) SetField(name, value string) bool {
	switch name {
	case "nome":
		f.Name = value
	case "descricao":
		f.Description = value
	case "preco_fixo":
		f.Price = value
	case "parceiro_hotel":
		f.HotelPartner = value
	default:
		return false
	}
	return true
}

// SetWaypointField sets a waypoint field by its wire name. Numeric text that
// does not parse is stored as 0.
func (f *ComboForm) SetWaypointField(index int, name, value string) bool {
	if index < 0 || index >= len(f.Waypoints) {
		return false
	}
	w := &f.Waypoints[index]

	switch name {
	case "nome_ponto":
		w.Name = value
	case "endereco":
		w.Address = value
	case "latitude":
		w.Latitude = parseFloatOrZero(value)
	case "longitude":
		w.Longitude = parseFloatOrZero(value)
	case "ordem_sequencial":
		w.Order = int(parseFloatOrZero(value))
	case "id":
		w.ID = parseOptionalID(value)
	case "combo_id":
		w.ComboID = parseOptionalID(value)
	default:
		return false
	}
	return true
}

// AddWaypoint appends an empty waypoint ordered after the current ones
func (f *ComboForm) AddWaypoint() {
	if len(f.Waypoints) >= MaxWaypoints {
		return
	}
	f.Waypoints = append(f.Waypoints, emptyWaypoint(len(f.Waypoints)+1))
}

// RemoveWaypoint drops the waypoint at index; the last remaining one is kept
func (f *ComboForm) RemoveWaypoint(index int) bool {
	if len(f.Waypoints) <= 1 || index < 0 || index >= len(f.Waypoints) {
		return false
	}
	f.Waypoints = append(f.Waypoints[:index:index], f.Waypoints[index+1:]...)
	return true
}

// Apply performs a non-submitting form action and reports whether the action
// was a submission
func (f *ComboForm) Apply(action string) (submit bool, err error) {
	switch {
	case action == "" || action == ActionSubmit:
		return true, nil
	case action == ActionAddWaypoint:
		f.AddWaypoint()
		return false, nil
	case strings.HasPrefix(action, ActionRemoveWaypoint):
		idx, convErr := strconv.Atoi(strings.TrimPrefix(action, ActionRemoveWaypoint))
		if convErr != nil {
			return false, fmt.Errorf("invalid form action %q", action)
		}
		if !f.RemoveWaypoint(idx) {
			return false, models.NewValidationError(constants.MsgLastWaypoint)
		}
		return false, nil
	}
	return false, fmt.Errorf("invalid form action %q", action)
}

// ValidateWaypoints requires name, address and non-zero coordinates on every waypoint
func (f *ComboForm) ValidateWaypoints() error {
	for _, w := range f.Waypoints {
		if strings.TrimSpace(w.Name) == "" || strings.TrimSpace(w.Address) == "" || w.Latitude == 0 || w.Longitude == 0 {
			return models.NewValidationError(constants.MsgWaypointsInvalid)
		}
	}
	return nil
}

// ParsePrice converts the price text into a number. A lone decimal comma is accepted.
func (f *ComboForm) ParsePrice() (float64, error) {
	text := strings.TrimSpace(f.Price)
	if !strings.Contains(text, ".") {
		text = strings.Replace(text, ",", ".", 1)
	}
	price, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, models.NewValidationError(constants.MsgPriceInvalid)
	}
	return price, nil
}

// Payload runs the create pipeline: waypoint validation, price coercion, then
// a stable sort of waypoints by order
func (f *ComboForm) Payload() (models.ComboPayload, error) {
	if err := f.ValidateWaypoints(); err != nil {
		return models.ComboPayload{}, err
	}
	return f.UpdatePayload()
}

// UpdatePayload runs the edit pipeline: price coercion and waypoint sort
func (f *ComboForm) UpdatePayload() (models.ComboPayload, error) {
	price, err := f.ParsePrice()
	if err != nil {
		return models.ComboPayload{}, err
	}

	waypoints := make([]models.Waypoint, len(f.Waypoints))
	copy(waypoints, f.Waypoints)
	sort.SliceStable(waypoints, func(i, j int) bool {
		return waypoints[i].Order < waypoints[j].Order
	})

	return models.ComboPayload{
		Name:         f.Name,
		Description:  f.Description,
		FixedPrice:   price,
		HotelPartner: f.HotelPartner,
		Waypoints:    waypoints,
	}, nil
}

func parseFloatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func parseOptionalID(s string) *int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
