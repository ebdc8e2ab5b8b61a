package models

// Waypoint is one stop (ponto turístico) of a combo route
type Waypoint struct {
	ID        *int64  `json:"id,omitempty"`
	ComboID   *int64  `json:"combo_id,omitempty"`
	Name      string  `json:"nome_ponto"`
	Address   string  `json:"endereco"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Order     int     `json:"ordem_sequencial"`
}

// ComboPayload is the body sent on combo create and update
type ComboPayload struct {
	Name         string     `json:"nome"`
	Description  string     `json:"descricao"`
	FixedPrice   float64    `json:"preco_fixo"`
	HotelPartner string     `json:"parceiro_hotel"`
	Waypoints    []Waypoint `json:"pontos"`
}

// Combo is a tour package as returned by the Kaviar API
type Combo struct {
	ID              int64      `json:"id"`
	Name            string     `json:"nome"`
	Description     string     `json:"descricao"`
	FixedPrice      float64    `json:"preco_fixo"`
	EstimatedHours  float64    `json:"duracao_estimada_horas"`
	TotalDistanceKm float64    `json:"distancia_total_km"`
	HotelPartner    string     `json:"parceiro_hotel"`
	IsActive        bool       `json:"is_ativo"`
	OptimizedRoute  string     `json:"rota_otimizada_json"`
	Waypoints       []Waypoint `json:"pontos"`
}

// GetID returns the server-assigned identifier
func (c Combo) GetID() int64 {
	return c.ID
}
