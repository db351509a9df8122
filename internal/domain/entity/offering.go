package entity

import "github.com/shopspring/decimal"

// Offering representa un servicio contratable del taller con precio por tipo de carro.
type Offering struct {
	ID           string                      `json:"id"`
	Name         string                      `json:"name"`
	Description  string                      `json:"description"`
	DurationMins int                         `json:"durationMins"`
	Prices       map[CarType]decimal.Decimal `json:"prices"`
}
