package entity

// CarType clasifica el vehículo para el cálculo de precios por tipo.
type CarType string

// Tipos de carro conocidos.
const (
	CarTypeSedan     CarType = "SEDAN"
	CarTypeHatchback CarType = "HATCHBACK"
	CarTypeSUV       CarType = "SUV"
)

// Car representa un vehículo. CarType es puntero: un carro recién registrado
// todavía no está clasificado y viaja como null en el JSON.
type Car struct {
	ID           string   `json:"id"`
	Make         string   `json:"make"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	Color        string   `json:"color"`
	LicensePlate string   `json:"licensePlate"`
	CarType      *CarType `json:"carType"`
}
