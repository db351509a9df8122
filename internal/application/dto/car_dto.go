package dto

// RegisterCarRequest entrada para registrar un carro. El tipo de carro no se
// envía: queda sin clasificar hasta que un proceso externo lo determine.
type RegisterCarRequest struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	Color        string `json:"color"`
	LicensePlate string `json:"licensePlate"`
}
