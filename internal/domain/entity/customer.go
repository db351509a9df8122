package entity

// Customer representa el perfil de un cliente del taller. Los carros son copias
// por valor en el fixture, no una relación viva con otra colección.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Cars    []Car  `json:"cars"`
}
