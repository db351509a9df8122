package entity

// Roles válidos para User.
const (
	RoleCustomer = "CUSTOMER"
	RoleEmployee = "EMPLOYEE"
	RoleOwner    = "OWNER"
)

// User representa una identidad del sistema. Es un fixture inmutable: el email
// funciona como clave única y ProfileID apunta al Customer cuando Role es CUSTOMER.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"` // CUSTOMER, EMPLOYEE, OWNER
	ProfileID string `json:"profileId"`
}
