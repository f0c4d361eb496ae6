package entity

import "time"

// Roles válidos del sistema. Cerrados: todo despacho por rol pasa por estas constantes.
const (
	RoleClient  = "client"
	RoleManager = "manager"
	RolePicker  = "picker"
	RoleAdmin   = "admin"
)

// Principal es un registro de credencial de staff (manager o picker) embebido en su Store.
// PasscodeHash almacena el SHA-256 hex del passcode, o el centinela sin hashear
// cuando el passcode todavía no fue rotado.
type Principal struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasscodeHash string `json:"passcode"`
	Photo        string `json:"photo,omitempty"`
}

// Store representa un punto de venta. Managers y Pickers son listas ordenadas
// embebidas; la unicidad de username dentro de la tienda NO está garantizada
// (se hereda del modelo de datos original).
type Store struct {
	ID        string
	Name      string
	Address   string
	IsActive  bool
	Managers  []Principal
	Pickers   []Principal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StaffByRole devuelve la lista de staff del rol indicado (RoleManager o RolePicker).
func (s *Store) StaffByRole(role string) []Principal {
	switch role {
	case RoleManager:
		return s.Managers
	case RolePicker:
		return s.Pickers
	}
	return nil
}
