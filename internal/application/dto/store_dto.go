package dto

import "time"

// CreateStoreRequest entrada para crear una tienda (admin).
type CreateStoreRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address" validate:"omitempty,max=300"`
}

// StoreResponse salida de una tienda sin las listas de staff.
type StoreResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// StaffMemberResponse salida de un miembro del staff. Nunca expone el passcode.
type StaffMemberResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
	// HasDefaultPasscode indica que el miembro aún no rotó su passcode.
	HasDefaultPasscode bool `json:"has_default_passcode"`
}

// StoreStaffResponse staff completo de una tienda.
type StoreStaffResponse struct {
	StoreID  string                `json:"store_id"`
	Managers []StaffMemberResponse `json:"managers"`
	Pickers  []StaffMemberResponse `json:"pickers"`
}

// AddStaffRequest entrada para añadir staff a una tienda.
type AddStaffRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
	Role string `json:"role" validate:"required,oneof=manager picker"`
}

// RenameStaffRequest entrada para renombrar staff (regenera el username).
type RenameStaffRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}
