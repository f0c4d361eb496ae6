package dto

import (
	"time"

	"github.com/Jeremytpk/storall/internal/domain/entity"
)

// RegisterRequest entrada para registro de cuenta de cliente (password en texto, se hashea en use case).
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	DisplayName string `json:"display_name" validate:"omitempty,max=200"`
}

// LoginRequest entrada para login de cuenta (cliente o admin).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AccountResponse salida de una cuenta (sin password).
type AccountResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

// LoginResponse salida con token JWT y la cuenta autenticada.
type LoginResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}

// UpdateProfileRequest entrada para actualizar perfil de la cuenta.
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" validate:"omitempty,max=200"`
	PhotoURL    string `json:"photo_url" validate:"omitempty,url"`
}

// StaffLoginRequest entrada del login de staff por username + passcode.
type StaffLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Passcode string `json:"passcode" validate:"required"`
}

// StaffLoginResponse salida del login de staff. Si RotationRequired es true,
// Token está vacío y PrincipalRef identifica la credencial a rotar.
type StaffLoginResponse struct {
	RotationRequired bool                 `json:"rotation_required"`
	PrincipalRef     *entity.PrincipalRef `json:"principal_ref,omitempty"`
	Token            string               `json:"token,omitempty"`
	Session          *SessionResponse     `json:"session,omitempty"`
}

// SessionResponse identidad resuelta de un staff autenticado.
type SessionResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	StoreID  string `json:"store_id"`
}

// RotatePasscodeRequest entrada para la rotación forzada del primer login.
type RotatePasscodeRequest struct {
	PrincipalRef entity.PrincipalRef `json:"principal_ref" validate:"required"`
	NewPasscode  string              `json:"new_passcode" validate:"required,min=6"`
}
