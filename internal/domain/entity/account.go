package entity

import "time"

// Account es una cuenta de email+password (clientes y admin). El staff de
// tienda no tiene Account: sus credenciales viven embebidas en Store.
type Account struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt, nunca plano después de persistir
	DisplayName  string
	PhotoURL     string
	Role         string // RoleClient o RoleAdmin
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
