package entity

// Session es la identidad resuelta de un usuario autenticado. Se construye en
// el middleware de auth a partir del JWT y se inyecta donde haga falta decidir
// por rol; no existe estado de sesión global.
type Session struct {
	Username        string
	Role            string // ver constantes Role*
	StoreID         string // vacío para clientes y admin
	IsAuthenticated bool
}

// PrincipalRef identifica la credencial que debe rotar su passcode: la tienda,
// la lista de rol y la posición/id dentro de ella. Es el puente entre el
// resultado RotationRequired del login y la escritura posterior de la rotación.
type PrincipalRef struct {
	StoreID     string `json:"store_id"`
	Role        string `json:"role"` // RoleManager o RolePicker
	PrincipalID string `json:"principal_id"`
	Index       int    `json:"index"`
}
