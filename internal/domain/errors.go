package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrDuplicate              = errors.New("recurso duplicado")
	ErrUnauthorized           = errors.New("no autorizado")
	ErrForbidden              = errors.New("acceso denegado")
	ErrPersistence            = errors.New("fallo de persistencia")
	ErrInvalidCredentials     = errors.New("usuario o passcode incorrecto")
	ErrPasscodeTooShort       = errors.New("el passcode es demasiado corto")
	ErrPasswordTooShort       = errors.New("el password es demasiado corto")
	ErrEmailAlreadyExists     = errors.New("el email ya está registrado")
	ErrBuyingNotStarted       = errors.New("la sesión de compra no está iniciada")
	ErrSelectionIncomplete    = errors.New("falta seleccionar talla o color")
	ErrConfirmationRequired   = errors.New("la operación requiere confirmación explícita")
	ErrIncompleteConfirmation = errors.New("hay líneas del carrito sin confirmar")
)
