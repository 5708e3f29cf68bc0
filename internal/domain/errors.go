package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrValidation         = errors.New("entrada inválida")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidOTP         = errors.New("código inválido o expirado")
	ErrNotAuthenticated   = errors.New("no autenticado")
	ErrUnknownAction      = errors.New("acción desconocida")
	ErrStorage            = errors.New("error de almacenamiento")
)
