package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUsernameTaken      = errors.New("el usuario ya existe")
	ErrInvalidCredentials = errors.New("credenciales incorrectas")
)
