package domain

import "errors"

// Errores de dominio (sin dependencias externas). La capa HTTP los mapea a
// códigos de estado en interfaces/http/errors.go.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidRUT         = errors.New("RUT inválido")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrHasDependents      = errors.New("no se puede eliminar: tiene registros asociados")
	ErrLocked             = errors.New("inspección completada: el registro es inmutable")
	ErrSelfDelete         = errors.New("no puedes eliminar tu propia cuenta")
)
