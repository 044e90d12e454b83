package entity

import "time"

// Roles válidos para User. SUPERADMIN es el único que puede administrar
// usuarios y cambiar emails o roles (incluido el propio).
const (
	RoleUser       = "USER"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPERADMIN"
)

// User representa un usuario del sistema (personal de la plataforma, no un
// Worker de terreno). CompanyID es opcional: los SUPERADMIN globales no
// pertenecen a una empresa.
type User struct {
	ID           string
	Name         string
	Email        string // único
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Role         string // USER, ADMIN, SUPERADMIN
	CompanyID    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
