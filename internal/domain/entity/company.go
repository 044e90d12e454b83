package entity

import "time"

// Estados válidos de una empresa.
const (
	CompanyActive   = "ACTIVE"
	CompanyInactive = "INACTIVE"
	CompanyPending  = "PENDING"
)

// Company representa una empresa cliente (tenant) sobre la que se ejecutan
// inspecciones de seguridad.
type Company struct {
	ID        string
	RUT       string // RUT chileno, único y con dígito verificador válido
	Name      string
	Address   string
	Phone     string
	Industry  string
	Status    string // ACTIVE, INACTIVE, PENDING
	LogoURL   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
