package entity

import "time"

// Worker representa un trabajador o prevencionista de riesgos. Puede estar
// asignado a una Company o quedar "sin asignar" (CompanyID vacío).
type Worker struct {
	ID                   string
	Name                 string
	Email                string // único en todo el sistema
	Role                 string // cargo, texto libre
	RUT                  string
	Phone                string
	CompanyID            string
	SECRegistrationNumber string // N° de registro SEC del experto en prevención
	DigitalSignature     string // imagen de la firma (data URL), sello reutilizable
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
