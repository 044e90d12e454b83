package dto

// SettingsResponse perfil del usuario autenticado más su empresa.
type SettingsResponse struct {
	User    SettingsUser     `json:"user"`
	Company *CompanyResponse `json:"company,omitempty"`
}

// SettingsUser subconjunto del usuario que expone la pantalla de configuración.
type SettingsUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UpdateSettingsRequest entrada del PATCH de configuración. Nombre lo cambia
// cualquiera; email y rol solo un SUPERADMIN. Los campos company* actualizan
// la empresa del usuario si tiene una.
type UpdateSettingsRequest struct {
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail" validate:"omitempty,email"`
	UserRole  string `json:"userRole" validate:"omitempty,oneof=USER ADMIN SUPERADMIN"`

	CompanyName    string `json:"companyName"`
	CompanyRUT     string `json:"companyRut"`
	CompanyAddress string `json:"companyAddress"`
	CompanyLogoURL string `json:"companyLogoUrl"`
}
