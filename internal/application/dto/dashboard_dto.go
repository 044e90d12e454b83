package dto

// DashboardStatsResponse resumen del panel principal. CompletionRate es el
// porcentaje de inspecciones COMPLETED sobre el total (0 si no hay ninguna).
type DashboardStatsResponse struct {
	Companies      int `json:"companies"`
	Workers        int `json:"workers"`
	Inspections    int `json:"inspections"`
	CompletionRate int `json:"completionRate"`
}
