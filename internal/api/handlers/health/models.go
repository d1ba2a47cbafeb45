package health

// HealthResponse состояние сервиса
type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}
