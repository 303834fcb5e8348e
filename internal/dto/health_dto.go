package dto

type HealthDTO struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
