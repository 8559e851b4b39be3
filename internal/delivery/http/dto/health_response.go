package dto

const (
	DatabaseUp       = "up"
	DatabaseDown     = "down"
	DatabaseDisabled = "disabled"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
