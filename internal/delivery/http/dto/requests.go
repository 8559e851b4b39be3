package dto

type CopilotQueryRequest struct {
	Query    string `json:"query"`
	Industry string `json:"industry,omitempty"`
}

type LCAStatusRequest struct {
	Status string `json:"status"`
}

type AdminTokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
