package model

type ErrorResponse struct {
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type HealthDatabase struct {
	Connected bool   `json:"connected"`
	Error     string `json:"error,omitempty"`
}

type HealthEnvironment struct {
	Env            string `json:"env"`
	Port           string `json:"port"`
	HasDatabaseURL bool   `json:"hasDatabaseUrl"`
	HasJWTSecret   bool   `json:"hasJwtSecret"`
}

type HealthResponse struct {
	Status      string            `json:"status"`
	Timestamp   string            `json:"timestamp"`
	Uptime      int64             `json:"uptime"`
	Database    HealthDatabase    `json:"database"`
	Environment HealthEnvironment `json:"environment"`
}
