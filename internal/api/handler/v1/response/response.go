package response

// Deleted confirms a destructive operation and echoes the removed id.
type Deleted struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// Health is the health-check body.
type Health struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
