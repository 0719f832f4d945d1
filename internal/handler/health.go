package handler

import "net/http"

// HealthResponse is the body returned by the health check endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Health returns a handler for GET /health reporting the service identity.
// It does not touch the database; liveness only.
func Health(serviceName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, HealthResponse{
			Status:  "healthy",
			Service: serviceName,
		})
	}
}
