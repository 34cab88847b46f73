package domain

// ServiceName identifies this backend in the health payload.
const ServiceName = "kitab-backend"

const (
	healthStatus  = "healthy"
	serviceMsg    = "Kitab API"
	serviceStatus = "running"
)

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ServiceInfo is the body of GET /.
type ServiceInfo struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Health returns the liveness payload. Each call builds a fresh value from
// constants, so callers cannot alter what later requests see.
func Health() HealthStatus {
	return HealthStatus{Status: healthStatus, Service: ServiceName}
}

// Info returns the service identity payload.
func Info() ServiceInfo {
	return ServiceInfo{Message: serviceMsg, Status: serviceStatus}
}
