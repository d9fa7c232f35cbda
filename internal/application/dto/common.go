package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FieldError error de validación asociado a un campo concreto del request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse agrupa los errores de validación por campo.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// HealthResponse respuesta del health check.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
