package dto

// DuplicateEntry fila de import rechazada por nombre ya existente (insensible a mayúsculas).
type DuplicateEntry struct {
	Name       string `json:"name"`
	ExistingID string `json:"existingId"`
}

// ImportResultResponse resumen del import: filas agregadas, saltadas y duplicados detectados.
type ImportResultResponse struct {
	Added      int              `json:"added"`
	Skipped    int              `json:"skipped"`
	Duplicates []DuplicateEntry `json:"duplicates"`
}
