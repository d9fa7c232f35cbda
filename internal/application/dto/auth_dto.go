package dto

import (
	"strings"
	"time"
)

// RegisterRequest entrada para registrar un usuario.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate devuelve los errores de validación por campo (vacío = válido).
// Reglas: username >= 3 caracteres (ya recortado), email con forma válida, password >= 6.
func (in RegisterRequest) Validate() []FieldError {
	var errs []FieldError
	if len(strings.TrimSpace(in.Username)) < 3 {
		errs = append(errs, FieldError{Field: "username", Message: "Username must be at least 3 characters"})
	}
	if !validEmail(in.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "Invalid email address"})
	}
	if len(in.Password) < 6 {
		errs = append(errs, FieldError{Field: "password", Message: "Password must be at least 6 characters"})
	}
	return errs
}

// validEmail chequeo estructural mínimo: local@dominio con un punto en el dominio.
func validEmail(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	domain := s[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1 && !strings.Contains(domain, "@")
}

// LoginRequest entrada de login. Identifier acepta username o email (se detecta por la "@").
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// UserResponse salida pública de un usuario (sin hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse respuesta de register/login: mensaje, token y usuario.
type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// MeResponse respuesta de /auth/me.
type MeResponse struct {
	User UserResponse `json:"user"`
}
