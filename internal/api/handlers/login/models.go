package login

import "github.com/fleetops/TFS-ShiftService/internal/identity"

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"userId"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// FromSession конвертирует сессию в HTTP response
func FromSession(s *identity.Session) *LoginResponse {
	return &LoginResponse{
		Token:    s.Token,
		UserID:   s.Principal.UserID,
		FullName: s.Principal.FullName,
		Role:     string(s.Principal.Role),
	}
}
