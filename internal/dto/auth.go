package dto

// ── Auth ──

// LoginRequest POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"senha" binding:"required"`
}

// LoginResponse token plus the identity it encodes
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"usuario"`
}

// UserResponse public user view
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"tipo_usuario"`
	Name  string `json:"nome"`
}
