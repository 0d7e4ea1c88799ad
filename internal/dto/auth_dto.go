package dto

// AdminLoginDTO is the admin console login payload.
type AdminLoginDTO struct {
	UserID   string `json:"user_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AdminLoginResponseDTO struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
}

type AdminVerifyDTO struct {
	Token string `json:"token" binding:"required"`
}

type AdminVerifyResponseDTO struct {
	Valid bool `json:"valid"`
}

type ErrorResponse struct {
	Message string   `json:"error"`
	Details []string `json:"details,omitempty"`
}
