package dto

// AuthRequest describes login/password payload.
type AuthRequest struct {
	Login    string  `json:"login" binding:"required"`
	Password string  `json:"password" binding:"required"`
	Email    *string `json:"email,omitempty"`
}

// TokenResponse carries an issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}
