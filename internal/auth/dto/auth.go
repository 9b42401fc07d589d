package dto

type LoginRequest struct {
	StudentID string `json:"student_id" binding:"required,numeric"`
	// Password is optional: non-password auth flows log in with the
	// student id alone.
	Password string `json:"password"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type LogoutRequest struct {
	// RefreshToken may be empty when the client already cleared it.
	RefreshToken string `json:"refresh_token"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	StudentID    string `json:"student_id,omitempty"`
}
