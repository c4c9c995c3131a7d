package dto

// LoginRequest is the email/password credential pair for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthData is the payload returned on successful login.
type AuthData struct {
	Token            string `json:"token"`
	RefreshToken     string `json:"refreshToken"`
	FullName         string `json:"fullName"`
	Role             string `json:"role"`
	ExpiresIn        int    `json:"expiresIn"`
	RefreshExpiresIn int    `json:"refreshExpiresIn"`
}

// RefreshTokenRequest carries an opaque refresh token for rotation.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}
