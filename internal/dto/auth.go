package dto

import "time"

// RegisterRequest holds the fields needed to create a new user account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Name     string `json:"name" binding:"max=100"`
}

// LoginRequest holds login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest asks for a new token pair. The refresh token is opaque; the
// user ID routes the lookup since only a hash of the token is stored.
type RefreshRequest struct {
	UserID       string `json:"userID" binding:"required"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest revokes the caller's refresh token.
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// GoogleLoginRequest carries a Google ID token obtained by the SPA.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// TokenResponse is returned on login and refresh.
type TokenResponse struct {
	UserID       string    `json:"userID"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}
