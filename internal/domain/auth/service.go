package auth

import "context"

// AuthService defines authentication for the portal
type AuthService interface {
	// Login verifies email+password credentials and issues tokens
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// LoginWithGoogle returns the Google consent redirect URL
	LoginWithGoogle(ctx context.Context, userAgent string) (string, error)

	// OAuthCallbackGoogle exchanges the authorization code and issues tokens
	OAuthCallbackGoogle(ctx context.Context, code string) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a fresh token pair
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes a refresh token
	Logout(ctx context.Context, refreshToken string) error
}
