package auth

import (
	"context"
)

type AuthService interface {
	// Login authenticates with email and password. The email must still be
	// on the allow-list.
	Login(ctx context.Context, req LoginRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)

	// LoginWithGoogle completes a Google sign-in. Identities not on the
	// allow-list are rejected without provisioning anything.
	LoginWithGoogle(ctx context.Context, googleEmail string, sessionReq SessionTrackingRequest) (TokenResponse, error)

	// RefreshToken exchanges a valid refresh token for a new access token.
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)

	// Logout revokes the presented refresh token.
	Logout(ctx context.Context, req RefreshTokenRequest) error
}
