package services

import (
	"context"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade issues and verifies the application's bearer tokens.
type TokenSvcFacade interface {
	// IssueToken creates a signed token whose subject is the given email.
	IssueToken(ctx context.Context, email string) (token string, expiresAt time.Time, err error)

	// VerifyToken validates a token string and returns the email subject.
	VerifyToken(ctx context.Context, tokenString string) (email string, err error)
}

// GoogleOAuthSvcFacade handles the Google sign-in code exchange.
type GoogleOAuthSvcFacade interface {
	// ExchangeCodeForToken exchanges an OAuth authorization code for tokens.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// ValidateGoogleIDToken validates an ID token and returns its payload
	// (verified email, name, picture).
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
