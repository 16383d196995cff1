package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/earnbuddy/backend/internal/apperrors"
	portssvc "github.com/earnbuddy/backend/internal/core/ports/services"
	"github.com/earnbuddy/backend/internal/platform/config"
	"github.com/earnbuddy/backend/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// tokenService implements the TokenSvcFacade for issuing and verifying the
// application's bearer tokens. The token subject is the user's email.
type tokenService struct {
	signer      utils.TokenSigner
	userService portssvc.UserReaderSvc
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, userService portssvc.UserReaderSvc) portssvc.TokenSvcFacade {
	return &tokenService{
		signer: utils.TokenSigner{
			Secret: cfg.JWTSecret,
			Issuer: cfg.JWTIssuer,
			Expiry: cfg.JWTExpiryDuration,
		},
		userService: userService,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// IssueToken creates a signed token for the given email. The email must
// belong to a registered user; an unknown email is an authentication
// failure, not a lookup failure.
func (s *tokenService) IssueToken(ctx context.Context, email string) (string, time.Time, error) {
	user, err := s.userService.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", time.Time{}, apperrors.ErrUnauthorized
		}
		return "", time.Time{}, fmt.Errorf("failed to look up user for token issuance: %w", err)
	}

	token, expiryTime, err := s.signer.Sign(user.Email)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, expiryTime, nil
}

// VerifyToken validates a token string and returns its email subject.
func (s *tokenService) VerifyToken(ctx context.Context, tokenString string) (string, error) {
	claims, err := s.signer.Verify(tokenString)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", apperrors.ErrUnauthorized)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("token missing subject: %w", apperrors.ErrUnauthorized)
	}
	return claims.Subject, nil
}

// --- GoogleOAuthSvcFacade implementation ---

// googleOAuthService implements the GoogleOAuthSvcFacade.
type googleOAuthService struct {
	cfg *config.Config
	// oauth2Config is configured at initialization time
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthService creates a new instance of googleOAuthService.
func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

var _ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)

// ExchangeCodeForToken exchanges an OAuth authorization code for tokens.
func (s *googleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return token, nil
}

// ValidateGoogleIDToken validates an ID token against our client ID and
// returns its payload (verified email, name, picture).
func (s *googleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, fmt.Errorf("google client ID is not configured")
	}
	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("invalid google ID token: %w", err)
	}
	return payload, nil
}
