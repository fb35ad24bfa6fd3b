package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/project/ticket-service/internal/apperror"
	"github.com/project/ticket-service/internal/config"
	"github.com/project/ticket-service/internal/logger"
	"github.com/project/ticket-service/internal/utils"
	"github.com/project/ticket-service/models"
)

// authService is the concrete implementation of AuthService.
// Tokens are issued by the user service; the ticket service only verifies
// them with the shared HMAC key.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim expected in every token.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a token issued by CreateToken remains
	// valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService populated with the token
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// DecodeBearerToken extracts and validates the token of an "Authorization"
// header.
//
// Failures are reported as *apperror.Error:
//   - apperror.TokenMissing if the header is empty.
//   - apperror.TokenExpired if the token is past its expiration time.
//   - apperror.TokenInvalid for a malformed header, a bad signature, a wrong
//     issuer or a token without user id.
func (a *authService) DecodeBearerToken(ctx context.Context, authorizationHeader string) (models.Token, error) {
	log := a.logger.Ctx(ctx)

	if strings.TrimSpace(authorizationHeader) == "" {
		return models.Token{}, apperror.New(apperror.TokenMissing)
	}

	tokenString, err := utils.ParseBearerToken(authorizationHeader)
	if err != nil {
		log.Debug().Err(err).Str("func", "authService.DecodeBearerToken").Msg("malformed authorization header")
		return models.Token{}, apperror.Wrap(err, apperror.TokenInvalid)
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if errors.Is(err, jwt.ErrTokenExpired) {
		log.Debug().Err(err).Str("func", "authService.DecodeBearerToken").Msg("token is expired")
		return models.Token{}, apperror.Wrap(err, apperror.TokenExpired)
	}
	if err != nil {
		log.Debug().Err(err).Str("func", "authService.DecodeBearerToken").Msg("token is invalid")
		return models.Token{}, apperror.Wrap(err, apperror.TokenInvalid)
	}

	return token, nil
}

// CreateToken issues a signed JWT for userID.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, userID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
