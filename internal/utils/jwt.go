package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/project/ticket-service/models"
)

const bearerScheme = "bearer"

var (
	// ErrInvalidTokenParams is returned by GenerateJWTToken when a required
	// parameter is empty or zero.
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT token")

	// ErrMalformedAuthorizationHeader is returned by ParseBearerToken when the
	// header is not of the form "Bearer <token>".
	ErrMalformedAuthorizationHeader = errors.New("malformed `Authorization` header")

	// ErrEmptyUserIDClaim is returned when a token carries no user id.
	ErrEmptyUserIDClaim = errors.New("token carries no user id")
)

// GenerateJWTToken creates an HMAC-SHA256 signed token for userID.
//
// The token carries the "userId" claim and the registered claims:
//   - Issuer    (iss): issuer
//   - Subject   (sub): userID
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now + tokenDuration
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("user-service", "u-42", time.Hour, "secret")
func GenerateJWTToken(issuer, userID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || userID == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := models.TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken verifies the signature, the issuer and the
// expiration of tokenString and extracts its claims.
//
// The user id is taken from the "userId" claim and falls back to "sub".
// Errors from the jwt library are wrapped, so callers can test for
// jwt.ErrTokenExpired with errors.Is.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	var claims models.TokenClaims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID := claims.UserID
	if userID == "" {
		userID = claims.Subject
	}
	if userID == "" {
		return models.Token{}, ErrEmptyUserIDClaim
	}
	claims.UserID = userID

	return models.Token{Token: token, Claims: claims, SignedString: tokenString, UserID: userID}, nil
}

// ParseBearerToken extracts the token from an "Authorization" header value
// of the form "Bearer <token>". The scheme is matched case-insensitively and
// surrounding whitespace is ignored.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], bearerScheme) {
		return "", ErrMalformedAuthorizationHeader
	}
	return parts[1], nil
}
