package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by every access token accepted by the
// service. UserID duplicates the "sub" claim under the "userId" key issued by
// the user service.
type TokenClaims struct {
	// UserID identifies the token owner. It is an opaque string assigned by
	// the user service.
	UserID string `json:"userId"`

	jwt.RegisteredClaims
}

// Token wraps a JWT token with the values the request pipeline needs after
// decoding.
type Token struct {
	// Token is the parsed or freshly created JWT. Excluded from JSON because
	// only the compact string form is meaningful outside the process.
	*jwt.Token `json:"-"`

	// Claims is the decoded claim set.
	Claims TokenClaims `json:"-"`

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// UserID is a copy of Claims.UserID.
	UserID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
