package auth

import (
	"errors"
	"fmt"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/oladimeji-kazeem/budgetpro/internal/domain"
)

var (
	// ErrTokenMalformed is returned when a token is structurally broken:
	// wrong segment count, bad base64url, or a payload that is not JSON.
	ErrTokenMalformed = errors.New("malformed token")

	// ErrClaimMissing is returned when a required claim is absent or
	// carries a value outside the closed role set.
	ErrClaimMissing = errors.New("missing required claim")
)

// Claims is the identity payload carried by a BudgetPro access token.
type Claims struct {
	UserID     string      `json:"user_id"`
	Email      string      `json:"email"`
	FirstName  string      `json:"first_name,omitempty"`
	Role       domain.Role `json:"role"`
	Department string      `json:"department,omitempty"`
	IsApproved bool        `json:"is_approved,omitempty"`
	IsActive   bool        `json:"is_active,omitempty"`
	jwt.RegisteredClaims
}

// DecodeAccessToken parses an access token's payload without verifying
// its signature. Signature verification is the issuing server's job; the
// client only needs the identity fields for display and view gating, and
// every API call is re-verified server side. A tampered but well-formed
// token therefore fools nothing past the UI shell.
func DecodeAccessToken(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())

	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(tokenStr, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}

	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: user_id", ErrClaimMissing)
	}
	if claims.Role == "" {
		return nil, fmt.Errorf("%w: role", ErrClaimMissing)
	}
	if !claims.Role.Valid() {
		return nil, fmt.Errorf("%w: role %q not recognised", ErrClaimMissing, claims.Role)
	}

	return claims, nil
}
