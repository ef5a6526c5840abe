package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/oladimeji-kazeem/budgetpro/internal/domain"
)

// TokenManager issues and verifies BudgetPro token pairs.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, accessTTLMinutes, refreshTTLHours int) *TokenManager {
	if accessTTLMinutes <= 0 {
		accessTTLMinutes = 30
	}
	if refreshTTLHours <= 0 {
		refreshTTLHours = 24
	}
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  time.Duration(accessTTLMinutes) * time.Minute,
		refreshTTL: time.Duration(refreshTTLHours) * time.Hour,
	}
}

// RefreshClaims describes the refresh token payload. The token carries no
// identity beyond the user id; TokenID keys the server-side allow-list.
type RefreshClaims struct {
	UserID  string `json:"user_id"`
	TokenID string `json:"token_id"`
	jwt.RegisteredClaims
}

// RefreshTTL exposes the refresh token lifetime for allow-list expiry.
func (tm *TokenManager) RefreshTTL() time.Duration {
	return tm.refreshTTL
}

// GeneratePair mints an access/refresh token pair for the user. The
// returned token id identifies the refresh token for rotation tracking.
func (tm *TokenManager) GeneratePair(user *domain.User) (domain.TokenPair, string, error) {
	now := time.Now()

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID:     user.ID,
		Email:      user.Email,
		FirstName:  user.FirstName,
		Role:       user.Role,
		Department: user.Department,
		IsApproved: user.Approved,
		IsActive:   user.Active,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	accessStr, err := access.SignedString(tm.secret)
	if err != nil {
		return domain.TokenPair{}, "", err
	}

	tokenID := uuid.NewString()
	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, &RefreshClaims{
		UserID:  user.ID,
		TokenID: tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.refreshTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	refreshStr, err := refresh.SignedString(tm.secret)
	if err != nil {
		return domain.TokenPair{}, "", err
	}

	return domain.TokenPair{Access: accessStr, Refresh: refreshStr}, tokenID, nil
}

// VerifyAccess validates an access token's signature and returns claims.
func (tm *TokenManager) VerifyAccess(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, tm.keyFunc)
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// VerifyRefresh validates a refresh token's signature and returns claims.
func (tm *TokenManager) VerifyRefresh(tokenStr string) (*RefreshClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &RefreshClaims{}, tm.keyFunc)
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*RefreshClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

func (tm *TokenManager) keyFunc(token *jwt.Token) (interface{}, error) {
	if token.Method != jwt.SigningMethodHS256 {
		return nil, errors.New("unexpected signing method")
	}
	return tm.secret, nil
}
