package auth

import (
	"encoding/base64"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oladimeji-kazeem/budgetpro/internal/domain"
)

func signedToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestDecodeAccessToken_AllRoles(t *testing.T) {
	roles := []domain.Role{
		domain.RoleDeptOfficer,
		domain.RoleHeadOfDept,
		domain.RoleAppAdmin,
		domain.RoleSuperAdmin,
	}

	for _, role := range roles {
		t.Run(string(role), func(t *testing.T) {
			tokenStr := signedToken(t, &Claims{
				UserID:     "user-1",
				Email:      "officer@budgetpro.local",
				Role:       role,
				Department: "Finance",
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   "user-1",
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				},
			})

			claims, err := DecodeAccessToken(tokenStr)
			require.NoError(t, err)
			assert.Equal(t, "user-1", claims.UserID)
			assert.Equal(t, "officer@budgetpro.local", claims.Email)
			assert.Equal(t, role, claims.Role)
			assert.Equal(t, "Finance", claims.Department)
		})
	}
}

func TestDecodeAccessToken_IgnoresSignature(t *testing.T) {
	// The decoder is structural only: a token signed with an unknown key
	// still decodes. The server is the verification boundary.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: "user-2",
		Role:   domain.RoleSuperAdmin,
	})
	signed, err := token.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	claims, err := DecodeAccessToken(signed)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSuperAdmin, claims.Role)
}

func TestDecodeAccessToken_Malformed(t *testing.T) {
	valid := signedToken(t, &Claims{UserID: "user-1", Role: domain.RoleDeptOfficer})

	cases := map[string]string{
		"empty":             "",
		"not a token":       "garbage",
		"two segments":      "abc.def",
		"truncated":         valid[:len(valid)/2],
		"non-base64 payload": "eyJhbGciOiJIUzI1NiJ9.%%%%.sig",
		"payload not json": "eyJhbGciOiJIUzI1NiJ9." +
			base64.RawURLEncoding.EncodeToString([]byte("not json")) + ".sig",
	}

	for name, tokenStr := range cases {
		t.Run(name, func(t *testing.T) {
			claims, err := DecodeAccessToken(tokenStr)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, ErrTokenMalformed)
		})
	}
}

func TestDecodeAccessToken_MissingClaims(t *testing.T) {
	t.Run("missing role", func(t *testing.T) {
		tokenStr := signedToken(t, &Claims{UserID: "user-1"})
		_, err := DecodeAccessToken(tokenStr)
		assert.ErrorIs(t, err, ErrClaimMissing)
	})

	t.Run("missing user id", func(t *testing.T) {
		tokenStr := signedToken(t, &Claims{Role: domain.RoleAppAdmin})
		_, err := DecodeAccessToken(tokenStr)
		assert.ErrorIs(t, err, ErrClaimMissing)
	})

	t.Run("unknown role", func(t *testing.T) {
		tokenStr := signedToken(t, &Claims{UserID: "user-1", Role: domain.Role("CEO")})
		_, err := DecodeAccessToken(tokenStr)
		assert.ErrorIs(t, err, ErrClaimMissing)
	})
}
