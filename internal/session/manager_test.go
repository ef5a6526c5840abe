package session

import (
	"testing"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/oladimeji-kazeem/budgetpro/internal/auth"
	"github.com/oladimeji-kazeem/budgetpro/internal/credstore"
	"github.com/oladimeji-kazeem/budgetpro/internal/domain"
)

func tokenWithRole(t *testing.T, role domain.Role) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{
		UserID: "user-1",
		Email:  "user@budgetpro.local",
		Role:   role,
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func pairWithRole(t *testing.T, role domain.Role) domain.TokenPair {
	return domain.TokenPair{Access: tokenWithRole(t, role), Refresh: "refresh-opaque"}
}

func TestInitialize_NoStoredPair(t *testing.T) {
	m := NewManager(credstore.NewMemoryStore(), zap.NewNop())
	m.Initialize()

	assert.False(t, m.Current().Authenticated())
	assert.Nil(t, m.Current().Tokens)
}

func TestInitialize_RestoresStoredPair(t *testing.T) {
	store := credstore.NewMemoryStore()
	require.NoError(t, store.Save(pairWithRole(t, domain.RoleAppAdmin)))

	m := NewManager(store, zap.NewNop())
	m.Initialize()

	sess := m.Current()
	require.True(t, sess.Authenticated())
	assert.Equal(t, domain.RoleAppAdmin, sess.Identity.Role)
	assert.Equal(t, "user@budgetpro.local", sess.Identity.Email)
}

func TestInitialize_CorruptPairClearedFromStore(t *testing.T) {
	store := credstore.NewMemoryStore()
	require.NoError(t, store.Save(domain.TokenPair{Access: "not-a-token", Refresh: "r"}))

	m := NewManager(store, zap.NewNop())
	m.Initialize()

	assert.False(t, m.Current().Authenticated())
	_, ok := store.Load()
	assert.False(t, ok, "corrupt pair should be cleared")
}

func TestLogin_SetsIdentityForEveryRole(t *testing.T) {
	for _, role := range []domain.Role{
		domain.RoleDeptOfficer,
		domain.RoleHeadOfDept,
		domain.RoleAppAdmin,
		domain.RoleSuperAdmin,
	} {
		t.Run(string(role), func(t *testing.T) {
			store := credstore.NewMemoryStore()
			m := NewManager(store, zap.NewNop())
			m.Initialize()

			require.NoError(t, m.Login(pairWithRole(t, role)))

			sess := m.Current()
			require.True(t, sess.Authenticated())
			assert.Equal(t, role, sess.Identity.Role)

			stored, ok := store.Load()
			assert.True(t, ok)
			assert.Equal(t, *sess.Tokens, stored)
		})
	}
}

func TestLogin_UndecodablePairIsHardError(t *testing.T) {
	store := credstore.NewMemoryStore()
	m := NewManager(store, zap.NewNop())
	m.Initialize()

	// start authenticated so we can see the revert
	require.NoError(t, m.Login(pairWithRole(t, domain.RoleDeptOfficer)))

	err := m.Login(domain.TokenPair{Access: "broken", Refresh: "r"})
	assert.ErrorIs(t, err, auth.ErrTokenMalformed)
	assert.False(t, m.Current().Authenticated())
}

func TestLogin_BadPairNeverPersisted(t *testing.T) {
	store := credstore.NewMemoryStore()
	m := NewManager(store, zap.NewNop())
	m.Initialize()

	_ = m.Login(domain.TokenPair{Access: "broken", Refresh: "r"})

	_, ok := store.Load()
	assert.False(t, ok)
}

func TestLogout_Idempotent(t *testing.T) {
	store := credstore.NewMemoryStore()
	m := NewManager(store, zap.NewNop())
	m.Initialize()
	require.NoError(t, m.Login(pairWithRole(t, domain.RoleSuperAdmin)))

	m.Logout()
	first := m.Current()

	m.Logout()
	second := m.Current()

	assert.False(t, first.Authenticated())
	assert.Equal(t, first, second)

	_, ok := store.Load()
	assert.False(t, ok)
}

func TestLoginAfterLogout_LastCallWins(t *testing.T) {
	store := credstore.NewMemoryStore()
	m := NewManager(store, zap.NewNop())
	m.Initialize()

	require.NoError(t, m.Login(pairWithRole(t, domain.RoleDeptOfficer)))
	m.Logout()
	require.NoError(t, m.Login(pairWithRole(t, domain.RoleHeadOfDept)))

	sess := m.Current()
	require.True(t, sess.Authenticated())
	assert.Equal(t, domain.RoleHeadOfDept, sess.Identity.Role)
}

func TestInitialize_SurvivesRestartWithFileStore(t *testing.T) {
	path := t.TempDir() + "/credentials.db"

	store, err := credstore.Open(path)
	require.NoError(t, err)
	m := NewManager(store, zap.NewNop())
	m.Initialize()
	require.NoError(t, m.Login(pairWithRole(t, domain.RoleAppAdmin)))
	require.NoError(t, store.Close())

	// simulate a fresh process
	store2, err := credstore.Open(path)
	require.NoError(t, err)
	defer store2.Close()

	m2 := NewManager(store2, zap.NewNop())
	m2.Initialize()

	sess := m2.Current()
	require.True(t, sess.Authenticated())
	assert.Equal(t, domain.RoleAppAdmin, sess.Identity.Role)
}
