package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oladimeji-kazeem/budgetpro/internal/auth"
	"github.com/oladimeji-kazeem/budgetpro/internal/config"
	"github.com/oladimeji-kazeem/budgetpro/internal/domain"
	"github.com/oladimeji-kazeem/budgetpro/internal/events"
	apperrors "github.com/oladimeji-kazeem/budgetpro/pkg/util/errorutil"
)

type authFixture struct {
	users      *fakeUserRepo
	requests   *fakeRequestRepo
	refresh    *fakeRefreshStore
	dispatcher *capturingDispatcher
	svc        *AuthService
}

func newAuthFixture() *authFixture {
	users := newFakeUserRepo()
	requests := newFakeRequestRepo(users)
	refresh := newFakeRefreshStore()
	dispatcher := &capturingDispatcher{}

	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:            "test-secret",
			AccessTokenTTLMin:    30,
			RefreshTokenTTLHours: 24,
			BcryptCost:           4,
		},
	}

	return &authFixture{
		users:      users,
		requests:   requests,
		refresh:    refresh,
		dispatcher: dispatcher,
		svc: NewAuthService(cfg, AuthDependencies{
			UserRepo:          users,
			AccessRequestRepo: requests,
			RefreshTokens:     refresh,
			Dispatcher:        dispatcher,
		}),
	}
}

func registration() Registration {
	return Registration{
		FirstName:  "Ada",
		LastName:   "Obi",
		Email:      "ada@budgetpro.local",
		Department: "Finance",
		Role:       domain.RoleDeptOfficer,
		Password:   "s3cret",
	}
}

func TestRegister_CreatesInactiveUserWithPendingRequest(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	user, err := f.svc.Register(ctx, registration())
	require.NoError(t, err)

	assert.False(t, user.Active)
	assert.False(t, user.Approved)
	assert.NotEqual(t, "s3cret", user.PasswordHash)

	pending, err := f.requests.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, user.ID, pending[0].Request.UserID)
	assert.Equal(t, domain.RoleDeptOfficer, pending[0].Request.RequestedRole)

	published := f.dispatcher.published()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventUserRegistered, published[0].Type)
}

func TestRegister_RejectsAdminRoles(t *testing.T) {
	f := newAuthFixture()

	for _, role := range []domain.Role{domain.RoleAppAdmin, domain.RoleSuperAdmin} {
		reg := registration()
		reg.Role = role
		_, err := f.svc.Register(context.Background(), reg)

		var domainErr *apperrors.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.svc.Register(ctx, registration())
	require.NoError(t, err)

	_, err = f.svc.Register(ctx, registration())
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)
}

func approveUser(t *testing.T, f *authFixture, email string) {
	t.Helper()
	user, err := f.users.GetByEmail(context.Background(), email)
	require.NoError(t, err)
	user.Active = true
	user.Approved = true
	require.NoError(t, f.users.Update(context.Background(), user))
}

func TestLogin_PendingAccountRejectedDistinctly(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.svc.Register(ctx, registration())
	require.NoError(t, err)

	_, err = f.svc.Login(ctx, "ada@budgetpro.local", "s3cret")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ACCOUNT_PENDING", domainErr.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.svc.Register(ctx, registration())
	require.NoError(t, err)
	approveUser(t, f, "ada@budgetpro.local")

	_, err = f.svc.Login(ctx, "ada@budgetpro.local", "wrong")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)

	_, err = f.svc.Login(ctx, "nobody@budgetpro.local", "s3cret")
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
}

func TestLogin_IssuesDecodablePair(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.svc.Register(ctx, registration())
	require.NoError(t, err)
	approveUser(t, f, "ada@budgetpro.local")

	pair, err := f.svc.Login(ctx, "ada@budgetpro.local", "s3cret")
	require.NoError(t, err)

	claims, err := auth.DecodeAccessToken(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, "ada@budgetpro.local", claims.Email)
	assert.Equal(t, domain.RoleDeptOfficer, claims.Role)
	assert.Equal(t, "Finance", claims.Department)
}

func TestRefresh_RotatesToken(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.svc.Register(ctx, registration())
	require.NoError(t, err)
	approveUser(t, f, "ada@budgetpro.local")

	pair, err := f.svc.Login(ctx, "ada@budgetpro.local", "s3cret")
	require.NoError(t, err)

	rotated, err := f.svc.Refresh(ctx, pair.Refresh)
	require.NoError(t, err)
	assert.NotEqual(t, pair.Refresh, rotated.Refresh)

	// the replaced refresh token no longer works
	_, err = f.svc.Refresh(ctx, pair.Refresh)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
}

func TestRefresh_GarbageToken(t *testing.T) {
	f := newAuthFixture()

	_, err := f.svc.Refresh(context.Background(), "garbage")
	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
}
