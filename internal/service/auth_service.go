package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/oladimeji-kazeem/budgetpro/internal/auth"
	"github.com/oladimeji-kazeem/budgetpro/internal/config"
	"github.com/oladimeji-kazeem/budgetpro/internal/domain"
	"github.com/oladimeji-kazeem/budgetpro/internal/events"
	"github.com/oladimeji-kazeem/budgetpro/internal/repository"
	apperrors "github.com/oladimeji-kazeem/budgetpro/pkg/util/errorutil"
)

// Registration is the payload for a self-registration.
type Registration struct {
	FirstName  string
	LastName   string
	Email      string
	Department string
	Role       domain.Role
	Password   string
}

// AuthService coordinates registration, login and token refresh.
type AuthService struct {
	users      repository.UserRepository
	requests   repository.AccessRequestRepository
	refresh    repository.RefreshTokenStore
	dispatcher events.Dispatcher
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// AuthDependencies encapsulates repo requirements for the auth service.
type AuthDependencies struct {
	UserRepo          repository.UserRepository
	AccessRequestRepo repository.AccessRequestRepository
	RefreshTokens     repository.RefreshTokenStore
	Dispatcher        events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		requests:   deps.AccessRequestRepo,
		refresh:    deps.RefreshTokens,
		dispatcher: deps.Dispatcher,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMin, cfg.Auth.RefreshTokenTTLHours),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates an inactive account plus its pending access request.
// Self-registration is limited to the DO and HOD roles; admin roles are
// assigned by a super admin out of band.
func (s *AuthService) Register(ctx context.Context, reg Registration) (*domain.User, error) {
	if reg.Role != domain.RoleDeptOfficer && reg.Role != domain.RoleHeadOfDept {
		return nil, apperrors.NewValidationError("invalid role", map[string]string{
			"role": "self-registration allows DO or HOD only",
		})
	}

	if _, err := s.users.GetByEmail(ctx, reg.Email); err == nil {
		return nil, apperrors.NewConflict("email already registered", map[string]string{
			"email": "an account with this email already exists",
		})
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	hash, err := auth.HashPassword(reg.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        reg.Email,
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		Role:         reg.Role,
		Department:   reg.Department,
		Active:       false,
		Approved:     false,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	request := &domain.AccessRequest{
		UserID:        user.ID,
		Status:        domain.RequestStatusPending,
		RequestedRole: user.Role,
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventUserRegistered,
		UserID:    user.ID,
		Timestamp: time.Now(),
		Payload: events.UserRegisteredPayload{
			Email:         user.Email,
			RequestedRole: user.Role,
			Department:    user.Department,
		},
	})

	return user, nil
}

// Login authenticates by email and password and mints a token pair. An
// existing but unapproved account is rejected distinctly so the client
// can show the pending-approval message.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.TokenPair{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return domain.TokenPair{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return domain.TokenPair{}, apperrors.NewUnauthorized("invalid credentials")
	}
	if !user.Approved || !user.Active {
		return domain.TokenPair{}, apperrors.NewAccountPending()
	}

	return s.issuePair(ctx, user)
}

// Refresh rotates a refresh token: the presented token must verify and
// its id must still be on the allow-list; the old id is removed before a
// new pair is issued.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	claims, err := s.tokenMgr.VerifyRefresh(refreshToken)
	if err != nil {
		return domain.TokenPair{}, apperrors.NewUnauthorized("invalid refresh token")
	}

	userID, live, err := s.refresh.UserID(ctx, claims.TokenID)
	if err != nil {
		return domain.TokenPair{}, err
	}
	if !live || userID != claims.UserID {
		return domain.TokenPair{}, apperrors.NewUnauthorized("refresh token no longer valid")
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.TokenPair{}, apperrors.NewUnauthorized("user not found")
		}
		return domain.TokenPair{}, err
	}
	if !user.Active {
		return domain.TokenPair{}, apperrors.NewUnauthorized("account disabled")
	}

	if err := s.refresh.Delete(ctx, claims.TokenID); err != nil {
		return domain.TokenPair{}, err
	}

	return s.issuePair(ctx, user)
}

func (s *AuthService) issuePair(ctx context.Context, user *domain.User) (domain.TokenPair, error) {
	pair, tokenID, err := s.tokenMgr.GeneratePair(user)
	if err != nil {
		return domain.TokenPair{}, err
	}
	if err := s.refresh.Put(ctx, tokenID, user.ID, s.tokenMgr.RefreshTTL()); err != nil {
		return domain.TokenPair{}, err
	}
	return pair, nil
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
