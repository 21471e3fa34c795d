package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/medequip-service/internal/auth"
	"github.com/spec-kit/medequip-service/internal/domain"
	"github.com/spec-kit/medequip-service/internal/repository"
	apperrors "github.com/spec-kit/medequip-service/pkg/util/errorutil"
)

const duplicateAccountMessage = "Username or email already exists"

// AuthService coordinates registration and login flows.
type AuthService struct {
	users    repository.UserRepository
	hasher   auth.PasswordHasher
	tokenMgr *auth.TokenManager
	rt       Runtime
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	UserRepo     repository.UserRepository
	Hasher       auth.PasswordHasher
	TokenManager *auth.TokenManager
	Runtime      Runtime
}

// RegisterInput describes a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     domain.Role
}

// LoginResult carries an issued session token.
type LoginResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	return &AuthService{
		users:    deps.UserRepo,
		hasher:   deps.Hasher,
		tokenMgr: deps.TokenManager,
		rt:       deps.Runtime.withDefaults(),
	}
}

// Register creates a new account. Username and email must both be unused.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)

	existing, err := s.users.FindByUsernameOrEmail(ctx, username, email)
	if err == nil && existing != nil {
		return nil, apperrors.NewConflict(duplicateAccountMessage, nil)
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewInternalError(err)
	}

	role := input.Role
	if role == "" {
		role = domain.RoleStandard
	}
	if !role.Valid() {
		return nil, apperrors.NewValidationError("invalid role", map[string]any{"role": string(role)})
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		ID:           s.rt.NewID(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    s.rt.now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		// Lost the race against a concurrent registration; the unique index decides.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict(duplicateAccountMessage, nil)
		}
		return nil, apperrors.NewInternalError(err)
	}

	s.rt.Logger.Info("user registered", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

// Login authenticates a user and issues a session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewUnauthorized("Invalid credentials")
		}
		return nil, apperrors.NewInternalError(err)
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized("Invalid credentials")
	}

	token, exp, err := s.tokenMgr.Issue(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &LoginResult{User: user, Token: token, ExpiresAt: exp}, nil
}

// Me returns the stored account of the caller.
func (s *AuthService) Me(_ context.Context, identity *domain.Identity) (*domain.User, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}
	if identity.User == nil {
		return nil, apperrors.NewUnauthorized("user not found")
	}
	return identity.User, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
