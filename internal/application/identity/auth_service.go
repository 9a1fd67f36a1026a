package identity

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/domain/identity"
	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/domain/shared"
)

// ErrInvalidCredentials is returned for both an unknown username and a wrong
// password, so the response never reveals which accounts exist.
var ErrInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")

// AuthService handles registration and authentication
type AuthService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo identity.UserRepository, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register creates a new account. Returns identity.ErrUsernameTaken when the
// username is already in use, whether detected by the pre-check or by the
// unique index during the insert.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) error {
	user, err := identity.NewUser(input.Username, input.Password)
	if err != nil {
		return err
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, user.Username)
	if err != nil {
		s.logger.Error("Failed to check username availability", zap.Error(err))
		return err
	}
	if exists {
		s.logger.Info("Registration rejected: username taken", zap.String("username", user.Username))
		return identity.ErrUsernameTaken
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can slip between the check and the
		// insert; the unique index reports it as a duplicate.
		if errors.Is(err, shared.ErrAlreadyExists) {
			s.logger.Info("Registration rejected: concurrent duplicate", zap.String("username", user.Username))
			return identity.ErrUsernameTaken
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return err
	}

	s.logger.Info("User registered",
		zap.String("username", user.Username),
		zap.Uint("user_id", user.ID))
	return nil
}

// Authenticate verifies credentials and returns the identity on success
func (s *AuthService) Authenticate(ctx context.Context, input LoginInput) (*UserInfo, error) {
	user, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Info("Login failed: unknown username", zap.String("username", input.Username))
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Failed to look up user", zap.Error(err))
		return nil, err
	}

	if !user.VerifyPassword(input.Password) {
		s.logger.Info("Login failed: wrong password", zap.String("username", input.Username))
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("User logged in",
		zap.String("username", user.Username),
		zap.Uint("user_id", user.ID))
	return &UserInfo{
		ID:       user.ID,
		Username: user.Username,
	}, nil
}
