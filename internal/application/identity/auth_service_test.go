package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/domain/identity"
	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/domain/shared"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("registers new user", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("ExistsByUsername", ctx, "lebron").Return(false, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

		service := NewAuthService(repo, zap.NewNop())
		err := service.Register(ctx, RegisterInput{Username: "lebron", Password: "secret123"})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("normalizes username before the uniqueness check", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("ExistsByUsername", ctx, "lebron").Return(false, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

		service := NewAuthService(repo, zap.NewNop())
		err := service.Register(ctx, RegisterInput{Username: "  LeBron ", Password: "secret123"})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejects taken username", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("ExistsByUsername", ctx, "lebron").Return(true, nil)

		service := NewAuthService(repo, zap.NewNop())
		err := service.Register(ctx, RegisterInput{Username: "lebron", Password: "secret123"})

		assert.ErrorIs(t, err, identity.ErrUsernameTaken)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("maps concurrent duplicate to username taken", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("ExistsByUsername", ctx, "lebron").Return(false, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*identity.User")).Return(shared.ErrAlreadyExists)

		service := NewAuthService(repo, zap.NewNop())
		err := service.Register(ctx, RegisterInput{Username: "lebron", Password: "secret123"})

		assert.ErrorIs(t, err, identity.ErrUsernameTaken)
	})

	t.Run("rejects invalid input without touching the repository", func(t *testing.T) {
		repo := new(MockUserRepository)

		service := NewAuthService(repo, zap.NewNop())
		err := service.Register(ctx, RegisterInput{Username: "ab", Password: "secret123"})

		require.Error(t, err)
		repo.AssertNotCalled(t, "ExistsByUsername", mock.Anything, mock.Anything)
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		repo := new(MockUserRepository)
		repoErr := errors.New("connection lost")
		repo.On("ExistsByUsername", ctx, "lebron").Return(false, repoErr)

		service := NewAuthService(repo, zap.NewNop())
		err := service.Register(ctx, RegisterInput{Username: "lebron", Password: "secret123"})

		assert.ErrorIs(t, err, repoErr)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()

	newStoredUser := func(t *testing.T) *identity.User {
		t.Helper()
		user, err := identity.NewUser("lebron", "secret123")
		require.NoError(t, err)
		user.ID = 42
		return user
	}

	t.Run("authenticates valid credentials", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByUsername", ctx, "lebron").Return(newStoredUser(t), nil)

		service := NewAuthService(repo, zap.NewNop())
		info, err := service.Authenticate(ctx, LoginInput{Username: "lebron", Password: "secret123"})

		require.NoError(t, err)
		assert.Equal(t, uint(42), info.ID)
		assert.Equal(t, "lebron", info.Username)
	})

	t.Run("rejects unknown username", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByUsername", ctx, "nobody").Return(nil, shared.ErrNotFound)

		service := NewAuthService(repo, zap.NewNop())
		_, err := service.Authenticate(ctx, LoginInput{Username: "nobody", Password: "secret123"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByUsername", ctx, "lebron").Return(newStoredUser(t), nil)

		service := NewAuthService(repo, zap.NewNop())
		_, err := service.Authenticate(ctx, LoginInput{Username: "lebron", Password: "wrongpass"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user and wrong password yield the same error", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByUsername", ctx, "nobody").Return(nil, shared.ErrNotFound)
		repo.On("FindByUsername", ctx, "lebron").Return(newStoredUser(t), nil)

		service := NewAuthService(repo, zap.NewNop())
		_, errUnknown := service.Authenticate(ctx, LoginInput{Username: "nobody", Password: "secret123"})
		_, errWrong := service.Authenticate(ctx, LoginInput{Username: "lebron", Password: "wrongpass"})

		assert.Equal(t, errUnknown, errWrong)
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		repo := new(MockUserRepository)
		repoErr := errors.New("connection lost")
		repo.On("FindByUsername", ctx, "lebron").Return(nil, repoErr)

		service := NewAuthService(repo, zap.NewNop())
		_, err := service.Authenticate(ctx, LoginInput{Username: "lebron", Password: "secret123"})

		assert.ErrorIs(t, err, repoErr)
	})
}
