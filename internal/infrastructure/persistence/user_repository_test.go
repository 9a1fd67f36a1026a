package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/domain/identity"
	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/domain/shared"
	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/infrastructure/persistence/models"
)

func setupTestRepo(t *testing.T) *GormUserRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UserModel{}))

	return NewGormUserRepository(db)
}

func newTestUser(t *testing.T, username string) *identity.User {
	t.Helper()
	user, err := identity.NewUser(username, "secret123")
	require.NoError(t, err)
	return user
}

func TestGormUserRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user and backfills ID", func(t *testing.T) {
		repo := setupTestRepo(t)
		user := newTestUser(t, "lebron")

		require.NoError(t, repo.Create(ctx, user))
		assert.NotZero(t, user.ID)
	})

	t.Run("duplicate username maps to already exists", func(t *testing.T) {
		repo := setupTestRepo(t)
		require.NoError(t, repo.Create(ctx, newTestUser(t, "lebron")))

		err := repo.Create(ctx, newTestUser(t, "lebron"))
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})
}

func TestGormUserRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	user := newTestUser(t, "lebron")
	require.NoError(t, repo.Create(ctx, user))

	t.Run("finds existing user", func(t *testing.T) {
		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "lebron", found.Username)
		assert.Equal(t, user.PasswordHash, found.PasswordHash)
	})

	t.Run("missing user maps to not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 9999)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormUserRepository_FindByUsername(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)
	require.NoError(t, repo.Create(ctx, newTestUser(t, "lebron")))

	t.Run("finds user regardless of case", func(t *testing.T) {
		found, err := repo.FindByUsername(ctx, "LeBron")
		require.NoError(t, err)
		assert.Equal(t, "lebron", found.Username)
	})

	t.Run("missing user maps to not found", func(t *testing.T) {
		_, err := repo.FindByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormUserRepository_ExistsByUsername(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)
	require.NoError(t, repo.Create(ctx, newTestUser(t, "lebron")))

	exists, err := repo.ExistsByUsername(ctx, "lebron")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByUsername(ctx, "LEBRON")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormUserRepository_Count(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, repo.Create(ctx, newTestUser(t, "lebron")))
	require.NoError(t, repo.Create(ctx, newTestUser(t, "stephen")))

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
