package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"vidtube/internal/domain"
)

func newTestRepo(t *testing.T) *UserRepository {
	t.Helper()
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: ":memory:"}),
		&gorm.Config{TranslateError: true},
	)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(Models()...))
	return NewUserRepository(db)
}

func testUser() *domain.User {
	return &domain.User{
		FullName:     "Chai Aur Code",
		Username:     "chai",
		Email:        "chai@example.com",
		PasswordHash: "$2a$10$notarealhash",
		AvatarURL:    "http://cdn.local/media/avatar.png",
	}
}

func TestCreateAndGetByID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	u := testUser()
	require.NoError(t, repo.Create(ctx, u))
	require.NotZero(t, u.ID)

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "chai", got.Username)
	assert.Equal(t, "chai@example.com", got.Email)
	assert.Empty(t, got.RefreshToken)
}

func TestCreateNormalizesCase(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	u := testUser()
	u.Username = "  ChAi  "
	u.Email = "Chai@Example.COM"
	require.NoError(t, repo.Create(ctx, u))

	assert.Equal(t, "chai", u.Username)
	assert.Equal(t, "chai@example.com", u.Email)
}

func TestUniqueConstraints(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testUser()))

	dupUsername := testUser()
	dupUsername.Email = "other@example.com"
	err := repo.Create(ctx, dupUsername)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	dupEmail := testUser()
	dupEmail.Username = "other"
	err = repo.Create(ctx, dupEmail)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestGetByUsernameOrEmail(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testUser()))

	byUsername, err := repo.GetByUsernameOrEmail(ctx, "CHAI")
	require.NoError(t, err)
	assert.Equal(t, "chai", byUsername.Username)

	byEmail, err := repo.GetByUsernameOrEmail(ctx, "chai@example.com")
	require.NoError(t, err)
	assert.Equal(t, byUsername.ID, byEmail.ID)

	_, err = repo.GetByUsernameOrEmail(ctx, "nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestExistsByUsernameOrEmail(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testUser()))

	exists, err := repo.ExistsByUsernameOrEmail(ctx, "chai", "unused@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByUsernameOrEmail(ctx, "unused", "chai@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByUsernameOrEmail(ctx, "unused", "unused@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUpdateRefreshToken(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	u := testUser()
	require.NoError(t, repo.Create(ctx, u))

	require.NoError(t, repo.UpdateRefreshToken(ctx, u.ID, "first-token"))
	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "first-token", got.RefreshToken)

	// latest-wins: a new token replaces the previous one
	require.NoError(t, repo.UpdateRefreshToken(ctx, u.ID, "second-token"))
	got, err = repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "second-token", got.RefreshToken)

	require.NoError(t, repo.UpdateRefreshToken(ctx, u.ID, ""))
	got, err = repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, got.RefreshToken)
}
