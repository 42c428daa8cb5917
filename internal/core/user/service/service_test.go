package userapp

import (
	"context"
	"path/filepath"
	"testing"

	dbadapter "chirper/internal/adapters/database"
	"chirper/internal/config"
	userEntity "chirper/internal/core/user"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testJWTKey = []byte("test-secret")

func setupService(t *testing.T) *UserService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&userEntity.User{}))

	config.DB = db
	config.Logger = zap.NewNop()

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return NewUserService(dbadapter.NewUserRepositoryDatabase(), testJWTKey)
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	u, err := svc.RegisterUser(ctx, "Alice", "alice", "alice@example.com", "password")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice", u.Username)

	t.Run("PasswordIsHashed", func(t *testing.T) {
		var stored userEntity.User
		require.NoError(t, config.DB.Where("username = ?", "alice").First(&stored).Error)
		assert.NotEqual(t, "password", stored.Password)
	})

	t.Run("DuplicateUsernameRejected", func(t *testing.T) {
		_, err := svc.RegisterUser(ctx, "Alice 2", "alice", "other@example.com", "password")
		assert.Error(t, err)
	})

	t.Run("DuplicateEmailRejected", func(t *testing.T) {
		_, err := svc.RegisterUser(ctx, "Alice 2", "alice2", "alice@example.com", "password")
		assert.Error(t, err)
	})

	t.Run("MissingFieldsRejected", func(t *testing.T) {
		_, err := svc.RegisterUser(ctx, "No Password", "nopass", "nopass@example.com", "")
		assert.Error(t, err)
	})

	t.Run("Login", func(t *testing.T) {
		res, err := svc.LoginUser(ctx, "alice", "password")
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		assert.Greater(t, res.ExpiresAt, int64(0))

		// The token subject must be the user's ID.
		claims := &jwt.StandardClaims{}
		_, err = jwt.ParseWithClaims(res.Token, claims, func(tk *jwt.Token) (interface{}, error) {
			return testJWTKey, nil
		})
		require.NoError(t, err)
		assert.Equal(t, u.ID, claims.Subject)
	})

	t.Run("LoginWrongPassword", func(t *testing.T) {
		_, err := svc.LoginUser(ctx, "alice", "wrong")
		assert.Error(t, err)
	})

	t.Run("LoginUnknownUser", func(t *testing.T) {
		_, err := svc.LoginUser(ctx, "nobody", "password")
		assert.Error(t, err)
	})
}

func TestUserService_Profile(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	u, err := svc.RegisterUser(ctx, "Bob", "bob", "bob@example.com", "password")
	require.NoError(t, err)

	t.Run("GetByUsername", func(t *testing.T) {
		got, err := svc.GetUserByUsername(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
	})

	t.Run("UpdateProfile", func(t *testing.T) {
		updated, err := svc.UpdateProfile(ctx, u.ID, "Bobby", "building things")
		require.NoError(t, err)
		assert.Equal(t, "Bobby", updated.Name)
		assert.Equal(t, "building things", updated.Bio)
	})

	t.Run("UpdateProfileNeedsName", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, u.ID, "", "bio only")
		assert.Error(t, err)
	})
}
