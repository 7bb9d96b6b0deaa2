package service

import (
	"context"
	"testing"

	"titiktemu/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func profileCaller(t *testing.T) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{
		ID:          1,
		Username:    "alice",
		Email:       "alice@x.com",
		Password:    string(hashed),
		NamaLengkap: "Alice Putri",
		Jabatan:     "Mahasiswa",
		NimNip:      "222112345",
		NoHp:        "081234567890",
	}
}

func TestUserService_Profile(t *testing.T) {
	t.Parallel()
	svc := NewUserService(noopUserRepo())
	resp := svc.Profile(profileCaller(t))
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "Alice Putri", resp.NamaLengkap)
}

func TestUserService_UpdateProfile(t *testing.T) {
	t.Parallel()

	t.Run("partial update keeps blank fields", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		var saved *models.User
		repo.updateFn = func(_ context.Context, u *models.User) error {
			saved = u
			return nil
		}
		svc := NewUserService(repo)

		resp, err := svc.UpdateProfile(context.Background(), profileCaller(t), UpdateProfileInput{
			NamaLengkap: "Alice Wijaya",
		})
		require.NoError(t, err)
		assert.Equal(t, "Alice Wijaya", resp.NamaLengkap)
		assert.Equal(t, "Mahasiswa", resp.Jabatan)
		assert.Equal(t, "alice@x.com", resp.Email)
		require.NotNil(t, saved)
		assert.Equal(t, "Alice Wijaya", saved.NamaLengkap)
	})

	t.Run("email change to free address succeeds", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		svc := NewUserService(repo)

		resp, err := svc.UpdateProfile(context.Background(), profileCaller(t), UpdateProfileInput{
			Email: "alice.baru@x.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "alice.baru@x.com", resp.Email)
	})

	t.Run("email change to taken address conflicts", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
			return &models.User{ID: 2, Email: email}, nil
		}
		svc := NewUserService(repo)

		_, err := svc.UpdateProfile(context.Background(), profileCaller(t), UpdateProfileInput{
			Email: "taken@x.com",
		})
		assertAppErrorCode(t, err, models.CodeConflict)
		assert.Equal(t, "Email sudah digunakan oleh user lain", err.(*models.AppError).Message)
	})

	t.Run("unchanged email skips the conflict check", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
			t.Fatal("GetByEmail should not be called for an unchanged email")
			return nil, nil
		}
		svc := NewUserService(repo)

		_, err := svc.UpdateProfile(context.Background(), profileCaller(t), UpdateProfileInput{
			Email:       "alice@x.com",
			NamaLengkap: "Alice Putri",
		})
		assert.NoError(t, err)
	})

	t.Run("malformed email is a validation error", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(noopUserRepo())
		_, err := svc.UpdateProfile(context.Background(), profileCaller(t), UpdateProfileInput{
			Email: "not-an-email",
		})
		assertAppErrorCode(t, err, models.CodeValidation)
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	t.Parallel()

	t.Run("success rehashes the password", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		var saved *models.User
		repo.updateFn = func(_ context.Context, u *models.User) error {
			saved = u
			return nil
		}
		svc := NewUserService(repo)

		caller := profileCaller(t)
		require.NoError(t, svc.ChangePassword(context.Background(), caller, "secret1", "newsecret"))
		require.NotNil(t, saved)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("newsecret")))
	})

	t.Run("wrong old password", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(noopUserRepo())
		err := svc.ChangePassword(context.Background(), profileCaller(t), "wrong", "newsecret")
		assertAppErrorCode(t, err, models.CodeUnauthorized)
		assert.Equal(t, "Password lama tidak sesuai", err.(*models.AppError).Message)
	})

	t.Run("short new password", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(noopUserRepo())
		err := svc.ChangePassword(context.Background(), profileCaller(t), "secret1", "12345")
		assertAppErrorCode(t, err, models.CodeValidation)
	})
}

func TestUserService_DeleteAccount(t *testing.T) {
	t.Parallel()
	repo := noopUserRepo()
	var deleted *models.User
	repo.deleteFn = func(_ context.Context, u *models.User) error {
		deleted = u
		return nil
	}
	svc := NewUserService(repo)

	caller := profileCaller(t)
	require.NoError(t, svc.DeleteAccount(context.Background(), caller))
	require.NotNil(t, deleted)
	assert.Equal(t, caller.ID, deleted.ID)
}
