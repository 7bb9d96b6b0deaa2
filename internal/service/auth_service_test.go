package service

import (
	"context"
	"testing"

	"titiktemu/internal/config"
	"titiktemu/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:   "test-secret-for-auth-service",
		JWTTTLHours: 24,
		Env:         "test",
	}
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Username:    "alice",
		Email:       "alice@x.com",
		Password:    "secret1",
		NamaLengkap: "Alice Putri",
		Jabatan:     "Mahasiswa",
		NimNip:      "222112345",
		NoHp:        "081234567890",
	}
}

func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	t.Run("success returns token and profile", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		var created *models.User
		repo.createFn = func(_ context.Context, u *models.User) error {
			u.ID = 1
			created = u
			return nil
		}
		svc := NewAuthService(repo, testConfig())

		res, err := svc.Register(context.Background(), validRegisterInput())
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, "alice", res.Username)
		assert.Equal(t, "alice@x.com", res.Email)
		assert.Equal(t, "Alice Putri", res.NamaLengkap)

		require.NotNil(t, created)
		assert.NotEqual(t, "secret1", created.Password, "password must be stored hashed")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret1")))
	})

	t.Run("missing required field", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(noopUserRepo(), testConfig())
		in := validRegisterInput()
		in.NamaLengkap = "  "
		_, err := svc.Register(context.Background(), in)
		assertAppErrorCode(t, err, models.CodeValidation)
	})

	t.Run("nim_nip is optional", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		svc := NewAuthService(repo, testConfig())
		in := validRegisterInput()
		in.NimNip = ""
		_, err := svc.Register(context.Background(), in)
		assert.NoError(t, err)
	})

	t.Run("short username", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(noopUserRepo(), testConfig())
		in := validRegisterInput()
		in.Username = "ab"
		_, err := svc.Register(context.Background(), in)
		assertAppErrorCode(t, err, models.CodeValidation)
	})

	t.Run("bad email", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(noopUserRepo(), testConfig())
		in := validRegisterInput()
		in.Email = "not-an-email"
		_, err := svc.Register(context.Background(), in)
		assertAppErrorCode(t, err, models.CodeValidation)
	})

	t.Run("short password", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(noopUserRepo(), testConfig())
		in := validRegisterInput()
		in.Password = "12345"
		_, err := svc.Register(context.Background(), in)
		assertAppErrorCode(t, err, models.CodeValidation)
	})

	t.Run("duplicate username", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
			return &models.User{ID: 7, Username: username}, nil
		}
		svc := NewAuthService(repo, testConfig())
		_, err := svc.Register(context.Background(), validRegisterInput())
		assertAppErrorCode(t, err, models.CodeConflict)
		assert.Equal(t, "Username sudah digunakan", err.(*models.AppError).Message)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
			return &models.User{ID: 7, Email: email}, nil
		}
		svc := NewAuthService(repo, testConfig())
		_, err := svc.Register(context.Background(), validRegisterInput())
		assertAppErrorCode(t, err, models.CodeConflict)
		assert.Equal(t, "Email sudah digunakan", err.(*models.AppError).Message)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &models.User{
		ID:          1,
		Username:    "alice",
		Email:       "alice@x.com",
		Password:    string(hashed),
		NamaLengkap: "Alice Putri",
	}

	repoWithAlice := func() *userRepoStub {
		repo := noopUserRepo()
		repo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
			if username == "alice" {
				u := *stored
				return &u, nil
			}
			return nil, nil
		}
		return repo
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(repoWithAlice(), testConfig())
		res, err := svc.Login(context.Background(), "alice", "secret1")
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, "alice", res.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(repoWithAlice(), testConfig())
		_, err := svc.Login(context.Background(), "alice", "wrong")
		assertAppErrorCode(t, err, models.CodeUnauthorized)
		assert.Equal(t, "Username atau password salah", err.(*models.AppError).Message)
	})

	t.Run("unknown username yields the same message", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(repoWithAlice(), testConfig())
		_, err := svc.Login(context.Background(), "ghost", "secret1")
		assertAppErrorCode(t, err, models.CodeUnauthorized)
		assert.Equal(t, "Username atau password salah", err.(*models.AppError).Message)
	})
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	repo := noopUserRepo()
	repo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		if username == "alice" {
			return &models.User{ID: 42, Username: "alice"}, nil
		}
		return nil, nil
	}
	svc := NewAuthService(repo, cfg)

	tokenStr, err := svc.GenerateToken("alice")
	require.NoError(t, err)

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	sub, err := claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "alice", sub)
	iss, err := claims.GetIssuer()
	require.NoError(t, err)
	assert.Equal(t, TokenIssuer, iss)

	// The token subject resolves back to the same user record.
	caller, err := svc.ResolveCaller(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, uint(42), caller.ID)
}

func TestAuthService_ResolveCaller_Unknown(t *testing.T) {
	t.Parallel()
	svc := NewAuthService(noopUserRepo(), testConfig())
	_, err := svc.ResolveCaller(context.Background(), "ghost")
	assertAppErrorCode(t, err, models.CodeNotFound)
}
