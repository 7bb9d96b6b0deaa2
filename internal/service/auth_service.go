// Package service implements the domain logic on top of the repositories.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"titiktemu/internal/config"
	"titiktemu/internal/middleware"
	"titiktemu/internal/models"
	"titiktemu/internal/repository"
	"titiktemu/internal/validation"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Token issuer/audience claims checked by the auth middleware.
const (
	TokenIssuer   = "titiktemu-api"
	TokenAudience = "titiktemu-client"
)

// AuthService registers accounts, authenticates logins, and resolves the
// token-bearing caller of each request.
type AuthService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

// RegisterInput carries the registration request fields.
type RegisterInput struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	NamaLengkap string `json:"nama_lengkap"`
	Jabatan     string `json:"jabatan"`
	NimNip      string `json:"nim_nip"`
	NoHp        string `json:"no_hp"`
}

// AuthResult is the outcome of a successful register or login.
type AuthResult struct {
	Token       string `json:"token"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	NamaLengkap string `json:"nama_lengkap"`
}

// NewAuthService returns a new AuthService.
func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{userRepo: userRepo, cfg: cfg}
}

// Register creates a new account and issues a token for it.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)

	if in.Username == "" || in.Email == "" || in.Password == "" ||
		strings.TrimSpace(in.NamaLengkap) == "" || strings.TrimSpace(in.Jabatan) == "" ||
		strings.TrimSpace(in.NoHp) == "" {
		return nil, models.NewValidationError("Semua field wajib diisi kecuali NIM/NIP")
	}
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	// Uniqueness checks are case-sensitive; the column constraints back them
	// up against concurrent registration.
	if existing, err := s.userRepo.GetByUsername(ctx, in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError("Username sudah digunakan")
	}
	if existing, err := s.userRepo.GetByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError("Email sudah digunakan")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username:    in.Username,
		Email:       in.Email,
		Password:    string(hashed),
		NamaLengkap: strings.TrimSpace(in.NamaLengkap),
		Jabatan:     strings.TrimSpace(in.Jabatan),
		NimNip:      strings.TrimSpace(in.NimNip),
		NoHp:        strings.TrimSpace(in.NoHp),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.GenerateToken(user.Username)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	middleware.Logger.InfoContext(ctx, "user registered", "username", user.Username)

	return &AuthResult{
		Token:       token,
		Username:    user.Username,
		Email:       user.Email,
		NamaLengkap: user.NamaLengkap,
	}, nil
}

// Login authenticates the credentials and issues a fresh token. Unknown
// usernames and wrong passwords produce the same message so the response
// does not reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		middleware.AuthFailures.WithLabelValues("unknown_user").Inc()
		return nil, models.NewUnauthorizedError("Username atau password salah")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		middleware.AuthFailures.WithLabelValues("bad_password").Inc()
		return nil, models.NewUnauthorizedError("Username atau password salah")
	}

	token, err := s.GenerateToken(user.Username)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	return &AuthResult{
		Token:       token,
		Username:    user.Username,
		Email:       user.Email,
		NamaLengkap: user.NamaLengkap,
	}, nil
}

// ResolveCaller maps an already-verified token subject (username) to the
// acting user record.
func (s *AuthService) ResolveCaller(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User tidak ditemukan")
	}
	return user, nil
}

// GenerateToken creates a signed JWT whose subject is the username.
func (s *AuthService) GenerateToken(username string) (string, error) {
	if s.cfg.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": username,
		"iss": TokenIssuer,
		"aud": TokenAudience,
		"exp": now.Add(time.Duration(s.cfg.JWTTTLHours) * time.Hour).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
