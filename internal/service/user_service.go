package service

import (
	"context"
	"strings"

	"titiktemu/internal/middleware"
	"titiktemu/internal/models"
	"titiktemu/internal/repository"
	"titiktemu/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// UserService implements profile management for the acting user.
type UserService struct {
	userRepo repository.UserRepository
}

// UpdateProfileInput carries the profile fields the caller may overwrite.
type UpdateProfileInput struct {
	NamaLengkap string `json:"nama_lengkap"`
	Jabatan     string `json:"jabatan"`
	NimNip      string `json:"nim_nip"`
	NoHp        string `json:"no_hp"`
	Email       string `json:"email"`
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Profile returns the caller's own profile projection.
func (s *UserService) Profile(caller *models.User) models.UserResponse {
	return caller.ToResponse()
}

// UpdateProfile overwrites the supplied profile fields. Changing the email
// to one held by a different account is a conflict.
func (s *UserService) UpdateProfile(ctx context.Context, caller *models.User, in UpdateProfileInput) (*models.UserResponse, error) {
	in.Email = strings.TrimSpace(in.Email)

	if in.Email != "" && in.Email != caller.Email {
		if err := validation.ValidateEmail(in.Email); err != nil {
			return nil, err
		}
		existing, err := s.userRepo.GetByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != caller.ID {
			return nil, models.NewConflictError("Email sudah digunakan oleh user lain")
		}
		caller.Email = in.Email
	}

	if strings.TrimSpace(in.NamaLengkap) != "" {
		caller.NamaLengkap = strings.TrimSpace(in.NamaLengkap)
	}
	if strings.TrimSpace(in.Jabatan) != "" {
		caller.Jabatan = strings.TrimSpace(in.Jabatan)
	}
	if strings.TrimSpace(in.NimNip) != "" {
		caller.NimNip = strings.TrimSpace(in.NimNip)
	}
	if strings.TrimSpace(in.NoHp) != "" {
		caller.NoHp = strings.TrimSpace(in.NoHp)
	}

	if err := s.userRepo.Update(ctx, caller); err != nil {
		return nil, err
	}

	resp := caller.ToResponse()
	return &resp, nil
}

// ChangePassword verifies the old password and stores a fresh hash of the
// new one.
func (s *UserService) ChangePassword(ctx context.Context, caller *models.User, oldPassword, newPassword string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(caller.Password), []byte(oldPassword)); err != nil {
		return models.NewUnauthorizedError("Password lama tidak sesuai")
	}
	if err := validation.ValidatePassword(newPassword); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.NewInternalError(err)
	}

	caller.Password = string(hashed)
	if err := s.userRepo.Update(ctx, caller); err != nil {
		return err
	}

	middleware.Logger.InfoContext(ctx, "password changed", "username", caller.Username)
	return nil
}

// DeleteAccount removes the caller's account together with every laporan it
// owns.
func (s *UserService) DeleteAccount(ctx context.Context, caller *models.User) error {
	if err := s.userRepo.Delete(ctx, caller); err != nil {
		return err
	}
	middleware.Logger.InfoContext(ctx, "account deleted", "username", caller.Username)
	return nil
}
