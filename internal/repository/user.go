// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"titiktemu/internal/cache"
	"titiktemu/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, user *models.User) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := readDB(r.db).WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User tidak ditemukan")
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

// cachedUser is the cache envelope for a user row. models.User cannot be
// stored directly: its JSON projection is the outward API shape and omits
// the password hash, so a cache hit would hand back a user that fails every
// bcrypt comparison and whose Save would blank the stored hash.
type cachedUser struct {
	User         models.User `json:"user"`
	PasswordHash string      `json:"password_hash"`
}

// GetByUsername is the hot path: every authenticated request resolves its
// caller through it, so the lookup sits behind a short-lived cache. Misses
// are not cached (the fetch returns ErrRecordNotFound before anything is
// stored), otherwise a pre-registration lookup would shadow the freshly
// created account.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var env cachedUser
	err := cache.Aside(ctx, cache.UserByNameKey(username), &env, cache.UserTTL, func() error {
		var user models.User
		if err := readDB(r.db).WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
			return err
		}
		env = cachedUser{User: user, PasswordHash: user.Password}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := env.User
	user.Password = env.PasswordHash
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := readDB(r.db).WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			// Race fallback; the service pre-checks both columns for a
			// field-specific message.
			return models.NewConflictError("Username atau email sudah digunakan")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Email sudah digunakan oleh user lain")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, user.Username)
	return nil
}

// Delete removes the account and every laporan it owns in one transaction so
// a failure leaves both tables untouched.
func (r *userRepository) Delete(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Laporan{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, user.ID).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, user.Username)
	return nil
}
