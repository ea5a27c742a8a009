package repository

import (
	"context"
	"errors"

	"github.com/growlog/growlog-api/internal/domain"
	apperrors "github.com/growlog/growlog-api/internal/errors"
	"gorm.io/gorm"
)

// UserRepository handles user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user, reporting duplicate email or nickname as a
// conflict.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewConflictError("email or nickname is already taken")
		}
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

// FindByID returns the user with the given id, or (nil, nil) when absent.
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return &user, nil
}

// FindByEmail returns the user with the given email, or (nil, nil).
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return &user, nil
}

// FindByNickname returns the user with the given nickname, or (nil, nil).
func (r *UserRepository) FindByNickname(ctx context.Context, nickname string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("nickname = ?", nickname).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return &user, nil
}

// UpdateNickname changes the user's nickname.
func (r *UserRepository) UpdateNickname(ctx context.Context, id uint, nickname string) error {
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Update("nickname", nickname).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewConflictError("nickname is already taken")
		}
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

// UpdatePassword changes the user's password hash.
func (r *UserRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash).Error
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

// Delete removes a user account.
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&domain.User{}, id).Error; err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

// ListAll returns every user.
func (r *UserRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return users, nil
}
