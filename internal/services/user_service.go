package services

import (
	"context"
	"strings"

	"github.com/growlog/growlog-api/internal/auth"
	"github.com/growlog/growlog-api/internal/config"
	"github.com/growlog/growlog-api/internal/domain"
	apperrors "github.com/growlog/growlog-api/internal/errors"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles account management and authentication.
type UserService struct {
	users       domain.UserStore
	moods       domain.MoodStore
	reflections domain.ReflectionStore
	todos       domain.TodoStore
	cache       domain.StatsCache
	jwt         config.JWTConfig
}

// NewUserService creates a new user service
func NewUserService(users domain.UserStore, moods domain.MoodStore, reflections domain.ReflectionStore, todos domain.TodoStore, cache domain.StatsCache, jwt config.JWTConfig) *UserService {
	return &UserService{
		users:       users,
		moods:       moods,
		reflections: reflections,
		todos:       todos,
		cache:       cache,
		jwt:         jwt,
	}
}

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
	Role     string `json:"role"`
}

// Register creates a new account. Self-assigned admin roles are rejected;
// duplicate email or nickname is a conflict.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if strings.EqualFold(input.Role, domain.RoleAdmin) {
		return nil, apperrors.NewPermissionError("role assignment is not allowed")
	}
	if strings.TrimSpace(input.Email) == "" || input.Password == "" || strings.TrimSpace(input.Nickname) == "" {
		return nil, apperrors.NewValidationError("email, password and nickname are required")
	}

	if existing, err := s.users.FindByEmail(ctx, input.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apperrors.NewConflictError("email is already registered")
	}
	if existing, err := s.users.FindByNickname(ctx, input.Nickname); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apperrors.NewConflictError("nickname is already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		Email:        input.Email,
		Nickname:     strings.TrimSpace(input.Nickname),
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a JWT.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperrors.NewPermissionError("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.NewPermissionError("invalid email or password")
	}

	token, err := auth.GenerateToken(user.ID, user.Role, s.jwt.Secret, s.jwt.TTL)
	if err != nil {
		return "", apperrors.NewInternalError(err)
	}
	return token, nil
}

// GetByID returns a user account.
func (s *UserService) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	return user, nil
}

// IsNicknameTaken reports whether the nickname is already in use.
func (s *UserService) IsNicknameTaken(ctx context.Context, nickname string) (bool, error) {
	if strings.TrimSpace(nickname) == "" {
		return false, apperrors.NewValidationError("nickname is required")
	}
	existing, err := s.users.FindByNickname(ctx, nickname)
	if err != nil {
		return false, err
	}
	return existing != nil, nil
}

// UpdateNickname changes the user's nickname, rejecting one taken by another
// account.
func (s *UserService) UpdateNickname(ctx context.Context, userID uint, nickname string) (*domain.User, error) {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return nil, apperrors.NewValidationError("nickname is required")
	}

	existing, err := s.users.FindByNickname(ctx, nickname)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != userID {
		return nil, apperrors.NewConflictError("nickname is already taken")
	}

	if err := s.users.UpdateNickname(ctx, userID, nickname); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, userID)
}

// ChangePassword replaces the password after verifying the current one.
func (s *UserService) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return apperrors.NewValidationError("current and new password are required")
	}
	if currentPassword == newPassword {
		return apperrors.NewValidationError("new password must differ from the current one")
	}

	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return apperrors.NewValidationError("current password does not match")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return s.users.UpdatePassword(ctx, userID, string(hash))
}

// DeleteAccount removes the user and every record they own.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	if _, err := s.GetByID(ctx, userID); err != nil {
		return err
	}

	if err := s.moods.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	if err := s.reflections.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	if err := s.todos.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}

	s.cache.InvalidateUser(ctx, userID)
	return nil
}

// ListUsers returns all accounts. The caller is responsible for the admin
// check.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.ListAll(ctx)
}
