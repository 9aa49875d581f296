package user

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"dineWise/domain"
	redisrepo "dineWise/internal/repository/redis"
	"dineWise/pkg/logger"
	"dineWise/pkg/utils"
)

const sessionTTL = 24 * time.Hour

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	UpdatePreferences(ctx context.Context, id uint, preferences datatypes.JSONMap) error
}

// SessionRepository contract interface
type SessionRepository interface {
	StoreSession(ctx context.Context, sessionID string, data redisrepo.SessionData, ttl time.Duration) error
	DeleteSession(ctx context.Context, sessionID, token string) error
}

type userService struct {
	userRepo    UserRepository
	sessionRepo SessionRepository
	validate    *validator.Validate
}

func NewUserService(userRepo UserRepository, sessionRepo SessionRepository, validate *validator.Validate) *userService {
	return &userService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		validate:    validate,
	}
}

// Login verifies credentials, mints a JWT bound to a fresh session id and
// records the session in Redis.
func (s *userService) Login(ctx context.Context, username, password string) (string, domain.User, error) {
	if err := s.validate.Var(username, "required"); err != nil {
		return "", domain.User{}, errors.New("username is required")
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		logger.Error("Invalid user credentials", err)
		return "", domain.User{}, errors.New("invalid username or password")
	}

	if ok := utils.CheckPassword(password, user.Password); !ok {
		logger.Error("User password incorrect")
		return "", domain.User{}, errors.New("invalid username or password")
	}

	sessionID := uuid.NewString()
	userIdStr := strconv.FormatUint(uint64(user.ID), 10)
	token, err := utils.GenerateJWT(userIdStr, user.Role, sessionID)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", domain.User{}, errors.New("failed to generate token")
	}

	now := time.Now()
	sessionData := redisrepo.SessionData{
		UserID:    userIdStr,
		Role:      user.Role,
		Token:     token,
		IssuedAt:  now,
		ExpiresAt: now.Add(sessionTTL),
	}
	if err := s.sessionRepo.StoreSession(ctx, sessionID, sessionData, sessionTTL); err != nil {
		logger.Error("Failed to store session", err)
		return "", domain.User{}, errors.New("failed to create session")
	}

	user.Password = ""
	return token, user, nil
}

func (s *userService) Logout(ctx context.Context, sessionID, token string) error {
	if err := s.sessionRepo.DeleteSession(ctx, sessionID, token); err != nil {
		logger.Error("Failed to delete session", err)
		return errors.New("failed to logout")
	}

	return nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to get user by ID", err)
		return domain.User{}, err
	}

	user.Password = ""
	return user, nil
}

func (s *userService) GetPreferences(ctx context.Context, id uint) (datatypes.JSONMap, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to get user by ID", err)
		return nil, err
	}

	if user.Preferences == nil {
		return datatypes.JSONMap{}, nil
	}
	return user.Preferences, nil
}

func (s *userService) UpdatePreferences(ctx context.Context, id uint, preferences datatypes.JSONMap) error {
	if err := s.userRepo.UpdatePreferences(ctx, id, preferences); err != nil {
		logger.Error("Failed to update preferences", err)
		return err
	}

	return nil
}

type seedUser struct {
	username string
	password string
	role     string
}

var demoUsers = []seedUser{
	{username: "user", password: "user123", role: domain.RoleUser},
	{username: "admin", password: "admin123", role: domain.RoleAdmin},
}

// SeedUsers inserts the demo accounts when they do not exist yet.
func (s *userService) SeedUsers(ctx context.Context) error {
	for _, seed := range demoUsers {
		existing, err := s.userRepo.FindByUsername(ctx, seed.username)
		if err == nil && existing.ID > 0 {
			continue
		}

		passwordHash, err := utils.HashPassword(seed.password)
		if err != nil {
			logger.Error("Failed to hash seed password", err)
			return err
		}

		newUser := domain.User{
			Username: seed.username,
			Password: passwordHash,
			Role:     seed.role,
		}
		if err := s.userRepo.Create(ctx, &newUser); err != nil {
			logger.Error("Failed to seed user", err)
			return err
		}

		logger.Info("seeded demo user", "username", seed.username, "role", seed.role)
	}

	return nil
}
