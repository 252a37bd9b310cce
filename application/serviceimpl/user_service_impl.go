package serviceimpl

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/tanaki1609/shop-api/domain/dto"
	"github.com/tanaki1609/shop-api/domain/models"
	"github.com/tanaki1609/shop-api/domain/repositories"
	"github.com/tanaki1609/shop-api/domain/services"
	"github.com/tanaki1609/shop-api/pkg/logger"
	"github.com/tanaki1609/shop-api/pkg/utils"
)

type UserServiceImpl struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.TokenRepository
	jwtSecret string
}

func NewUserService(userRepo repositories.UserRepository, tokenRepo repositories.TokenRepository, jwtSecret string) services.UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		jwtSecret: jwtSecret,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	if existing, _ := s.userRepo.GetByUsername(ctx, req.Username); existing != nil {
		logger.WarnContext(ctx, "Username already exists", "username", req.Username)
		return nil, models.ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return nil, err
	}

	// Accounts start deactivated; activation happens out of band.
	user := &models.User{
		Username: req.Username,
		Password: string(hashedPassword),
		IsActive: false,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to create user", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

func (s *UserServiceImpl) Authorize(ctx context.Context, req *dto.AuthRequest) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		logger.WarnContext(ctx, "Authorization failed, unknown username", "username", req.Username)
		return "", models.ErrInvalidCredentials
	}

	if !user.IsActive {
		logger.WarnContext(ctx, "Authorization failed, account deactivated", "user_id", user.ID)
		return "", models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.WarnContext(ctx, "Authorization failed, bad password", "user_id", user.ID)
		return "", models.ErrInvalidCredentials
	}

	// Reuse the stored key; mint one only on first authorization.
	if existing, err := s.tokenRepo.GetByUserID(ctx, user.ID); err == nil && existing != nil {
		logger.InfoContext(ctx, "Token reused", "user_id", user.ID)
		return existing.Key, nil
	}

	key, err := utils.GenerateTokenKey(user.ID, user.Username, s.jwtSecret)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to sign token", "user_id", user.ID, "error", err)
		return "", err
	}

	if err := s.tokenRepo.Create(ctx, &models.Token{Key: key, UserID: user.ID}); err != nil {
		logger.ErrorContext(ctx, "Failed to store token", "user_id", user.ID, "error", err)
		return "", err
	}

	logger.InfoContext(ctx, "Token issued", "user_id", user.ID)
	return key, nil
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}
