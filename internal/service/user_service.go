package service

import (
	"context"
	"fmt"
	"regexp"

	"github.com/codetutors/tutoring/internal/model"
	"github.com/codetutors/tutoring/internal/repository"
	"go.uber.org/zap"
)

// Usernames are "@" followed by at least three word characters.
var usernamePattern = regexp.MustCompile(`^@\w{3,}$`)

type UserService struct {
	userRepo *repository.UserRepository
	logger   *zap.Logger
}

func NewUserService(userRepo *repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register creates a new user account.
func (s *UserService) Register(ctx context.Context, user *model.User) error {
	if !usernamePattern.MatchString(user.Username) {
		return fmt.Errorf("username must consist of @ followed by at least three alphanumericals")
	}

	existing, err := s.userRepo.GetByUsername(ctx, user.Username)
	if err != nil {
		return fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("username %s is taken", user.Username)
	}

	if user.AccountType == "" {
		user.AccountType = model.AccountTypeStudent
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("account_type", string(user.AccountType)),
	)

	return nil
}

// GetByID fetches a user.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.List(ctx)
}
