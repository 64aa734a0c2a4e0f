package service

import (
	"context"
	"fmt"

	"bookden/internal/domains/user/model"
	"bookden/internal/domains/user/repository"
	"bookden/pkg/jwt"
	"bookden/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// ServiceInterface is the user domain's business logic contract.
type ServiceInterface interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	CurrentUser(ctx context.Context, id int64) (*model.User, error)
	UpdateProfile(ctx context.Context, id int64, req model.UpdateProfileRequest) (*model.User, error)
}

type userService struct {
	repo       repository.UserRepository
	jwtManager *jwt.Manager
}

func NewUserService(repo repository.UserRepository, jwtManager *jwt.Manager) ServiceInterface {
	return &userService{repo: repo, jwtManager: jwtManager}
}

func (s *userService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, model.ErrUsernameTaken
	}

	taken, err = s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, model.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	nickname := req.Nickname
	if nickname == "" {
		nickname = req.Username
	}

	user := &model.User{
		Username:     req.Username,
		Nickname:     nickname,
		Email:        req.Email,
		Introduction: req.Introduction,
		Roles:        []string{"user"},
		PasswordHash: string(hash),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("user registered", map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
	})

	return user, nil
}

func (s *userService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		// Do not reveal whether the account exists.
		if err == model.ErrUserNotFound {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	role := "user"
	if len(user.Roles) > 0 {
		role = user.Roles[0]
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.Username, role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &model.LoginResponse{Token: token, User: *user}, nil
}

func (s *userService) CurrentUser(ctx context.Context, id int64) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) UpdateProfile(ctx context.Context, id int64, req model.UpdateProfileRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	nickname := user.Nickname
	if req.Nickname != nil {
		nickname = *req.Nickname
	}
	avatar := user.Avatar
	if req.Avatar != nil {
		avatar = *req.Avatar
	}
	introduction := user.Introduction
	if req.Introduction != nil {
		introduction = *req.Introduction
	}

	if err := s.repo.UpdateProfile(ctx, id, nickname, avatar, introduction); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}
