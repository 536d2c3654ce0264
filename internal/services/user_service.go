package services

import (
	"context"
	"log"
	"time"

	"tripwise/internal/models/db_models"
	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/internal/repositories"
	"tripwise/pkg/utils"
)

type UserServiceInterface interface {
	// Register creates the user and returns the profile with a signed
	// session token.
	Register(ctx context.Context, req request_models.RegisterRequest) (response_models.UserProfile, string, error)
	// Login verifies credentials. Unknown email and wrong password both
	// come back as ErrInvalidCredentials.
	Login(ctx context.Context, req request_models.LoginRequest) (response_models.UserProfile, string, error)
	GetProfile(ctx context.Context, id uint) (response_models.UserProfile, error)
	UpdateProfile(ctx context.Context, id uint, req request_models.UpdateProfileRequest) (response_models.UserProfile, error)
}

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserServiceInterface {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) Register(ctx context.Context, req request_models.RegisterRequest) (response_models.UserProfile, string, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Printf("Error checking existing user: %v", err)
		return response_models.UserProfile{}, "", utils.ErrDatabaseError
	}
	if existing != nil {
		return response_models.UserProfile{}, "", utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return response_models.UserProfile{}, "", utils.ErrDatabaseError
	}

	user := &db_models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashed,
		FullName:     req.FullName,
		Bio:          req.Bio,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		log.Printf("Error creating user: %v", err)
		return response_models.UserProfile{}, "", utils.ErrDatabaseError
	}

	token, err := utils.CreateSessionToken(user.ID, user.Email)
	if err != nil {
		return response_models.UserProfile{}, "", err
	}

	return profileFromUser(user), token, nil
}

func (s *UserService) Login(ctx context.Context, req request_models.LoginRequest) (response_models.UserProfile, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Printf("Error fetching user by email: %v", err)
		return response_models.UserProfile{}, "", utils.ErrDatabaseError
	}
	if user == nil {
		return response_models.UserProfile{}, "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, req.Password); err != nil {
		return response_models.UserProfile{}, "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateSessionToken(user.ID, user.Email)
	if err != nil {
		return response_models.UserProfile{}, "", utils.ErrInvalidCredentials
	}

	return profileFromUser(user), token, nil
}

func (s *UserService) GetProfile(ctx context.Context, id uint) (response_models.UserProfile, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching user %d: %v", id, err)
		return response_models.UserProfile{}, utils.ErrDatabaseError
	}
	if user == nil {
		return response_models.UserProfile{}, utils.ErrUserNotFound
	}
	return profileFromUser(user), nil
}

func (s *UserService) UpdateProfile(ctx context.Context, id uint, req request_models.UpdateProfileRequest) (response_models.UserProfile, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching user %d: %v", id, err)
		return response_models.UserProfile{}, utils.ErrDatabaseError
	}
	if user == nil {
		return response_models.UserProfile{}, utils.ErrUserNotFound
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		log.Printf("Error updating user %d: %v", id, err)
		return response_models.UserProfile{}, utils.ErrDatabaseError
	}
	return profileFromUser(user), nil
}

func profileFromUser(user *db_models.User) response_models.UserProfile {
	return response_models.UserProfile{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		Bio:       user.Bio,
		CreatedAt: utils.FormatTimestamp(user.CreatedAt),
		UpdatedAt: utils.FormatTimestamp(user.UpdatedAt),
	}
}
