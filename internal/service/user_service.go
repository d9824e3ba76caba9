package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/laundry-service/internal/auth"
	"github.com/spec-kit/laundry-service/internal/config"
	"github.com/spec-kit/laundry-service/internal/domain"
	"github.com/spec-kit/laundry-service/internal/repository"
	"github.com/spec-kit/laundry-service/pkg/util"
)

// RegisterInput carries the fields of a registration request. Username and
// email arrive already trimmed and validated.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	Address  string
	Phone    string
}

// UserService coordinates registration, login and lookups.
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(cfg config.Config, users repository.UserRepository) *UserService {
	return &UserService{
		users:      users,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new user. Username and email must each be globally
// unique; a single existence query matching either field guards both.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	exists, err := s.users.ExistsByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.NewConflict("Username or email already exists")
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username: input.Username,
		Password: hash,
		Email:    input.Email,
		Address:  input.Address,
		Phone:    input.Phone,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials. Unknown usernames and wrong passwords produce
// the same answer so the response does not leak which one failed.
func (s *UserService) Login(ctx context.Context, username, password string) error {
	if username == "" {
		return util.NewBadRequest("Invalid credentials")
	}
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return util.NewBadRequest("Invalid credentials")
		}
		return err
	}
	if err := auth.ComparePassword(user.Password, password); err != nil {
		return util.NewBadRequest("Invalid credentials")
	}
	return nil
}

// GetByID fetches the full user document, password hash included.
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.NewBadRequest("Invalid user id")
	}
	user, err := s.users.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, util.NewNotFound("User")
		}
		return nil, err
	}
	return user, nil
}
