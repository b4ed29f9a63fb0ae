package user

import (
	"errors"
	"fmt"
	"strings"

	"ziplay/models"
	"ziplay/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmailTaken rejects registration with an existing email.
	ErrEmailTaken = errors.New("an account with this email already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Register creates a user with a bcrypt-hashed password and signs them in.
func (s *DefaultUserService) Register(data models.UserRegistrationData) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(data.Email))

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		Name:         data.Name,
		Email:        email,
		PasswordHash: string(hash),
		PhoneNumber:  data.PhoneNumber,
		City:         data.City,
		Role:         models.RoleUser,
		Cart:         []models.CartEntry{},
	}
	if err := s.Repo.Create(usr); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(usr)
}

// Authenticate verifies the password and issues a fresh token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(usr)
}

func (s *DefaultUserService) issueToken(usr *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, utils.AuthTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := utils.CacheAuthToken(s.AuthCache, usr.ID, token); err != nil {
		return nil, err
	}
	return &AuthResponse{
		ID:    usr.ID,
		Token: token,
		Name:  usr.Name,
		Email: usr.Email,
	}, nil
}

// GetUserByID retrieves a user by ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	return s.Repo.GetByID(userID)
}

// GetUserByEmail retrieves a user by email.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	usr, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, fmt.Errorf("user with email %s not found", email)
	}
	return usr, nil
}

// RevokeAuthToken signs the user out by dropping the cached session.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	return utils.RevokeAuthToken(s.AuthCache, userID)
}
