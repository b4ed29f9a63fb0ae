package user

import (
	userRepo "ziplay/database/repository/user"
	"ziplay/models"

	"github.com/go-redis/redis/v8"
)

// UserService covers registration, authentication, and profile reads.
type UserService interface {
	Register(data models.UserRegistrationData) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetUserByID(userID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	RevokeAuthToken(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	AuthCache *redis.Client
}

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
