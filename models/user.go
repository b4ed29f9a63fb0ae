package models

import "time"

// User represents a platform user. The cart ("Lobby") is embedded so that a
// single document holds everything a session mutates.
type User struct {
	ID           string      `bson:"id" json:"id"`
	Name         string      `bson:"name" json:"name"`
	Email        string      `bson:"email" json:"email"`
	PasswordHash string      `bson:"password_hash" json:"-"`
	PhoneNumber  string      `bson:"phone_number,omitempty" json:"phoneNumber,omitempty"`
	City         string      `bson:"city,omitempty" json:"city,omitempty"`
	Role         string      `bson:"role" json:"role"` // "user" or "admin"
	Cart         []CartEntry `bson:"cart" json:"cart"`
	CreatedAt    time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time   `bson:"updated_at" json:"updated_at"`
}

// Roles recognized by the admin middleware.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserRegistrationData carries the fields accepted at sign-up.
type UserRegistrationData struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	PhoneNumber string `json:"phoneNumber"`
	City        string `json:"city"`
}
