package user

import "chirper/internal/core/user"

// UserRepository is the outbound port for storing and loading users.
type UserRepository interface {
	Create(user *user.User) (*user.User, error)
	FindByID(id string) (*user.User, error)
	FindByUsername(username string) (*user.User, error)
	FindByUsernameOrEmail(username, email string) (*user.User, error)
	UpdateProfile(id, name, bio string) error
}

// DTOs handed to the inbound adapters.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type UserDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}
