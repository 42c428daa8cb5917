package userapp

import (
	"context"
	"errors"
	"time"

	"chirper/internal/config"
	userEntity "chirper/internal/core/user"
	userPort "chirper/internal/ports/user"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles registration, login and profile reads/updates.
type UserService struct {
	UserRepository userPort.UserRepository
	jwtKey         []byte
}

func NewUserService(repo userPort.UserRepository, jwtKey []byte) *UserService {
	return &UserService{
		UserRepository: repo,
		jwtKey:         jwtKey,
	}
}

// LoginUser checks the credentials and issues a signed JWT.
func (s *UserService) LoginUser(ctx context.Context, username string, password string) (*userPort.LoginResponse, error) {
	user, err := s.UserRepository.FindByUsername(username)
	if err != nil {
		config.Logger.Warn("login for unknown username", zap.String("username", username))
		return nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	expiresAt := time.Now().Add(24 * time.Hour)
	token, err := s.generateJWT(user, expiresAt)
	if err != nil {
		config.Logger.Error("error generating JWT", zap.Error(err))
		return nil, errors.New("could not generate token")
	}

	return &userPort.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

func (s *UserService) generateJWT(user *userEntity.User, expiresAt time.Time) (string, error) {
	claims := &jwt.StandardClaims{
		Subject:   user.ID.String(),
		Issuer:    "chirper",
		ExpiresAt: expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}

// RegisterUser creates a new account with a bcrypt-hashed password. Username
// and email must be unique; the DB unique indexes back up the pre-check.
func (s *UserService) RegisterUser(ctx context.Context, name, username, email, password string) (*userPort.UserDTO, error) {
	if username == "" || email == "" || password == "" {
		return nil, errors.New("username, email and password are required")
	}

	existing, err := s.UserRepository.FindByUsernameOrEmail(username, email)
	if err == nil && existing != nil {
		return nil, errors.New("username or email already taken")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &userEntity.User{
		ID:       uuid.Must(uuid.NewV4()),
		Name:     name,
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
	}

	u, err := s.UserRepository.Create(user)
	if err != nil {
		return nil, err
	}

	return toUserDTO(u), nil
}

// GetUserByID returns the public profile for a user ID.
func (s *UserService) GetUserByID(ctx context.Context, id string) (*userPort.UserDTO, error) {
	u, err := s.UserRepository.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toUserDTO(u), nil
}

// GetUserByUsername returns the public profile for a username.
func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*userPort.UserDTO, error) {
	u, err := s.UserRepository.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	return toUserDTO(u), nil
}

// UpdateProfile sets the display name and bio of the viewer's own profile.
func (s *UserService) UpdateProfile(ctx context.Context, id, name, bio string) (*userPort.UserDTO, error) {
	if name == "" {
		return nil, errors.New("name is required")
	}

	if err := s.UserRepository.UpdateProfile(id, name, bio); err != nil {
		return nil, err
	}

	return s.GetUserByID(ctx, id)
}

func toUserDTO(u *userEntity.User) *userPort.UserDTO {
	return &userPort.UserDTO{
		ID:        u.ID.String(),
		Name:      u.Name,
		Bio:       u.Bio,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
