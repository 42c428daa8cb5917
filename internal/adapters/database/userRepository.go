package database

import (
	"chirper/internal/config"
	"chirper/internal/core/user"
)

// UserRepositoryDatabase implements the UserRepository port over GORM.
type UserRepositoryDatabase struct{}

func NewUserRepositoryDatabase() *UserRepositoryDatabase {
	return &UserRepositoryDatabase{}
}

func (repo *UserRepositoryDatabase) Create(user *user.User) (*user.User, error) {
	if err := config.DB.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (repo *UserRepositoryDatabase) FindByID(id string) (*user.User, error) {
	var user user.User
	if err := config.DB.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *UserRepositoryDatabase) FindByUsername(username string) (*user.User, error) {
	var user user.User
	if err := config.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *UserRepositoryDatabase) FindByUsernameOrEmail(username, email string) (*user.User, error) {
	var user user.User
	if err := config.DB.Where("username = ? OR email = ?", username, email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *UserRepositoryDatabase) UpdateProfile(id, name, bio string) error {
	return config.DB.Model(&user.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"name": name, "bio": bio}).Error
}
