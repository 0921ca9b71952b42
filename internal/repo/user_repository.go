package repo

import "github.com/hemolabs/labelstock/internal/models"

// UserRepository defines the interface for operator account operations.
type UserRepository interface {
	CreateUser(user models.User) (models.User, error)
	GetByUsername(username string) (models.User, error)
}
