// Package users stores registered accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/lifecalc/internal/models"
)

// Repository looks users up by any of their unique keys. Lookups that find
// nothing return common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByPhone(ctx context.Context, phone string) (*models.User, error)
	Count(ctx context.Context) (int, error)
}
