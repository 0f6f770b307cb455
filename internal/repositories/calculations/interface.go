// Package calculations stores the premium calculations users chose to keep.
package calculations

import (
	"context"

	"github.com/dmitrijs2005/lifecalc/internal/models"
)

type Repository interface {
	CountByUser(ctx context.Context, userID string) (int, error)
	Insert(ctx context.Context, c *models.SavedCalculation) error
	// ListByUser returns the user's calculations in the order they were saved.
	ListByUser(ctx context.Context, userID string) ([]models.SavedCalculation, error)
	// DeleteOwned removes the calculation only if it belongs to userID and
	// reports whether anything was removed.
	DeleteOwned(ctx context.Context, userID, id string) (bool, error)
}
