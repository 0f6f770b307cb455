package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/lifecalc/internal/common"
	"github.com/dmitrijs2005/lifecalc/internal/dbx"
	"github.com/dmitrijs2005/lifecalc/internal/logging"
	"github.com/dmitrijs2005/lifecalc/internal/models"
	"github.com/dmitrijs2005/lifecalc/internal/repositories/calculations"
	"github.com/google/uuid"
)

// CalculationService keeps a bounded list of saved calculations per user.
// Every operation is scoped to userID; records of other users are invisible.
type CalculationService interface {
	// Save stores calc for userID with a fresh id and timestamp. A user
	// already holding the limit gets a *common.CapacityExceededError.
	Save(ctx context.Context, userID string, calc models.SavedCalculation) (*models.SavedCalculation, error)
	// List returns the user's calculations in the order they were saved.
	List(ctx context.Context, userID string) ([]models.SavedCalculation, error)
	// Delete reports whether a calculation of userID with that id was removed.
	Delete(ctx context.Context, userID, id string) (bool, error)
}

type calculationService struct {
	db     *sql.DB
	limit  int
	logger logging.Logger
	now    func() time.Time
}

// NewCalculationService builds a CalculationService allowing
// common.MaxSavedCalculations records per user.
func NewCalculationService(db *sql.DB, logger logging.Logger) CalculationService {
	return newCalculationService(db, common.MaxSavedCalculations, logger)
}

func newCalculationService(db *sql.DB, limit int, logger logging.Logger) *calculationService {
	return &calculationService{db: db, limit: limit, logger: logger, now: time.Now}
}

func (s *calculationService) Save(ctx context.Context, userID string, calc models.SavedCalculation) (*models.SavedCalculation, error) {
	if userID == "" {
		return nil, common.ErrNotLoggedIn
	}

	calc.ID = uuid.NewString()
	calc.UserID = userID
	calc.CreatedAt = s.now().UTC()

	// count and insert share a transaction so the limit holds
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := calculations.NewSQLiteRepository(tx)

		n, err := repo.CountByUser(ctx, userID)
		if err != nil {
			return err
		}
		if n >= s.limit {
			return &common.CapacityExceededError{Limit: s.limit}
		}

		return repo.Insert(ctx, &calc)
	})
	if err != nil {
		if errors.Is(err, common.ErrCapacityExceeded) {
			s.logger.Info(ctx, "Calculation not saved: limit reached", "user_id", userID, "limit", s.limit)
		}
		return nil, err
	}

	s.logger.Info(ctx, "Calculation saved", "user_id", userID, "calculation_id", calc.ID)
	return &calc, nil
}

func (s *calculationService) List(ctx context.Context, userID string) ([]models.SavedCalculation, error) {
	if userID == "" {
		return nil, common.ErrNotLoggedIn
	}
	return calculations.NewSQLiteRepository(s.db).ListByUser(ctx, userID)
}

func (s *calculationService) Delete(ctx context.Context, userID, id string) (bool, error) {
	if userID == "" {
		return false, common.ErrNotLoggedIn
	}

	ok, err := calculations.NewSQLiteRepository(s.db).DeleteOwned(ctx, userID, id)
	if err != nil {
		return false, err
	}
	if ok {
		s.logger.Info(ctx, "Calculation deleted", "user_id", userID, "calculation_id", id)
	}
	return ok, nil
}
