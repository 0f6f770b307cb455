package calculations

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/lifecalc/internal/dbx"
	"github.com/dmitrijs2005/lifecalc/internal/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM saved_calculations WHERE user_id = ?`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count calculations: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, c *models.SavedCalculation) error {
	riders, err := json.Marshal(c.Riders)
	if err != nil {
		return fmt.Errorf("failed to encode riders: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO saved_calculations (
			id, user_id, name, age, gender, sum_assured, term, riders,
			base_premium, rebate, premium, gst_amount, total_premium, frequency, total_annual,
			policy_id, category_id, policy_name, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		c.ID, c.UserID, c.Name, c.Age, c.Gender, c.SumAssured, c.Term, string(riders),
		c.Result.BasePremium, c.Result.Rebate, c.Result.Premium, c.Result.GSTAmount,
		c.Result.Total, string(c.Result.Frequency), c.Result.TotalAnnual,
		c.PolicyID, string(c.CategoryID), c.PolicyName, c.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to insert calculation: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID string) ([]models.SavedCalculation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, name, age, gender, sum_assured, term, riders,
			base_premium, rebate, premium, gst_amount, total_premium, frequency, total_annual,
			policy_id, category_id, policy_name, created_at
		FROM saved_calculations
		WHERE user_id = ?
		ORDER BY seq
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}
	defer rows.Close()

	result := make([]models.SavedCalculation, 0)
	for rows.Next() {
		var (
			c                   models.SavedCalculation
			riders, createdAt   string
			frequency, category string
		)
		err := rows.Scan(
			&c.ID, &c.UserID, &c.Name, &c.Age, &c.Gender, &c.SumAssured, &c.Term, &riders,
			&c.Result.BasePremium, &c.Result.Rebate, &c.Result.Premium, &c.Result.GSTAmount,
			&c.Result.Total, &frequency, &c.Result.TotalAnnual,
			&c.PolicyID, &category, &c.PolicyName, &createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan calculation row: %w", err)
		}

		if err := json.Unmarshal([]byte(riders), &c.Riders); err != nil {
			return nil, fmt.Errorf("failed to decode riders of %s: %w", c.ID, err)
		}
		if c.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at of %s: %w", c.ID, err)
		}
		c.Result.Frequency = models.Frequency(frequency)
		c.CategoryID = models.Category(category)

		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate calculation rows: %w", err)
	}

	return result, nil
}

func (r *SQLiteRepository) DeleteOwned(ctx context.Context, userID, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM saved_calculations WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete calculation: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete calculation: %w", err)
	}
	return n > 0, nil
}
