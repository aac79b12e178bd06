package footprint

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/verdantgrid/verdant/internal/database"
)

// Store persists estimates to sqlite.
type Store struct {
	DB *sql.DB
}

// Save inserts one estimate.
func (s *Store) Save(ctx context.Context, e Estimate) error {
	return database.WithTx(s.DB, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO estimates (id, kwh_per_month, km_per_week, flights_per_year,
				electricity_kg, driving_kg, flights_kg, total_kg, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, e.ID, e.Inputs.KWhPerMonth, e.Inputs.KmPerWeek, e.Inputs.FlightsPerYear,
			e.ElectricityKg, e.DrivingKg, e.FlightsKg, e.TotalKg,
			e.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("insert estimate: %w", err)
		}
		return nil
	})
}

// Recent returns up to limit estimates, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Estimate, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, kwh_per_month, km_per_week, flights_per_year,
			electricity_kg, driving_kg, flights_kg, total_kg, created_at
		FROM estimates
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query estimates: %w", err)
	}
	defer rows.Close()

	var out []Estimate
	for rows.Next() {
		var e Estimate
		var created string
		if err := rows.Scan(&e.ID, &e.Inputs.KWhPerMonth, &e.Inputs.KmPerWeek,
			&e.Inputs.FlightsPerYear, &e.ElectricityKg, &e.DrivingKg,
			&e.FlightsKg, &e.TotalKg, &created); err != nil {
			return nil, fmt.Errorf("scan estimate: %w", err)
		}
		ts, err := time.Parse(time.RFC3339, created)
		if err != nil {
			return nil, fmt.Errorf("parse created_at for estimate %s: %w", e.ID, err)
		}
		e.CreatedAt = ts
		out = append(out, e)
	}
	return out, rows.Err()
}

// Clear deletes all saved estimates.
func (s *Store) Clear(ctx context.Context) error {
	return database.WithTx(s.DB, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM estimates"); err != nil {
			return fmt.Errorf("clear estimates: %w", err)
		}
		return nil
	})
}

// Count returns the number of saved estimates.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM estimates").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count estimates: %w", err)
	}
	return n, nil
}
