package turf

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const turfColumns = `id, name, description, sport_type, location, price_per_hour, COALESCE(image_url, ''), available_from, available_to, owner_id, created_at`

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func scanTurf(row pgx.Row) (Turf, error) {
	var t Turf
	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Description,
		&t.SportType,
		&t.Location,
		&t.PricePerHour,
		&t.ImageURL,
		&t.AvailableFrom,
		&t.AvailableTo,
		&t.OwnerID,
		&t.CreatedAt,
	)
	return t, err
}

func (r *Repository) GetTurfs(ctx context.Context) ([]Turf, error) {
	sql := `SELECT ` + turfColumns + ` FROM turfs ORDER BY created_at DESC;`

	rows, err := r.pool.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch turfs: %w", err)
	}

	defer rows.Close()

	var turfs []Turf

	for rows.Next() {
		t, err := scanTurf(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning turf row: %w", err)
		}

		turfs = append(turfs, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating turf rows: %w", err)
	}

	return turfs, nil
}

func (r *Repository) GetTurfByID(ctx context.Context, id string) (Turf, error) {
	sql := `SELECT ` + turfColumns + ` FROM turfs WHERE id=$1;`

	t, err := scanTurf(r.pool.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Turf{}, ErrTurfNotFound
	}

	if err != nil {
		return Turf{}, fmt.Errorf("failed to fetch turf with id %v: %w", id, err)
	}

	return t, nil
}

func (r *Repository) GetTurfsPerOwner(ctx context.Context, ownerID string) ([]Turf, error) {
	sql := `SELECT ` + turfColumns + ` FROM turfs WHERE owner_id=$1 ORDER BY created_at DESC;`

	rows, err := r.pool.Query(ctx, sql, ownerID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch turfs for owner '%v': %w", ownerID, err)
	}

	defer rows.Close()

	var turfs []Turf

	for rows.Next() {
		t, err := scanTurf(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning turf row: %w", err)
		}

		turfs = append(turfs, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating turf rows: %w", err)
	}

	return turfs, nil
}

func (r *Repository) InsertTurf(ctx context.Context, t Turf) (Turf, error) {
	sql := `
			INSERT INTO turfs(
			id, name, description, sport_type, location, price_per_hour, image_url, available_from, available_to, owner_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING created_at;
		`

	t.ID = uuid.NewString()

	err := r.pool.QueryRow(ctx, sql,
		t.ID,
		t.Name,
		t.Description,
		t.SportType,
		t.Location,
		t.PricePerHour,
		t.ImageURL,
		t.AvailableFrom,
		t.AvailableTo,
		t.OwnerID,
	).Scan(&t.CreatedAt)

	if err != nil {
		return Turf{}, fmt.Errorf("failed to insert turf: %w", err)
	}

	return t, nil
}

func (r *Repository) UpdateTurf(ctx context.Context, t Turf) error {
	sql := `
			UPDATE turfs
			SET
				name=$1,
				description=$2,
				sport_type=$3,
				location=$4,
				price_per_hour=$5,
				image_url=$6,
				available_from=$7,
				available_to=$8
			WHERE id=$9;
		`

	tag, err := r.pool.Exec(ctx, sql,
		t.Name,
		t.Description,
		t.SportType,
		t.Location,
		t.PricePerHour,
		t.ImageURL,
		t.AvailableFrom,
		t.AvailableTo,
		t.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update turf: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrTurfNotFound
	}

	return nil
}

func (r *Repository) DeleteTurf(ctx context.Context, id string) error {
	sql := `DELETE FROM turfs WHERE id=$1;`

	tag, err := r.pool.Exec(ctx, sql, id)

	if err != nil {
		return fmt.Errorf("failed to delete turf '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrTurfNotFound
	}

	return nil
}
