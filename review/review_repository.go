package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// InsertReview adds a review; the unique index on (turf_id, user_id) rejects
// a second review from the same user.
func (r *Repository) InsertReview(ctx context.Context, review Review) (Review, error) {
	sql := `
			INSERT INTO reviews(id, turf_id, user_id, rating, comment)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING created_at;
		`

	review.ID = uuid.NewString()

	err := r.pool.QueryRow(ctx, sql,
		review.ID,
		review.TurfID,
		review.UserID,
		review.Rating,
		review.Comment,
	).Scan(&review.CreatedAt)

	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return Review{}, ErrReviewExists
	}

	if err != nil {
		return Review{}, fmt.Errorf("failed to insert review: %w", err)
	}

	return review, nil
}

func (r *Repository) GetReviewsPerTurf(ctx context.Context, turfID string) ([]Review, error) {
	sql := `
            SELECT id, turf_id, user_id, rating, COALESCE(comment, ''), created_at
            FROM reviews
            WHERE turf_id=$1
            ORDER BY created_at DESC;
        `

	rows, err := r.pool.Query(ctx, sql, turfID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews for turf '%v': %w", turfID, err)
	}

	defer rows.Close()

	var reviews []Review

	for rows.Next() {
		var review Review
		err := rows.Scan(
			&review.ID,
			&review.TurfID,
			&review.UserID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning review row: %w", err)
		}

		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating review rows: %w", err)
	}

	return reviews, nil
}
