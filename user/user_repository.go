package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, username, email, first_name, last_name, phone, role, password_hash, created_at`

const uniqueViolation = "23505"

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&u.Phone,
		&u.Role,
		&u.PasswordHash,
		&u.CreatedAt,
	)
	return u, err
}

func (r *Repository) InsertUser(ctx context.Context, u User) (User, error) {
	sql := `
			INSERT INTO users(id, username, email, first_name, last_name, phone, role, password_hash)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING created_at;
		`

	u.ID = uuid.NewString()

	err := r.pool.QueryRow(ctx, sql,
		u.ID,
		u.Username,
		u.Email,
		u.FirstName,
		u.LastName,
		u.Phone,
		u.Role,
		u.PasswordHash,
	).Scan(&u.CreatedAt)

	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return User{}, ErrUserExists
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return u, nil
}

func (r *Repository) GetUserByID(ctx context.Context, id string) (User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE id=$1;`

	u, err := scanUser(r.pool.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to fetch user with id %v: %w", id, err)
	}

	return u, nil
}

func (r *Repository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE username=$1;`

	u, err := scanUser(r.pool.QueryRow(ctx, sql, username))

	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to fetch user '%v': %w", username, err)
	}

	return u, nil
}
