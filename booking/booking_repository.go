package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `id, turf_id, user_id, date, start_time, end_time, status, created_at`

// uniqueViolation is the PostgreSQL error code raised by the partial unique
// index on (turf_id, date, start_time) over non-cancelled rows.
const uniqueViolation = "23505"

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func scanBooking(row pgx.Row) (Booking, error) {
	var b Booking
	err := row.Scan(
		&b.ID,
		&b.TurfID,
		&b.UserID,
		&b.Date,
		&b.StartTime,
		&b.EndTime,
		&b.Status,
		&b.CreatedAt,
	)
	return b, err
}

func (r *Repository) queryBookings(ctx context.Context, sql string, args ...any) ([]Booking, error) {
	rows, err := r.pool.Query(ctx, sql, args...)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	defer rows.Close()

	var bookings []Booking

	for rows.Next() {
		b, err := scanBooking(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}

		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}

	return bookings, nil
}

func (r *Repository) GetBookingsForDate(ctx context.Context, turfID string, date time.Time) ([]Booking, error) {
	sql := `SELECT ` + bookingColumns + `
            FROM bookings
            WHERE turf_id=$1 AND date=$2
            ORDER BY start_time;
        `

	return r.queryBookings(ctx, sql, turfID, date)
}

func (r *Repository) GetBookingsPerTurf(ctx context.Context, turfID string) ([]Booking, error) {
	sql := `SELECT ` + bookingColumns + `
            FROM bookings
            WHERE turf_id=$1
            ORDER BY date, start_time;
        `

	return r.queryBookings(ctx, sql, turfID)
}

func (r *Repository) GetBookingsPerUser(ctx context.Context, userID string) ([]Booking, error) {
	sql := `SELECT ` + bookingColumns + `
            FROM bookings
            WHERE user_id=$1
            ORDER BY date DESC, start_time;
        `

	return r.queryBookings(ctx, sql, userID)
}

func (r *Repository) GetBookingByID(ctx context.Context, id string) (Booking, error) {
	sql := `SELECT ` + bookingColumns + ` FROM bookings WHERE id=$1;`

	b, err := scanBooking(r.pool.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to fetch booking with id %v: %w", id, err)
	}

	return b, nil
}

// InsertBookingIfAvailable inserts the booking only when no pending or
// confirmed booking already holds the same turf, date and start time. The
// conditional insert and the partial unique index together make the
// check-and-insert atomic under concurrent creates.
func (r *Repository) InsertBookingIfAvailable(ctx context.Context, booking Booking) (Booking, error) {
	sql := `
			INSERT INTO bookings(id, turf_id, user_id, date, start_time, end_time, status)
			SELECT $1, $2, $3, $4, $5, $6, $7
			WHERE NOT EXISTS (
				SELECT 1 FROM bookings
				WHERE turf_id=$2 AND date=$4 AND start_time=$5
				AND status IN ('pending', 'confirmed')
			)
			RETURNING created_at;
		`

	booking.ID = uuid.NewString()
	booking.Status = StatusPending

	err := r.pool.QueryRow(ctx, sql,
		booking.ID,
		booking.TurfID,
		booking.UserID,
		booking.Date,
		booking.StartTime,
		booking.EndTime,
		booking.Status,
	).Scan(&booking.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrSlotUnavailable
	}

	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return Booking{}, ErrSlotUnavailable
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to insert booking: %w", err)
	}

	return booking, nil
}

func (r *Repository) SetBookingStatus(ctx context.Context, id string, status Status) (Booking, error) {
	sql := `
            UPDATE bookings
            SET status=$1
            WHERE id=$2
            RETURNING ` + bookingColumns + `;
        `

	b, err := scanBooking(r.pool.QueryRow(ctx, sql, status, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to update booking '%v' status: %w", id, err)
	}

	return b, nil
}
