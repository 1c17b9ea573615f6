package repository

import (
	"context"
	"database/sql"
	"fmt"

	"lessonbook/internal/model"
)

type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// CreateIfSlotFree создаёт бронь одним условным INSERT:
// строка вставляется только если у слота ещё нет ни одной брони.
// Возвращает false если слот уже занят.
func (r *BookingRepository) CreateIfSlotFree(ctx context.Context, booking *model.Booking) (bool, error) {
	query := `
		INSERT INTO booking (id, student_name, email, phone, time_slot_id, booking_date)
		SELECT ?, ?, ?, ?, ?, ?
		WHERE NOT EXISTS (
			SELECT 1 FROM booking WHERE time_slot_id = ?
		)
	`

	result, err := r.db.ExecContext(
		ctx, query,
		booking.ID,
		booking.StudentName,
		booking.Email,
		booking.Phone,
		booking.TimeSlotID,
		booking.BookingDate,
		booking.TimeSlotID,
	)
	if err != nil {
		return false, fmt.Errorf("create booking: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("create booking rows affected: %w", err)
	}

	return affected > 0, nil
}

// GetRecent получает последние n броней в порядке вставки
func (r *BookingRepository) GetRecent(ctx context.Context, n int) ([]*model.Booking, error) {
	query := `
		SELECT b.id, b.student_name, b.email, b.phone, b.time_slot_id, b.booking_date,
		       ts.id, ts.day, ts.time, ts.created_at
		FROM booking b
		JOIN time_slot ts ON ts.id = b.time_slot_id
		ORDER BY b.rowid DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("get recent bookings: %w", err)
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, err
	}

	// Запрос отдаёт брони от новых к старым — разворачиваем в порядок вставки
	for i, j := 0, len(bookings)-1; i < j; i, j = i+1, j-1 {
		bookings[i], bookings[j] = bookings[j], bookings[i]
	}

	return bookings, nil
}

// GetAll получает все брони в порядке вставки
func (r *BookingRepository) GetAll(ctx context.Context) ([]*model.Booking, error) {
	query := `
		SELECT b.id, b.student_name, b.email, b.phone, b.time_slot_id, b.booking_date,
		       ts.id, ts.day, ts.time, ts.created_at
		FROM booking b
		JOIN time_slot ts ON ts.id = b.time_slot_id
		ORDER BY b.rowid
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// CountForSlot возвращает количество броней слота
func (r *BookingRepository) CountForSlot(ctx context.Context, slotID int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM booking WHERE time_slot_id = ?`, slotID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count bookings for slot: %w", err)
	}
	return count, nil
}

// Count возвращает общее количество броней
func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM booking`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return count, nil
}

func scanBookings(rows *sql.Rows) ([]*model.Booking, error) {
	var bookings []*model.Booking
	for rows.Next() {
		var booking model.Booking
		var slot model.TimeSlot
		err := rows.Scan(
			&booking.ID,
			&booking.StudentName,
			&booking.Email,
			&booking.Phone,
			&booking.TimeSlotID,
			&booking.BookingDate,
			&slot.ID,
			&slot.Day,
			&slot.Time,
			&slot.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		booking.Slot = &slot
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}

	return bookings, nil
}
