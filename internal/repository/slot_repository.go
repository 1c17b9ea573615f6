package repository

import (
	"context"
	"database/sql"
	"fmt"

	"lessonbook/internal/model"
)

type SlotRepository struct {
	db *sql.DB
}

func NewSlotRepository(db *sql.DB) *SlotRepository {
	return &SlotRepository{db: db}
}

// GetByID получает слот по ID
func (r *SlotRepository) GetByID(ctx context.Context, id int64) (*model.TimeSlot, error) {
	query := `
		SELECT id, day, time, created_at
		FROM time_slot
		WHERE id = ?
	`

	var slot model.TimeSlot
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&slot.ID,
		&slot.Day,
		&slot.Time,
		&slot.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get slot by id: %w", err)
	}

	return &slot, nil
}

// GetAllWithBookings получает все слоты в порядке вставки,
// каждый с именем студента из первой брони (если слот занят)
func (r *SlotRepository) GetAllWithBookings(ctx context.Context) ([]*model.TimeSlot, error) {
	query := `
		SELECT ts.id, ts.day, ts.time, ts.created_at, b.student_name
		FROM time_slot ts
		LEFT JOIN booking b ON b.time_slot_id = ts.id
		ORDER BY ts.id, b.rowid
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get slots with bookings: %w", err)
	}
	defer rows.Close()

	var slots []*model.TimeSlot
	seen := make(map[int64]bool)

	for rows.Next() {
		var slot model.TimeSlot
		var student sql.NullString
		err := rows.Scan(
			&slot.ID,
			&slot.Day,
			&slot.Time,
			&slot.CreatedAt,
			&student,
		)
		if err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}

		// LEFT JOIN даёт по строке на каждую бронь — оставляем первую
		if seen[slot.ID] {
			continue
		}
		seen[slot.ID] = true

		if student.Valid {
			slot.BookedBy = &student.String
		}
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate slots: %w", err)
	}

	return slots, nil
}

// Count возвращает количество слотов
func (r *SlotRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM time_slot`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count slots: %w", err)
	}
	return count, nil
}

// SeedWeeklyTemplate засеивает пустую таблицу слотов недельным шаблоном.
// Вся вставка выполняется в одной транзакции; непустая таблица не трогается.
func (r *SlotRepository) SeedWeeklyTemplate(ctx context.Context, template []model.TimeSlot) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var count int64
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM time_slot`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count slots: %w", err)
	}

	if count > 0 {
		return 0, nil
	}

	var inserted int64
	for _, slot := range template {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO time_slot (day, time) VALUES (?, ?)`,
			slot.Day, slot.Time,
		)
		if err != nil {
			return 0, fmt.Errorf("insert slot %s %s: %w", slot.Day, slot.Time, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	return inserted, nil
}
