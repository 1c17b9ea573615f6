package model

import "time"

type Booking struct {
	ID          string    `json:"id"`
	StudentName string    `json:"student_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	TimeSlotID  int64     `json:"time_slot_id"`
	BookingDate time.Time `json:"booking_date"`

	// Дополнительное поле для удобства (не из БД)
	Slot *TimeSlot `json:"slot,omitempty"`
}
