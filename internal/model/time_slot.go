package model

import "time"

type TimeSlot struct {
	ID        int64     `json:"id"`
	Day       string    `json:"day"`
	Time      string    `json:"time"` // Формат "15:04"
	CreatedAt time.Time `json:"created_at"`

	// Дополнительное поле для удобства (не из БД):
	// имя студента из первой брони слота, nil если слот свободен
	BookedBy *string `json:"booked_by,omitempty"`
}

// Available возвращает true если слот никем не забронирован
func (s *TimeSlot) Available() bool {
	return s.BookedBy == nil
}

// WeeklyTemplate фиксированное недельное расписание,
// которым засеивается пустая таблица слотов при старте
var WeeklyTemplate = []TimeSlot{
	{Day: "Понедельник", Time: "15:00"},
	{Day: "Понедельник", Time: "16:00"},
	{Day: "Понедельник", Time: "17:00"},
	{Day: "Вторник", Time: "15:00"},
	{Day: "Вторник", Time: "16:00"},
	{Day: "Вторник", Time: "17:00"},
	{Day: "Среда", Time: "15:00"},
	{Day: "Среда", Time: "16:00"},
	{Day: "Среда", Time: "17:00"},
	{Day: "Четверг", Time: "15:00"},
	{Day: "Четверг", Time: "16:00"},
	{Day: "Четверг", Time: "17:00"},
}
