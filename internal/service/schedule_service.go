package service

import (
	"context"
	"fmt"

	"lessonbook/internal/model"
	"lessonbook/internal/repository"
)

// SlotView слот глазами страницы расписания
type SlotView struct {
	ID        int64
	Time      string
	Available bool
	Student   string // пусто для свободного слота
}

// DayGroup слоты одного дня недели
type DayGroup struct {
	Day   string
	Slots []SlotView
}

type ScheduleService struct {
	slotRepo    *repository.SlotRepository
	bookingRepo *repository.BookingRepository
}

func NewScheduleService(
	slotRepo *repository.SlotRepository,
	bookingRepo *repository.BookingRepository,
) *ScheduleService {
	return &ScheduleService{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
	}
}

// BuildSchedule собирает расписание, сгруппированное по дням.
// Порядок дней — порядок их первого появления среди слотов,
// порядок слотов внутри дня — порядок вставки.
func (s *ScheduleService) BuildSchedule(ctx context.Context) ([]DayGroup, error) {
	slots, err := s.slotRepo.GetAllWithBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load slots: %w", err)
	}

	return GroupByDay(slots), nil
}

// RecentBookings возвращает последние n броней в порядке вставки
func (s *ScheduleService) RecentBookings(ctx context.Context, n int) ([]*model.Booking, error) {
	bookings, err := s.bookingRepo.GetRecent(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("load recent bookings: %w", err)
	}
	return bookings, nil
}

// GroupByDay группирует слоты по дням недели.
// Чистая функция от состояния хранилища — тестируется без БД и шаблонов.
func GroupByDay(slots []*model.TimeSlot) []DayGroup {
	var groups []DayGroup
	index := make(map[string]int)

	for _, slot := range slots {
		view := SlotView{
			ID:        slot.ID,
			Time:      slot.Time,
			Available: slot.Available(),
		}
		if slot.BookedBy != nil {
			view.Student = *slot.BookedBy
		}

		i, ok := index[slot.Day]
		if !ok {
			i = len(groups)
			index[slot.Day] = i
			groups = append(groups, DayGroup{Day: slot.Day})
		}
		groups[i].Slots = append(groups[i].Slots, view)
	}

	return groups
}

// AvailableOnly оставляет в группах только свободные слоты;
// дни без свободных слотов выпадают целиком
func AvailableOnly(groups []DayGroup) []DayGroup {
	var out []DayGroup
	for _, g := range groups {
		var free []SlotView
		for _, slot := range g.Slots {
			if slot.Available {
				free = append(free, slot)
			}
		}
		if len(free) > 0 {
			out = append(out, DayGroup{Day: g.Day, Slots: free})
		}
	}
	return out
}
