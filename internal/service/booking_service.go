package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lessonbook/internal/model"
	"lessonbook/internal/repository"
)

// Notifier уведомляет администратора о новой брони.
// Может быть nil — тогда уведомления отключены.
type Notifier interface {
	BookingCreated(ctx context.Context, booking *model.Booking)
}

// SubmitBookingInput сырые значения полей формы записи
type SubmitBookingInput struct {
	StudentName string
	Email       string
	Phone       string
	TimeSlotID  string
}

type BookingService struct {
	slotRepo    *repository.SlotRepository
	bookingRepo *repository.BookingRepository
	notifier    Notifier
	logger      *zap.Logger
}

func NewBookingService(
	slotRepo *repository.SlotRepository,
	bookingRepo *repository.BookingRepository,
	notifier Notifier,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// AllBookings возвращает все брони в порядке вставки (для админской страницы)
func (s *BookingService) AllBookings(ctx context.Context) ([]*model.Booking, error) {
	return s.bookingRepo.GetAll(ctx)
}

// SubmitBooking создаёт бронь по заполненной форме.
// Невалидная заявка (пустое поле, несуществующий или занятый слот)
// молча отбрасывается: возвращается (nil, nil) без ошибки,
// страница рендерится как обычный GET.
func (s *BookingService) SubmitBooking(ctx context.Context, in SubmitBookingInput) (*model.Booking, error) {
	name := strings.TrimSpace(in.StudentName)
	email := strings.TrimSpace(in.Email)
	phone := strings.TrimSpace(in.Phone)
	rawSlotID := strings.TrimSpace(in.TimeSlotID)

	if name == "" || email == "" || phone == "" || rawSlotID == "" {
		s.logger.Debug("Booking request dropped: empty field")
		return nil, nil
	}

	slotID, err := strconv.ParseInt(rawSlotID, 10, 64)
	if err != nil {
		s.logger.Debug("Booking request dropped: bad slot id",
			zap.String("time_slot_id", rawSlotID))
		return nil, nil
	}

	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}

	if slot == nil {
		s.logger.Debug("Booking request dropped: slot not found",
			zap.Int64("slot_id", slotID))
		return nil, nil
	}

	booking := &model.Booking{
		ID:          uuid.New().String(),
		StudentName: name,
		Email:       email,
		Phone:       phone,
		TimeSlotID:  slotID,
		BookingDate: time.Now(),
	}

	// Условный INSERT: проверка занятости и вставка — один атомарный шаг,
	// две одновременные заявки на слот не создадут две брони
	created, err := s.bookingRepo.CreateIfSlotFree(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	if !created {
		s.logger.Info("Booking request dropped: slot already booked",
			zap.Int64("slot_id", slotID),
			zap.String("student", name))
		return nil, nil
	}

	s.logger.Info("Booking created",
		zap.String("booking_id", booking.ID),
		zap.Int64("slot_id", slotID),
		zap.String("student", name))

	booking.Slot = slot

	if s.notifier != nil {
		// Уведомление не должно задерживать ответ студенту
		go s.notifier.BookingCreated(context.WithoutCancel(ctx), booking)
	}

	return booking, nil
}
