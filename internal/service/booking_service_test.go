package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lessonbook/internal/model"
	"lessonbook/internal/repository"
	"lessonbook/internal/service"
	"lessonbook/internal/testutil"
)

type captureNotifier struct {
	ch chan *model.Booking
}

func (n *captureNotifier) BookingCreated(_ context.Context, booking *model.Booking) {
	n.ch <- booking
}

func newBookingService(t *testing.T, notifier service.Notifier) (*service.BookingService, *repository.BookingRepository) {
	t.Helper()

	db := testutil.NewDB(t)
	slotRepo := repository.NewSlotRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	_, err := slotRepo.SeedWeeklyTemplate(context.Background(), model.WeeklyTemplate)
	require.NoError(t, err)

	svc := service.NewBookingService(slotRepo, bookingRepo, notifier, zap.NewNop())
	return svc, bookingRepo
}

func TestSubmitBooking(t *testing.T) {
	svc, bookingRepo := newBookingService(t, nil)
	ctx := context.Background()

	before := time.Now()
	booking, err := svc.SubmitBooking(ctx, service.SubmitBookingInput{
		StudentName: "Аня",
		Email:       "anya@example.com",
		Phone:       "123",
		TimeSlotID:  "1",
	})
	require.NoError(t, err)
	require.NotNil(t, booking)
	require.Equal(t, "Аня", booking.StudentName)
	require.EqualValues(t, 1, booking.TimeSlotID)
	require.False(t, booking.BookingDate.Before(before))
	require.NotNil(t, booking.Slot)

	count, err := bookingRepo.CountForSlot(ctx, 1)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestSubmitBookingTakenSlot(t *testing.T) {
	svc, bookingRepo := newBookingService(t, nil)
	ctx := context.Background()

	first, err := svc.SubmitBooking(ctx, service.SubmitBookingInput{
		StudentName: "A", Email: "a@x.com", Phone: "1", TimeSlotID: "1",
	})
	require.NoError(t, err)
	require.NotNil(t, first)

	// Занятый слот: заявка молча отбрасывается, бронь остаётся первая
	second, err := svc.SubmitBooking(ctx, service.SubmitBookingInput{
		StudentName: "B", Email: "b@x.com", Phone: "2", TimeSlotID: "1",
	})
	require.NoError(t, err)
	require.Nil(t, second)

	all, err := bookingRepo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "A", all[0].StudentName)
}

func TestSubmitBookingInvalidInput(t *testing.T) {
	svc, bookingRepo := newBookingService(t, nil)
	ctx := context.Background()

	cases := []struct {
		name string
		in   service.SubmitBookingInput
	}{
		{"empty name", service.SubmitBookingInput{Email: "a@x.com", Phone: "1", TimeSlotID: "1"}},
		{"empty email", service.SubmitBookingInput{StudentName: "A", Phone: "1", TimeSlotID: "1"}},
		{"empty phone", service.SubmitBookingInput{StudentName: "A", Email: "a@x.com", TimeSlotID: "1"}},
		{"empty slot", service.SubmitBookingInput{StudentName: "A", Email: "a@x.com", Phone: "1"}},
		{"blank name", service.SubmitBookingInput{StudentName: "   ", Email: "a@x.com", Phone: "1", TimeSlotID: "1"}},
		{"bad slot id", service.SubmitBookingInput{StudentName: "A", Email: "a@x.com", Phone: "1", TimeSlotID: "abc"}},
		{"unknown slot", service.SubmitBookingInput{StudentName: "A", Email: "a@x.com", Phone: "1", TimeSlotID: "999"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			booking, err := svc.SubmitBooking(ctx, tc.in)
			require.NoError(t, err)
			require.Nil(t, booking)
		})
	}

	count, err := bookingRepo.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestSubmitBookingNotifies(t *testing.T) {
	notifier := &captureNotifier{ch: make(chan *model.Booking, 1)}
	svc, _ := newBookingService(t, notifier)

	booking, err := svc.SubmitBooking(context.Background(), service.SubmitBookingInput{
		StudentName: "Аня", Email: "anya@example.com", Phone: "123", TimeSlotID: "2",
	})
	require.NoError(t, err)
	require.NotNil(t, booking)

	select {
	case notified := <-notifier.ch:
		require.Equal(t, booking.ID, notified.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was not called")
	}
}
