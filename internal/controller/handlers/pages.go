package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lessonbook/internal/model"
	"lessonbook/internal/service"
)

// recentLimit сколько последних броней показывает главная страница
const recentLimit = 5

type Pages struct {
	bookingService  *service.BookingService
	scheduleService *service.ScheduleService
	logger          *zap.Logger
}

func NewPages(
	bookingService *service.BookingService,
	scheduleService *service.ScheduleService,
	logger *zap.Logger,
) *Pages {
	return &Pages{
		bookingService:  bookingService,
		scheduleService: scheduleService,
		logger:          logger,
	}
}

type homeView struct {
	Days          []service.DayGroup
	AvailableDays []service.DayGroup
	Recent        []*model.Booking
}

// Home рендерит главную страницу: форма, расписание, последние записи
func (h *Pages) Home(c *gin.Context) {
	h.renderHome(c)
}

// SubmitBooking обрабатывает форму записи и рендерит главную заново.
// Невалидная или опоздавшая заявка молча пропадает — страница
// отдаётся так же, как на обычный GET, без сообщений об ошибке.
func (h *Pages) SubmitBooking(c *gin.Context) {
	_, err := h.bookingService.SubmitBooking(c.Request.Context(), service.SubmitBookingInput{
		StudentName: c.PostForm("student_name"),
		Email:       c.PostForm("email"),
		Phone:       c.PostForm("phone"),
		TimeSlotID:  c.PostForm("time_slot_id"),
	})
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	h.renderHome(c)
}

func (h *Pages) renderHome(c *gin.Context) {
	ctx := c.Request.Context()

	days, err := h.scheduleService.BuildSchedule(ctx)
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	recent, err := h.scheduleService.RecentBookings(ctx, recentLimit)
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, "home", homeView{
		Days:          days,
		AvailableDays: service.AvailableOnly(days),
		Recent:        recent,
	})
}

type adminView struct {
	Bookings []*model.Booking
	Count    int64
}

// Admin рендерит таблицу всех броней с общим количеством
func (h *Pages) Admin(c *gin.Context) {
	ctx := c.Request.Context()

	bookings, err := h.bookingService.AllBookings(ctx)
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, "admin", adminView{
		Bookings: bookings,
		Count:    int64(len(bookings)),
	})
}
