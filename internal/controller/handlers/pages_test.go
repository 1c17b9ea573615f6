package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lessonbook/internal/controller"
	"lessonbook/internal/controller/handlers"
	"lessonbook/internal/model"
	"lessonbook/internal/repository"
	"lessonbook/internal/service"
	"lessonbook/internal/testutil"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db := testutil.NewDB(t)
	slotRepo := repository.NewSlotRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	_, err := slotRepo.SeedWeeklyTemplate(context.Background(), model.WeeklyTemplate)
	require.NoError(t, err)

	logger := zap.NewNop()
	bookingSvc := service.NewBookingService(slotRepo, bookingRepo, nil, logger)
	scheduleSvc := service.NewScheduleService(slotRepo, bookingRepo)
	pages := handlers.NewPages(bookingSvc, scheduleSvc, logger)

	return controller.NewRouter(pages, "production", logger)
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func postForm(t *testing.T, router *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}

func bookingForm(name, email, phone, slotID string) url.Values {
	return url.Values{
		"student_name": {name},
		"email":        {email},
		"phone":        {phone},
		"time_slot_id": {slotID},
	}
}

func TestHomePage(t *testing.T) {
	router := newRouter(t)

	w := get(t, router, "/")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	require.Contains(t, body, "Понедельник")
	require.Contains(t, body, "Четверг")
	// Все 12 слотов свободны и присутствуют в select
	for i := 1; i <= 12; i++ {
		require.Contains(t, body, `<option value="`+strconv.Itoa(i)+`">`)
	}
	// Записей пока нет — секции последних записей нет
	require.NotContains(t, body, "Последние записи")
}

func TestSubmitBookingFlow(t *testing.T) {
	router := newRouter(t)

	w := postForm(t, router, bookingForm("Аня", "anya@example.com", "123", "1"))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	// Забронированный слот пропадает из select, остальные остаются
	require.NotContains(t, body, `<option value="1">`)
	require.Contains(t, body, `<option value="2">`)
	// Слот показан занятым, студент виден в расписании и в последних записях
	require.Contains(t, body, "занято (Аня)")
	require.Contains(t, body, "Последние записи")
}

func TestSubmitBookingTakenSlotSilentlyDropped(t *testing.T) {
	router := newRouter(t)

	w := postForm(t, router, bookingForm("A", "a@x.com", "1", "1"))
	require.Equal(t, http.StatusOK, w.Code)

	// Вторая заявка на тот же слот: 200 без сообщений, бронь остаётся первая
	w = postForm(t, router, bookingForm("B", "b@x.com", "2", "1"))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "занято (A)")

	w = get(t, router, "/admin")
	body := w.Body.String()
	require.Contains(t, body, "Всего записей: 1")
	require.Contains(t, body, "a@x.com")
	require.NotContains(t, body, "b@x.com")
}

func TestSubmitBookingMissingFieldIsNoOp(t *testing.T) {
	router := newRouter(t)

	form := bookingForm("", "a@x.com", "1", "1")
	w := postForm(t, router, form)
	require.Equal(t, http.StatusOK, w.Code)

	// Страница как при обычном GET: слот по-прежнему свободен
	require.Contains(t, w.Body.String(), `<option value="1">`)

	w = get(t, router, "/admin")
	require.Contains(t, w.Body.String(), "Всего записей: 0")
}

func TestAdminPage(t *testing.T) {
	router := newRouter(t)

	students := []struct{ name, email, phone, slot string }{
		{"Аня", "anya@x.com", "111", "1"},
		{"Боря", "borya@x.com", "222", "2"},
		{"Вера", "vera@x.com", "333", "3"},
	}
	for _, s := range students {
		w := postForm(t, router, bookingForm(s.name, s.email, s.phone, s.slot))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := get(t, router, "/admin")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	require.Contains(t, body, "Всего записей: 3")
	for _, s := range students {
		require.Contains(t, body, s.name)
		require.Contains(t, body, s.email)
		require.Contains(t, body, s.phone)
	}
}

func TestScheduleImage(t *testing.T) {
	router := newRouter(t)

	w := get(t, router, "/schedule.png")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "image/png", w.Header().Get("Content-Type"))

	body := w.Body.Bytes()
	require.NotEmpty(t, body)
	require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, body[:4])
}

func TestHealth(t *testing.T) {
	router := newRouter(t)

	w := get(t, router, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "ok")
}
