package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"lessonbook/internal/controller/render"
)

// ScheduleImage отдаёт недельное расписание картинкой PNG
func (h *Pages) ScheduleImage(c *gin.Context) {
	days, err := h.scheduleService.BuildSchedule(c.Request.Context())
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	var buf bytes.Buffer
	if err := render.WeekPNG(&buf, days); err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
