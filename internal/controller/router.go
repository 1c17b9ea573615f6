package controller

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lessonbook/internal/controller/handlers"
	"lessonbook/internal/controller/middleware"
)

// NewRouter собирает gin-движок со страницами и middleware
func NewRouter(pages *handlers.Pages, env string, logger *zap.Logger) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	r.SetHTMLTemplate(handlers.Templates())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/", pages.Home)
	r.POST("/", pages.SubmitBooking)
	r.GET("/admin", pages.Admin)
	r.GET("/schedule.png", pages.ScheduleImage)

	return r
}
