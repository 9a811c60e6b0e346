package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"praxis/config"
	"praxis/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())

	router.Use(h.corsMiddleware())

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.login)
		}

		appointments := api.Group("/appointments")
		{
			appointments.GET("/slots", h.getDaySlots)
			appointments.POST("", h.createAppointment)
			appointments.POST("/cancel", h.cancelAppointment)
		}

		api.POST("/contact", h.createContactMessage)

		news := api.Group("/news")
		{
			news.GET("", h.getPublishedNews)
			news.GET("/:slug", h.getNewsBySlug)
		}

		admin := api.Group("/admin")
		admin.Use(h.adminAuthMiddleware())
		{
			admin.GET("/appointments", h.adminListAppointments)
			admin.POST("/appointments", h.adminCreateAppointment)
			admin.PATCH("/appointments/:id", h.adminUpdateAppointmentStatus)
			admin.DELETE("/appointments/:id", h.adminDeleteAppointment)

			admin.GET("/blocked-slots", h.adminListBlockedSlots)
			admin.POST("/blocked-slots", h.adminCreateBlockedSlot)
			admin.DELETE("/blocked-slots/:id", h.adminDeleteBlockedSlot)

			admin.GET("/stats", h.adminGetStats)

			admin.GET("/news", h.adminListNews)
			admin.POST("/news", h.adminCreateNews)
			admin.GET("/news/:id", h.adminGetNews)
			admin.PATCH("/news/:id", h.adminUpdateNews)
			admin.DELETE("/news/:id", h.adminDeleteNews)
			admin.POST("/news/:id/image", h.adminUploadNewsImage)

			admin.GET("/messages", h.adminListMessages)
			admin.PATCH("/messages/:id", h.adminUpdateMessage)
			admin.DELETE("/messages/:id", h.adminDeleteMessage)
		}
	}
}
