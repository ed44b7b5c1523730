package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты заявок
	reports := api.Group("/reports")
	{
		reports.POST("", h.createReport)
		reports.GET("", h.listReports)
		reports.GET("/nearby", h.nearbyReports)
		reports.GET("/my", h.myReports)
		reports.GET("/:id", h.getReport)
		reports.GET("/:id/history", h.reportHistory)
		reports.PUT("/:id/claim", h.claimReport)
		reports.PUT("/:id/status", h.updateReportStatus)
	}

	// Маршруты волонтеров
	volunteers := api.Group("/volunteers")
	{
		volunteers.POST("", h.registerVolunteer)
		volunteers.GET("", h.listVolunteers)
		volunteers.GET("/nearby", h.nearbyVolunteers)
		volunteers.GET("/:id", h.getVolunteer)
		volunteers.GET("/:id/reports", h.volunteerReports)
		volunteers.PUT("/:id/availability", h.updateAvailability)
	}

	// Рассылка тревоги
	api.POST("/alerts", h.raiseAlert)

	// Уведомления получателя
	api.GET("/notifications", h.listNotifications)
}

// RegisterSystemRoutes регистрирует открытые системные маршруты (без API-ключа)
func (h *Handler) RegisterSystemRoutes(router gin.IRouter) {
	router.GET("/system/health", h.healthCheck)
}
