package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	router.GET("/health", handler.HealthCheck)

	// Payload submission
	router.POST("/post", handler.Post)

	// Lookups
	router.GET("/json/:id", handler.GetByID)
	router.GET("/json", handler.ListCategory)
	router.GET("/name/:name", handler.GetByName)

	// Maintenance reports
	router.GET("/events/active", handler.ActiveEvents)
	router.GET("/reports/dungeons-without-battles", handler.DungeonsWithoutBattles)
	router.GET("/reports/battles-without-conditions", handler.BattlesWithoutConditions)
}
