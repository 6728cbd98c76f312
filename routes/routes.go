package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lab-dashboard-backend/config"
	"lab-dashboard-backend/controllers"
	"lab-dashboard-backend/services"
	"lab-dashboard-backend/store"
)

func SetupRoutes(router *gin.Engine, cfg *config.Config, dataStore *store.Store, logger zerolog.Logger) {
	// Initialize services
	aiService := services.NewAIService(cfg.AI, logger)
	assistantService := services.NewAssistantService(dataStore, logger)
	orderService := services.NewOrderService(dataStore, logger)

	// Initialize controllers
	chatController := controllers.NewChatController(assistantService, aiService, cfg.SimulatedLatency, logger)
	wsController := controllers.NewWebSocketController(assistantService, logger)
	patientController := controllers.NewPatientController(dataStore)
	orderController := controllers.NewOrderController(dataStore, orderService)

	api := router.Group("/api/v1")
	{
		// Assistant
		api.POST("/chat", chatController.HandleChat)
		api.GET("/config", chatController.GetConfig)

		// WebSocket for real-time chat
		api.GET("/ws", wsController.HandleWebSocket)

		// Patients
		api.GET("/patients", patientController.ListPatients)
		api.GET("/patients/:id", patientController.GetPatient)
		api.GET("/patients/:id/orders", patientController.GetPatientOrders)

		// Orders
		api.GET("/orders", orderController.ListOrders)
		api.POST("/orders", orderController.CreateOrder)
		api.GET("/orders/:id", orderController.GetOrder)
		api.GET("/orders/:id/tracking", orderController.GetOrderTracking)

		// Test catalogue
		api.GET("/tests", orderController.GetTestTypes)
	}

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error": "Route not found",
			"path":  c.Request.URL.Path,
		})
	})
}
