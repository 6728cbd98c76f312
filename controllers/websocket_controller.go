package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"lab-dashboard-backend/services"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Configure properly for production
	},
}

// WebSocketController streams assistant replies over a socket. Auto
// triggered actions are delivered as separate navigate events, at most once
// per assistant message.
type WebSocketController struct {
	assistantService *services.AssistantService
	logger           zerolog.Logger
}

func NewWebSocketController(assistant *services.AssistantService, logger zerolog.Logger) *WebSocketController {
	return &WebSocketController{
		assistantService: assistant,
		logger:           logger,
	}
}

func (wc *WebSocketController) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		wc.logger.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	dispatcher := services.NewActionDispatcher(services.NavigationHandlers{
		OnViewOrder: func(orderID string) {
			conn.WriteJSON(gin.H{"type": "navigate", "view": "order", "order_id": orderID})
		},
		OnTrackOrder: func(orderID string) {
			conn.WriteJSON(gin.H{"type": "navigate", "view": "tracking", "order_id": orderID})
		},
		OnFilterByPatient: func(patientID, patientName string) {
			conn.WriteJSON(gin.H{"type": "navigate", "view": "orders", "patient_id": patientID, "patient_name": patientName})
		},
		OnCreateOrder: func(patientID, patientName string) {
			conn.WriteJSON(gin.H{"type": "navigate", "view": "create_order", "patient_id": patientID, "patient_name": patientName})
		},
	})

	for {
		var msg map[string]string
		if err := conn.ReadJSON(&msg); err != nil {
			wc.logger.Debug().Err(err).Msg("websocket read ended")
			break
		}

		text := msg["message"]
		if text == "" {
			conn.WriteJSON(gin.H{"error": "Message is required"})
			continue
		}

		response := wc.assistantService.Respond(text)
		if err := conn.WriteJSON(gin.H{"type": "message", "message": response}); err != nil {
			break
		}
		dispatcher.Dispatch(response.ID, response.Metadata)
	}
}
