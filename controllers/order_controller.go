package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lab-dashboard-backend/models"
	"lab-dashboard-backend/services"
)

type OrderController struct {
	store        services.Repository
	orderService *services.OrderService
}

func NewOrderController(s services.Repository, orderService *services.OrderService) *OrderController {
	return &OrderController{store: s, orderService: orderService}
}

// ListOrders returns recent orders, optionally filtered by status.
func (oc *OrderController) ListOrders(c *gin.Context) {
	limit := 5
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	var orders []models.TestOrder
	if status := c.Query("status"); status != "" {
		orders = oc.store.OrdersByStatus(status)
		if len(orders) > limit {
			orders = orders[:limit]
		}
	} else {
		orders = oc.store.RecentOrders(limit)
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}

// GetOrder returns a single order by ID, matched case-insensitively.
func (oc *OrderController) GetOrder(c *gin.Context) {
	order, ok := oc.store.GetOrderByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetOrderTracking returns the kit/shipment timeline for an order.
func (oc *OrderController) GetOrderTracking(c *gin.Context) {
	order, ok := oc.store.GetOrderByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order_id": order.ID,
		"status":   order.Status,
		"steps":    services.TrackingSteps(order),
	})
}

// CreateOrder places a new test order for a patient.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	resp, err := oc.orderService.Create(req)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetTestTypes returns the distinct test names available for ordering.
func (oc *OrderController) GetTestTypes(c *gin.Context) {
	types := oc.store.TestTypes()
	c.JSON(http.StatusOK, gin.H{
		"test_types": types,
		"count":      len(types),
	})
}
