package controllers

import (
	"github.com/franciscosanchezn/pizza-factory/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the order API under /api/v1
func RegisterRoutes(router gin.IRouter, orders OrderController, jwtSecret []byte) {
	v1 := router.Group("/api/v1")
	{
		publicApi := v1.Group("/public")
		{
			publicApi.GET("/stores", orders.ListStores)
			publicApi.GET("/stores/:store/menu", orders.GetMenu)
			publicApi.POST("/stores/:store/orders", orders.PlaceOrder)
			publicApi.GET("/orders", orders.GetAllOrders)
			publicApi.GET("/orders/:id", orders.GetOrderByID)
		}

		// Protected routes (requires JWT authentication)
		protectedApi := v1.Group("/protected")
		protectedApi.Use(middleware.JWTAuth(jwtSecret))
		{
			adminApi := protectedApi.Group("/admin")
			adminApi.Use(middleware.RequireRole("admin"))
			{
				adminApi.DELETE("/orders/:id", orders.DeleteOrder)
			}
		}
	}
}
