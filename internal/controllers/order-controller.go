package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/pizza-factory/internal/ingredients"
	"github.com/franciscosanchezn/pizza-factory/internal/models"
	"github.com/franciscosanchezn/pizza-factory/internal/services"
	"github.com/franciscosanchezn/pizza-factory/internal/store"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OrderController handles HTTP requests related to stores and orders
type OrderController interface {
	// ListStores lists the open stores
	ListStores(c *gin.Context)
	// GetMenu returns the menu of a store
	GetMenu(c *gin.Context)
	// PlaceOrder orders a pizza from a store
	PlaceOrder(c *gin.Context)
	// GetAllOrders retrieves all order receipts
	GetAllOrders(c *gin.Context)
	// GetOrderByID retrieves a receipt by its ID
	GetOrderByID(c *gin.Context)
	// DeleteOrder deletes a receipt by its ID
	DeleteOrder(c *gin.Context)
}

// PlaceOrderRequest is the body of an order
type PlaceOrderRequest struct {
	Kind string `json:"kind" binding:"required" example:"cheese"`
}

type controller struct {
	service services.OrderService
}

// NewOrderController creates a new instance of OrderController
func NewOrderController(service services.OrderService) OrderController {
	return &controller{service: service}
}

// ListStores godoc
// @Summary List stores
// @Description List every open store with its regional style and menu
// @Tags stores
// @Produce json
// @Success 200 {array} services.StoreInfo
// @Router /api/v1/public/stores [get]
func (c *controller) ListStores(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.service.Stores())
}

// GetMenu godoc
// @Summary Get a store menu
// @Description Get the style and menu of one store
// @Tags stores
// @Produce json
// @Param store path string true "Store key or region alias" example(chicago)
// @Success 200 {object} services.StoreInfo
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/stores/{store}/menu [get]
func (c *controller) GetMenu(ctx *gin.Context) {
	info, err := c.service.GetStore(ctx.Param("store"))
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, info)
}

// PlaceOrder godoc
// @Summary Order a pizza
// @Description Assemble, bake, cut and box a pizza at the given store
// @Tags orders
// @Accept json
// @Produce json
// @Param store path string true "Store key or region alias"
// @Param order body PlaceOrderRequest true "Pizza kind"
// @Success 201 {object} models.OrderRecord
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/public/stores/{store}/orders [post]
func (c *controller) PlaceOrder(ctx *gin.Context) {
	var req PlaceOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	record, err := c.service.PlaceOrder(ctx.Param("store"), req.Kind)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, record)
}

// GetAllOrders godoc
// @Summary Get all orders
// @Description Get the receipts of completed orders with optional filtering
// @Tags orders
// @Produce json
// @Param region query string false "Filter by region"
// @Param kind query string false "Filter by pizza kind"
// @Success 200 {array} models.OrderRecord
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/public/orders [get]
func (c *controller) GetAllOrders(ctx *gin.Context) {
	orders, err := c.service.GetAllOrders(ctx.Query("region"), ctx.Query("kind"))
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

// GetOrderByID godoc
// @Summary Get order by ID
// @Description Get a single receipt by its order ID
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.OrderRecord
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/orders/{id} [get]
func (c *controller) GetOrderByID(ctx *gin.Context) {
	order, err := c.service.GetOrderByID(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, order)
}

// DeleteOrder godoc
// @Summary Delete an order
// @Description Delete a receipt by its order ID
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 204
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/orders/{id} [delete]
func (c *controller) DeleteOrder(ctx *gin.Context) {
	if err := c.service.DeleteOrder(ctx.Param("id")); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// respondWithError maps domain errors to the API error envelope
func respondWithError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, ingredients.ErrUnknownRegion):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrUnknownRegion, err.Error()))
	case store.IsUnknownKind(err):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrUnknownPizzaKind, err.Error()))
	case errors.Is(err, gorm.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrOrderNotFound, "Order not found"))
	default:
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to process order"))
	}
}
