package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantPizzaController handles HTTP requests related to
// restaurant-pizza associations
type RestaurantPizzaController interface {
	// CreateRestaurantPizza creates a new restaurant-pizza association
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) *restaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// createRestaurantPizzaRequest is the request body for creating an
// association. Pointer fields distinguish absent from zero so that a
// missing field is reported as missing, not as an invalid value.
type createRestaurantPizzaRequest struct {
	Price        *int `json:"price"`
	PizzaID      *int `json:"pizza_id"`
	RestaurantID *int `json:"restaurant_id"`
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant-pizza association
// @Description Associate an existing pizza with an existing restaurant at a price between 1 and 30
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body createRestaurantPizzaRequest true "Association to create"
// @Success 201 {object} models.RestaurantPizzaDetail
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var req createRestaurantPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse("Missing required fields: price, pizza_id, restaurant_id"))
		return
	}
	if req.Price == nil || req.PizzaID == nil || req.RestaurantID == nil {
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse("Missing required fields: price, pizza_id, restaurant_id"))
		return
	}

	rp, err := c.service.CreateRestaurantPizza(*req.Price, *req.RestaurantID, *req.PizzaID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRestaurantNotFound):
			ctx.JSON(http.StatusNotFound, models.NewErrorResponse("Restaurant not found"))
		case errors.Is(err, services.ErrPizzaNotFound):
			ctx.JSON(http.StatusNotFound, models.NewErrorResponse("Pizza not found"))
		case errors.Is(err, models.ErrInvalidPrice):
			ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse(err.Error()))
		case errors.Is(err, services.ErrIntegrityViolation):
			ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse("A database integrity error occurred (e.g., invalid ID or duplicate entry)."))
		default:
			ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("An unexpected server error occurred: "+err.Error()))
		}
		return
	}
	ctx.JSON(http.StatusCreated, models.NewRestaurantPizzaDetail(rp))
}
