package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants retrieves all restaurants
	GetAllRestaurants(c *gin.Context)
	// GetRestaurantByID retrieves a restaurant by its ID
	GetRestaurantByID(c *gin.Context)
	// DeleteRestaurant deletes a restaurant by its ID
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) *restaurantController {
	return &restaurantController{service: service}
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Description Get a list of all restaurants without their pizza associations
// @Tags restaurants
// @Accept json
// @Produce json
// @Success 200 {array} models.Restaurant
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (c *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.GetAllRestaurants()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve restaurants"))
		return
	}
	ctx.JSON(http.StatusOK, restaurants)
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a single restaurant with its pizzas and per-association prices
// @Tags restaurants
// @Accept json
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.RestaurantDetail
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (c *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse("Restaurant not found"))
		return
	}

	restaurant, err := c.service.GetRestaurantByID(id)
	if err != nil {
		if errors.Is(err, services.ErrRestaurantNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewErrorResponse("Restaurant not found"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve restaurant"))
		return
	}
	ctx.JSON(http.StatusOK, models.NewRestaurantDetail(restaurant))
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant and all of its pizza associations
// @Tags restaurants
// @Accept json
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse("Restaurant not found"))
		return
	}

	if err := c.service.DeleteRestaurant(id); err != nil {
		if errors.Is(err, services.ErrRestaurantNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewErrorResponse("Restaurant not found"))
			return
		}
		// Deletion failures past the existence check are unanticipated
		// (store connectivity and the like); the transaction has
		// already been rolled back by the service.
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to delete restaurant: "+err.Error()))
		return
	}
	ctx.Status(http.StatusNoContent)
}
