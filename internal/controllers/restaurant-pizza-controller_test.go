package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func associationCount(t *testing.T, db *gorm.DB) int64 {
	var count int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Count(&count).Error)
	return count
}

func TestCreateRestaurantPizzaEndpoint(t *testing.T) {
	router, db := setupTestRouter(t)
	restaurants, pizzas, associations := seedTestData(t, db)
	baseline := int64(len(associations))

	t.Run("creates the association with nested parents", func(t *testing.T) {
		body := fmt.Sprintf(`{"price": 15, "pizza_id": %d, "restaurant_id": %d}`, pizzas[0].ID, restaurants[1].ID)
		w := performRequest(router, http.MethodPost, "/restaurant_pizzas", body)
		assert.Equal(t, http.StatusCreated, w.Code)

		var resp models.RestaurantPizzaDetail
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotZero(t, resp.ID)
		assert.Equal(t, 15, resp.Price)
		assert.Equal(t, restaurants[1].ID, resp.RestaurantID)
		assert.Equal(t, pizzas[0].ID, resp.PizzaID)
		assert.Equal(t, "PizzArte", resp.Restaurant.Name)
		assert.Equal(t, "Margherita", resp.Pizza.Name)
		assert.Equal(t, "Dough, Tomato Sauce, Cheese", resp.Pizza.Ingredients)

		baseline++
		assert.Equal(t, baseline, associationCount(t, db))
	})

	t.Run("boundary prices 1 and 30 are accepted", func(t *testing.T) {
		for _, price := range []int{1, 30} {
			body := fmt.Sprintf(`{"price": %d, "pizza_id": %d, "restaurant_id": %d}`, price, pizzas[1].ID, restaurants[1].ID)
			w := performRequest(router, http.MethodPost, "/restaurant_pizzas", body)
			assert.Equal(t, http.StatusCreated, w.Code)
			baseline++
		}
		assert.Equal(t, baseline, associationCount(t, db))
	})

	t.Run("prices 0 and 31 are rejected with a validation body", func(t *testing.T) {
		for _, price := range []int{0, 31} {
			body := fmt.Sprintf(`{"price": %d, "pizza_id": %d, "restaurant_id": %d}`, price, pizzas[0].ID, restaurants[0].ID)
			w := performRequest(router, http.MethodPost, "/restaurant_pizzas", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"errors": ["Price must be between 1 and 30"]}`, w.Body.String())
		}
		assert.Equal(t, baseline, associationCount(t, db))
	})

	t.Run("omitted price yields the missing-fields body and persists nothing", func(t *testing.T) {
		body := fmt.Sprintf(`{"pizza_id": %d, "restaurant_id": %d}`, pizzas[0].ID, restaurants[0].ID)
		w := performRequest(router, http.MethodPost, "/restaurant_pizzas", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"errors": ["Missing required fields: price, pizza_id, restaurant_id"]}`, w.Body.String())
		assert.Equal(t, baseline, associationCount(t, db))
	})

	t.Run("null fields count as missing", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/restaurant_pizzas",
			`{"price": null, "pizza_id": null, "restaurant_id": null}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"errors": ["Missing required fields: price, pizza_id, restaurant_id"]}`, w.Body.String())
	})

	t.Run("malformed body yields the missing-fields body", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/restaurant_pizzas", `not-json`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"errors": ["Missing required fields: price, pizza_id, restaurant_id"]}`, w.Body.String())
	})

	t.Run("unknown restaurant yields 404 and persists nothing", func(t *testing.T) {
		body := fmt.Sprintf(`{"price": 10, "pizza_id": %d, "restaurant_id": 99999}`, pizzas[0].ID)
		w := performRequest(router, http.MethodPost, "/restaurant_pizzas", body)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error": "Restaurant not found"}`, w.Body.String())
		assert.Equal(t, baseline, associationCount(t, db))
	})

	t.Run("unknown pizza yields 404 and persists nothing", func(t *testing.T) {
		body := fmt.Sprintf(`{"price": 10, "pizza_id": 99999, "restaurant_id": %d}`, restaurants[0].ID)
		w := performRequest(router, http.MethodPost, "/restaurant_pizzas", body)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error": "Pizza not found"}`, w.Body.String())
		assert.Equal(t, baseline, associationCount(t, db))
	})

	t.Run("restaurant is checked before pizza", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/restaurant_pizzas",
			`{"price": 10, "pizza_id": 99999, "restaurant_id": 99999}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error": "Restaurant not found"}`, w.Body.String())
	})
}

// failingRestaurantPizzaService always fails with a fixed error, for
// exercising the error-to-status mapping on outcomes the real service
// only produces under store races or outages.
type failingRestaurantPizzaService struct {
	err error
}

func (s failingRestaurantPizzaService) CreateRestaurantPizza(price, restaurantID, pizzaID int) (models.RestaurantPizza, error) {
	return models.RestaurantPizza{}, s.err
}

func TestCreateRestaurantPizzaErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(err error) *gin.Engine {
		router := gin.New()
		controller := NewRestaurantPizzaController(failingRestaurantPizzaService{err: err})
		router.POST("/restaurant_pizzas", controller.CreateRestaurantPizza)
		return router
	}

	t.Run("integrity violation at commit time maps to the 400 validation body", func(t *testing.T) {
		router := newRouter(services.ErrIntegrityViolation)
		w := performRequest(router, http.MethodPost, "/restaurant_pizzas",
			`{"price": 10, "pizza_id": 1, "restaurant_id": 1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"errors": ["A database integrity error occurred (e.g., invalid ID or duplicate entry)."]}`, w.Body.String())
	})

	t.Run("unanticipated failure maps to the 500 body with the message", func(t *testing.T) {
		router := newRouter(errors.New("store offline"))
		w := performRequest(router, http.MethodPost, "/restaurant_pizzas",
			`{"price": 10, "pizza_id": 1, "restaurant_id": 1}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error": "An unexpected server error occurred: store offline"}`, w.Body.String())
	})
}
