package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantService provides methods to interact with the restaurant database
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants from the database
	GetAllRestaurants() ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant by its ID with its
	// associations and their pizzas loaded
	GetRestaurantByID(id int) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant and all of its
	// restaurant-pizza associations by its ID
	DeleteRestaurant(id int) error
}

// restaurantService is the implementation of the RestaurantService interface
type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants() ([]models.Restaurant, error) {
	// Initialized so an empty table serializes as [] rather than null.
	restaurants := make([]models.Restaurant, 0)
	if err := s.db.Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(id int) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.Preload("RestaurantPizzas.Pizza").First(&restaurant, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Restaurant{}, ErrRestaurantNotFound
		}
		return models.Restaurant{}, err
	}
	return restaurant, nil
}

func (s *restaurantService) DeleteRestaurant(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRestaurantNotFound
			}
			return err
		}

		// Deletes the owned restaurant_pizzas rows along with the
		// restaurant itself; the transaction makes the cascade
		// all-or-nothing.
		if err := tx.Select(clause.Associations).Delete(&restaurant).Error; err != nil {
			return fmt.Errorf("deleting restaurant %d: %w", id, err)
		}
		return nil
	})
}
