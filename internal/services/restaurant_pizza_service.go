package services

import (
	"errors"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantPizzaService provides methods to create restaurant-pizza
// associations
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates that the referenced restaurant
	// and pizza exist, then persists the association inside a
	// transaction and returns it with both parents loaded.
	//
	// Returns ErrRestaurantNotFound / ErrPizzaNotFound when a foreign
	// key target is absent, models.ErrInvalidPrice when the price is
	// out of range, and ErrIntegrityViolation when the store rejects
	// the row at commit time.
	CreateRestaurantPizza(price, restaurantID, pizzaID int) (models.RestaurantPizza, error)
}

// restaurantPizzaService is the implementation of the RestaurantPizzaService interface
type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(price, restaurantID, pizzaID int) (models.RestaurantPizza, error) {
	rp := models.RestaurantPizza{
		Price:        price,
		RestaurantID: restaurantID,
		PizzaID:      pizzaID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Referential existence is checked before the write so that a
		// dangling id yields a not-found outcome rather than a
		// constraint error. Restaurant first, then pizza.
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, restaurantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRestaurantNotFound
			}
			return err
		}
		var pizza models.Pizza
		if err := tx.First(&pizza, pizzaID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPizzaNotFound
			}
			return err
		}

		if err := tx.Create(&rp).Error; err != nil {
			// The BeforeSave hook surfaces the price-range violation;
			// pass it through unchanged so the caller can report the
			// validation message.
			if errors.Is(err, models.ErrInvalidPrice) {
				return err
			}
			if errors.Is(err, gorm.ErrForeignKeyViolated) || errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrIntegrityViolation
			}
			return err
		}

		rp.Restaurant = restaurant
		rp.Pizza = pizza
		return nil
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}
	return rp, nil
}
