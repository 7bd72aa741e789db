package models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrInvalidPrice is returned by the BeforeSave hook when the price
// falls outside the accepted range. The message is user-facing: it is
// surfaced verbatim in the validation error response.
var ErrInvalidPrice = errors.New("Price must be between 1 and 30")

// MinPrice and MaxPrice bound the price of a restaurant-pizza
// association, inclusive on both ends.
const (
	MinPrice = 1
	MaxPrice = 30
)

// RestaurantPizza is the join entity associating a Restaurant with a
// Pizza at a given price
type RestaurantPizza struct {
	ID           int `gorm:"primaryKey" json:"id"`
	Price        int `gorm:"not null" json:"price"`
	RestaurantID int `gorm:"not null;index" json:"restaurant_id"`
	PizzaID      int `gorm:"not null;index" json:"pizza_id"`

	Restaurant Restaurant `gorm:"foreignKey:RestaurantID" json:"-"`
	Pizza      Pizza      `gorm:"foreignKey:PizzaID" json:"-"`
}

// TableName sets the table name for the RestaurantPizza model
func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// BeforeSave validates the price range before any insert or update, so
// an out-of-range price can never be persisted regardless of which
// caller performs the write. Returning an error aborts the surrounding
// transaction.
func (rp *RestaurantPizza) BeforeSave(tx *gorm.DB) error {
	if rp.Price < MinPrice || rp.Price > MaxPrice {
		return ErrInvalidPrice
	}
	return nil
}
