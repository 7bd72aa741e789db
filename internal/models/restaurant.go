package models

// Restaurant represents a restaurant offering pizzas through
// RestaurantPizza associations
type Restaurant struct {
	ID      int    `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Address string `json:"address"`

	// Owned associations. Deleting a restaurant deletes these rows.
	// Never serialized directly to avoid Restaurant<->Pizza recursion;
	// nested views are built explicitly in views.go.
	RestaurantPizzas []RestaurantPizza `gorm:"foreignKey:RestaurantID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// TableName sets the table name for the Restaurant model
func (Restaurant) TableName() string {
	return "restaurants"
}
