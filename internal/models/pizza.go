package models

// Pizza represents a pizza with its properties
type Pizza struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Ingredients string `gorm:"not null" json:"ingredients"`

	// Associations referencing this pizza. Read-only from the pizza
	// side; no cascade is defined here because pizzas are never
	// deleted through this API.
	RestaurantPizzas []RestaurantPizza `gorm:"foreignKey:PizzaID" json:"-"`
}

// TableName sets the table name for the Pizza model
func (Pizza) TableName() string {
	return "pizzas"
}
