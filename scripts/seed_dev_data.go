package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Standalone seeding entrypoint for local development. Restaurants and
// pizzas are never created through the API, so this script is the
// admin path that populates them.
//
// Usage: go run scripts/seed_dev_data.go [-db app.sqlite] [-reset]
func main() {
	dbPath := flag.String("db", "app.sqlite", "Path to the SQLite database file")
	reset := flag.Bool("reset", false, "Drop existing rows before seeding")
	flag.Parse()

	db, err := gorm.Open(sqlite.Open(*dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		log.Fatal("Failed to enable foreign keys:", err)
	}

	if err := db.AutoMigrate(&models.Restaurant{}, &models.Pizza{}, &models.RestaurantPizza{}); err != nil {
		log.Fatal("Failed to migrate schema:", err)
	}

	if *reset {
		// Association rows first so the restaurant deletes are plain.
		for _, model := range []interface{}{&models.RestaurantPizza{}, &models.Restaurant{}, &models.Pizza{}} {
			if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				log.Fatal("Failed to reset table:", err)
			}
		}
		fmt.Println("Existing rows dropped")
	}

	restaurants := []models.Restaurant{
		{Name: "Sottocasa NYC", Address: "298 Atlantic Ave, Brooklyn, NY 11201"},
		{Name: "PizzArte", Address: "69 W 55th St, New York, NY 10019"},
		{Name: "Kiki's Pizza", Address: "946 Fulton St, Brooklyn, NY 11238"},
	}
	for i := range restaurants {
		if err := db.Create(&restaurants[i]).Error; err != nil {
			log.Fatal("Failed to seed restaurant:", err)
		}
	}

	pizzas := []models.Pizza{
		{Name: "Margherita", Ingredients: "Dough, Tomato Sauce, Cheese, Basil"},
		{Name: "Pepperoni", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
		{Name: "Quattro Formaggi", Ingredients: "Dough, Mozzarella, Gorgonzola, Parmesan, Fontina"},
	}
	for i := range pizzas {
		if err := db.Create(&pizzas[i]).Error; err != nil {
			log.Fatal("Failed to seed pizza:", err)
		}
	}

	associations := []models.RestaurantPizza{
		{Price: 12, RestaurantID: restaurants[0].ID, PizzaID: pizzas[0].ID},
		{Price: 14, RestaurantID: restaurants[0].ID, PizzaID: pizzas[1].ID},
		{Price: 16, RestaurantID: restaurants[1].ID, PizzaID: pizzas[2].ID},
	}
	for i := range associations {
		if err := db.Create(&associations[i]).Error; err != nil {
			log.Fatal("Failed to seed association:", err)
		}
	}

	fmt.Printf("Seeded %d restaurants, %d pizzas, %d associations into %s\n",
		len(restaurants), len(pizzas), len(associations), *dbPath)
}
