package main

import (
	"fmt"
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/restaurant-pizza-api/docs" // Import generated docs
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/config"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/controllers"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/middleware"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db                        *gorm.DB
	restaurantService         services.RestaurantService
	pizzaService              services.PizzaService
	restaurantPizzaService    services.RestaurantPizzaService
	restaurantController      controllers.RestaurantController
	pizzaController           controllers.PizzaController
	restaurantPizzaController controllers.RestaurantPizzaController
	configuration             *config.Config
)

// @title Restaurant-Pizza API
// @version 1.0
// @description A small CRUD API over restaurants, pizzas and their priced associations
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	restaurantService = services.NewRestaurantService(db)
	pizzaService = services.NewPizzaService(db)
	restaurantPizzaService = services.NewRestaurantPizzaService(db)
	restaurantController = controllers.NewRestaurantController(restaurantService)
	pizzaController = controllers.NewPizzaController(pizzaService)
	restaurantPizzaController = controllers.NewRestaurantPizzaController(restaurantPizzaService)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase initializes the database connection, migrates the schema
// and seeds the fixture data when the store is empty
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.FromAppConfig(conf))
	checkPanicErr(err)

	// Migrate the schema
	err = db.AutoMigrate(&models.Restaurant{}, &models.Pizza{}, &models.RestaurantPizza{})
	checkPanicErr(err)

	// Seed only if the store is empty; restaurants and pizzas are
	// created through this path, never through the API itself.
	var count int64
	db.Model(&models.Restaurant{}).Count(&count)
	if count == 0 {
		log.Info("Database is empty, seeding initial data")
		seedDatabase()
	} else {
		log.Info("Database already seeded with initial data")
	}
	return db
}

// seedDatabase seeds the database with initial data
func seedDatabase() {
	log.Info("Seeding database with initial data")
	restaurants := []models.Restaurant{
		{Name: "Sottocasa NYC", Address: "298 Atlantic Ave, Brooklyn, NY 11201"},
		{Name: "PizzArte", Address: "69 W 55th St, New York, NY 10019"},
		{Name: "Kiki's Pizza", Address: "946 Fulton St, Brooklyn, NY 11238"},
	}
	for i := range restaurants {
		db.Create(&restaurants[i])
	}

	pizzas := []models.Pizza{
		{Name: "Margherita", Ingredients: "Dough, Tomato Sauce, Cheese, Basil"},
		{Name: "Pepperoni", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
		{Name: "Quattro Formaggi", Ingredients: "Dough, Mozzarella, Gorgonzola, Parmesan, Fontina"},
	}
	for i := range pizzas {
		db.Create(&pizzas[i])
	}

	associations := []models.RestaurantPizza{
		{Price: 12, RestaurantID: restaurants[0].ID, PizzaID: pizzas[0].ID},
		{Price: 14, RestaurantID: restaurants[0].ID, PizzaID: pizzas[1].ID},
		{Price: 16, RestaurantID: restaurants[1].ID, PizzaID: pizzas[2].ID},
	}
	for i := range associations {
		db.Create(&associations[i])
	}
	log.Info("Database seeded successfully")
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	// Initialize Gin router without the built-in logger; requests are
	// logged once, as structured JSON, by the logrus middleware
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.Default())

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Landing page
	router.GET("/", indexHandler)

	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// Restaurant routes
	router.GET("/restaurants", restaurantController.GetAllRestaurants)
	router.GET("/restaurants/:id", restaurantController.GetRestaurantByID)
	router.DELETE("/restaurants/:id", restaurantController.DeleteRestaurant)

	// Pizza routes
	router.GET("/pizzas", pizzaController.GetAllPizzas)

	// Restaurant-pizza association routes
	router.POST("/restaurant_pizzas", restaurantPizzaController.CreateRestaurantPizza)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// indexHandler serves a minimal HTML banner at the root path
func indexHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<h1>Restaurant-Pizza API</h1>"))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "restaurant-pizza-api",
	})
}
