package models

// The entity structs exclude their association collections from JSON
// output (see the json:"-" tags) because serializing them directly
// would recurse Restaurant -> RestaurantPizza -> Pizza ->
// RestaurantPizza -> ... without bound. Each response shape that needs
// nested data is instead built by an explicit projection below, which
// selects exactly the fields that shape requires.

// RestaurantPizzaItem is a pizza as it appears nested under a
// restaurant detail view: the pizza's own fields plus the price of the
// association that links it to the restaurant.
type RestaurantPizzaItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
	Price       int    `json:"price"`
}

// RestaurantDetail is the response shape for fetching a single
// restaurant, including its pizzas with per-association prices.
type RestaurantDetail struct {
	ID      int                   `json:"id"`
	Name    string                `json:"name"`
	Address string                `json:"address"`
	Pizzas  []RestaurantPizzaItem `json:"pizzas"`
}

// NewRestaurantDetail projects a restaurant and its loaded
// associations into the detail view. The Pizza on each association
// must already be loaded. The pizzas slice is never nil so the JSON
// field serializes as [] rather than null.
func NewRestaurantDetail(r Restaurant) RestaurantDetail {
	pizzas := make([]RestaurantPizzaItem, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		pizzas = append(pizzas, RestaurantPizzaItem{
			ID:          rp.Pizza.ID,
			Name:        rp.Pizza.Name,
			Ingredients: rp.Pizza.Ingredients,
			Price:       rp.Price,
		})
	}
	return RestaurantDetail{
		ID:      r.ID,
		Name:    r.Name,
		Address: r.Address,
		Pizzas:  pizzas,
	}
}

// RestaurantPizzaDetail is the response shape for a newly created
// association: the association's own fields plus its parent restaurant
// and pizza, nested once and without their association collections.
type RestaurantPizzaDetail struct {
	ID           int        `json:"id"`
	Price        int        `json:"price"`
	RestaurantID int        `json:"restaurant_id"`
	PizzaID      int        `json:"pizza_id"`
	Restaurant   Restaurant `json:"restaurant"`
	Pizza        Pizza      `json:"pizza"`
}

// NewRestaurantPizzaDetail projects an association with loaded parents
// into the creation response shape.
func NewRestaurantPizzaDetail(rp RestaurantPizza) RestaurantPizzaDetail {
	return RestaurantPizzaDetail{
		ID:           rp.ID,
		Price:        rp.Price,
		RestaurantID: rp.RestaurantID,
		PizzaID:      rp.PizzaID,
		Restaurant:   rp.Restaurant,
		Pizza:        rp.Pizza,
	}
}
