// Package menu manages the dish catalog shown on the storefront. Dishes are
// persisted as one JSON list under the "menu" record key; the catalog is
// read-mostly, with an admin-only Add path.
package menu

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"snackdash/internal/common"
	"snackdash/internal/logging"
	"snackdash/internal/money"
	"snackdash/internal/store"
)

// Dish is a single orderable item on the menu.
type Dish struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Price       money.Cents `json:"price"`
	ImageRef    string      `json:"imageRef,omitempty"`
}

// DefaultDishes is the catalog seeded on first run.
var DefaultDishes = []Dish{
	{
		ID:          "margherita-pizza",
		Name:        "Margherita Pizza",
		Description: "Tomato, mozzarella, fresh basil",
		Price:       1299,
		ImageRef:    "images/margherita-pizza.jpg",
	},
	{
		ID:          "caesar-salad",
		Name:        "Caesar Salad",
		Description: "Romaine, parmesan, croutons, caesar dressing",
		Price:       899,
		ImageRef:    "images/caesar-salad.jpg",
	},
	{
		ID:          "spicy-ramen",
		Name:        "Spicy Ramen",
		Description: "Pork broth, chili oil, soft egg",
		Price:       1150,
		ImageRef:    "images/spicy-ramen.jpg",
	},
	{
		ID:          "sushi-platter",
		Name:        "Sushi Platter",
		Description: "Twelve pieces, chef's selection",
		Price:       1899,
		ImageRef:    "images/sushi-platter.jpg",
	},
	{
		ID:          "chocolate-brownie",
		Name:        "Chocolate Brownie",
		Description: "Warm, with vanilla ice cream",
		Price:       549,
		ImageRef:    "images/chocolate-brownie.jpg",
	},
	{
		ID:          "fresh-lemonade",
		Name:        "Fresh Lemonade",
		Description: "Squeezed to order",
		Price:       325,
		ImageRef:    "images/fresh-lemonade.jpg",
	},
}

// Catalog exposes the menu over an injected record store.
type Catalog struct {
	store store.RecordStore
	log   logging.Logger
}

func NewCatalog(rs store.RecordStore, log logging.Logger) *Catalog {
	return &Catalog{store: rs, log: log.With("engine", "menu")}
}

// load reads the persisted menu. A corrupt record is replaced by an empty
// catalog rather than surfacing a decode error.
func (c *Catalog) load(ctx context.Context) ([]Dish, error) {
	data, err := c.store.Get(ctx, store.KeyMenu)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var dishes []Dish
	if err := json.Unmarshal(data, &dishes); err != nil {
		c.log.Warn(ctx, "corrupt menu record, starting empty", "error", err)
		return nil, nil
	}
	return dishes, nil
}

// List returns all dishes in catalog order.
func (c *Catalog) List(ctx context.Context) ([]Dish, error) {
	return c.load(ctx)
}

// Get returns the dish with the given id, or common.ErrNotFound.
func (c *Catalog) Get(ctx context.Context, id string) (*Dish, error) {
	dishes, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range dishes {
		if dishes[i].ID == id {
			return &dishes[i], nil
		}
	}
	return nil, common.ErrNotFound
}

// Add appends a dish to the catalog. The id defaults to a slug of the name.
func (c *Catalog) Add(ctx context.Context, dish Dish) error {
	if strings.TrimSpace(dish.Name) == "" {
		return common.ErrMissingField
	}
	if dish.ID == "" {
		dish.ID = Slug(dish.Name)
	}

	dishes, err := c.load(ctx)
	if err != nil {
		return err
	}
	for _, d := range dishes {
		if d.ID == dish.ID {
			return fmt.Errorf("dish %q is already on the menu", dish.ID)
		}
	}

	return c.save(ctx, append(dishes, dish))
}

// Seed writes the default catalog if no menu record exists yet.
func (c *Catalog) Seed(ctx context.Context) error {
	data, err := c.store.Get(ctx, store.KeyMenu)
	if err != nil {
		return fmt.Errorf("failed to read menu: %w", err)
	}
	if data != nil {
		return nil
	}
	c.log.Info(ctx, "seeding default menu", "dishes", len(DefaultDishes))
	return c.save(ctx, DefaultDishes)
}

func (c *Catalog) save(ctx context.Context, dishes []Dish) error {
	data, err := json.Marshal(dishes)
	if err != nil {
		return fmt.Errorf("failed to encode menu: %w", err)
	}
	return c.store.Set(ctx, store.KeyMenu, data)
}

// Slug derives a lowercase, dash-separated dish id from a display name.
func Slug(name string) string {
	var b strings.Builder
	prevDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
