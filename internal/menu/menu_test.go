package menu

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"snackdash/internal/common"
	"snackdash/internal/logging"
	"snackdash/internal/store"
)

func newCatalog(t *testing.T) (*Catalog, *store.MemoryStore) {
	t.Helper()
	rs := store.NewMemoryStore()
	log := logging.NewTextLogger(io.Discard, slog.LevelError)
	return NewCatalog(rs, log), rs
}

func TestSeed_Idempotent(t *testing.T) {
	c, _ := newCatalog(t)
	ctx := context.Background()

	require.NoError(t, c.Seed(ctx))
	require.NoError(t, c.Seed(ctx))

	dishes, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, dishes, len(DefaultDishes))
}

func TestSeed_DoesNotOverwriteExistingMenu(t *testing.T) {
	c, _ := newCatalog(t)
	ctx := context.Background()

	require.NoError(t, c.Add(ctx, Dish{Name: "Garlic Bread", Price: 450}))
	require.NoError(t, c.Seed(ctx))

	dishes, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, dishes, 1)
	require.Equal(t, "garlic-bread", dishes[0].ID)
}

func TestGet(t *testing.T) {
	c, _ := newCatalog(t)
	ctx := context.Background()
	require.NoError(t, c.Seed(ctx))

	dish, err := c.Get(ctx, "margherita-pizza")
	require.NoError(t, err)
	require.Equal(t, "Margherita Pizza", dish.Name)
	require.EqualValues(t, 1299, dish.Price)

	_, err = c.Get(ctx, "no-such-dish")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestAdd_Validation(t *testing.T) {
	c, _ := newCatalog(t)
	ctx := context.Background()

	require.ErrorIs(t, c.Add(ctx, Dish{Name: "  "}), common.ErrMissingField)

	require.NoError(t, c.Add(ctx, Dish{Name: "Garlic Bread", Price: 450}))
	err := c.Add(ctx, Dish{Name: "Garlic Bread", Price: 500})
	require.Error(t, err)
}

func TestLoad_CorruptMenuYieldsEmpty(t *testing.T) {
	c, rs := newCatalog(t)
	ctx := context.Background()

	require.NoError(t, rs.Set(ctx, store.KeyMenu, []byte(`{{{`)))

	dishes, err := c.List(ctx)
	require.NoError(t, err)
	require.Empty(t, dishes)
}

func TestSlug(t *testing.T) {
	require.Equal(t, "garlic-bread", Slug("Garlic Bread"))
	require.Equal(t, "pad-thai-2", Slug("  Pad Thai #2! "))
	require.Equal(t, "", Slug("***"))
}
