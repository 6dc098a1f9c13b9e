// Package cart implements the storefront cart engine: an ordered collection
// of line items persisted as one JSON list under the "cart" record key.
//
// Quantity rules:
//   - AddItem merges by dish id, incrementing quantity by one.
//   - SetQuantity never accepts a value below one; lowering a quantity to
//     zero is not a removal path.
//   - RemoveItem is the only way a line item leaves the cart.
//
// The two-operation contract matters for callers with decrement buttons: at
// quantity one, a decrement affordance must call RemoveItem explicitly
// instead of SetQuantity(id, 0).
package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"snackdash/internal/logging"
	"snackdash/internal/money"
	"snackdash/internal/store"
)

// LineItem is one dish entry in the cart with its own quantity.
type LineItem struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	UnitPrice money.Cents `json:"unitPrice"`
	Quantity  int         `json:"quantity"`
	ImageRef  string      `json:"imageRef,omitempty"`
}

// Totals is the order summary derived from the current cart contents.
type Totals struct {
	ItemCount   int
	Subtotal    money.Cents
	DeliveryFee money.Cents
	GrandTotal  money.Cents
}

// Engine owns the cart record. It is not safe for concurrent use; the
// storefront is a single-user, single-process application and every
// operation is a synchronous read-modify-write of the store.
type Engine struct {
	store       store.RecordStore
	log         logging.Logger
	deliveryFee money.Cents
}

// NewEngine binds a cart engine to the given record store. deliveryFee is the
// flat fee added to every order total.
func NewEngine(rs store.RecordStore, log logging.Logger, deliveryFee money.Cents) *Engine {
	return &Engine{store: rs, log: log.With("engine", "cart"), deliveryFee: deliveryFee}
}

// load reads the persisted cart. An absent or corrupt record yields an empty
// cart; only store access failures propagate.
func (e *Engine) load(ctx context.Context) ([]LineItem, error) {
	data, err := e.store.Get(ctx, store.KeyCart)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		e.log.Warn(ctx, "corrupt cart record, starting empty", "error", err)
		return nil, nil
	}
	return items, nil
}

func (e *Engine) save(ctx context.Context, items []LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	return e.store.Set(ctx, store.KeyCart, data)
}

// AddItem puts one unit of a dish into the cart. If a line item with the same
// id already exists its quantity goes up by one; otherwise a new line item is
// appended, so display order follows insertion order.
func (e *Engine) AddItem(ctx context.Context, id, name string, unitPrice money.Cents, imageRef string) error {
	items, err := e.load(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, LineItem{ID: id, Name: name, UnitPrice: unitPrice, Quantity: 1, ImageRef: imageRef})
	}

	return e.save(ctx, items)
}

// RemoveItem deletes the line item with the given id. Removing an id that is
// not in the cart is a no-op, not an error.
func (e *Engine) RemoveItem(ctx context.Context, id string) error {
	items, err := e.load(ctx)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return nil
	}

	return e.save(ctx, kept)
}

// SetQuantity replaces the quantity of an existing line item. Quantities
// below one are rejected as a no-op: the item keeps its current quantity and
// no error is returned. Unknown ids are also a no-op.
func (e *Engine) SetQuantity(ctx context.Context, id string, quantity int) error {
	if quantity < 1 {
		return nil
	}

	items, err := e.load(ctx)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID == id {
			if items[i].Quantity == quantity {
				return nil
			}
			items[i].Quantity = quantity
			return e.save(ctx, items)
		}
	}
	return nil
}

// Clear empties the cart, e.g. after a completed checkout.
func (e *Engine) Clear(ctx context.Context) error {
	return e.store.Delete(ctx, store.KeyCart)
}

// Items returns the cart contents in insertion order.
func (e *Engine) Items(ctx context.Context) ([]LineItem, error) {
	return e.load(ctx)
}

// Totals derives the order summary. ItemCount is the sum of quantities and
// Subtotal is Σ(unitPrice × quantity); both are exact in integer cents.
func (e *Engine) Totals(ctx context.Context) (*Totals, error) {
	items, err := e.load(ctx)
	if err != nil {
		return nil, err
	}

	t := &Totals{DeliveryFee: e.deliveryFee}
	for _, item := range items {
		t.ItemCount += item.Quantity
		t.Subtotal += item.UnitPrice.Mul(item.Quantity)
	}
	t.GrandTotal = t.Subtotal + t.DeliveryFee
	return t, nil
}
