package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"snackdash/internal/common"
	"snackdash/internal/menu"
	"snackdash/internal/money"
)

func (a *App) Menu(ctx context.Context) error {
	dishes, err := a.catalog.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	if len(dishes) == 0 {
		fmt.Fprintln(a.out, "The menu is empty.")
		return nil
	}

	for _, d := range dishes {
		fmt.Fprintf(a.out, "%-20s %8s  %s\n", d.ID, d.Price, d.Name)
		if d.Description != "" {
			fmt.Fprintf(a.out, "%-20s %8s  %s\n", "", "", d.Description)
		}
	}
	return nil
}

func (a *App) Add(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter dish id (see 'menu')", a.out)
	if err != nil {
		return err
	}

	dish, err := a.catalog.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintf(a.out, "No dish %q on the menu.\n", id)
			return nil
		}
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	if err := a.cart.AddItem(ctx, dish.ID, dish.Name, dish.Price, dish.ImageRef); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Added %s (%s) to your cart.\n", dish.Name, dish.Price)
	return nil
}

func (a *App) ShowCart(ctx context.Context) error {
	items, err := a.cart.Items(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty. Browse the menu to add items.")
		return nil
	}

	totals, err := a.cart.Totals(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Your Cart (%d items)\n", totals.ItemCount)
	for _, item := range items {
		fmt.Fprintf(a.out, "  %-20s x%-3d %8s\n", item.Name, item.Quantity, item.UnitPrice.Mul(item.Quantity))
	}
	fmt.Fprintf(a.out, "Subtotal:     %8s\n", totals.Subtotal)
	fmt.Fprintf(a.out, "Delivery Fee: %8s\n", totals.DeliveryFee)
	fmt.Fprintf(a.out, "Total:        %8s\n", totals.GrandTotal)
	return nil
}

func (a *App) SetQuantity(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter dish id", a.out)
	if err != nil {
		return err
	}
	qtyText, err := GetSimpleText(a.reader, "Enter new quantity", a.out)
	if err != nil {
		return err
	}
	qty, err := strconv.Atoi(qtyText)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid quantity %q.\n", qtyText)
		return nil
	}
	// Quantities never go below one through this path; removal stays an
	// explicit, separate action.
	if qty < 1 {
		fmt.Fprintln(a.out, "Quantity must be at least 1. Use 'remove' to take an item out of the cart.")
		return nil
	}

	if err := a.cart.SetQuantity(ctx, id, qty); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Quantity updated.")
	return nil
}

func (a *App) Remove(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter dish id", a.out)
	if err != nil {
		return err
	}
	if err := a.cart.RemoveItem(ctx, id); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Removed from cart.")
	return nil
}

func (a *App) ClearCart(ctx context.Context) error {
	if err := a.cart.Clear(ctx); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Cart cleared.")
	return nil
}

// Checkout prints the order summary and stops there: ordering past the cart
// is a navigation stub in this storefront.
func (a *App) Checkout(ctx context.Context) error {
	totals, err := a.cart.Totals(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	if totals.ItemCount == 0 {
		fmt.Fprintln(a.out, "Your cart is empty.")
		return nil
	}
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in or register before checking out.")
		return nil
	}

	fmt.Fprintf(a.out, "Order total: %s (%d items, %s delivery)\n",
		totals.GrandTotal, totals.ItemCount, totals.DeliveryFee)
	fmt.Fprintln(a.out, "Checkout is not available yet.")
	return nil
}

func (a *App) AddDish(ctx context.Context) error {
	if !a.isAdmin() {
		fmt.Fprintln(a.out, "Adding dishes is available to administrators only.")
		return nil
	}

	name, err := GetSimpleText(a.reader, "Dish name", a.out)
	if err != nil {
		return err
	}
	desc, err := GetSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	priceText, err := GetSimpleText(a.reader, "Price (e.g. 12.99)", a.out)
	if err != nil {
		return err
	}
	price, err := money.Parse(priceText)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid price: %v\n", err)
		return nil
	}

	dish := menu.Dish{Name: name, Description: desc, Price: price}
	if err := a.catalog.Add(ctx, dish); err != nil {
		if errors.Is(err, common.ErrMissingField) {
			fmt.Fprintln(a.out, "Please fill in the dish name.")
			return nil
		}
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Added %q to the menu at %s.\n", name, price)
	return nil
}
