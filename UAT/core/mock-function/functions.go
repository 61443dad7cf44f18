// Package mockfunction contains package-level functions whose callers are
// tested against static mocks: a package-level function has no instance to
// hold expectations, so its mock keeps them in a process-wide store.
package mockfunction

import (
	"context"
	"errors"
	"fmt"
)

// Exported variables.
var (
	ErrInputEmpty    = errors.New("input cannot be empty")
	ErrOrderNotFound = errors.New("order not found")
)

// Order represents a business entity.
type Order struct {
	ID     int
	Status string
	Total  float64
}

// ProcessFunc has the signature of ProcessOrder.
type ProcessFunc func(ctx context.Context, orderID int) (*Order, error)

// Checkout validates every id with validate, processes the orders with
// process, and returns their total.
func Checkout(ctx context.Context, validate func(string) error, process ProcessFunc, ids []int) (float64, error) {
	var total float64

	for _, id := range ids {
		if err := validate(fmt.Sprint(id)); err != nil {
			return 0, fmt.Errorf("order %d: %w", id, err)
		}

		order, err := process(ctx, id)
		if err != nil {
			return 0, fmt.Errorf("order %d: %w", id, err)
		}

		total += order.Total
	}

	return total, nil
}

// ProcessOrder is a package-level function that processes an order.
func ProcessOrder(ctx context.Context, orderID int) (*Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Order{ID: orderID, Status: "processed"}, nil
}

// ValidateInput is a simple validation function.
func ValidateInput(input string) error {
	if input == "" {
		return ErrInputEmpty
	}

	return nil
}

var _ ProcessFunc = ProcessOrder
