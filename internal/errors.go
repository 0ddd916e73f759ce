package internal

import (
	"errors"
	"fmt"
)

var (
	ErrDrinkNotFound = errors.New("drink not found")
	ErrOrderNotFound = errors.New("order not found")
)

// UnknownDrinkError aborts order creation when an item references a drink id
// missing from the catalog. The whole order is rejected, nothing is stored.
type UnknownDrinkError struct {
	DrinkID int
}

func (e *UnknownDrinkError) Error() string {
	return fmt.Sprintf("drink with id %d not found", e.DrinkID)
}
