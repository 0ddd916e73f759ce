package internal

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"drinkstand/internal/blob"
	"drinkstand/internal/model"
)

// Orders returns all placed orders in insertion order.
func (s *Service) Orders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Order, 0, len(s.orders))
	return append(out, s.orders...)
}

// CreateOrder validates every item against the catalog, locks the total at
// current prices and appends the order with the next id. Rejected orders
// consume no id.
func (s *Service) CreateOrder(ctx context.Context, input model.OrderInput) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range input.Items {
		if s.findDrink(item.DrinkID) == nil {
			return model.Order{}, &UnknownDrinkError{DrinkID: item.DrinkID}
		}
	}

	order := model.Order{
		ID:           s.orderCounter,
		CustomerName: input.CustomerName,
		Items:        input.Items,
		TotalPrice:   s.totalPrice(input.Items),
		Status:       model.OrderStatusOpen,
		CreatedAt:    time.Now(),
	}
	s.orders = append(s.orders, order)
	s.orderCounter++

	if err := s.saveJSON(ctx, blob.KeyOrders, s.orders); err != nil {
		return model.Order{}, err
	}
	if err := s.recordStatistics(ctx, order); err != nil {
		return model.Order{}, err
	}
	return order, nil
}

// totalPrice sums catalog price × quantity over the items. Items whose drink
// is missing from the catalog contribute nothing but stay on the order.
func (s *Service) totalPrice(items []model.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if drink := s.findDrink(item.DrinkID); drink != nil {
			total = total.Add(drink.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}
	return total
}

// SetOrderStatus overwrites the status unconditionally. There is no
// transition table: any status may follow any other, and repeating a target
// status is a no-op.
func (s *Service) SetOrderStatus(ctx context.Context, id int, status string) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		s.orders[i].Status = status
		if err := s.saveJSON(ctx, blob.KeyOrders, s.orders); err != nil {
			return model.Order{}, err
		}
		return s.orders[i], nil
	}
	return model.Order{}, ErrOrderNotFound
}
