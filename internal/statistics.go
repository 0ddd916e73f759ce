package internal

import (
	"context"

	"github.com/shopspring/decimal"

	"drinkstand/internal/blob"
	"drinkstand/internal/model"
)

// recordStatistics feeds the incremental accumulator after an order is
// placed, at the drink's current catalog price. The read path never consults
// the accumulator (Statistics recomputes from the ledger); it is maintained
// and persisted only to keep the stored statistics blob up to date.
// Caller holds s.mu.
func (s *Service) recordStatistics(ctx context.Context, order model.Order) error {
	for _, item := range order.Items {
		idx := -1
		for i := range s.stats {
			if s.stats[i].DrinkID == item.DrinkID {
				idx = i
				break
			}
		}
		if idx == -1 {
			s.stats = append(s.stats, model.StatTotal{DrinkID: item.DrinkID, TotalRevenue: decimal.Zero})
			idx = len(s.stats) - 1
		}

		if drink := s.findDrink(item.DrinkID); drink != nil {
			s.stats[idx].TotalQuantity += item.Quantity
			s.stats[idx].TotalRevenue = s.stats[idx].TotalRevenue.Add(drink.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}
	return s.saveJSON(ctx, blob.KeyStatistics, s.stats)
}

// Statistics recomputes the snapshot from scratch by scanning the ledger
// against the current catalog. Deleted drinks drop out of the snapshot even
// when old orders still reference them, and revenue uses today's prices, not
// the totals locked on the orders.
func (s *Service) Statistics() model.StatisticsResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp := model.StatisticsResponse{
		Drinks:      make([]model.DrinkStatistics, 0, len(s.drinks)),
		TotalOrders: len(s.orders),
	}
	for _, o := range s.orders {
		if o.Status == model.OrderStatusOpen {
			resp.OpenOrders++
		}
	}

	for _, d := range s.drinks {
		stat := model.DrinkStatistics{
			DrinkID:      d.ID,
			Name:         d.Name,
			TotalRevenue: decimal.Zero,
		}
		for _, o := range s.orders {
			for _, item := range o.Items {
				if item.DrinkID != d.ID {
					continue
				}
				stat.TotalQuantity += item.Quantity
				stat.TotalRevenue = stat.TotalRevenue.Add(d.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			}
		}
		resp.Drinks = append(resp.Drinks, stat)
	}
	return resp
}

// ResetStatistics clears the accumulator and the whole order ledger and
// rewinds the order counter to 0. Drinks and the drink counter are left
// untouched.
func (s *Service) ResetStatistics(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = []model.Order{}
	s.stats = []model.StatTotal{}
	s.orderCounter = 0

	if err := s.saveJSON(ctx, blob.KeyOrders, s.orders); err != nil {
		return err
	}
	return s.saveJSON(ctx, blob.KeyStatistics, s.stats)
}
