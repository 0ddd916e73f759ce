package internal

import (
	"context"

	"drinkstand/internal/blob"
	"drinkstand/internal/model"
)

// Drinks returns the full catalog in insertion order.
func (s *Service) Drinks() []model.Drink {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Drink, 0, len(s.drinks))
	return append(out, s.drinks...)
}

func (s *Service) CreateDrink(ctx context.Context, input model.DrinkInput) (model.Drink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	drink := model.Drink{
		ID:          s.drinkCounter,
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
	}
	s.drinks = append(s.drinks, drink)
	s.drinkCounter++

	if err := s.saveJSON(ctx, blob.KeyDrinks, s.drinks); err != nil {
		return model.Drink{}, err
	}
	return drink, nil
}

// UpdateDrink replaces the record in place, keeping its position.
func (s *Service) UpdateDrink(ctx context.Context, id int, input model.DrinkInput) (model.Drink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.drinks {
		if s.drinks[i].ID != id {
			continue
		}
		s.drinks[i] = model.Drink{
			ID:          id,
			Name:        input.Name,
			Price:       input.Price,
			Description: input.Description,
		}
		if err := s.saveJSON(ctx, blob.KeyDrinks, s.drinks); err != nil {
			return model.Drink{}, err
		}
		return s.drinks[i], nil
	}
	return model.Drink{}, ErrDrinkNotFound
}

// DeleteDrink removes the record. Orders and statistics referencing the id
// are left alone.
func (s *Service) DeleteDrink(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.drinks {
		if s.drinks[i].ID != id {
			continue
		}
		s.drinks = append(s.drinks[:i], s.drinks[i+1:]...)
		return s.saveJSON(ctx, blob.KeyDrinks, s.drinks)
	}
	return ErrDrinkNotFound
}

func (s *Service) findDrink(id int) *model.Drink {
	for i := range s.drinks {
		if s.drinks[i].ID == id {
			return &s.drinks[i]
		}
	}
	return nil
}
