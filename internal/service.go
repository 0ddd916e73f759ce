package internal

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"drinkstand/internal/blob"
	"drinkstand/internal/model"
)

type IService interface {
	Drinks() []model.Drink
	CreateDrink(context.Context, model.DrinkInput) (model.Drink, error)
	UpdateDrink(context.Context, int, model.DrinkInput) (model.Drink, error)
	DeleteDrink(context.Context, int) error

	Orders() []model.Order
	CreateOrder(context.Context, model.OrderInput) (model.Order, error)
	SetOrderStatus(context.Context, int, string) (model.Order, error)

	Statistics() model.StatisticsResponse
	ResetStatistics(context.Context) error

	VerifyAdmin(string) bool
	GetJWTToken() (string, error)
}

// DefaultDrinks seeds the catalog when no drinks blob exists yet.
var DefaultDrinks = []model.Drink{
	{ID: 2, Name: "Wasser", Price: decimal.NewFromFloat(6.0), Description: "ohne Kohlensäure"},
	{ID: 4, Name: "Siroup", Price: decimal.NewFromFloat(2.0), Description: "Cola Geschmack"},
	{ID: 5, Name: "Cola", Price: decimal.NewFromFloat(4.0), Description: "4dl"},
	{ID: 6, Name: "Schlumpf", Price: decimal.NewFromFloat(10.0), Description: ""},
}

// Service owns the catalog, the order ledger and the statistics accumulator.
// All three live in memory and are written back to the blob store in full on
// every mutation; one mutex guards the read-modify-persist sequences.
type Service struct {
	store  blob.Store
	secret string
	logger *zap.SugaredLogger

	mu           sync.Mutex
	drinks       []model.Drink
	orders       []model.Order
	stats        []model.StatTotal
	drinkCounter int
	orderCounter int
}

func NewService(ctx context.Context, store blob.Store, secret string, logger *zap.SugaredLogger) (*Service, error) {
	s := &Service{store: store, secret: secret, logger: logger}
	if err := s.loadState(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// loadState fills the in-memory stores from the blob store. A missing or
// unreadable blob falls back to its default, which is written back so all
// three blobs exist from the first boot on. An empty catalog is reseeded
// with the default drinks.
func (s *Service) loadState(ctx context.Context) error {
	if !s.loadJSON(ctx, blob.KeyDrinks, &s.drinks) || len(s.drinks) == 0 {
		s.drinks = append([]model.Drink(nil), DefaultDrinks...)
		if err := s.saveJSON(ctx, blob.KeyDrinks, s.drinks); err != nil {
			return err
		}
	}
	if !s.loadJSON(ctx, blob.KeyOrders, &s.orders) {
		s.orders = []model.Order{}
		if err := s.saveJSON(ctx, blob.KeyOrders, s.orders); err != nil {
			return err
		}
	}
	if !s.loadJSON(ctx, blob.KeyStatistics, &s.stats) {
		s.stats = []model.StatTotal{}
		if err := s.saveJSON(ctx, blob.KeyStatistics, s.stats); err != nil {
			return err
		}
	}

	s.drinkCounter = 1
	for _, d := range s.drinks {
		if d.ID >= s.drinkCounter {
			s.drinkCounter = d.ID + 1
		}
	}
	s.orderCounter = 0
	for _, o := range s.orders {
		if o.ID >= s.orderCounter {
			s.orderCounter = o.ID + 1
		}
	}
	return nil
}

func (s *Service) loadJSON(ctx context.Context, key string, out interface{}) bool {
	data, err := s.store.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, blob.ErrNotExist) {
			s.logger.Warnf("load %s: %s", key, err.Error())
		}
		return false
	}
	if err = json.Unmarshal(data, out); err != nil {
		s.logger.Warnf("decode %s: %s", key, err.Error())
		return false
	}
	return true
}

func (s *Service) saveJSON(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.store.Save(ctx, key, data)
}

// VerifyAdmin checks the submitted password against the shared secret.
func (s *Service) VerifyAdmin(password string) bool {
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.secret)) == 1
}

func (s *Service) GetJWTToken() (string, error) {
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(time.Hour * 72).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	t, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", err
	}

	return t, nil
}
