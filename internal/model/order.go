package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusOpen     = "open"
	OrderStatusPrepared = "prepared"
	OrderStatusReady    = "ready"
	OrderStatusPaid     = "paid"
)

// OrderItem is a value embedded in Order, never stored on its own.
type OrderItem struct {
	DrinkID  int `json:"drink_id"`
	Quantity int `json:"quantity" validate:"min=1"`
}

type Order struct {
	ID           int             `json:"id"`
	CustomerName string          `json:"customer_name"`
	Items        []OrderItem     `json:"items"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

type OrderInput struct {
	CustomerName string      `json:"customer_name" validate:"required"`
	Items        []OrderItem `json:"items" validate:"dive"`
}
