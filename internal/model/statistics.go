package model

import "github.com/shopspring/decimal"

// StatTotal is one row of the incremental accumulator. Entries are created
// lazily on the first order referencing the drink and only ever grow until
// a reset.
type StatTotal struct {
	DrinkID       int             `json:"drink_id"`
	TotalQuantity int             `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

type DrinkStatistics struct {
	DrinkID       int             `json:"drink_id"`
	Name          string          `json:"name"`
	TotalQuantity int             `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

type StatisticsResponse struct {
	Drinks      []DrinkStatistics `json:"drinks"`
	TotalOrders int               `json:"total_orders"`
	OpenOrders  int               `json:"open_orders"`
}
