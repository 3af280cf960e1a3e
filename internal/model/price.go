package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const PriceTable = "daily_prices_price"

type Price struct {
	ID          int64
	Commodity   string
	Market      string
	District    string
	State       string
	MinPrice    decimal.Decimal
	MaxPrice    decimal.Decimal
	ModalPrice  decimal.Decimal
	ArrivalDate time.Time
}

// PriceQuery narrows the generic price listing.
// Limit <= 0 means no limit.
type PriceQuery struct {
	Search   string
	Ordering string
	Limit    int
	Offset   int
}

type PriceSample struct {
	Record    Price
	Districts []string
	Markets   []string
}
