package entities

import "time"

type GoldPrice struct {
	PriceUSD  float64
	Timestamp time.Time
}
