package models

import "github.com/shopspring/decimal"

// PricePlaces is the scale prices are stored with.
const PricePlaces = 2

// MaxPrice is the largest price a decimal(10,2) column holds.
var MaxPrice = decimal.RequireFromString("99999999.99")

// RoundPrice converts price to the fixed-point value that gets stored.
func RoundPrice(price float64) decimal.Decimal {
	return decimal.NewFromFloat(price).Round(PricePlaces)
}

// ValidPrice reports whether price is still positive and fits the column once rounded.
func ValidPrice(price float64) bool {
	rounded := RoundPrice(price)
	return rounded.IsPositive() && rounded.LessThanOrEqual(MaxPrice)
}
