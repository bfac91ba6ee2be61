package models

import (
	"fmt"
	"strconv"
)

// Package is a purchasable VPN access plan from the server catalog.
type Package struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Days        int     `json:"days"`
}

// PriceLabel renders the price with the shortest exact decimal form, e.g. "$2.99".
func (p Package) PriceLabel() string {
	return "$" + strconv.FormatFloat(p.Price, 'f', -1, 64)
}

// DaysLabel renders the duration, e.g. "30 Days".
func (p Package) DaysLabel() string {
	return fmt.Sprintf("%d Days", p.Days)
}
