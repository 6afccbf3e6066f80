package entity

import (
	"time"

	"github.com/google/uuid"
)

// Package is a catalog item that users can book and pay for.
// Prices are fixed-point integers in the smallest currency unit; the
// discounted price is derived state and is recomputed server-side whenever
// the base price or discount percent changes.
type Package struct {
	ID              uuid.UUID
	Title           string
	Description     string
	Price           int64 // Base price in smallest currency unit.
	DiscountPercent int   // 0..100.
	DiscountedPrice int64 // Derived: never trusted from client input.
	Features        []string
	ImageURLs       []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RecalculateDiscountedPrice recomputes the derived discounted price from
// the base price and discount percent, clamped at zero.
func (p *Package) RecalculateDiscountedPrice() {
	discounted := p.Price - p.Price*int64(p.DiscountPercent)/100
	if discounted < 0 {
		discounted = 0
	}
	p.DiscountedPrice = discounted
}
