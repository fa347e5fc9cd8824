package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrProductNotFound marks lookups for product ids that are not in the
// catalog. Callers map it to a user-visible "not found" state.
var ErrProductNotFound = errors.New("product not found")

// Product is immutable reference data owned by the catalog source.
// The storefront never mutates it.
type Product struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Price       Money            `json:"price"`
	Image       string           `json:"image"`
	Description string           `json:"description"`
	CategoryID  string           `json:"category"`
	Rating      float64          `json:"rating"`
	Stock       int              `json:"stock"`
	Variants    []ProductVariant `json:"variants,omitempty"`
	Reviews     []Review         `json:"reviews,omitempty"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductVariant is one selectable axis of a product, e.g. size or color.
// Options keep their declared order.
type ProductVariant struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

type Review struct {
	ID      uuid.UUID `json:"id"`
	Author  string    `json:"author"`
	Rating  float64   `json:"rating"`
	Comment string    `json:"comment"`
	Date    time.Time `json:"date"`
}

func (p Product) InStock() bool {
	return p.Stock > 0
}
