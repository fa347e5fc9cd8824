package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type Cart struct {
	Items []CartItem `json:"items"`
}

type CartItem struct {
	Product          Product           `json:"product"`
	Quantity         int               `json:"quantity"`
	SelectedVariants map[string]string `json:"selectedVariants,omitempty"`

	AddedAt time.Time `json:"addedAt"`
}

// Subtotal is price × quantity for this line.
func (i CartItem) Subtotal() Money {
	return i.Product.Price.Mul(i.Quantity)
}

// Total sums price × quantity over all lines. An empty cart yields the
// zero Money value.
func (c Cart) Total() (Money, error) {
	if len(c.Items) == 0 {
		return Money{}, nil
	}

	total := c.Items[0].Subtotal()
	for _, item := range c.Items[1:] {
		sum, err := total.Add(item.Subtotal())
		if err != nil {
			return Money{}, fmt.Errorf("total.Add: %w", err)
		}
		total = sum
	}

	return total, nil
}

// Count sums quantities over all lines, i.e. the navbar badge number.
func (c Cart) Count() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// LineKeyPolicy decides when two cart additions land on the same line.
//
// The observed storefront keys lines by product id alone, which collapses
// different variant selections of the same product into one line. Whether
// that is intended is an open question, so both policies are supported.
type LineKeyPolicy int

const (
	LineKeyByProduct LineKeyPolicy = iota
	LineKeyByProductVariants
)

func ParseLineKeyPolicy(s string) (LineKeyPolicy, error) {
	switch s {
	case "product":
		return LineKeyByProduct, nil
	case "product_variants":
		return LineKeyByProductVariants, nil
	default:
		return 0, fmt.Errorf("line key policy[%s] is not valid", s)
	}
}

func (p LineKeyPolicy) String() string {
	if p == LineKeyByProductVariants {
		return "product_variants"
	}
	return "product"
}

// KeyOf computes the line identity for a product id and variant selection.
// Variant axes are sorted so the key does not depend on map iteration order.
func (p LineKeyPolicy) KeyOf(productID string, selected map[string]string) string {
	if p == LineKeyByProduct || len(selected) == 0 {
		return productID
	}

	axes := make([]string, 0, len(selected))
	for axis := range selected {
		axes = append(axes, axis)
	}
	sort.Strings(axes)

	var b strings.Builder
	b.WriteString(productID)
	for _, axis := range axes {
		b.WriteByte('|')
		b.WriteString(axis)
		b.WriteByte('=')
		b.WriteString(selected[axis])
	}
	return b.String()
}

// Key is KeyOf applied to a cart line.
func (p LineKeyPolicy) Key(item CartItem) string {
	return p.KeyOf(item.Product.ID, item.SelectedVariants)
}
