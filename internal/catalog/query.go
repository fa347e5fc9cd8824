package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/novamart/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

const DefaultPageSize = 8

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

// ParseSortKey is lenient: anything unrecognized falls back to featured
// order, matching how the listing treats malformed query input.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceAsc, SortPriceDesc, SortRating, SortNewest:
		return SortKey(s)
	default:
		return SortFeatured
	}
}

// Query is one snapshot of the listing criteria.
type Query struct {
	PriceMin   decimal.Decimal
	PriceMax   decimal.Decimal
	Categories []string // empty means all categories
	Search     string
	Sort       SortKey
	Page       int // 1-indexed
	PageSize   int
}

// Page is the visible slice of the catalog plus pagination totals.
type Page struct {
	Products   []domain.Product `json:"products"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalItems int              `json:"totalItems"`
	TotalPages int              `json:"totalPages"`
}

// Run filters, sorts and paginates the full product list. It is a pure
// function of its inputs and never fails: an empty result is a valid page
// with zero items and zero total pages.
func Run(products []domain.Product, categories []domain.Category, q Query) Page {
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.Sort == "" {
		q.Sort = SortFeatured
	}

	categoryNames := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	retained := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !priceInRange(p.Price.Amount, q.PriceMin, q.PriceMax) {
			continue
		}
		if !categoryMatches(p.CategoryID, q.Categories) {
			continue
		}
		if !searchMatches(p, categoryNames[p.CategoryID], q.Search) {
			continue
		}
		retained = append(retained, p)
	}

	sortProducts(retained, q.Sort)

	totalItems := len(retained)
	totalPages := (totalItems + q.PageSize - 1) / q.PageSize

	page := q.Page
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * q.PageSize
	end := min(start+q.PageSize, totalItems)
	if start > totalItems {
		start, end = totalItems, totalItems
	}

	return Page{
		Products:   retained[start:end],
		Page:       page,
		PageSize:   q.PageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

func priceInRange(price, lo, hi decimal.Decimal) bool {
	return price.GreaterThanOrEqual(lo) && price.LessThanOrEqual(hi)
}

func categoryMatches(categoryID string, filter []string) bool {
	if len(filter) == 0 {
		return true
	}
	for _, id := range filter {
		if id == categoryID {
			return true
		}
	}
	return false
}

func searchMatches(p domain.Product, categoryName, search string) bool {
	if search == "" {
		return true
	}

	needle := strings.ToLower(search)
	for _, haystack := range []string{p.Name, p.Description, categoryName} {
		if strings.Contains(strings.ToLower(haystack), needle) {
			return true
		}
	}
	return false
}

// sortProducts sorts in place. All sorts are stable, so ties keep catalog
// order and "featured" leaves the list untouched.
func sortProducts(products []domain.Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.Amount.LessThan(products[j].Price.Amount)
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.Amount.GreaterThan(products[j].Price.Amount)
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return newerThan(products[i].ID, products[j].ID)
		})
	}
}

// newerThan orders numeric ids descending; products with non-numeric ids
// sort after numeric ones and keep their relative order.
func newerThan(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)

	switch {
	case errA == nil && errB == nil:
		return na > nb
	case errA == nil:
		return true
	default:
		return false
	}
}
