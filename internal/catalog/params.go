package catalog

import (
	"net/url"
	"slices"
	"strconv"

	"github.com/shopspring/decimal"
)

// Params holds the listing criteria between user actions. Changing any
// criterion resets the page to 1; changing only the page does not.
//
// Params mirrors to url.Values so a given catalog view is linkable. The
// URL encoding itself belongs to the routing collaborator; Params only
// offers the translation.
type Params struct {
	defaultMin decimal.Decimal
	defaultMax decimal.Decimal

	priceMin   decimal.Decimal
	priceMax   decimal.Decimal
	categories []string
	search     string
	sort       SortKey
	page       int
}

func NewParams(defaultMin, defaultMax decimal.Decimal) *Params {
	return &Params{
		defaultMin: defaultMin,
		defaultMax: defaultMax,
		priceMin:   defaultMin,
		priceMax:   defaultMax,
		sort:       SortFeatured,
		page:       1,
	}
}

func (p *Params) SetPriceRange(lo, hi decimal.Decimal) {
	p.priceMin = lo
	p.priceMax = hi
	p.page = 1
}

func (p *Params) SetCategories(ids []string) {
	p.categories = slices.Clone(ids)
	p.page = 1
}

// ToggleCategory adds the category to the filter set, or removes it when
// already present.
func (p *Params) ToggleCategory(id string) {
	if i := slices.Index(p.categories, id); i >= 0 {
		p.categories = slices.Delete(p.categories, i, i+1)
	} else {
		p.categories = append(p.categories, id)
	}
	p.page = 1
}

func (p *Params) SetSearch(text string) {
	p.search = text
	p.page = 1
}

func (p *Params) SetSort(key SortKey) {
	p.sort = key
	p.page = 1
}

func (p *Params) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	p.page = page
}

// Reset restores the defaults, i.e. the "Clear All" filter action.
func (p *Params) Reset() {
	p.priceMin = p.defaultMin
	p.priceMax = p.defaultMax
	p.categories = nil
	p.search = ""
	p.sort = SortFeatured
	p.page = 1
}

func (p *Params) Categories() []string { return slices.Clone(p.categories) }
func (p *Params) Search() string       { return p.search }
func (p *Params) Sort() SortKey        { return p.sort }
func (p *Params) Page() int            { return p.page }

func (p *Params) PriceRange() (decimal.Decimal, decimal.Decimal) {
	return p.priceMin, p.priceMax
}

// Query snapshots the current criteria for a pipeline run.
func (p *Params) Query(pageSize int) Query {
	return Query{
		PriceMin:   p.priceMin,
		PriceMax:   p.priceMax,
		Categories: slices.Clone(p.categories),
		Search:     p.search,
		Sort:       p.sort,
		Page:       p.page,
		PageSize:   pageSize,
	}
}

// Encode writes the criteria to url.Values, omitting values still at their
// defaults so shared links stay short.
func (p *Params) Encode() url.Values {
	v := url.Values{}

	if !p.priceMin.Equal(p.defaultMin) {
		v.Set("minPrice", p.priceMin.String())
	}
	if !p.priceMax.Equal(p.defaultMax) {
		v.Set("maxPrice", p.priceMax.String())
	}
	for _, id := range p.categories {
		v.Add("category", id)
	}
	if p.search != "" {
		v.Set("search", p.search)
	}
	if p.sort != SortFeatured {
		v.Set("sort", string(p.sort))
	}
	if p.page != 1 {
		v.Set("page", strconv.Itoa(p.page))
	}

	return v
}

// DecodeParams reads criteria from url.Values. Malformed numeric values
// fall back to the defaults; decoding never fails.
func DecodeParams(v url.Values, defaultMin, defaultMax decimal.Decimal) *Params {
	p := NewParams(defaultMin, defaultMax)

	if raw := v.Get("minPrice"); raw != "" {
		if d, err := decimal.NewFromString(raw); err == nil && !d.IsNegative() {
			p.priceMin = d
		}
	}
	if raw := v.Get("maxPrice"); raw != "" {
		if d, err := decimal.NewFromString(raw); err == nil && !d.IsNegative() {
			p.priceMax = d
		}
	}
	if ids := v["category"]; len(ids) > 0 {
		p.categories = slices.Clone(ids)
	}
	p.search = v.Get("search")
	p.sort = ParseSortKey(v.Get("sort"))

	if raw := v.Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page >= 1 {
			p.page = page
		}
	}

	return p
}
