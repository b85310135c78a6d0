package catalog

import (
	"strconv"
	"strings"

	"heavylingam-backend/internal/domain"
)

// FilterState is the transient combination of search term and constraints
// narrowing the visible listing set. It is UI-local and never persisted.
// Enumerated fields use "any" as their neutral value; bound fields use "".
type FilterState struct {
	SearchTerm string `json:"searchTerm"`
	Wheels     string `json:"wheels"`
	Owners     string `json:"owners"`
	YearFrom   string `json:"yearFrom"`
	YearTo     string `json:"yearTo"`
	PriceFrom  string `json:"priceFrom"`
	PriceTo    string `json:"priceTo"`
	Type       string `json:"type"`
}

// DefaultFilterState returns the all-"any"/empty baseline.
func DefaultFilterState() FilterState {
	return FilterState{
		Wheels: "any",
		Owners: "any",
		Type:   "any",
	}
}

// ActiveCount counts the non-default fields excluding the search term.
// The "clear all filters" control is shown only when this is non-zero or a
// non-"all" category is selected.
func (f FilterState) ActiveCount() int {
	n := 0
	for _, v := range []string{f.Wheels, f.Owners, f.Type} {
		if v != "" && v != "any" {
			n++
		}
	}
	for _, v := range []string{f.YearFrom, f.YearTo, f.PriceFrom, f.PriceTo} {
		if v != "" {
			n++
		}
	}
	return n
}

// IsDefault reports whether no field, including the search term, is set.
func (f FilterState) IsDefault() bool {
	return f.SearchTerm == "" && f.ActiveCount() == 0
}

// Apply narrows listings to the visible subset for the given category and
// filter state. It is pure, deterministic and order-preserving: callers sort
// by creation time descending before invoking. A malformed numeric bound is
// treated as absent, never as an error.
//
// Wheels and owners are matched by plain string equality against the count
// rendered as a string. The UI labels the top buckets "10+" and "5+" but the
// predicate does not special-case them, so a listing with 14 wheels never
// matches the "10" bucket. This coarse match is kept deliberately.
func Apply(listings []domain.Listing, category string, filters FilterState) []domain.Listing {
	out := make([]domain.Listing, 0, len(listings))

	term := strings.ToLower(filters.SearchTerm)
	yearFrom, hasYearFrom := parseBound(filters.YearFrom)
	yearTo, hasYearTo := parseBound(filters.YearTo)
	priceFrom, hasPriceFrom := parseBound(filters.PriceFrom)
	priceTo, hasPriceTo := parseBound(filters.PriceTo)

	for _, l := range listings {
		if category != "all" && string(l.Category) != category {
			continue
		}
		if term != "" && !matchesTerm(l, term) {
			continue
		}
		if filters.Wheels != "" && filters.Wheels != "any" && strconv.Itoa(l.Wheels) != filters.Wheels {
			continue
		}
		if filters.Owners != "" && filters.Owners != "any" && strconv.Itoa(l.Owners) != filters.Owners {
			continue
		}
		if hasYearFrom && int64(l.Year) < yearFrom {
			continue
		}
		if hasYearTo && int64(l.Year) > yearTo {
			continue
		}
		if hasPriceFrom && l.Price < priceFrom {
			continue
		}
		if hasPriceTo && l.Price > priceTo {
			continue
		}
		if filters.Type != "" && filters.Type != "any" && string(l.Type) != filters.Type {
			continue
		}
		out = append(out, l)
	}
	return out
}

func matchesTerm(l domain.Listing, term string) bool {
	return strings.Contains(strings.ToLower(l.Name), term) ||
		strings.Contains(strings.ToLower(l.Description), term) ||
		strings.Contains(strings.ToLower(l.Location), term)
}

func parseBound(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
