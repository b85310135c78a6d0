package catalog

import "heavylingam-backend/internal/domain"

// Category is one entry of the category selector: a fixed id, its display
// name and icon, and the number of listings currently tagged with it.
type Category struct {
	ID          domain.VehicleCategory `json:"id"`
	DisplayName string                 `json:"displayName"`
	Count       int                    `json:"count"`
	Icon        string                 `json:"icon"`
}

var categoryMeta = map[domain.VehicleCategory]struct {
	name string
	icon string
}{
	domain.CategoryExcavators: {"Excavators", "🚜"},
	domain.CategoryCranes:     {"Cranes", "🏗️"},
	domain.CategoryTrucks:     {"Heavy Trucks", "🚛"},
	domain.CategoryBulldozers: {"Bulldozers", "🚧"},
	domain.CategoryLoaders:    {"Loaders", "⚡"},
}

// Aggregate returns exactly the fixed five categories in fixed order, each
// with a count of the listings tagged with it (zero if none). Listings with
// an unrecognized tag are counted nowhere. The "all" pseudo-category is the
// caller's job: it is the total listing count, not part of this output.
func Aggregate(listings []domain.Listing) []Category {
	counts := make(map[domain.VehicleCategory]int, len(domain.Categories))
	for _, l := range listings {
		if domain.IsKnownCategory(l.Category) {
			counts[l.Category]++
		}
	}

	out := make([]Category, 0, len(domain.Categories))
	for _, id := range domain.Categories {
		meta := categoryMeta[id]
		out = append(out, Category{
			ID:          id,
			DisplayName: meta.name,
			Count:       counts[id],
			Icon:        meta.icon,
		})
	}
	return out
}
