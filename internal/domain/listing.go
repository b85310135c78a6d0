package domain

type ListingType string

const (
	ListingTypeSale ListingType = "sale"
	ListingTypeRent ListingType = "rent"
)

type VehicleCategory string

const (
	CategoryExcavators VehicleCategory = "excavators"
	CategoryCranes     VehicleCategory = "cranes"
	CategoryTrucks     VehicleCategory = "trucks"
	CategoryBulldozers VehicleCategory = "bulldozers"
	CategoryLoaders    VehicleCategory = "loaders"
)

// Categories lists the fixed category set in display order.
var Categories = []VehicleCategory{
	CategoryExcavators,
	CategoryCranes,
	CategoryTrucks,
	CategoryBulldozers,
	CategoryLoaders,
}

// Listing is the sole persisted entity: one heavy vehicle offered for sale
// or rent. The ID is assigned by the backing store on creation and is
// immutable afterwards. Images hold data URIs or URLs; insertion order is
// display order and the slice may be empty (the catalog substitutes a
// placeholder at render time).
type Listing struct {
	ID          string          `json:"id,omitempty"`
	Name        string          `json:"name"`
	Wheels      int             `json:"wheels"`
	Owners      int             `json:"owners"`
	Year        int             `json:"year"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	Contact     string          `json:"contact"`
	Type        ListingType     `json:"type"`
	Price       int64           `json:"price"`
	Images      []string        `json:"images"`
	SoldOut     bool            `json:"soldOut"`
	Category    VehicleCategory `json:"vehicleType"`
	CreatedAt   int64           `json:"createdAt"` // epoch millis, stamped at write time
}

// IsKnownCategory reports whether c is one of the fixed five categories.
// Listings with an unrecognized tag are excluded from every category count.
func IsKnownCategory(c VehicleCategory) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
