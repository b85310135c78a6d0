package service

import (
	"context"

	"heavylingam-backend/internal/catalog"
	"heavylingam-backend/internal/domain"
)

// DefaultVisibleCount is the initial page size of the catalog grid; the
// client reveals RevealStep more on demand. This is a display-side limit,
// not backend pagination.
const (
	DefaultVisibleCount = 8
	RevealStep          = 8
)

// PlaceholderImage is substituted when a listing has no images.
const PlaceholderImage = "/placeholder-vehicle.jpg"

// BrowsePage is one rendering of the catalog: the visible slice of the
// filtered collection plus everything the page chrome needs.
type BrowsePage struct {
	Listings      []domain.Listing   `json:"listings"`
	TotalFiltered int                `json:"totalFiltered"`
	VisibleCount  int                `json:"visibleCount"`
	HasMore       bool               `json:"hasMore"`
	Categories    []catalog.Category `json:"categories"`
	AllCount      int                `json:"allCount"`
	ClearVisible  bool               `json:"clearVisible"`
}

// ListingDetail is the detail view payload: all attributes plus the carousel
// image sequence with the placeholder substituted when empty. PrevIndex and
// NextIndex wrap around the sequence for the current position.
type ListingDetail struct {
	Listing         domain.Listing `json:"listing"`
	Images          []string       `json:"images"`
	CarouselEnabled bool           `json:"carouselEnabled"`
	ImageIndex      int            `json:"imageIndex"`
	PrevIndex       int            `json:"prevIndex"`
	NextIndex       int            `json:"nextIndex"`
}

// AdminOverview carries the dashboard statistics of the admin console.
type AdminOverview struct {
	Listings     []domain.Listing `json:"listings"`
	Total        int              `json:"total"`
	ForSale      int              `json:"forSale"`
	ForRent      int              `json:"forRent"`
	AveragePrice int64            `json:"averagePrice"`
}

type CatalogService interface {
	Browse(ctx context.Context, category string, filters catalog.FilterState, visibleCount int) (*BrowsePage, error)
	Detail(ctx context.Context, id string, imageIndex int) (*ListingDetail, error)
}

type AdminService interface {
	Overview(ctx context.Context) (*AdminOverview, error)
	Create(ctx context.Context, draft domain.Listing) (string, error)
	Update(ctx context.Context, id string, draft domain.Listing) error
	Delete(ctx context.Context, id string) error
}

type AuthService interface {
	// Login checks credentials and returns a session token, or
	// domain.ErrAuth with session state unchanged.
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context) error
}
