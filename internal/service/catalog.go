package service

import (
	"context"

	"heavylingam-backend/internal/cache"
	"heavylingam-backend/internal/catalog"
	"heavylingam-backend/internal/domain"
)

type catalogService struct {
	hub *cache.Hub
}

func NewCatalogService(hub *cache.Hub) CatalogService {
	return &catalogService{hub: hub}
}

func (s *catalogService) Browse(ctx context.Context, category string, filters catalog.FilterState, visibleCount int) (*BrowsePage, error) {
	listings, err := s.hub.Listings()
	if err != nil {
		return nil, err
	}

	if category == "" {
		category = "all"
	}
	if visibleCount <= 0 {
		visibleCount = DefaultVisibleCount
	}

	filtered := catalog.Apply(listings, category, filters)
	categories := catalog.Aggregate(listings)

	visible := filtered
	if len(visible) > visibleCount {
		visible = visible[:visibleCount]
	}

	return &BrowsePage{
		Listings:      visible,
		TotalFiltered: len(filtered),
		VisibleCount:  visibleCount,
		HasMore:       len(filtered) > visibleCount,
		Categories:    categories,
		AllCount:      len(listings),
		ClearVisible:  category != "all" || filters.ActiveCount() > 0,
	}, nil
}

func (s *catalogService) Detail(ctx context.Context, id string, imageIndex int) (*ListingDetail, error) {
	listings, err := s.hub.Listings()
	if err != nil {
		return nil, err
	}

	for _, l := range listings {
		if l.ID != id {
			continue
		}
		images := l.Images
		if len(images) == 0 {
			images = []string{PlaceholderImage}
		}
		if imageIndex < 0 || imageIndex >= len(images) {
			imageIndex = 0
		}
		n := len(images)
		return &ListingDetail{
			Listing:         l,
			Images:          images,
			CarouselEnabled: n > 1,
			ImageIndex:      imageIndex,
			PrevIndex:       (imageIndex - 1 + n) % n,
			NextIndex:       (imageIndex + 1) % n,
		}, nil
	}
	return nil, domain.ErrListingNotFound
}
