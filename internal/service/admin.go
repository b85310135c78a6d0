package service

import (
	"context"
	"time"

	"heavylingam-backend/internal/cache"
	"heavylingam-backend/internal/domain"
	"heavylingam-backend/internal/logger"
	"heavylingam-backend/internal/metrics"
	"heavylingam-backend/internal/store"
)

type adminService struct {
	store store.Store
	hub   *cache.Hub
	path  string
	now   func() time.Time
}

func NewAdminService(st store.Store, hub *cache.Hub, path string) AdminService {
	return &adminService{
		store: st,
		hub:   hub,
		path:  path,
		now:   time.Now,
	}
}

func (s *adminService) Overview(ctx context.Context) (*AdminOverview, error) {
	listings, err := s.hub.Listings()
	if err != nil {
		return nil, err
	}

	o := &AdminOverview{
		Listings: listings,
		Total:    len(listings),
	}
	var sum int64
	for _, l := range listings {
		switch l.Type {
		case domain.ListingTypeSale:
			o.ForSale++
		case domain.ListingTypeRent:
			o.ForRent++
		}
		sum += l.Price
	}
	if len(listings) > 0 {
		o.AveragePrice = sum / int64(len(listings))
	}
	return o, nil
}

func (s *adminService) Create(ctx context.Context, draft domain.Listing) (string, error) {
	draft.CreatedAt = s.now().UnixMilli()
	if draft.Images == nil {
		draft.Images = []string{}
	}

	id, err := s.store.Append(ctx, s.path, draft)
	if err != nil {
		metrics.StoreWritesTotal.WithLabelValues("append", "error").Inc()
		logger.Error("Failed to create listing", "error", err)
		return "", err
	}
	metrics.StoreWritesTotal.WithLabelValues("append", "ok").Inc()
	logger.Info("Listing created", "listing_id", id, "name", draft.Name)
	return id, nil
}

// Update replaces the whole record at id: any field absent from the draft is
// lost server-side, and the creation timestamp is re-stamped the way the
// admin console has always done it.
func (s *adminService) Update(ctx context.Context, id string, draft domain.Listing) error {
	draft.CreatedAt = s.now().UnixMilli()
	if draft.Images == nil {
		draft.Images = []string{}
	}

	logger.Debug("Overwriting listing record wholesale", "listing_id", id)
	if err := s.store.Overwrite(ctx, s.path, id, draft); err != nil {
		metrics.StoreWritesTotal.WithLabelValues("overwrite", "error").Inc()
		logger.Error("Failed to update listing", "listing_id", id, "error", err)
		return err
	}
	metrics.StoreWritesTotal.WithLabelValues("overwrite", "ok").Inc()
	logger.Info("Listing updated", "listing_id", id)
	return nil
}

func (s *adminService) Delete(ctx context.Context, id string) error {
	if err := s.store.Remove(ctx, s.path, id); err != nil {
		metrics.StoreWritesTotal.WithLabelValues("remove", "error").Inc()
		logger.Error("Failed to delete listing", "listing_id", id, "error", err)
		return err
	}
	metrics.StoreWritesTotal.WithLabelValues("remove", "ok").Inc()
	logger.Info("Listing deleted", "listing_id", id)
	return nil
}
