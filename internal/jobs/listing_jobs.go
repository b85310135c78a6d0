package jobs

import (
	"context"

	"heavylingam-backend/internal/logger"
	"heavylingam-backend/internal/metrics"
)

// PersistSnapshot re-writes the current listing snapshot to the warm cache.
// The hub already saves on every push; this job refreshes the TTL so a
// quiet catalog does not lose its warm copy between pushes.
func (jr *JobRunner) PersistSnapshot() {
	jr.runWithRecovery("PersistSnapshot", func() {
		if jr.warm == nil {
			return
		}

		listings, err := jr.hub.Listings()
		if err != nil {
			logger.Error("Failed to read listings for snapshot", "error", err)
			return
		}

		if err := jr.warm.Save(context.Background(), listings); err != nil {
			logger.Error("Failed to persist listing snapshot", "error", err)
			return
		}

		logger.Info("Persisted listing snapshot", "count", len(listings))
	})
}

// LogListingStats logs the dashboard statistics and refreshes the listings
// gauge so the metrics stay honest even with no admin traffic.
func (jr *JobRunner) LogListingStats() {
	jr.runWithRecovery("LogListingStats", func() {
		overview, err := jr.admin.Overview(context.Background())
		if err != nil {
			logger.Error("Failed to compute listing stats", "error", err)
			return
		}

		metrics.ListingsTotal.Set(float64(overview.Total))

		logger.Info("Listing stats",
			"total", overview.Total,
			"for_sale", overview.ForSale,
			"for_rent", overview.ForRent,
			"average_price", overview.AveragePrice)
	})
}
