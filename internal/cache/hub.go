// Package cache holds the listing hub: one shared store subscription fanned
// out to every consumer, instead of each view opening its own.
package cache

import (
	"context"
	"sort"
	"sync"

	"heavylingam-backend/internal/domain"
	"heavylingam-backend/internal/logger"
	"heavylingam-backend/internal/store"
)

// Hub owns the single subscription to the listing collection. Every push
// replaces the whole local collection, sorted by creation time descending,
// and is fanned out to all attached listeners. The catalog and admin views
// both read through the hub.
type Hub struct {
	store store.Store
	path  string
	warm  *SnapshotCache // optional

	mu       sync.RWMutex
	listings []domain.Listing
	err      error
	subs     map[int]chan []domain.Listing
	nextSub  int
	cancel   func()
}

func NewHub(st store.Store, path string, warm *SnapshotCache) *Hub {
	return &Hub{
		store: st,
		path:  path,
		warm:  warm,
		subs:  make(map[int]chan []domain.Listing),
	}
}

// Start seeds from the warm cache if one is configured, then subscribes to
// the store. A failed or later-dropped subscription leaves the collection
// empty and the error readable from Listings; there is no automatic retry.
func (h *Hub) Start(ctx context.Context) {
	if h.warm != nil {
		if cached, err := h.warm.Load(ctx); err != nil {
			logger.Warn("Failed to load listing snapshot from cache", "error", err)
		} else if cached != nil {
			h.mu.Lock()
			h.listings = cached
			h.mu.Unlock()
			logger.Info("Seeded listings from warm cache", "count", len(cached))
		}
	}

	cancel, err := h.store.Subscribe(ctx, h.path, h.onPush)
	if err != nil {
		logger.Error("Failed to subscribe to listing collection", "path", h.path, "error", err)
		h.mu.Lock()
		h.listings = nil
		h.err = err
		h.mu.Unlock()
		return
	}
	h.cancel = cancel
	logger.Info("Subscribed to listing collection", "path", h.path)
}

func (h *Hub) Stop() {
	if h.cancel != nil {
		h.cancel()
	}
}

func (h *Hub) onPush(snap store.Snapshot, err error) {
	if err != nil {
		h.mu.Lock()
		h.listings = nil
		h.err = err
		h.mu.Unlock()
		h.fanOut(nil)
		return
	}

	listings := make([]domain.Listing, 0, len(snap))
	for id, l := range snap {
		l.ID = id
		listings = append(listings, l)
	}
	sort.SliceStable(listings, func(i, j int) bool {
		if listings[i].CreatedAt != listings[j].CreatedAt {
			return listings[i].CreatedAt > listings[j].CreatedAt
		}
		return listings[i].ID < listings[j].ID
	})

	h.mu.Lock()
	h.listings = listings
	h.err = nil
	h.mu.Unlock()

	if h.warm != nil {
		if err := h.warm.Save(context.Background(), listings); err != nil {
			logger.Warn("Failed to persist listing snapshot to cache", "error", err)
		}
	}

	h.fanOut(listings)
}

func (h *Hub) fanOut(listings []domain.Listing) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs {
		// Latest-wins: a slow listener misses intermediate snapshots,
		// never blocks the hub.
		select {
		case ch <- listings:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- listings:
			default:
			}
		}
	}
}

// Listings returns the current collection sorted by creation time
// descending, or the connection error that killed the subscription.
func (h *Hub) Listings() ([]domain.Listing, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.err != nil {
		return nil, h.err
	}
	out := make([]domain.Listing, len(h.listings))
	copy(out, h.listings)
	return out, nil
}

// Listen attaches a fan-out listener. The current snapshot is delivered
// first; cancel detaches and closes the channel.
func (h *Hub) Listen() (<-chan []domain.Listing, func()) {
	ch := make(chan []domain.Listing, 1)

	h.mu.Lock()
	id := h.nextSub
	h.nextSub++
	h.subs[id] = ch
	ch <- h.listings
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}
