package service

import (
	"context"
	"testing"
	"time"

	"heavylingam-backend/internal/cache"
	"heavylingam-backend/internal/domain"
	"heavylingam-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminFixture(t *testing.T) (AdminService, *cache.Hub, store.Store) {
	t.Helper()
	st := store.NewMemoryStore()
	hub := cache.NewHub(st, "listings", nil)
	hub.Start(context.Background())
	t.Cleanup(hub.Stop)

	svc := NewAdminService(st, hub, "listings")
	svc.(*adminService).now = func() time.Time { return time.UnixMilli(1700000000000) }
	return svc, hub, st
}

func TestAdminService_CreateStampsCreationTime(t *testing.T) {
	svc, hub, _ := newAdminFixture(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, domain.Listing{Name: "Crane", Category: domain.CategoryCranes})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	listings, err := hub.Listings()
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, int64(1700000000000), listings[0].CreatedAt)
	assert.NotNil(t, listings[0].Images, "image sequence is stored as an empty array, never null")
}

func TestAdminService_UpdateIsFullOverwrite(t *testing.T) {
	svc, hub, _ := newAdminFixture(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, domain.Listing{
		Name:    "Crane",
		Contact: "+91 9876543210",
		Images:  []string{"data:image/png;base64,a"},
	})
	require.NoError(t, err)

	// A draft missing contact and images silently drops both fields.
	require.NoError(t, svc.Update(ctx, id, domain.Listing{Name: "Crane MkII"}))

	listings, err := hub.Listings()
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Crane MkII", listings[0].Name)
	assert.Empty(t, listings[0].Contact)
	assert.Empty(t, listings[0].Images)
}

func TestAdminService_UpdateRestampsCreationTime(t *testing.T) {
	svc, hub, _ := newAdminFixture(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, domain.Listing{Name: "Dozer"})
	require.NoError(t, err)

	svc.(*adminService).now = func() time.Time { return time.UnixMilli(1700000099000) }
	require.NoError(t, svc.Update(ctx, id, domain.Listing{Name: "Dozer"}))

	listings, err := hub.Listings()
	require.NoError(t, err)
	assert.Equal(t, int64(1700000099000), listings[0].CreatedAt,
		"edits re-stamp the creation time, matching the console's historical behavior")
}

func TestAdminService_DeleteAbsentIDDoesNotFail(t *testing.T) {
	svc, _, _ := newAdminFixture(t)
	err := svc.Delete(context.Background(), "never-existed")
	assert.NoError(t, err)
}

func TestAdminService_Overview(t *testing.T) {
	svc, _, _ := newAdminFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.Listing{Type: domain.ListingTypeSale, Price: 500000})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.Listing{Type: domain.ListingTypeSale, Price: 700000})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.Listing{Type: domain.ListingTypeRent, Price: 300000})
	require.NoError(t, err)

	o, err := svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, o.Total)
	assert.Equal(t, 2, o.ForSale)
	assert.Equal(t, 1, o.ForRent)
	assert.Equal(t, int64(500000), o.AveragePrice)
}

func TestAdminService_OverviewEmpty(t *testing.T) {
	svc, _, _ := newAdminFixture(t)

	o, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Zero(t, o.Total)
	assert.Zero(t, o.AveragePrice)
}
