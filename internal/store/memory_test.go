package store

import (
	"context"
	"testing"

	"heavylingam-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_AppendGeneratesID(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	id1, err := s.Append(ctx, "listings", domain.Listing{Name: "Crane"})
	require.NoError(t, err)
	id2, err := s.Append(ctx, "listings", domain.Listing{Name: "Truck"})
	require.NoError(t, err)

	assert.NotEmpty(t, id1)
	assert.NotEqual(t, id1, id2)
}

func TestMemoryStore_SubscribePushesOnEveryWrite(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var pushes []Snapshot
	cancel, err := s.Subscribe(ctx, "listings", func(snap Snapshot, err error) {
		require.NoError(t, err)
		pushes = append(pushes, snap)
	})
	require.NoError(t, err)
	defer cancel()

	require.Len(t, pushes, 1, "current snapshot delivered on attach")
	assert.Empty(t, pushes[0])

	id, err := s.Append(ctx, "listings", domain.Listing{Name: "Crane"})
	require.NoError(t, err)
	require.Len(t, pushes, 2)
	assert.Equal(t, "Crane", pushes[1][id].Name)

	require.NoError(t, s.Overwrite(ctx, "listings", id, domain.Listing{Name: "Tower Crane"}))
	require.Len(t, pushes, 3)
	assert.Equal(t, "Tower Crane", pushes[2][id].Name)

	require.NoError(t, s.Remove(ctx, "listings", id))
	require.Len(t, pushes, 4)
	assert.Empty(t, pushes[3])
}

func TestMemoryStore_RemoveAbsentIDIsNoOp(t *testing.T) {
	s := NewMemoryStore()
	err := s.Remove(context.Background(), "listings", "no-such-id")
	assert.NoError(t, err)
}

func TestMemoryStore_CancelStopsPushes(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	count := 0
	cancel, err := s.Subscribe(ctx, "listings", func(Snapshot, error) { count++ })
	require.NoError(t, err)
	cancel()

	_, err = s.Append(ctx, "listings", domain.Listing{Name: "Dozer"})
	require.NoError(t, err)
	assert.Equal(t, 1, count, "only the attach push before cancel")
}

func TestMemoryStore_OverwriteIsFullReplace(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	id, err := s.Append(ctx, "listings", domain.Listing{Name: "Loader", Contact: "+91 9876543210", Wheels: 4})
	require.NoError(t, err)

	// A draft missing the contact field wipes it: overwrite-at-id replaces
	// the whole record.
	require.NoError(t, s.Overwrite(ctx, "listings", id, domain.Listing{Name: "Loader", Wheels: 4}))

	var got Snapshot
	cancel, err := s.Subscribe(ctx, "listings", func(snap Snapshot, err error) {
		require.NoError(t, err)
		got = snap
	})
	require.NoError(t, err)
	defer cancel()

	assert.Empty(t, got[id].Contact)
}
