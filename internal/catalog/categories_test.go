package catalog

import (
	"testing"

	"heavylingam-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestAggregate_FixedOrderAndCounts(t *testing.T) {
	listings := []domain.Listing{
		{Category: domain.CategoryTrucks},
		{Category: domain.CategoryTrucks},
		{Category: domain.CategoryCranes},
		{Category: "hovercraft"}, // unrecognized tag: counted nowhere
	}

	got := Aggregate(listings)

	assert.Len(t, got, 5)
	assert.Equal(t, domain.CategoryExcavators, got[0].ID)
	assert.Equal(t, domain.CategoryCranes, got[1].ID)
	assert.Equal(t, domain.CategoryTrucks, got[2].ID)
	assert.Equal(t, domain.CategoryBulldozers, got[3].ID)
	assert.Equal(t, domain.CategoryLoaders, got[4].ID)

	assert.Equal(t, 1, got[1].Count)
	assert.Equal(t, 2, got[2].Count)

	sum := 0
	for _, c := range got {
		sum += c.Count
	}
	assert.Equal(t, 3, sum, "counts sum to listings with a recognized tag")
}

func TestAggregate_Empty(t *testing.T) {
	got := Aggregate(nil)
	assert.Len(t, got, 5)
	for _, c := range got {
		assert.Zero(t, c.Count)
		assert.NotEmpty(t, c.DisplayName)
		assert.NotEmpty(t, c.Icon)
	}
}
