//go:build unit

package search_test

import (
	"testing"
	"time"

	"rentacar/internal/domain/search"

	"github.com/stretchr/testify/assert"
)

func validCriteria() search.Criteria {
	return search.Criteria{
		PickupLocation: "Sydney",
		ReturnLocation: "Melbourne",
		PickupDate:     "2025-06-02",
		PickupTime:     "10:00",
		DropoffDate:    "2025-06-04",
		DropoffTime:    "10:00",
	}
}

func TestCriteriaValidate(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local)

	t.Run("complete future search passes", func(t *testing.T) {
		assert.Empty(t, validCriteria().Validate(now))
	})

	t.Run("every required field reported", func(t *testing.T) {
		errs := search.Criteria{}.Validate(now)
		assert.Len(t, errs, 6)
		assert.Equal(t, "Pick up location is required", errs["pickupLocation"])
		assert.Equal(t, "Return location is required", errs["returnLocation"])
		assert.Equal(t, "Pick up date is required", errs["pickupDate"])
		assert.Equal(t, "Pick up time is required", errs["pickupTime"])
		assert.Equal(t, "Drop off date is required", errs["dropoffDate"])
		assert.Equal(t, "Drop off time is required", errs["dropoffTime"])
	})

	t.Run("dropoff in the past rejected", func(t *testing.T) {
		c := validCriteria()
		c.DropoffDate = "2025-05-30"
		errs := c.Validate(now)
		assert.Equal(t, "Drop off date and time cannot be in the past", errs["dropoffTime"])
	})

	t.Run("dropoff before pickup rejected", func(t *testing.T) {
		c := validCriteria()
		c.PickupDate = "2025-06-05"
		errs := c.Validate(now)
		assert.Equal(t, "Drop off must be after pick up", errs["dropoffDate"])
	})
}

func TestCombineDateTime(t *testing.T) {
	got, ok := search.CombineDateTime("2025-06-02", "10:30")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 2, 10, 30, 0, 0, time.Local), got)

	_, ok = search.CombineDateTime("", "10:30")
	assert.False(t, ok)

	_, ok = search.CombineDateTime("2025-06-02", "25:99")
	assert.False(t, ok)
}
