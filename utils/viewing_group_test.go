package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devxxxx/bigdealeg-backend/models"
)

// now is a fixed reference time for every test: Monday 2025-06-02, mid-day.
var now = time.Date(2025, 6, 2, 13, 30, 0, 0, time.UTC)

func onDate(id uint, year int, month time.Month, day int) models.ScheduledViewing {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	v := models.ScheduledViewing{Status: models.StatusConfirmed, ViewingDate: &d}
	v.ID = id
	return v
}

func dateless(id uint, status models.ViewingStatus) models.ScheduledViewing {
	v := models.ScheduledViewing{Status: status}
	v.ID = id
	return v
}

func ids(viewings []models.ScheduledViewing) []uint {
	var out []uint
	for _, v := range viewings {
		out = append(out, v.ID)
	}
	return out
}

func TestFilterViewings(t *testing.T) {
	viewings := []models.ScheduledViewing{
		onDate(1, 2025, 6, 1),               // yesterday
		onDate(2, 2025, 6, 2),               // today
		onDate(3, 2025, 6, 3),               // tomorrow
		dateless(4, models.StatusRequested), // no date yet
		onDate(5, 2025, 5, 20),              // well past
	}

	t.Run("upcoming includes today, the future, and date-less rows", func(t *testing.T) {
		got := FilterViewings(viewings, ScopeUpcoming, now)
		assert.Equal(t, []uint{2, 3, 4}, ids(got))
	})

	t.Run("past is strictly before today", func(t *testing.T) {
		got := FilterViewings(viewings, ScopePast, now)
		assert.Equal(t, []uint{1, 5}, ids(got))
	})

	t.Run("today matches the truncated date only", func(t *testing.T) {
		got := FilterViewings(viewings, ScopeToday, now)
		assert.Equal(t, []uint{2}, ids(got))
	})

	t.Run("all is a no-op", func(t *testing.T) {
		got := FilterViewings(viewings, ScopeAll, now)
		assert.Equal(t, []uint{1, 2, 3, 4, 5}, ids(got))
	})

	t.Run("past and upcoming partition the set", func(t *testing.T) {
		upcoming := FilterViewings(viewings, ScopeUpcoming, now)
		past := FilterViewings(viewings, ScopePast, now)
		assert.Len(t, upcoming, len(viewings)-len(past))

		seen := make(map[uint]bool)
		for _, v := range append(past, upcoming...) {
			assert.False(t, seen[v.ID], "viewing %d appears in both scopes", v.ID)
			seen[v.ID] = true
		}
	})

	t.Run("legacy pending rows land in upcoming", func(t *testing.T) {
		legacy := []models.ScheduledViewing{dateless(9, models.StatusPending)}
		got := FilterViewings(legacy, ScopeUpcoming, now)
		assert.Equal(t, []uint{9}, ids(got))
	})
}

func TestGroupViewings(t *testing.T) {
	viewings := []models.ScheduledViewing{
		onDate(1, 2025, 6, 2),
		onDate(2, 2025, 6, 3),
		dateless(3, models.StatusRequested),
		onDate(4, 2025, 6, 6),
		onDate(5, 2025, 6, 2),
	}

	groups := GroupViewings(viewings, now)
	require.Len(t, groups, 4)

	assert.Equal(t, "Today", groups[0].Label)
	assert.Equal(t, []uint{1, 5}, ids(groups[0].Viewings))

	assert.Equal(t, "Tomorrow", groups[1].Label)
	assert.Equal(t, []uint{2}, ids(groups[1].Viewings))

	assert.Equal(t, GroupPending, groups[2].Label)
	assert.Equal(t, []uint{3}, ids(groups[2].Viewings))

	assert.Equal(t, "Friday, June 6, 2025", groups[3].Label)
	assert.Equal(t, []uint{4}, ids(groups[3].Viewings))
}

func TestGroupViewingsIsPure(t *testing.T) {
	viewings := []models.ScheduledViewing{
		onDate(1, 2025, 6, 2),
		dateless(2, models.StatusRequested),
		onDate(3, 2025, 7, 10),
	}

	first := GroupViewings(viewings, now)
	second := GroupViewings(viewings, now)
	assert.Equal(t, first, second)

	// The source slice is left alone
	assert.Equal(t, uint(1), viewings[0].ID)
	assert.Len(t, viewings, 3)
}

func TestGroupViewingsEmpty(t *testing.T) {
	assert.Empty(t, GroupViewings(nil, now))
	assert.Empty(t, FilterViewings(nil, ScopeUpcoming, now))
}

func TestTruncateToDay(t *testing.T) {
	loc, err := time.LoadLocation("Africa/Cairo")
	require.NoError(t, err)

	in := time.Date(2025, 6, 2, 23, 59, 59, 0, loc)
	got := TruncateToDay(in)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}
