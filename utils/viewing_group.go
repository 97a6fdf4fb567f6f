package utils

import (
	"time"

	"github.com/Devxxxx/bigdealeg-backend/models"
)

// Temporal scopes a viewing list can be narrowed to. The today scope is only
// offered on the sales ops surface.
const (
	ScopeUpcoming = "upcoming"
	ScopePast     = "past"
	ScopeAll      = "all"
	ScopeToday    = "today"
)

// GroupPending labels viewings that have no confirmed date yet.
const GroupPending = "Pending Confirmation"

// ViewingGroup is one date bucket of the customer's grouped viewing list.
type ViewingGroup struct {
	Label    string                    `json:"label"`
	Viewings []models.ScheduledViewing `json:"viewings"`
}

// FilterViewings narrows viewings to the given temporal scope relative to
// now. Viewings without a confirmed date always count as upcoming, so
// upcoming and past partition the full set. The input is never mutated and
// source order is preserved.
func FilterViewings(viewings []models.ScheduledViewing, scope string, now time.Time) []models.ScheduledViewing {
	if scope == ScopeAll || scope == "" {
		return viewings
	}

	today := TruncateToDay(now)
	var out []models.ScheduledViewing
	for _, v := range viewings {
		switch scope {
		case ScopeUpcoming:
			if v.ViewingDate == nil || !TruncateToDay(*v.ViewingDate).Before(today) {
				out = append(out, v)
			}
		case ScopePast:
			if v.ViewingDate != nil && TruncateToDay(*v.ViewingDate).Before(today) {
				out = append(out, v)
			}
		case ScopeToday:
			if v.ViewingDate != nil && TruncateToDay(*v.ViewingDate).Equal(today) {
				out = append(out, v)
			}
		}
	}
	return out
}

// GroupViewings buckets viewings by display label: "Today", "Tomorrow",
// "Pending Confirmation" for date-less rows, otherwise the long-form date.
// Bucket order and in-bucket order follow the source slice, so the result is
// a pure function of the inputs.
func GroupViewings(viewings []models.ScheduledViewing, now time.Time) []ViewingGroup {
	var groups []ViewingGroup
	index := make(map[string]int)

	for _, v := range viewings {
		label := groupLabel(v, now)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, ViewingGroup{Label: label})
		}
		groups[i].Viewings = append(groups[i].Viewings, v)
	}
	return groups
}

func groupLabel(v models.ScheduledViewing, now time.Time) string {
	if v.ViewingDate == nil {
		return GroupPending
	}
	today := TruncateToDay(now)
	date := TruncateToDay(*v.ViewingDate)
	switch {
	case date.Equal(today):
		return "Today"
	case date.Equal(today.AddDate(0, 0, 1)):
		return "Tomorrow"
	default:
		return date.Format("Monday, January 2, 2006")
	}
}
