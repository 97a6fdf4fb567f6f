package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViewing(status ViewingStatus) *ScheduledViewing {
	return &ScheduledViewing{
		PropertyID: 1,
		UserID:     1,
		Status:     status,
	}
}

func TestViewingLifecycle(t *testing.T) {
	v := newViewing(StatusRequested)

	err := v.ProposeSlots([]string{"2025-06-01", "2025-06-02"}, []string{"10:00", "14:00"}, RoleSalesOps)
	require.NoError(t, err)
	assert.Equal(t, StatusOptionsSent, v.Status)
	assert.Equal(t, []string{"2025-06-01", "2025-06-02"}, v.ProposedDates)
	assert.Equal(t, []string{"10:00", "14:00"}, v.ProposedTimes)

	err = v.SelectSlot("2025-06-02", "14:00", RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, StatusSlotSelected, v.Status)
	assert.Equal(t, "2025-06-02", v.SelectedDate)
	assert.Equal(t, "14:00", v.SelectedTime)

	err = v.Confirm(RoleSalesOps)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, v.Status)
	require.NotNil(t, v.ViewingDate)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), *v.ViewingDate)
	assert.Equal(t, "14:00", v.ViewingTime)

	err = v.Complete(RoleSalesOps)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, v.Status)

	// Terminal: nothing moves out of completed
	err = v.Cancel("changed my mind", RoleCustomer)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusCompleted, v.Status)
}

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		name string
		from ViewingStatus
		to   ViewingStatus
		ok   bool
	}{
		{"requested to options_sent", StatusRequested, StatusOptionsSent, true},
		{"requested to cancelled", StatusRequested, StatusCancelled, true},
		{"requested to confirmed skips negotiation", StatusRequested, StatusConfirmed, false},
		{"requested to completed", StatusRequested, StatusCompleted, false},
		{"options_sent to slot_selected", StatusOptionsSent, StatusSlotSelected, true},
		{"options_sent to confirmed skips selection", StatusOptionsSent, StatusConfirmed, false},
		{"slot_selected to confirmed", StatusSlotSelected, StatusConfirmed, true},
		{"slot_selected back to options_sent", StatusSlotSelected, StatusOptionsSent, false},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusRequested, false},
		{"cancelled cannot complete", StatusCancelled, StatusCompleted, false},
		{"legacy pending behaves as requested", StatusPending, StatusOptionsSent, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViewing(tt.from)
			assert.Equal(t, tt.ok, v.CanTransition(tt.to))
		})
	}
}

func TestProposeSlotsValidation(t *testing.T) {
	t.Run("empty dates", func(t *testing.T) {
		v := newViewing(StatusRequested)
		err := v.ProposeSlots(nil, []string{"10:00"}, RoleSalesOps)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, StatusRequested, v.Status)
	})

	t.Run("empty times", func(t *testing.T) {
		v := newViewing(StatusRequested)
		err := v.ProposeSlots([]string{"2025-06-01"}, nil, RoleSalesOps)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("malformed date", func(t *testing.T) {
		v := newViewing(StatusRequested)
		err := v.ProposeSlots([]string{"June 1st"}, []string{"10:00"}, RoleSalesOps)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Empty(t, v.ProposedDates)
	})

	t.Run("blank time label", func(t *testing.T) {
		v := newViewing(StatusRequested)
		err := v.ProposeSlots([]string{"2025-06-01"}, []string{""}, RoleSalesOps)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("customer may not propose", func(t *testing.T) {
		v := newViewing(StatusRequested)
		err := v.ProposeSlots([]string{"2025-06-01"}, []string{"10:00"}, RoleCustomer)
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Equal(t, StatusRequested, v.Status)
	})
}

func TestProposeSlotsNeverOverwritesSelection(t *testing.T) {
	v := newViewing(StatusRequested)
	require.NoError(t, v.ProposeSlots([]string{"2025-06-01"}, []string{"10:00"}, RoleSalesOps))
	require.NoError(t, v.SelectSlot("2025-06-01", "10:00", RoleCustomer))

	// A re-proposal after the customer picked must fail and leave the
	// selection untouched.
	err := v.ProposeSlots([]string{"2025-07-01"}, []string{"16:00"}, RoleSalesOps)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusSlotSelected, v.Status)
	assert.Equal(t, "2025-06-01", v.SelectedDate)
	assert.Equal(t, "10:00", v.SelectedTime)
	assert.Equal(t, []string{"2025-06-01"}, v.ProposedDates)
}

func TestSelectSlotValidation(t *testing.T) {
	proposed := func() *ScheduledViewing {
		v := newViewing(StatusRequested)
		if err := v.ProposeSlots([]string{"2025-06-01", "2025-06-02"}, []string{"10:00", "14:00"}, RoleSalesOps); err != nil {
			t.Fatal(err)
		}
		return v
	}

	t.Run("date not proposed", func(t *testing.T) {
		v := proposed()
		err := v.SelectSlot("2025-06-03", "10:00", RoleCustomer)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, StatusOptionsSent, v.Status)
		assert.Empty(t, v.SelectedDate)
	})

	t.Run("time not proposed", func(t *testing.T) {
		v := proposed()
		err := v.SelectSlot("2025-06-01", "09:00", RoleCustomer)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Empty(t, v.SelectedTime)
	})

	t.Run("any proposed date pairs with any proposed time", func(t *testing.T) {
		v := proposed()
		err := v.SelectSlot("2025-06-01", "14:00", RoleCustomer)
		assert.NoError(t, err)
	})

	t.Run("sales ops may not select for the customer", func(t *testing.T) {
		v := proposed()
		err := v.SelectSlot("2025-06-01", "10:00", RoleSalesOps)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("select before proposal", func(t *testing.T) {
		v := newViewing(StatusRequested)
		err := v.SelectSlot("2025-06-01", "10:00", RoleCustomer)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestConfirmRequiresSelection(t *testing.T) {
	v := newViewing(StatusRequested)
	assert.ErrorIs(t, v.Confirm(RoleSalesOps), ErrInvalidTransition)

	require.NoError(t, v.ProposeSlots([]string{"2025-06-01"}, []string{"10:00"}, RoleSalesOps))
	assert.ErrorIs(t, v.Confirm(RoleSalesOps), ErrInvalidTransition)

	require.NoError(t, v.SelectSlot("2025-06-01", "10:00", RoleCustomer))
	assert.ErrorIs(t, v.Confirm(RoleCustomer), ErrUnauthorized)
	assert.NoError(t, v.Confirm(RoleSalesOps))
}

func TestCancel(t *testing.T) {
	t.Run("allowed from every non-terminal state for both parties", func(t *testing.T) {
		for _, status := range []ViewingStatus{StatusRequested, StatusOptionsSent, StatusSlotSelected, StatusConfirmed} {
			for _, role := range []string{RoleCustomer, RoleSalesOps} {
				v := newViewing(status)
				assert.NoError(t, v.Cancel("", role), "cancel from %s as %s", status, role)
				assert.Equal(t, StatusCancelled, v.Status)
			}
		}
	})

	t.Run("second cancel fails cleanly", func(t *testing.T) {
		v := newViewing(StatusRequested)
		require.NoError(t, v.Cancel("no longer interested", RoleCustomer))
		assert.Equal(t, "no longer interested", v.CancelReason)

		err := v.Cancel("again", RoleCustomer)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, "no longer interested", v.CancelReason)
	})

	t.Run("clears outstanding proposal", func(t *testing.T) {
		v := newViewing(StatusRequested)
		require.NoError(t, v.ProposeSlots([]string{"2025-06-01"}, []string{"10:00"}, RoleSalesOps))
		require.NoError(t, v.Cancel("", RoleSalesOps))
		assert.Empty(t, v.ProposedDates)
		assert.Empty(t, v.ProposedTimes)
	})

	t.Run("cancel straight from requested leaves no proposal behind", func(t *testing.T) {
		v := newViewing(StatusRequested)
		require.NoError(t, v.Cancel("", RoleCustomer))
		assert.Empty(t, v.ProposedDates)
		assert.Empty(t, v.ProposedTimes)
	})
}

func TestEffectiveStatus(t *testing.T) {
	v := newViewing(StatusPending)
	assert.Equal(t, StatusRequested, v.EffectiveStatus())
	assert.False(t, v.IsTerminal())

	require.NoError(t, v.ProposeSlots([]string{"2025-06-01"}, []string{"10:00"}, RoleSalesOps))
	assert.Equal(t, StatusOptionsSent, v.Status)
}
