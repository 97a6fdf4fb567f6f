package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type ViewingStatus string

const (
	StatusRequested    ViewingStatus = "requested"
	StatusOptionsSent  ViewingStatus = "options_sent"
	StatusSlotSelected ViewingStatus = "slot_selected"
	StatusConfirmed    ViewingStatus = "confirmed"
	StatusCompleted    ViewingStatus = "completed"
	StatusCancelled    ViewingStatus = "cancelled"

	// StatusPending survives in rows written before the negotiation flow
	// existed. It is read as requested everywhere.
	StatusPending ViewingStatus = "pending"
)

// DateLayout is the wire format for proposed and selected dates.
const DateLayout = "2006-01-02"

var (
	ErrViewingNotFound   = errors.New("scheduled viewing not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUnauthorized      = errors.New("role not permitted for this transition")
	ErrValidation        = errors.New("validation failed")
)

// ScheduledViewing is a property viewing negotiated between a customer and
// sales ops. Date and time options are proposed by sales ops, the customer
// picks one slot, sales ops confirms it.
type ScheduledViewing struct {
	gorm.Model
	PropertyID    uint          `json:"property_id"`
	Property      Property      `json:"property" gorm:"foreignKey:PropertyID"`
	UserID        uint          `json:"user_id"`
	User          User          `json:"profile" gorm:"foreignKey:UserID"`
	Status        ViewingStatus `json:"status"`
	ViewingDate   *time.Time    `json:"viewing_date"`
	ViewingTime   string        `json:"viewing_time"`
	ProposedDates []string      `json:"proposed_dates" gorm:"serializer:json"`
	ProposedTimes []string      `json:"proposed_times" gorm:"serializer:json"`
	SelectedDate  string        `json:"selected_date"`
	SelectedTime  string        `json:"selected_time"`
	Notes         string        `json:"notes"`
	CancelReason  string        `json:"cancel_reason,omitempty"`
	ReminderSent  bool          `json:"-"`
}

func (v *ScheduledViewing) BeforeCreate(tx *gorm.DB) error {
	if v.Status == "" {
		v.Status = StatusRequested
	}
	return nil
}

// EffectiveStatus folds the legacy pending value into requested.
func (v *ScheduledViewing) EffectiveStatus() ViewingStatus {
	if v.Status == StatusPending {
		return StatusRequested
	}
	return v.Status
}

// IsTerminal reports whether no further transitions are allowed.
func (v *ScheduledViewing) IsTerminal() bool {
	s := v.EffectiveStatus()
	return s == StatusCompleted || s == StatusCancelled
}

var anyParty = []string{RoleCustomer, RoleSalesOps, RoleAdmin}
var salesOnly = []string{RoleSalesOps, RoleAdmin}
var customerOnly = []string{RoleCustomer}

// viewingTransitions maps current status to the reachable statuses and the
// roles allowed to take each edge. cancelled is reachable from every
// non-terminal status by either party.
var viewingTransitions = map[ViewingStatus]map[ViewingStatus][]string{
	StatusRequested: {
		StatusOptionsSent: salesOnly,
		StatusCancelled:   anyParty,
	},
	StatusOptionsSent: {
		StatusSlotSelected: customerOnly,
		StatusCancelled:    anyParty,
	},
	StatusSlotSelected: {
		StatusConfirmed: salesOnly,
		StatusCancelled: anyParty,
	},
	StatusConfirmed: {
		StatusCompleted: salesOnly,
		StatusCancelled: anyParty,
	},
}

// checkTransition validates the edge and the actor. An edge missing from the
// table is an invalid transition; an edge present but closed to the caller's
// role is unauthorized.
func (v *ScheduledViewing) checkTransition(to ViewingStatus, role string) error {
	edges, ok := viewingTransitions[v.EffectiveStatus()]
	if !ok {
		return fmt.Errorf("%w: no transitions allowed from %s", ErrInvalidTransition, v.Status)
	}
	allowed, ok := edges[to]
	if !ok {
		return fmt.Errorf("%w: cannot move from %s to %s", ErrInvalidTransition, v.EffectiveStatus(), to)
	}
	for _, r := range allowed {
		if r == role {
			return nil
		}
	}
	return fmt.Errorf("%w: %s may not move a viewing to %s", ErrUnauthorized, role, to)
}

// CanTransition reports whether the status graph allows the move, ignoring
// the actor.
func (v *ScheduledViewing) CanTransition(to ViewingStatus) bool {
	edges, ok := viewingTransitions[v.EffectiveStatus()]
	if !ok {
		return false
	}
	_, ok = edges[to]
	return ok
}

// ProposeSlots records the candidate dates and times offered by sales ops and
// moves the viewing to options_sent. It is only accepted while the viewing is
// still in requested, so a re-proposal can never overwrite a slot the
// customer already selected.
func (v *ScheduledViewing) ProposeSlots(dates, times []string, role string) error {
	if err := v.checkTransition(StatusOptionsSent, role); err != nil {
		return err
	}
	if len(dates) == 0 || len(times) == 0 {
		return fmt.Errorf("%w: proposed dates and times must both be non-empty", ErrValidation)
	}
	for _, d := range dates {
		if _, err := time.Parse(DateLayout, d); err != nil {
			return fmt.Errorf("%w: invalid proposed date %q, expected YYYY-MM-DD", ErrValidation, d)
		}
	}
	for _, t := range times {
		if t == "" {
			return fmt.Errorf("%w: proposed times must not be blank", ErrValidation)
		}
	}
	v.ProposedDates = dates
	v.ProposedTimes = times
	v.Status = StatusOptionsSent
	return nil
}

// SelectSlot records the customer's pick from the proposed sets and moves the
// viewing to slot_selected. Any combination of a proposed date with a
// proposed time is a valid slot.
func (v *ScheduledViewing) SelectSlot(date, timeLabel, role string) error {
	if err := v.checkTransition(StatusSlotSelected, role); err != nil {
		return err
	}
	if !contains(v.ProposedDates, date) {
		return fmt.Errorf("%w: date %q is not among the proposed dates", ErrValidation, date)
	}
	if !contains(v.ProposedTimes, timeLabel) {
		return fmt.Errorf("%w: time %q is not among the proposed times", ErrValidation, timeLabel)
	}
	v.SelectedDate = date
	v.SelectedTime = timeLabel
	v.Status = StatusSlotSelected
	return nil
}

// Confirm locks in the customer's selection. From here viewing_date and
// viewing_time are authoritative for display and grouping.
func (v *ScheduledViewing) Confirm(role string) error {
	if err := v.checkTransition(StatusConfirmed, role); err != nil {
		return err
	}
	parsed, err := time.Parse(DateLayout, v.SelectedDate)
	if err != nil {
		return fmt.Errorf("%w: selected date %q is not parseable", ErrValidation, v.SelectedDate)
	}
	v.ViewingDate = &parsed
	v.ViewingTime = v.SelectedTime
	v.Status = StatusConfirmed
	return nil
}

// Complete marks a confirmed viewing as having taken place. Whether the
// viewing date has actually passed is advisory and not enforced here.
func (v *ScheduledViewing) Complete(role string) error {
	if err := v.checkTransition(StatusCompleted, role); err != nil {
		return err
	}
	v.Status = StatusCompleted
	return nil
}

// Cancel is the universal escape from every non-terminal status. It clears
// any outstanding proposal; cancellation is final.
func (v *ScheduledViewing) Cancel(reason, role string) error {
	if err := v.checkTransition(StatusCancelled, role); err != nil {
		return err
	}
	v.ProposedDates = nil
	v.ProposedTimes = nil
	v.CancelReason = reason
	v.Status = StatusCancelled
	return nil
}

func contains(list []string, want string) bool {
	for _, item := range list {
		if item == want {
			return true
		}
	}
	return false
}
