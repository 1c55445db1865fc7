package amendment

import (
	"fmt"
	"strings"
	"time"

	"schooladmin/internal/domain"
	"schooladmin/internal/domain/models"
)

type Action string

const (
	CancelBooking Action = "CANCEL_BOOKING"
	ChangeDate    Action = "CHANGE_DATE"
	CarBreakdown  Action = "CAR_BREAKDOWN"
	CarHoliday    Action = "CAR_HOLIDAY"
	ReleaseHold   Action = "RELEASE_HOLD"
)

// AllActions lists the actions in their canonical order.
var AllActions = []Action{CancelBooking, ChangeDate, CarBreakdown, CarHoliday, ReleaseHold}

func (a Action) Valid() bool {
	for _, known := range AllActions {
		if a == known {
			return true
		}
	}
	return false
}

// Request is one amendment against a booking.
//
// TargetDate is used by CHANGE_DATE and RELEASE_HOLD, NewDate by CHANGE_DATE.
// Dates lists the disrupted days for CAR_BREAKDOWN and CAR_HOLIDAY; when
// empty every scheduled date is affected. Hold makes a disruption
// provisional instead of cancelling.
type Request struct {
	Action     Action   `json:"action"`
	TargetDate string   `json:"targetDate,omitempty"`
	NewDate    string   `json:"newDate,omitempty"`
	Dates      []string `json:"dates,omitempty"`
	Reason     string   `json:"reason,omitempty"`
	Hold       bool     `json:"hold,omitempty"`
}

// Outcome is the result of applying a request.
type Outcome struct {
	Dates   []BookingDate     `json:"dates"`
	Changed []BookingDate     `json:"changed"`
	RollUp  models.DateStatus `json:"rollUp"`
}

// LegalActions returns the actions that have at least one valid target
// among the current dates.
func LegalActions(dates []BookingDate) []Action {
	var scheduled, held bool
	for _, d := range dates {
		if d.Status != Scheduled {
			continue
		}
		scheduled = true
		if d.OnHold {
			held = true
		}
	}
	out := []Action{}
	if scheduled {
		out = append(out, CancelBooking, ChangeDate, CarBreakdown, CarHoliday)
	}
	if held {
		out = append(out, ReleaseHold)
	}
	return out
}

// IsLegal reports whether action appears in LegalActions(dates).
func IsLegal(dates []BookingDate, action Action) bool {
	for _, a := range LegalActions(dates) {
		if a == action {
			return true
		}
	}
	return false
}

// Check validates a concrete request against the current dates.
func Check(dates []BookingDate, req Request) error {
	if !req.Action.Valid() {
		return domain.ValidationError{Field: "action", Msg: fmt.Sprintf("unknown action %q", req.Action)}
	}
	if !IsLegal(dates, req.Action) {
		return illegal(req.Action, "no date is in a state this action applies to")
	}

	switch req.Action {
	case ChangeDate:
		target := normalizeDate(req.TargetDate)
		replacement := normalizeDate(req.NewDate)
		if target == "" {
			return domain.ValidationError{Field: "targetDate", Msg: "required"}
		}
		if replacement == "" {
			return domain.ValidationError{Field: "newDate", Msg: "required"}
		}
		idx := indexOf(dates, target)
		if idx < 0 {
			return domain.NotFoundError{Resource: "booking date " + target}
		}
		if dates[idx].Status != Scheduled {
			return illegal(req.Action, fmt.Sprintf("date %s is %s", target, dates[idx].Status))
		}
		for _, d := range dates {
			if d.Status == Scheduled && d.Date == replacement {
				return illegal(req.Action, fmt.Sprintf("date %s is already scheduled", replacement))
			}
		}
	case ReleaseHold:
		target := normalizeDate(req.TargetDate)
		if target == "" {
			return domain.ValidationError{Field: "targetDate", Msg: "required"}
		}
		idx := indexOf(dates, target)
		if idx < 0 {
			return domain.NotFoundError{Resource: "booking date " + target}
		}
		if dates[idx].Status != Scheduled || !dates[idx].OnHold {
			return illegal(req.Action, fmt.Sprintf("date %s is not on hold", target))
		}
	case CarBreakdown, CarHoliday:
		if len(affected(dates, req.Dates)) == 0 {
			return illegal(req.Action, "none of the given dates is scheduled")
		}
	}
	return nil
}

// Apply checks req and returns the transformed dates. The input slice is
// not modified.
func Apply(dates []BookingDate, req Request, now time.Time) (Outcome, error) {
	if err := Check(dates, req); err != nil {
		return Outcome{}, err
	}
	next := make([]BookingDate, len(dates))
	copy(next, dates)
	reason := strings.TrimSpace(req.Reason)

	var changed []int
	switch req.Action {
	case CancelBooking:
		if reason == "" {
			reason = "booking cancelled"
		}
		for i := range next {
			if next[i].Status == Scheduled {
				cancel(&next[i], reason, now)
				changed = append(changed, i)
			}
		}
	case ChangeDate:
		i := indexOf(next, normalizeDate(req.TargetDate))
		next[i].Date = normalizeDate(req.NewDate)
		next[i].OnHold = false
		next[i].HoldReason = ""
		changed = append(changed, i)
	case CarBreakdown, CarHoliday:
		if reason == "" {
			reason = defaultDisruptionReason(req.Action)
		}
		for _, i := range affected(next, req.Dates) {
			if req.Hold {
				next[i].OnHold = true
				next[i].HoldReason = reason
			} else {
				cancel(&next[i], reason, now)
			}
			changed = append(changed, i)
		}
	case ReleaseHold:
		i := indexOf(next, normalizeDate(req.TargetDate))
		next[i].OnHold = false
		next[i].HoldReason = ""
		changed = append(changed, i)
	}

	out := Outcome{Dates: next, RollUp: RollUp(next)}
	for _, i := range changed {
		out.Changed = append(out.Changed, next[i])
	}
	return out, nil
}

func cancel(d *BookingDate, reason string, now time.Time) {
	at := now
	d.Status = Cancelled
	d.CancellationReason = reason
	d.CancelledAt = &at
	d.OnHold = false
	d.HoldReason = ""
}

// affected returns indexes of scheduled dates named in filter, or of every
// scheduled date when filter is empty.
func affected(dates []BookingDate, filter []string) []int {
	want := map[string]bool{}
	for _, f := range filter {
		if f = normalizeDate(f); f != "" {
			want[f] = true
		}
	}
	var out []int
	for i, d := range dates {
		if d.Status != Scheduled {
			continue
		}
		if len(want) == 0 || want[d.Date] {
			out = append(out, i)
		}
	}
	return out
}

// indexOf finds the date to amend. A cancelled or completed session may
// share its date with a rescheduled one; the scheduled one wins.
func indexOf(dates []BookingDate, date string) int {
	found := -1
	for i, d := range dates {
		if d.Date != date {
			continue
		}
		if d.Status == Scheduled {
			return i
		}
		if found < 0 {
			found = i
		}
	}
	return found
}

func defaultDisruptionReason(a Action) string {
	if a == CarHoliday {
		return "car holiday"
	}
	return "car breakdown"
}

func illegal(a Action, msg string) error {
	return domain.ConflictError{Resource: "amendment " + string(a), Msg: msg}
}
