// Package amendment holds the booking date rules: which amendment actions
// are legal for a booking's current dates, how each action transforms
// them, and the roll-up status derived from them.
package amendment

import (
	"sort"
	"strings"
	"time"

	"schooladmin/internal/domain/models"
)

type DateState string

const (
	Scheduled DateState = "scheduled"
	Completed DateState = "completed"
	Cancelled DateState = "cancelled"
)

// BookingDate is one scheduled day of a booking as seen by the rules.
type BookingDate struct {
	SessionID          int64      `json:"sessionId"`
	Date               string     `json:"date"`
	Status             DateState  `json:"status"`
	OnHold             bool       `json:"onHold"`
	HoldReason         string     `json:"holdReason,omitempty"`
	CancellationReason string     `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
}

// StateOf maps a session status onto the three date states.
func StateOf(s models.SessionStatus) DateState {
	switch s {
	case models.BookingCompleted:
		return Completed
	case models.BookingCancelled, models.BookingNoShow:
		return Cancelled
	default:
		return Scheduled
	}
}

// DatesFromSessions builds the date list in session-date order. holds maps a
// session id to its hold reason for sessions currently on hold.
func DatesFromSessions(sessions []models.BookingSession, holds map[int64]string) []BookingDate {
	out := make([]BookingDate, 0, len(sessions))
	for _, s := range sessions {
		d := BookingDate{
			SessionID:          s.ID,
			Date:               normalizeDate(s.SessionDate),
			Status:             StateOf(s.Status),
			CancellationReason: s.CancellationReason,
			CancelledAt:        s.CancelledAt,
		}
		if reason, ok := holds[s.ID]; ok && d.Status == Scheduled {
			d.OnHold = true
			d.HoldReason = reason
		}
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// RollUp derives the booking's date status. Any scheduled date keeps the
// booking active; without one, uniform dates decide and a mix is partial.
func RollUp(dates []BookingDate) models.DateStatus {
	if len(dates) == 0 {
		return models.DateStatusActive
	}
	var completed, cancelled int
	for _, d := range dates {
		switch d.Status {
		case Scheduled:
			return models.DateStatusActive
		case Completed:
			completed++
		case Cancelled:
			cancelled++
		}
	}
	switch {
	case completed == len(dates):
		return models.DateStatusCompleted
	case cancelled == len(dates):
		return models.DateStatusCancelled
	default:
		return models.DateStatusPartial
	}
}

// LifecycleStatus maps a terminal roll-up onto the booking lifecycle and
// keeps the current lifecycle status otherwise.
func LifecycleStatus(rollup models.DateStatus, current models.BookingStatus) models.BookingStatus {
	switch rollup {
	case models.DateStatusCompleted:
		return models.BookingCompleted
	case models.DateStatusCancelled:
		return models.BookingCancelled
	default:
		return current
	}
}

// StatusAgrees reports whether status may be stored next to rollup. A
// terminal roll-up fixes the status; otherwise COMPLETED and CANCELLED are
// ruled out.
func StatusAgrees(rollup models.DateStatus, status models.BookingStatus) bool {
	switch rollup {
	case models.DateStatusCompleted, models.DateStatusCancelled:
		return status == LifecycleStatus(rollup, status)
	default:
		return status != models.BookingCompleted && status != models.BookingCancelled
	}
}

func normalizeDate(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 10 {
		return v[:10]
	}
	return v
}
