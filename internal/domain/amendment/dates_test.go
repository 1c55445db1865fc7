package amendment

import (
	"testing"

	"schooladmin/internal/domain/models"
)

func datesOf(states ...DateState) []BookingDate {
	out := make([]BookingDate, 0, len(states))
	for i, s := range states {
		out = append(out, BookingDate{SessionID: int64(i + 1), Date: "2025-03-0" + string(rune('1'+i)), Status: s})
	}
	return out
}

func TestRollUp(t *testing.T) {
	cases := []struct {
		name  string
		dates []BookingDate
		want  models.DateStatus
	}{
		{"all completed", datesOf(Completed, Completed), models.DateStatusCompleted},
		{"all cancelled", datesOf(Cancelled, Cancelled), models.DateStatusCancelled},
		{"completed and cancelled", datesOf(Completed, Cancelled), models.DateStatusPartial},
		{"scheduled and completed", datesOf(Scheduled, Completed), models.DateStatusActive},
		{"all scheduled", datesOf(Scheduled, Scheduled), models.DateStatusActive},
		{"three-way mix", datesOf(Scheduled, Completed, Cancelled), models.DateStatusActive},
		{"empty", nil, models.DateStatusActive},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RollUp(tc.dates); got != tc.want {
				t.Fatalf("RollUp = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestDatesFromSessionsMapsStatusesAndHolds(t *testing.T) {
	sessions := []models.BookingSession{
		{ID: 3, SessionDate: "2025-03-03T00:00:00.000Z", Status: models.BookingNoShow},
		{ID: 1, SessionDate: "2025-03-01", Status: models.BookingCompleted},
		{ID: 2, SessionDate: "2025-03-02", Status: models.BookingConfirmed},
		{ID: 4, SessionDate: "2025-03-04", Status: models.BookingPending},
	}
	dates := DatesFromSessions(sessions, map[int64]string{2: "car breakdown", 1: "ignored"})

	if len(dates) != 4 {
		t.Fatalf("expected 4 dates, got %d", len(dates))
	}
	if dates[0].Date != "2025-03-01" || dates[0].Status != Completed || dates[0].OnHold {
		t.Fatalf("unexpected first date: %+v", dates[0])
	}
	if !dates[1].OnHold || dates[1].HoldReason != "car breakdown" {
		t.Fatalf("session 2 should be on hold: %+v", dates[1])
	}
	if dates[2].Date != "2025-03-03" || dates[2].Status != Cancelled {
		t.Fatalf("no-show should map to cancelled: %+v", dates[2])
	}
	if dates[3].Status != Scheduled {
		t.Fatalf("pending should map to scheduled: %+v", dates[3])
	}
}

func TestLifecycleStatus(t *testing.T) {
	if got := LifecycleStatus(models.DateStatusCompleted, models.BookingConfirmed); got != models.BookingCompleted {
		t.Fatalf("got %s", got)
	}
	if got := LifecycleStatus(models.DateStatusCancelled, models.BookingConfirmed); got != models.BookingCancelled {
		t.Fatalf("got %s", got)
	}
	if got := LifecycleStatus(models.DateStatusPartial, models.BookingConfirmed); got != models.BookingConfirmed {
		t.Fatalf("got %s", got)
	}
}

func TestStatusAgrees(t *testing.T) {
	cases := []struct {
		rollup models.DateStatus
		status models.BookingStatus
		want   bool
	}{
		{models.DateStatusActive, models.BookingConfirmed, true},
		{models.DateStatusActive, models.BookingCompleted, false},
		{models.DateStatusPartial, models.BookingCancelled, false},
		{models.DateStatusCompleted, models.BookingCompleted, true},
		{models.DateStatusCompleted, models.BookingConfirmed, false},
		{models.DateStatusCancelled, models.BookingPending, false},
		{models.DateStatusCancelled, models.BookingCancelled, true},
	}
	for _, tc := range cases {
		if got := StatusAgrees(tc.rollup, tc.status); got != tc.want {
			t.Fatalf("StatusAgrees(%s, %s) = %v, want %v", tc.rollup, tc.status, got, tc.want)
		}
	}
}
