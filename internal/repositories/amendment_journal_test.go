package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"schooladmin/internal/domain"
)

func newJournal(t *testing.T) (AmendmentJournal, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return AmendmentJournal{DB: db}, mock
}

func TestRecordWritesEntryAndHoldsInOneTransaction(t *testing.T) {
	j, mock := newJournal(t)
	at := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO booking_amendments").
		WithArgs(int64(12), "CAR_BREAKDOWN", "engine", `{"action":"CAR_BREAKDOWN"}`, 2, "active", int64(3), at).
		WillReturnResult(sqlmock.NewResult(41, 1))
	mock.ExpectExec("INSERT INTO booking_date_holds").
		WithArgs(int64(12), int64(100), "engine", at).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM booking_date_holds").
		WithArgs(int64(12), int64(101)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, err := j.Record(context.Background(), AmendmentEntry{
		BookingID:  12,
		Action:     "CAR_BREAKDOWN",
		Reason:     "engine",
		Payload:    `{"action":"CAR_BREAKDOWN"}`,
		Changed:    2,
		DateStatus: "active",
		ActorID:    3,
		CreatedAt:  at,
	}, []HoldChange{
		{SessionID: 100, Held: true, Reason: "engine"},
		{SessionID: 101, Held: false},
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if id != 41 {
		t.Fatalf("expected id 41, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecordRollsBackOnHoldFailure(t *testing.T) {
	j, mock := newJournal(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO booking_amendments").WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO booking_date_holds").WillReturnError(errors.New("deadlock"))
	mock.ExpectRollback()

	_, err := j.Record(context.Background(), AmendmentEntry{BookingID: 1, Action: "CAR_HOLIDAY", Payload: "{}", DateStatus: "active"},
		[]HoldChange{{SessionID: 5, Held: true}})
	if !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestHoldsMapsSessions(t *testing.T) {
	j, mock := newJournal(t)
	mock.ExpectQuery("SELECT session_id").
		WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows([]string{"session_id", "reason"}).
			AddRow(int64(100), "engine").
			AddRow(int64(102), ""))

	holds, err := j.Holds(context.Background(), 12)
	if err != nil {
		t.Fatalf("Holds: %v", err)
	}
	if len(holds) != 2 || holds[100] != "engine" {
		t.Fatalf("unexpected holds %+v", holds)
	}
	if _, ok := holds[102]; !ok {
		t.Fatalf("hold without reason should still be present")
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	j, mock := newJournal(t)
	newer := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	older := newer.Add(-24 * time.Hour)
	mock.ExpectQuery("FROM booking_amendments").
		WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "action", "reason", "payload", "changed_count", "date_status", "actor_id", "created_at"}).
			AddRow(int64(2), int64(12), "RELEASE_HOLD", "", "{}", 1, "active", int64(3), newer).
			AddRow(int64(1), int64(12), "CAR_BREAKDOWN", "engine", "{}", 1, "active", int64(3), older))

	entries, err := j.History(context.Background(), 12)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(entries) != 2 || entries[0].Action != "RELEASE_HOLD" || entries[1].Reason != "engine" {
		t.Fatalf("unexpected history %+v", entries)
	}
}

func TestEnsureSchemaCreatesMissingTables(t *testing.T) {
	j, mock := newJournal(t)
	mock.ExpectQuery("information_schema.tables").
		WithArgs(amendmentsTable).
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow(amendmentsTable))
	mock.ExpectQuery("information_schema.tables").
		WithArgs(holdsTable).
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS booking_date_holds").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := j.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDisabledJournal(t *testing.T) {
	j := AmendmentJournal{}
	if j.Enabled() {
		t.Skip("a shared journal connection is open")
	}
	holds, err := j.Holds(context.Background(), 1)
	if err != nil || len(holds) != 0 {
		t.Fatalf("disabled journal should report no holds, got %v %v", holds, err)
	}
	if _, err := j.Record(context.Background(), AmendmentEntry{}, nil); !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
}
