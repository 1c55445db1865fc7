package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	intconfig "schooladmin/internal/config"
	intdb "schooladmin/internal/db"
	"schooladmin/internal/domain"
)

const (
	amendmentsTable = "booking_amendments"
	holdsTable      = "booking_date_holds"
)

// AmendmentEntry is one journaled amendment.
type AmendmentEntry struct {
	ID         int64     `json:"id"`
	BookingID  int64     `json:"bookingId"`
	Action     string    `json:"action"`
	Reason     string    `json:"reason,omitempty"`
	Payload    string    `json:"payload"`
	Changed    int       `json:"changed"`
	DateStatus string    `json:"dateStatus"`
	ActorID    int64     `json:"actorId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// HoldChange places (Held) or clears a provisional hold on one session.
type HoldChange struct {
	SessionID int64
	Held      bool
	Reason    string
}

// AmendmentJournal keeps the local audit trail of amendments and the
// provisional holds, which the backend has no field for.
type AmendmentJournal struct {
	DB *sql.DB
}

func (j AmendmentJournal) db() *sql.DB {
	if j.DB != nil {
		return j.DB
	}
	return intconfig.DB
}

// Enabled reports whether a journal database is configured.
func (j AmendmentJournal) Enabled() bool {
	return j.db() != nil
}

// EnsureSchema creates the journal tables that do not exist yet.
func (j AmendmentJournal) EnsureSchema(ctx context.Context) error {
	db := j.db()
	if db == nil {
		return nil
	}
	ddl := map[string]string{
		amendmentsTable: `CREATE TABLE IF NOT EXISTS booking_amendments (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			booking_id BIGINT NOT NULL,
			action VARCHAR(32) NOT NULL,
			reason VARCHAR(255) NULL,
			payload TEXT NOT NULL,
			changed_count INT NOT NULL DEFAULT 0,
			date_status VARCHAR(16) NOT NULL,
			actor_id BIGINT NOT NULL,
			created_at DATETIME NOT NULL,
			INDEX idx_booking_amendments_booking (booking_id)
		)`,
		holdsTable: `CREATE TABLE IF NOT EXISTS booking_date_holds (
			booking_id BIGINT NOT NULL,
			session_id BIGINT NOT NULL,
			reason VARCHAR(255) NULL,
			created_at DATETIME NOT NULL,
			PRIMARY KEY (booking_id, session_id)
		)`,
	}
	for _, table := range []string{amendmentsTable, holdsTable} {
		if intdb.HasTable(ctx, db, table) {
			continue
		}
		if _, err := db.ExecContext(ctx, ddl[table]); err != nil {
			return fmt.Errorf("create %s: %w", table, err)
		}
	}
	return nil
}

// Record writes the entry and its hold changes in one transaction and
// returns the entry id.
func (j AmendmentJournal) Record(ctx context.Context, entry AmendmentEntry, holds []HoldChange) (int64, error) {
	db := j.db()
	if db == nil {
		return 0, domain.InternalError{Msg: "amendment journal not configured"}
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, domain.InternalError{Msg: "journal unavailable", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO booking_amendments
			(booking_id, action, reason, payload, changed_count, date_status, actor_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.BookingID, entry.Action, intdb.NullIfEmpty(entry.Reason), entry.Payload,
		entry.Changed, entry.DateStatus, entry.ActorID, entry.CreatedAt)
	if err != nil {
		return 0, domain.InternalError{Msg: "journal write failed", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.InternalError{Msg: "journal write failed", Err: err}
	}

	for _, h := range holds {
		if h.Held {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO booking_date_holds (booking_id, session_id, reason, created_at)
				VALUES (?, ?, ?, ?)
				ON DUPLICATE KEY UPDATE reason = VALUES(reason)
			`, entry.BookingID, h.SessionID, intdb.NullIfEmpty(h.Reason), entry.CreatedAt)
		} else {
			_, err = tx.ExecContext(ctx,
				`DELETE FROM booking_date_holds WHERE booking_id = ? AND session_id = ?`,
				entry.BookingID, h.SessionID)
		}
		if err != nil {
			return 0, domain.InternalError{Msg: "hold write failed", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, domain.InternalError{Msg: "journal commit failed", Err: err}
	}
	return id, nil
}

// Holds maps session id to hold reason for the booking's held sessions.
func (j AmendmentJournal) Holds(ctx context.Context, bookingID int64) (map[int64]string, error) {
	out := map[int64]string{}
	db := j.db()
	if db == nil {
		return out, nil
	}
	rows, err := db.QueryContext(ctx,
		`SELECT session_id, COALESCE(reason, '') FROM booking_date_holds WHERE booking_id = ?`, bookingID)
	if err != nil {
		return nil, domain.InternalError{Msg: "hold lookup failed", Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		var sessionID int64
		var reason string
		if err := rows.Scan(&sessionID, &reason); err != nil {
			return nil, domain.InternalError{Msg: "hold lookup failed", Err: err}
		}
		out[sessionID] = reason
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "hold lookup failed", Err: err}
	}
	return out, nil
}

// History lists the booking's amendments, newest first.
func (j AmendmentJournal) History(ctx context.Context, bookingID int64) ([]AmendmentEntry, error) {
	out := []AmendmentEntry{}
	db := j.db()
	if db == nil {
		return out, nil
	}
	rows, err := db.QueryContext(ctx, `
		SELECT id, booking_id, action, COALESCE(reason, ''), payload, changed_count, date_status, actor_id, created_at
		FROM booking_amendments
		WHERE booking_id = ?
		ORDER BY created_at DESC, id DESC
	`, bookingID)
	if err != nil {
		return nil, domain.InternalError{Msg: "history lookup failed", Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		var e AmendmentEntry
		if err := rows.Scan(&e.ID, &e.BookingID, &e.Action, &e.Reason, &e.Payload,
			&e.Changed, &e.DateStatus, &e.ActorID, &e.CreatedAt); err != nil {
			return nil, domain.InternalError{Msg: "history lookup failed", Err: err}
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "history lookup failed", Err: err}
	}
	return out, nil
}
