package config

import (
	"strings"
	"testing"
)

func TestJournalDSNForcesParseTime(t *testing.T) {
	got, err := JournalDSN("app:secret@tcp(db:3306)/schooladmin")
	if err != nil {
		t.Fatalf("JournalDSN: %v", err)
	}
	if !strings.Contains(got, "parseTime=true") {
		t.Fatalf("parseTime missing from %q", got)
	}
	if !strings.HasPrefix(got, "app:secret@tcp(db:3306)/schooladmin") {
		t.Fatalf("connection target changed: %q", got)
	}

	got, err = JournalDSN("app:secret@tcp(db:3306)/schooladmin?parseTime=false&charset=utf8mb4")
	if err != nil {
		t.Fatalf("JournalDSN: %v", err)
	}
	if !strings.Contains(got, "parseTime=true") || !strings.Contains(got, "charset=utf8mb4") {
		t.Fatalf("unexpected dsn %q", got)
	}
}

func TestJournalDSNRejectsGarbage(t *testing.T) {
	if _, err := JournalDSN("not a dsn"); err == nil {
		t.Fatalf("expected parse error")
	}
}
