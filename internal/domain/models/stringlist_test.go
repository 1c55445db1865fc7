package models

import (
	"encoding/json"
	"testing"
)

func TestStringListRoundTrip(t *testing.T) {
	stored := `["A","B"]`
	list, err := ParseStringList(stored)
	if err != nil {
		t.Fatalf("ParseStringList: %v", err)
	}
	if len(list) != 2 || list[0] != "A" || list[1] != "B" {
		t.Fatalf("unexpected list %v", list)
	}
	if got := list.Encode(); got != stored {
		t.Fatalf("Encode = %s, want %s", got, stored)
	}
}

func TestStringListDecodesEitherShape(t *testing.T) {
	var fromString, fromArray struct {
		Features StringList `json:"features"`
	}
	if err := json.Unmarshal([]byte(`{"features":"[\"Theory\",\"Road test\"]"}`), &fromString); err != nil {
		t.Fatalf("string form: %v", err)
	}
	if err := json.Unmarshal([]byte(`{"features":["Theory","Road test"]}`), &fromArray); err != nil {
		t.Fatalf("array form: %v", err)
	}
	if len(fromString.Features) != 2 || fromString.Features[1] != "Road test" {
		t.Fatalf("string form decoded to %v", fromString.Features)
	}
	if fromString.Features.Encode() != fromArray.Features.Encode() {
		t.Fatalf("shapes decoded differently: %v vs %v", fromString.Features, fromArray.Features)
	}
}

func TestStringListEdgeCases(t *testing.T) {
	var v struct {
		Features StringList `json:"features"`
	}
	if err := json.Unmarshal([]byte(`{"features":""}`), &v); err != nil || len(v.Features) != 0 {
		t.Fatalf("empty string should decode to empty list, got %v err=%v", v.Features, err)
	}
	if err := json.Unmarshal([]byte(`{"features":"not json"}`), &v); err == nil {
		t.Fatalf("expected error for malformed stored list")
	}
	if got := StringList(nil).Encode(); got != "[]" {
		t.Fatalf("nil list encodes to %s", got)
	}
}
