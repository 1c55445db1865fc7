package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// the backend's Float scalars reject quoted numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// Timestamps are the server-assigned audit fields shared by every entity.
type Timestamps struct {
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// Deleted is the minimal shape returned by a delete mutation.
type Deleted struct {
	ID        int64      `json:"id"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
