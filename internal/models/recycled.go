package models

import (
	"encoding/json"
	"time"
)

// RecycledKind tags which live collection a recycled item came from.
type RecycledKind string

const (
	RecycledBook        RecycledKind = "book"
	RecycledCategory    RecycledKind = "category"
	RecycledAccount     RecycledKind = "account"
	RecycledTransaction RecycledKind = "transaction"
)

// RecycledItem is a soft-deleted record. The payload is the JSON encoding
// of the original entity, so restore can reconstruct it with its original id.
type RecycledItem struct {
	Kind       RecycledKind    `json:"kind"`
	OriginalID string          `json:"originalId"`
	BookID     string          `json:"bookId"`
	Payload    json.RawMessage `json:"payload"`
	DeletedAt  time.Time       `json:"deletedAt"`
}
