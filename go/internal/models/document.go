package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamDocument represents a compliance document attached to exactly one
// player or staff member. Documents are never physically deleted, only
// status-transitioned.
type TeamDocument struct {
	ID        uuid.UUID      `json:"id"`
	Type      string         `json:"type"`
	Status    DocumentStatus `json:"status"`
	IssuedAt  time.Time      `json:"issued_at"`
	ExpiresAt *time.Time     `json:"expires_at,omitempty"`
	Number    *string        `json:"number,omitempty"`
}

// DocumentStatus represents where a document sits in its compliance lifecycle
type DocumentStatus string

const (
	DocumentPending            DocumentStatus = "PENDING"
	DocumentAwaitingValidation DocumentStatus = "AWAITING_VALIDATION"
	DocumentValid              DocumentStatus = "VALID"
	DocumentExpired            DocumentStatus = "EXPIRED"
)

// OwnerKind tags which collection a document's owner lives in
type OwnerKind string

const (
	OwnerPlayer OwnerKind = "PLAYER"
	OwnerStaff  OwnerKind = "STAFF"
)
