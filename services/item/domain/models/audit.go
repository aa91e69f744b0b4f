package models

import "time"

// Audit carries the record-keeping fields shared by every persisted entity.
// It is embedded by value in concrete records — composition, not a base class.
//
// CreatedBy/LastChangedBy hold the acting principal's identifier and are nil
// for anonymous writes. These fields never cross the DTO boundary.
type Audit struct {
	IsActive            bool
	IsArchived          bool
	CreateDateTime      time.Time
	CreatedBy           *string
	LastChangedDateTime time.Time
	LastChangedBy       *string
	InternalComment     *string
}

// NewAudit stamps creation-time audit fields: active, not archived, both
// timestamps set to now (UTC), both principal fields set to actor (nil when
// anonymous).
func NewAudit(actor *string) Audit {
	now := time.Now().UTC()
	return Audit{
		IsActive:            true,
		IsArchived:          false,
		CreateDateTime:      now,
		CreatedBy:           actor,
		LastChangedDateTime: now,
		LastChangedBy:       actor,
	}
}

// Touch records a mutation by actor: LastChangedDateTime moves to now,
// LastChangedBy to actor. Creation fields are immutable and never touched.
func (a *Audit) Touch(actor *string) {
	a.LastChangedDateTime = time.Now().UTC()
	a.LastChangedBy = actor
}
