package model

import (
	"time"

	"github.com/goodnatureofminers/giftpool-backend/pkg/safe"
)

// EventKind names a lifecycle transition recorded in the pool journal.
type EventKind string

var (
	EventCreated           EventKind = "created"
	EventJoined            EventKind = "joined"
	EventReadyToFinalize   EventKind = "ready_to_finalize"
	EventFinalized         EventKind = "finalized"
	EventAggregateResolved EventKind = "aggregate_resolved"
	EventAggregateExpired  EventKind = "aggregate_expired"
	EventCancelled         EventKind = "cancelled"
)

// Event is a journal row describing a single lifecycle step.
// It never carries an individual contribution amount; Total is set only for
// events emitted after the aggregate was revealed.
type Event struct {
	PoolID           string      `json:"poolId"`
	Kind             EventKind   `json:"kind"`
	Status           Status      `json:"status"`
	PrivacyMode      PrivacyMode `json:"privacyMode"`
	Actor            string      `json:"actor,omitempty"`
	ContributorCount uint32      `json:"contributorCount"`
	Total            string      `json:"total,omitempty"`
	TxHash           string      `json:"txHash,omitempty"`
	OccurredAt       time.Time   `json:"occurredAt"`
}

// NewEvent builds an event snapshot from the pool state.
func NewEvent(p *Pool, kind EventKind, actor, txHash string, at time.Time) Event {
	e := Event{
		PoolID:      p.ID,
		Kind:        kind,
		Status:      p.Status,
		PrivacyMode: p.PrivacyMode,
		Actor:       actor,
		TxHash:      txHash,
		OccurredAt:  at,
	}
	if n, err := safe.Uint32(len(p.Contributors)); err == nil {
		e.ContributorCount = n
	}
	if p.TotalAmount != nil {
		e.Total = *p.TotalAmount
	}
	return e
}
