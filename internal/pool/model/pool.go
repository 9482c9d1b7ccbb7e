// Package model defines domain models for gift pools.
package model

import "time"

// Status describes the lifecycle stage of a pool.
type Status string

var (
	// StatusOngoing marks a pool that still accepts contributions.
	StatusOngoing Status = "ongoing"
	// StatusReadyToFinalize marks an on-chain pool whose threshold was met and
	// which waits for the creator to finalize it.
	StatusReadyToFinalize Status = "ready_to_finalize"
	// StatusFinalized marks a pool whose total was (or is being) revealed.
	StatusFinalized Status = "finalized"
	// StatusCancelled marks a pool closed by its creator before finalization.
	StatusCancelled Status = "cancelled"
)

var statusRank = map[Status]int{
	StatusOngoing:         0,
	StatusReadyToFinalize: 1,
	StatusFinalized:       2,
	StatusCancelled:       2,
}

// CanTransition reports whether moving from s to next keeps the status order monotonic.
// Finalized and cancelled are terminal.
func (s Status) CanTransition(next Status) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	if s == StatusFinalized || s == StatusCancelled {
		return false
	}
	return to > from
}

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return s == StatusFinalized || s == StatusCancelled
}

// AggregateState tracks the revealed total of a finalized pool.
type AggregateState string

var (
	// AggregateNone means no aggregation was attempted yet.
	AggregateNone AggregateState = ""
	// AggregateResolved means TotalAmount holds the revealed total.
	AggregateResolved AggregateState = "resolved"
	// AggregatePending means the total is not available yet and must be re-polled.
	AggregatePending AggregateState = "pending"
	// AggregateExpired means the total never became available within the deadline.
	AggregateExpired AggregateState = "expired"
)

// RedactedAmount replaces contribution amounts that must never leave the confidential backend.
const RedactedAmount = "[ENCRYPTED]"

// Contributor is a single participant of a pool.
type Contributor struct {
	Address            string    `json:"address"`
	Amount             string    `json:"amount"`
	CiphertextHandle   string    `json:"ciphertextHandle,omitempty"`
	JoinedAt           time.Time `json:"joinedAt"`
	GiftSuggestion     string    `json:"giftSuggestion,omitempty"`
	ContributionTxHash string    `json:"contributionTxHash,omitempty"`
}

// Handle returns the value handed to the privacy strategy for aggregation:
// the ciphertext handle when the amount is protected, the plain amount otherwise.
func (c Contributor) Handle() string {
	if c.CiphertextHandle != "" {
		return c.CiphertextHandle
	}
	return c.Amount
}

// Pool is the aggregate root of a gift pool.
type Pool struct {
	ID                    string         `json:"id"`
	Name                  string         `json:"name"`
	CreatorAddress        string         `json:"creatorAddress"`
	RecipientAddress      string         `json:"recipientAddress"`
	GiftSuggestions       []string       `json:"giftSuggestions"`
	FinalizationThreshold int            `json:"finalizationThreshold"`
	Contributors          []Contributor  `json:"contributors"`
	Status                Status         `json:"status"`
	PrivacyMode           PrivacyMode    `json:"privacyMode"`
	TotalAmount           *string        `json:"totalAmount,omitempty"`
	AggregateState        AggregateState `json:"aggregateState,omitempty"`
	AggregateTicket       string         `json:"aggregateTicket,omitempty"`
	AggregateSkipped      int            `json:"aggregateSkipped,omitempty"`
	AggregatePolls        int            `json:"aggregatePolls,omitempty"`
	OnChain               bool           `json:"onChain"`
	CreationTxHash        string         `json:"creationTxHash,omitempty"`
	FinalizationTxHash    string         `json:"finalizationTxHash,omitempty"`
	BlockNumber           uint64         `json:"blockNumber,omitempty"`
	CreatedAt             time.Time      `json:"createdAt"`
	FinalizedAt           *time.Time     `json:"finalizedAt,omitempty"`
}

// HasContributor reports whether addr (in any letter case) already joined the pool.
func (p *Pool) HasContributor(addr string) bool {
	addr = NormalizeAddress(addr)
	for _, c := range p.Contributors {
		if c.Address == addr {
			return true
		}
	}
	return false
}

// IsCreator reports whether addr is the pool creator.
func (p *Pool) IsCreator(addr string) bool {
	return NormalizeAddress(addr) == p.CreatorAddress
}

// ThresholdMet reports whether enough contributors joined to finalize.
func (p *Pool) ThresholdMet() bool {
	return len(p.Contributors) >= p.FinalizationThreshold
}

// Handles lists the aggregation inputs of all contributors in join order.
func (p *Pool) Handles() []string {
	handles := make([]string, 0, len(p.Contributors))
	for _, c := range p.Contributors {
		handles = append(handles, c.Handle())
	}
	return handles
}

// SetTotal records the revealed total. It is a no-op once a total is present.
func (p *Pool) SetTotal(total string) bool {
	if p.TotalAmount != nil {
		return false
	}
	p.TotalAmount = &total
	p.AggregateState = AggregateResolved
	p.AggregateTicket = ""
	return true
}

// Clone returns a deep copy of the pool.
func (p Pool) Clone() Pool {
	out := p
	out.GiftSuggestions = append([]string(nil), p.GiftSuggestions...)
	out.Contributors = append([]Contributor(nil), p.Contributors...)
	if p.TotalAmount != nil {
		total := *p.TotalAmount
		out.TotalAmount = &total
	}
	if p.FinalizedAt != nil {
		at := *p.FinalizedAt
		out.FinalizedAt = &at
	}
	return out
}
