// Package policy contains the decision policies that answer creator proposals on behalf of businesses.
package policy

import (
	"context"
	"sync"

	"unveil/internal/domain/entity"
	"unveil/internal/domain/service"
)

// AlternatingPolicy accepts and rejects proposals in turn, regardless of who sent them or which offer they target.
type AlternatingPolicy struct {
	mu         sync.Mutex
	nextAccept bool
}

// NewAlternatingPolicy creates the policy; acceptFirst is the verdict of the first call.
func NewAlternatingPolicy(acceptFirst bool) *AlternatingPolicy {
	return &AlternatingPolicy{nextAccept: acceptFirst}
}

var _ service.DecisionPolicy = (*AlternatingPolicy)(nil)

// Decide returns the current verdict and flips it for the next call.
func (p *AlternatingPolicy) Decide(ctx context.Context, proposal *entity.CreatorProposal, offer *entity.Offer) (entity.Decision, error) {
	if err := ctx.Err(); err != nil {
		return entity.Decision{}, err
	}

	p.mu.Lock()
	accepted := p.nextAccept
	p.nextAccept = !p.nextAccept
	p.mu.Unlock()

	return entity.Decision{Accepted: accepted, Reason: "alternating"}, nil
}
