package policy

import (
	"context"
	"fmt"

	"unveil/internal/domain/entity"
	domainerrors "unveil/internal/domain/errors"
	"unveil/internal/domain/scoring"
	"unveil/internal/domain/service"
)

// CompatibilityPolicy accepts a proposal when the creator's score for the offer reaches a threshold.
type CompatibilityPolicy struct {
	threshold float64
}

// NewCompatibilityPolicy creates the policy with the minimum accepted score.
func NewCompatibilityPolicy(threshold float64) *CompatibilityPolicy {
	return &CompatibilityPolicy{threshold: threshold}
}

var _ service.DecisionPolicy = (*CompatibilityPolicy)(nil)

// Decide scores the proposal's creator snapshot against offer. The proposal must carry the creator profile.
func (p *CompatibilityPolicy) Decide(ctx context.Context, proposal *entity.CreatorProposal, offer *entity.Offer) (entity.Decision, error) {
	if err := ctx.Err(); err != nil {
		return entity.Decision{}, err
	}
	if proposal.Creator == nil {
		return entity.Decision{}, domainerrors.ErrInvalidProposal.WithDetails("creator profile is required to evaluate compatibility")
	}

	score := scoring.Score(offer, proposal.Creator)

	return entity.Decision{
		Accepted: score >= p.threshold,
		Reason:   fmt.Sprintf("compatibility %.2f (threshold %.2f)", score, p.threshold),
	}, nil
}
