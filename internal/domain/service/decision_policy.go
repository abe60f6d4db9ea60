package service

import (
	"context"

	"unveil/internal/domain/entity"
)

// DecisionPolicy decides how a business answers a creator proposal.
type DecisionPolicy interface {
	// Decide returns the verdict for a proposal targeting offer.
	Decide(ctx context.Context, proposal *entity.CreatorProposal, offer *entity.Offer) (entity.Decision, error)
}
