package usecase

import (
	"context"
	"time"

	"unveil/internal/domain/entity"
)

// SubmitProposalInput represents a creator proposal for an offer
type SubmitProposalInput struct {
	OfferID       string       `json:"offer_id"`
	CreatorID     string       `json:"creator_id"`
	ProposedDates []time.Time  `json:"proposed_dates"`
	Message       string       `json:"message,omitempty"`
	Creator       *entity.User `json:"-"` // Optional profile snapshot for compatibility-based decisions
}

// ProposalUsecase defines the interface for the proposal flow
type ProposalUsecase interface {
	// SubmitProposal waits for the simulated business answer, records the resulting campaign and returns the answer.
	// Canceling ctx during the wait aborts without recording anything.
	SubmitProposal(ctx context.Context, input *SubmitProposalInput) (*entity.BusinessResponse, error)
}
