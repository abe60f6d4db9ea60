// Package entity contains the core business objects of the project.
package entity

import "time"

// CreatorProposal is a creator's request to take part in an offer on one of the proposed dates.
type CreatorProposal struct {
	OfferID       string      `json:"offer_id" validate:"required"`
	CreatorID     string      `json:"creator_id" validate:"required"`
	ProposedDates []time.Time `json:"proposed_dates" validate:"min=1,max=2,dive,required"`
	Message       string      `json:"message,omitempty" validate:"max=500"`

	// Creator is an optional snapshot of the creator profile, used by compatibility-based decisions.
	Creator *User `json:"-"`
}

// Decision is a business verdict on a proposal.
type Decision struct {
	Accepted bool
	Reason   string
}

// BusinessResponse is the answer returned to the creator after a proposal.
type BusinessResponse struct {
	OfferID      string     `json:"offer_id"`
	CreatorID    string     `json:"creator_id"`
	Accepted     bool       `json:"accepted"`
	SelectedDate *time.Time `json:"selected_date,omitempty"`
	Message      string     `json:"message"`
	Campaign     *Campaign  `json:"campaign"`
}
