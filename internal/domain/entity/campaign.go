// Package entity contains the core business objects of the project.
package entity

import "time"

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	// CampaignStatusPending is a proposal waiting for the business.
	CampaignStatusPending CampaignStatus = "pending"
	// CampaignStatusActive is an accepted proposal.
	CampaignStatusActive CampaignStatus = "active"
	// CampaignStatusRejected is a proposal the business turned down.
	CampaignStatusRejected CampaignStatus = "rejected"
	// CampaignStatusCompleted is a campaign that finished.
	CampaignStatusCompleted CampaignStatus = "completed"
	// CampaignStatusCanceled is a campaign that was called off.
	CampaignStatusCanceled CampaignStatus = "canceled"
)

var campaignStatusLabels = map[CampaignStatus]string{
	CampaignStatusPending:   "Pendiente",
	CampaignStatusActive:    "Activa",
	CampaignStatusRejected:  "Rechazada",
	CampaignStatusCompleted: "Completada",
	CampaignStatusCanceled:  "Cancelada",
}

// String returns the string representation of the CampaignStatus.
func (s CampaignStatus) String() string {
	return string(s)
}

// IsValid checks if the CampaignStatus is a valid value.
func (s CampaignStatus) IsValid() bool {
	_, ok := campaignStatusLabels[s]

	return ok
}

// Label returns the display text of the status.
func (s CampaignStatus) Label() string {
	if label, ok := campaignStatusLabels[s]; ok {
		return label
	}

	return string(s)
}

// EndsRelationship reports whether the status closes the relationship with the business.
// Rejected campaigns do not: the creator still counts as having applied.
func (s CampaignStatus) EndsRelationship() bool {
	return s == CampaignStatusCompleted || s == CampaignStatusCanceled
}

// CanTransitionTo reports whether a campaign in status s may move to next.
func (s CampaignStatus) CanTransitionTo(next CampaignStatus) bool {
	switch s {
	case CampaignStatusPending:
		return next == CampaignStatusActive || next == CampaignStatusRejected ||
			next == CampaignStatusCompleted || next == CampaignStatusCanceled
	case CampaignStatusActive:
		return next == CampaignStatusCompleted || next == CampaignStatusCanceled
	default:
		return false
	}
}

// Campaign records the outcome of a creator's proposal to a business.
type Campaign struct {
	ID         string         `json:"id"`          // campaign_<unix millis>_<random suffix>
	BusinessID string         `json:"business_id"` // Business owning the offer the proposal targeted
	UserID     string         `json:"user_id"`     // Creator who sent the proposal
	OfferID    string         `json:"offer_id"`    // Offer the proposal targeted
	Status     CampaignStatus `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	ExpiresAt  time.Time      `json:"expires_at"`
}
