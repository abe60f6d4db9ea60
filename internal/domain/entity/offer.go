// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Incentive is what a business gives the creator in exchange for content.
type Incentive struct {
	Type        string   `json:"type" yaml:"type"`                       // e.g. "Cena", "Hospedaje", "Descuento"
	Description string   `json:"description" yaml:"description"`         // e.g. "Cena gratuita para 2 personas"
	Value       *float64 `json:"value,omitempty" yaml:"value,omitempty"` // Optional monetary value
}

// AgeRange is an inclusive age interval requested by an offer.
type AgeRange struct {
	Min int `json:"min" yaml:"min" validate:"gte=0"`
	Max int `json:"max" yaml:"max" validate:"gtefield=Min"`
}

// Offer is an opportunity published by a business. Offers are read-only once loaded into the catalog.
type Offer struct {
	ID           string `json:"id" yaml:"id" validate:"required"`
	BusinessID   string `json:"business_id" yaml:"businessId" validate:"required"` // Owner reference, shared by every offer of the business
	BusinessName string `json:"business_name" yaml:"businessName"`
	Title        string `json:"title" yaml:"title" validate:"required"`
	Description  string `json:"description" yaml:"description"`

	// Empty means no category restriction
	Category      string    `json:"category,omitempty" yaml:"category,omitempty"`
	// Empty means no level restriction
	RequiredLevel Level     `json:"required_level,omitempty" yaml:"requiredLevel,omitempty" validate:"omitempty,oneof=Principiante Intermedio Avanzado"`
	Incentive     Incentive `json:"incentive" yaml:"incentive"`

	CreatedAt time.Time  `json:"created_at" yaml:"createdAt"`
	ExpiresAt *time.Time `json:"expires_at,omitempty" yaml:"expiresAt,omitempty"`
	Deadline  *time.Time `json:"deadline,omitempty" yaml:"deadline,omitempty"`

	Country           string    `json:"country,omitempty" yaml:"country,omitempty"`
	City              string    `json:"city,omitempty" yaml:"city,omitempty"`
	IsRemote          bool      `json:"is_remote" yaml:"isRemote"`
	MinFollowers      int       `json:"min_followers,omitempty" yaml:"minFollowers,omitempty" validate:"gte=0"`
	PlatformsRequired []string  `json:"platforms_required,omitempty" yaml:"platformsRequired,omitempty"`
	ContentType       []string  `json:"content_type,omitempty" yaml:"contentType,omitempty"`
	GenderRequired    string    `json:"gender_required,omitempty" yaml:"genderRequired,omitempty" validate:"omitempty,oneof=male female any"`
	AgeRange          *AgeRange `json:"age_range,omitempty" yaml:"ageRange,omitempty"`
	LanguagesRequired []string  `json:"languages_required,omitempty" yaml:"languagesRequired,omitempty"`
	CustomTags        []string  `json:"custom_tags,omitempty" yaml:"customTags,omitempty"`

	// Tri-state flags: nil means the business did not say.
	MustAttendEvent *bool `json:"must_attend_event,omitempty" yaml:"mustAttendEvent,omitempty"`
	Exclusive       *bool `json:"exclusive,omitempty" yaml:"exclusive,omitempty"`
}

// RequiresAttendance reports whether the offer explicitly requires the creator to attend in person.
func (o *Offer) RequiresAttendance() bool {
	return o.MustAttendEvent != nil && *o.MustAttendEvent
}
