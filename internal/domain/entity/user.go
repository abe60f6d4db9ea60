// Package entity contains the core business objects of the project.
package entity

// SocialMediaProfile is a social network account linked by the creator.
type SocialMediaProfile struct {
	Platform string `json:"platform" yaml:"platform"`
	Username string `json:"username" yaml:"username"`
}

// UserReview is a review a business left for the creator.
type UserReview struct {
	TextReview string `json:"text_review" yaml:"textReview"`
	BusinessID string `json:"business_id" yaml:"businessId"`
	Stars      int    `json:"stars" yaml:"stars"`
}

// UserStats holds the creator's track record.
type UserStats struct {
	Campaigns int          `json:"campaigns" yaml:"campaigns"`
	Reviews   []UserReview `json:"reviews,omitempty" yaml:"reviews,omitempty"`
	Level     Level        `json:"level" yaml:"level"` // Unknown values rank below every tier
}

// UserRole is the role of the account on the platform.
type UserRole string

const (
	// UserRoleGuest is an account that has not finished onboarding.
	UserRoleGuest UserRole = "guest"
	// UserRoleCreator is a content creator.
	UserRoleCreator UserRole = "creator"
	// UserRoleBusiness is a business publishing offers.
	UserRoleBusiness UserRole = "business"
)

// IsValid checks if the UserRole is a known role.
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleGuest, UserRoleCreator, UserRoleBusiness:
		return true
	default:
		return false
	}
}

// User is a creator profile as supplied by the application layer.
type User struct {
	ID           string               `json:"id" yaml:"id" validate:"required"`
	FullName     string               `json:"full_name" yaml:"fullName"`
	Email        string               `json:"email" yaml:"email" validate:"omitempty,email"`
	Role         UserRole             `json:"role" yaml:"role"`
	Country      string               `json:"country" yaml:"country"`
	City         string               `json:"city" yaml:"city"`
	SocialMedia  []SocialMediaProfile `json:"social_media" yaml:"socialMedia"`
	Stats        UserStats            `json:"stats" yaml:"stats"`
	Interests    []string             `json:"interests" yaml:"interests"`
	ContentTypes []string             `json:"content_types,omitempty" yaml:"contentTypes,omitempty"`
	Gender       string               `json:"gender,omitempty" yaml:"gender,omitempty"`
	BirthDate    string               `json:"birth_date,omitempty" yaml:"birthDate,omitempty"`
	Languages    []string             `json:"languages,omitempty" yaml:"languages,omitempty"`
}

// Platforms returns the platform names of every linked social media profile.
func (u *User) Platforms() []string {
	platforms := make([]string, 0, len(u.SocialMedia))
	for _, profile := range u.SocialMedia {
		platforms = append(platforms, profile.Platform)
	}

	return platforms
}
