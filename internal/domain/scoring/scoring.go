// Package scoring computes how well an offer fits a creator profile.
//
// The score is a weighted sum of seven independent criteria. Level and
// category are eligibility gates: failing either returns 0 immediately,
// which is the only way an offer is excluded outright. Every other criterion
// only lowers the score.
package scoring

import (
	"fmt"
	"slices"
	"strings"

	"unveil/internal/domain/entity"

	"golang.org/x/text/cases"
)

// Criterion weights. They sum to 1.
const (
	WeightLevel           = 0.25
	WeightInterest        = 0.25
	WeightLocation        = 0.15
	WeightPlatforms       = 0.15
	WeightContentType     = 0.10
	WeightMustAttendEvent = 0.05
	WeightExclusive       = 0.05
)

// Share of the location weight granted for a country match, and the extra share for a city match.
const (
	countryShare = 0.6
	cityShare    = 0.4
)

// Result is a score together with the reasons shown to the creator.
type Result struct {
	Score    float64  // In [0, 1]
	Excluded bool     // True when a level or category gate failed; Score is then 0
	Matches  []string // Human readable reasons, in criterion order
}

// Score returns the compatibility of offer with user in [0, 1]. A nil offer or user scores 0.
func Score(offer *entity.Offer, user *entity.User) float64 {
	score, _ := compute(offer, user)

	return score
}

// Explain scores offer against user and lists why it matches.
func Explain(offer *entity.Offer, user *entity.User) Result {
	score, excluded := compute(offer, user)
	if offer == nil || user == nil {
		return Result{Score: score, Excluded: excluded}
	}

	return Result{
		Score:    score,
		Excluded: excluded,
		Matches:  matchReasons(offer, user),
	}
}

func compute(offer *entity.Offer, user *entity.User) (score float64, excluded bool) {
	if offer == nil || user == nil {
		return 0, true
	}

	// 1. Level gate
	if offer.RequiredLevel != "" {
		if !meetsLevel(offer, user) {
			return 0, true
		}
	}
	score += WeightLevel

	// 2. Category gate
	if offer.Category != "" {
		if !slices.Contains(user.Interests, offer.Category) {
			return 0, true
		}
	}
	score += WeightInterest

	// 3. Location
	score += locationScore(offer, user)

	// 4. Platforms
	if len(offer.PlatformsRequired) > 0 {
		matched := intersect(offer.PlatformsRequired, user.Platforms())
		score += float64(len(matched)) / float64(len(offer.PlatformsRequired)) * WeightPlatforms
	} else {
		score += WeightPlatforms
	}

	// 5. Content type. A creator who never declared formats (nil) is not penalized;
	// a declared empty list matches nothing.
	if len(offer.ContentType) > 0 && user.ContentTypes != nil {
		matched := intersect(offer.ContentType, user.ContentTypes)
		score += float64(len(matched)) / float64(len(offer.ContentType)) * WeightContentType
	} else {
		score += WeightContentType
	}

	// 6. Event attendance
	if !offer.RequiresAttendance() || sameCity(offer, user) {
		score += WeightMustAttendEvent
	}

	// 7. Exclusivity is credited whenever the offer states it.
	if offer.Exclusive != nil {
		score += WeightExclusive
	}

	return score, false
}

// meetsLevel compares tier indexes. An unknown user level ranks below every
// tier, and an unknown required level ranks below every tier too.
func meetsLevel(offer *entity.Offer, user *entity.User) bool {
	return offer.RequiredLevel.Index() <= user.Stats.Level.Index()
}

func locationScore(offer *entity.Offer, user *entity.User) float64 {
	if offer.IsRemote {
		return WeightLocation
	}

	var score float64
	if sameCountry(offer, user) {
		score += WeightLocation * countryShare
		if sameCity(offer, user) {
			score += WeightLocation * cityShare
		}
	}

	return score
}

func sameCountry(offer *entity.Offer, user *entity.User) bool {
	return offer.Country != "" && user.Country != "" && offer.Country == user.Country
}

func sameCity(offer *entity.Offer, user *entity.User) bool {
	return offer.City != "" && user.City != "" && offer.City == user.City
}

// intersect returns the elements of wanted present in have, in wanted order.
func intersect(wanted, have []string) []string {
	matched := make([]string, 0, len(wanted))
	for _, w := range wanted {
		if slices.Contains(have, w) {
			matched = append(matched, w)
		}
	}

	return matched
}

func matchReasons(offer *entity.Offer, user *entity.User) []string {
	matches := make([]string, 0, 7)

	if offer.RequiredLevel != "" && meetsLevel(offer, user) {
		matches = append(matches, fmt.Sprintf("Nivel: %s", user.Stats.Level))
	}

	if offer.Category != "" {
		if slices.Contains(user.Interests, offer.Category) {
			matches = append(matches, fmt.Sprintf("Categoría: %s", offer.Category))
		} else if tags := relatedTags(offer.CustomTags, user.Interests); len(tags) > 0 {
			matches = append(matches, fmt.Sprintf("Tags relacionados: %s", strings.Join(tags, ", ")))
		}
	}

	switch {
	case offer.IsRemote:
		matches = append(matches, "Trabajo remoto")
	case sameCountry(offer, user) && sameCity(offer, user):
		matches = append(matches, fmt.Sprintf("Misma ciudad: %s", offer.City))
	case sameCountry(offer, user):
		matches = append(matches, fmt.Sprintf("Mismo país: %s", offer.Country))
	}

	if len(offer.PlatformsRequired) > 0 {
		if matched := intersect(offer.PlatformsRequired, user.Platforms()); len(matched) > 0 {
			matches = append(matches, fmt.Sprintf("Plataformas: %s", strings.Join(matched, ", ")))
		}
	}

	if len(offer.ContentType) > 0 && len(user.ContentTypes) > 0 {
		if matched := intersect(offer.ContentType, user.ContentTypes); len(matched) > 0 {
			matches = append(matches, fmt.Sprintf("Contenido: %s", strings.Join(matched, ", ")))
		}
	}

	if offer.MustAttendEvent != nil {
		if !*offer.MustAttendEvent {
			matches = append(matches, "No requiere asistencia presencial")
		} else if sameCity(offer, user) {
			matches = append(matches, "Evento en tu ciudad")
		}
	}

	if offer.Exclusive != nil {
		if *offer.Exclusive {
			matches = append(matches, "Requiere exclusividad")
		} else {
			matches = append(matches, "No requiere exclusividad")
		}
	}

	return matches
}

// relatedTags returns the custom tags that contain, or are contained in, any
// interest, ignoring case.
func relatedTags(tags, interests []string) []string {
	fold := cases.Fold()

	var related []string
	for _, tag := range tags {
		foldedTag := fold.String(tag)
		for _, interest := range interests {
			foldedInterest := fold.String(interest)
			if strings.Contains(foldedTag, foldedInterest) || strings.Contains(foldedInterest, foldedTag) {
				related = append(related, tag)

				break
			}
		}
	}

	return related
}
