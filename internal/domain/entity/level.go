// Package entity contains the core business objects of the project.
package entity

import "slices"

// Level is the experience tier of a creator, also used as the minimum tier an offer requires.
type Level string

const (
	// LevelBeginner is the lowest tier.
	LevelBeginner Level = "Principiante"
	// LevelIntermediate is the middle tier.
	LevelIntermediate Level = "Intermedio"
	// LevelAdvanced is the highest tier.
	LevelAdvanced Level = "Avanzado"
)

// levelOrder lists the tiers from lowest to highest.
var levelOrder = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

// String returns the string representation of the Level.
func (l Level) String() string {
	return string(l)
}

// Index returns the position of the tier in the ordering, or -1 if the value is not a known tier.
func (l Level) Index() int {
	return slices.Index(levelOrder, l)
}

// IsValid checks if the Level is one of the known tiers.
func (l Level) IsValid() bool {
	return l.Index() >= 0
}

// Levels returns the known tiers from lowest to highest.
func Levels() []Level {
	return slices.Clone(levelOrder)
}
