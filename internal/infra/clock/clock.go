// Package clock provides the wall-clock time source.
package clock

import (
	"time"

	"unveil/internal/domain/service"
)

type systemClock struct{}

// NewSystemClock returns a clock backed by time.Now.
func NewSystemClock() service.Clock {
	return systemClock{}
}

// Now returns the current local time.
func (systemClock) Now() time.Time {
	return time.Now()
}
