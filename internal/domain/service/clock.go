package service

import "time"

// Clock is the time source used to stamp campaigns and validate proposed dates.
type Clock interface {
	Now() time.Time
}
