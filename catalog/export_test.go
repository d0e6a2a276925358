package catalog

import "time"

// SetClock overrides the usecase clock in tests.
func SetClock(uc *Usecase, now func() time.Time) {
	uc.now = now
}
