package carousel

import "time"

// Clock supplies the current time to transition sampling. Injecting it keeps
// the manager headless: tests drive transitions with a fake clock instead of
// sleeping.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }
