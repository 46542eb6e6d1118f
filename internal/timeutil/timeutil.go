package timeutil

import "time"

// Now is the wall clock used as the default for injectable service clocks.
func Now() time.Time {
	return time.Now()
}
