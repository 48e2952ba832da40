package directory

import "github.com/jonboulle/clockwork"

// clock stamps LoadedAt on snapshots; tests freeze it via SetClock.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source for load timestamps. Pass nil to reset to
// real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
