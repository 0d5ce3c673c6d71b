package usecase

import (
	"sync"
	"time"
)

// turnTimers tracks at most one live countdown per room. Every start or
// cancel bumps the room's generation; an expiry callback only acts if its
// generation is still current, so a cancellation that lands before the
// scheduled fire always wins the race.
type turnTimers struct {
	mu   sync.Mutex
	gens map[string]uint64
	live map[string]*time.Timer
}

func newTurnTimers() *turnTimers {
	return &turnTimers{
		gens: make(map[string]uint64),
		live: make(map[string]*time.Timer),
	}
}

// start replaces any live timer for the room and returns the new
// generation. The fire callback receives the generation it was armed
// with and must check it with current before touching room state.
func (that *turnTimers) start(code string, duration time.Duration, fire func(gen uint64)) uint64 {
	that.mu.Lock()
	defer that.mu.Unlock()

	if timer, ok := that.live[code]; ok {
		timer.Stop()
	}

	that.gens[code]++
	gen := that.gens[code]

	that.live[code] = time.AfterFunc(duration, func() {
		fire(gen)
	})

	return gen
}

// cancel stops the live timer for the room, if any, and invalidates any
// expiry callback already in flight.
func (that *turnTimers) cancel(code string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if timer, ok := that.live[code]; ok {
		timer.Stop()
		delete(that.live, code)
	}

	that.gens[code]++
}

// current reports whether gen is still the room's latest generation.
func (that *turnTimers) current(code string, gen uint64) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.gens[code] == gen
}

// drop forgets the room entirely on teardown.
func (that *turnTimers) drop(code string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if timer, ok := that.live[code]; ok {
		timer.Stop()
	}

	delete(that.live, code)
	delete(that.gens, code)
}
