package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/purple-shift/internal/config"
)

// EventKind identifies a random event.
type EventKind int

const (
	EventNone   EventKind = iota
	EventBonus            // One-time salary grant, no active duration
	EventDebuff           // Halved income for the duration
	EventBoost            // Tripled income for the duration
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventBonus:
		return "Rush Delivery"
	case EventDebuff:
		return "Audit"
	case EventBoost:
		return "Hot Shift"
	default:
		return "None"
	}
}

// EventOutcome reports what the scheduler did this frame.
type EventOutcome struct {
	Started EventKind // EventNone if nothing triggered
	Bonus   float64   // Salary granted by an instant bonus
	Ended   bool      // An active event just expired
}

// RandomEvents is the Idle/Active state machine for periodic income
// modifiers. At most one event is active at a time; the Idle check guards
// against re-triggering.
type RandomEvents struct {
	bal config.EventBalance
	rng *rand.Rand

	active    bool
	kind      EventKind
	mult      float64
	remaining float64 // seconds
	next      time.Time
}

// NewRandomEvents creates the scheduler with the first trigger a short
// random gap after now.
func NewRandomEvents(bal config.EventBalance, rng *rand.Rand, now time.Time) *RandomEvents {
	s := &RandomEvents{bal: bal, rng: rng, mult: 1.0}
	s.next = now.Add(uniformDuration(rng, bal.FirstGapMin, bal.FirstGapMax))
	return s
}

// Advance drives the state machine by dt elapsed seconds. eventMetaLevel
// scales the duration of newly started events. A stall can hand in a large
// dt; trigger and expiry are both handled within the one call.
func (s *RandomEvents) Advance(now time.Time, dt float64, eventMetaLevel int) EventOutcome {
	var out EventOutcome

	if s.active {
		s.remaining -= dt
		if s.remaining <= 0 {
			s.active = false
			s.kind = EventNone
			s.mult = 1.0
			s.remaining = 0
			s.next = now.Add(uniformDuration(s.rng, s.bal.GapMin, s.bal.GapMax))
			out.Ended = true
		}
		return out
	}

	if now.Before(s.next) {
		return out
	}

	// Trigger: pick uniformly among the three kinds.
	kind := []EventKind{EventBonus, EventDebuff, EventBoost}[s.rng.Intn(3)]
	out.Started = kind

	switch kind {
	case EventBonus:
		// Instant: grant and go straight back to scheduling.
		out.Bonus = float64(s.bal.BonusMin + s.rng.Intn(s.bal.BonusMax-s.bal.BonusMin+1))
		s.next = now.Add(uniformDuration(s.rng, s.bal.GapMin, s.bal.GapMax))
	case EventDebuff:
		s.begin(kind, s.bal.DebuffMult, eventMetaLevel)
	case EventBoost:
		s.begin(kind, s.bal.BoostMult, eventMetaLevel)
	}
	return out
}

// begin enters the Active state with the meta-scaled duration.
func (s *RandomEvents) begin(kind EventKind, mult float64, eventMetaLevel int) {
	s.active = true
	s.kind = kind
	s.mult = mult
	s.remaining = s.bal.Duration * (1.0 + 0.25*float64(eventMetaLevel))
}

// Active reports whether an event is currently running.
func (s *RandomEvents) Active() bool { return s.active }

// Kind returns the active event kind, EventNone when idle.
func (s *RandomEvents) Kind() EventKind { return s.kind }

// Multiplier returns the current income multiplier, 1.0 when idle.
func (s *RandomEvents) Multiplier() float64 {
	if !s.active {
		return 1.0
	}
	return s.mult
}

// Remaining returns the active event's remaining seconds, 0 when idle.
func (s *RandomEvents) Remaining() float64 {
	if !s.active {
		return 0
	}
	return s.remaining
}

// BoostWindowActive reports whether the periodic Taisher boost window is
// open at the given instant. This is a pure function of the wall clock: the
// window is open for the first base+2×level seconds of every 15-second
// cycle. Nothing is stored and nothing needs transition logic.
func BoostWindowActive(now time.Time, bal config.EventBalance, taisherLevel int) bool {
	period := bal.WindowPeriod
	if period <= 0 {
		return false
	}
	open := bal.WindowBase + bal.WindowPerLevel*float64(taisherLevel)
	phase := math.Mod(float64(now.UnixNano())/float64(time.Second), period)
	return phase < open
}

// uniformDuration returns a uniform random duration in [lo, hi] seconds.
func uniformDuration(rng *rand.Rand, lo, hi float64) time.Duration {
	sec := lo
	if hi > lo {
		sec = lo + rng.Float64()*(hi-lo)
	}
	return time.Duration(sec * float64(time.Second))
}
