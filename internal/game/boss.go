package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/purple-shift/internal/config"
)

// BossOutcome reports what the inspection machine did this frame. A resolve
// folds straight back to Idle; Resolved is never observable across frames.
type BossOutcome struct {
	Started  bool
	Resolved bool
	Won      bool
	Amount   float64 // Reward granted on a win, penalty charged on a loss
	Goal     float64
	Progress float64
}

// BossChallenge is the timed inspection mini-game: a box-throughput goal
// must be met within a fixed window. Its timers are fully independent of the
// random-event scheduler.
type BossChallenge struct {
	bal config.BossBalance
	rng *rand.Rand

	active    bool
	remaining float64 // seconds
	goal      float64
	baseline  float64 // lifetime boxes at trigger time
	next      time.Time
}

// NewBossChallenge creates the machine with the first inspection a long
// random gap after now.
func NewBossChallenge(bal config.BossBalance, rng *rand.Rand, now time.Time) *BossChallenge {
	b := &BossChallenge{bal: bal, rng: rng}
	b.next = now.Add(uniformDuration(rng, bal.FirstGapMin, bal.FirstGapMax))
	return b
}

// Advance drives the machine by dt elapsed seconds. lifetimeBoxes is the
// session's cumulative box counter, totalBPS the raw passive rate, kpi the
// current skill level; the three set the goal on trigger and measure
// progress on expiry.
func (b *BossChallenge) Advance(now time.Time, dt float64, lifetimeBoxes, totalBPS float64, kpi int) BossOutcome {
	var out BossOutcome

	if b.active {
		b.remaining -= dt
		if b.remaining <= 0 {
			progress := lifetimeBoxes - b.baseline
			out.Resolved = true
			out.Goal = b.goal
			out.Progress = progress
			if progress >= b.goal {
				out.Won = true
				out.Amount = math.Floor(b.bal.RewardBase + b.goal*b.bal.RewardScale)
			} else {
				out.Amount = math.Floor(b.bal.PenaltyBase + b.goal*b.bal.PenaltyFrac)
			}
			b.active = false
			b.remaining = 0
			b.next = now.Add(uniformDuration(b.rng, b.bal.GapMin, b.bal.GapMax))
		}
		return out
	}

	if now.Before(b.next) {
		return out
	}

	b.active = true
	b.remaining = b.bal.Duration
	b.goal = math.Floor(b.bal.GoalBase + totalBPS*b.bal.GoalPerBPS + float64(kpi)*b.bal.GoalPerKPI)
	b.baseline = lifetimeBoxes
	out.Started = true
	out.Goal = b.goal
	return out
}

// Active reports whether an inspection is running.
func (b *BossChallenge) Active() bool { return b.active }

// Remaining returns the active inspection's remaining seconds, 0 when idle.
func (b *BossChallenge) Remaining() float64 {
	if !b.active {
		return 0
	}
	return b.remaining
}

// Goal returns the active inspection's box goal, 0 when idle.
func (b *BossChallenge) Goal() float64 {
	if !b.active {
		return 0
	}
	return b.goal
}

// Progress returns boxes earned since the inspection started.
func (b *BossChallenge) Progress(lifetimeBoxes float64) float64 {
	if !b.active {
		return 0
	}
	return lifetimeBoxes - b.baseline
}
