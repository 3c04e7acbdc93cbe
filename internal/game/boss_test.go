package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/purple-shift/internal/config"
)

// fixedGapBoss pins every gap so trigger instants are exact.
func fixedGapBoss(firstGap, gap float64, seed int64) (*BossChallenge, config.BossBalance, time.Time) {
	bal := config.DefaultBalance().Boss
	bal.FirstGapMin = firstGap
	bal.FirstGapMax = firstGap
	bal.GapMin = gap
	bal.GapMax = gap
	start := time.Unix(2000, 0)
	return NewBossChallenge(bal, rand.New(rand.NewSource(seed)), start), bal, start
}

func TestBossIdleBeforeFirstGap(t *testing.T) {
	b, _, start := fixedGapBoss(100, 150, 1)

	out := b.Advance(start.Add(99*time.Second), 1, 0, 0, 1)
	if out.Started || out.Resolved {
		t.Errorf("Expected nothing before the first gap, got %+v", out)
	}
	if b.Active() {
		t.Error("Expected idle state")
	}
	if b.Goal() != 0 || b.Remaining() != 0 {
		t.Errorf("Expected zero accessors when idle, got goal=%v remaining=%v", b.Goal(), b.Remaining())
	}
}

func TestBossGoalFormula(t *testing.T) {
	b, _, start := fixedGapBoss(100, 150, 1)

	// goal = floor(60 + bps*10 + kpi*5) with the raw passive rate.
	out := b.Advance(start.Add(100*time.Second), 1, 500, 2.0, 4)
	if !out.Started {
		t.Fatal("Expected the inspection to start")
	}
	if out.Goal != 100 {
		t.Errorf("Expected goal 100, got %v", out.Goal)
	}
	if b.Remaining() != 10 {
		t.Errorf("Expected 10s window, got %v", b.Remaining())
	}
	if b.Progress(500) != 0 {
		t.Errorf("Expected zero progress at start, got %v", b.Progress(500))
	}
	if b.Progress(560) != 60 {
		t.Errorf("Expected progress measured from the trigger baseline, got %v", b.Progress(560))
	}
}

func TestBossWin(t *testing.T) {
	b, _, start := fixedGapBoss(100, 150, 1)
	now := start.Add(100 * time.Second)
	b.Advance(now, 1, 500, 2.0, 4) // goal 100

	// Exactly the goal inside the window: meeting it is passing it.
	out := b.Advance(now.Add(11*time.Second), 11, 600, 2.0, 4)
	if !out.Resolved || !out.Won {
		t.Fatalf("Expected a won resolve, got %+v", out)
	}
	if out.Progress != 100 {
		t.Errorf("Expected progress 100, got %v", out.Progress)
	}
	// reward = floor(5000 + 100*8)
	if out.Amount != 5800 {
		t.Errorf("Expected reward 5800, got %v", out.Amount)
	}
	if b.Active() {
		t.Error("Expected idle state after resolve")
	}
}

func TestBossLoss(t *testing.T) {
	b, _, start := fixedGapBoss(100, 150, 1)
	now := start.Add(100 * time.Second)
	b.Advance(now, 1, 500, 2.0, 4) // goal 100

	out := b.Advance(now.Add(11*time.Second), 11, 550, 2.0, 4)
	if !out.Resolved || out.Won {
		t.Fatalf("Expected a lost resolve, got %+v", out)
	}
	// penalty = floor(2000 + 100*3)
	if out.Amount != 2300 {
		t.Errorf("Expected penalty 2300, got %v", out.Amount)
	}
}

func TestBossReschedulesAfterResolve(t *testing.T) {
	b, _, start := fixedGapBoss(100, 150, 1)
	now := start.Add(100 * time.Second)
	b.Advance(now, 1, 0, 0, 1)

	end := now.Add(11 * time.Second)
	b.Advance(end, 11, 0, 0, 1)

	out := b.Advance(end.Add(149*time.Second), 1, 0, 0, 1)
	if out.Started {
		t.Error("Expected no inspection before the gap elapsed")
	}
	out = b.Advance(end.Add(151*time.Second), 1, 0, 0, 1)
	if !out.Started {
		t.Error("Expected an inspection once the gap elapsed")
	}
}

// A stall that swallows the whole window still resolves exactly once.
func TestBossLongStallResolvesOnce(t *testing.T) {
	b, _, start := fixedGapBoss(100, 150, 1)
	now := start.Add(100 * time.Second)
	b.Advance(now, 1, 0, 0, 1)

	out := b.Advance(now.Add(time.Hour), 3600, 0, 0, 1)
	if !out.Resolved {
		t.Fatal("Expected a resolve after the stall")
	}
	out = b.Advance(now.Add(time.Hour+time.Second), 1, 0, 0, 1)
	if out.Resolved {
		t.Error("Expected no second resolve")
	}
}
