package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/purple-shift/internal/config"
	"github.com/vovakirdan/purple-shift/internal/core"
	"github.com/vovakirdan/purple-shift/internal/save"
)

// Notification lifetimes in display ticks (at the 60/s reference rate).
const (
	toastTicksShort   = 140
	toastTicksDefault = 180
	toastTicksLong    = 240
)

// RecordKind tags a journal entry for the platform's history store.
type RecordKind int

const (
	RecordBossResolved RecordKind = iota
	RecordPrestige
)

// Record is one durable fact the controller surfaces for external recording.
// The platform drains the journal each frame and writes it wherever it
// pleases; losing a record never affects gameplay.
type Record struct {
	Kind     RecordKind
	Won      bool    // Boss: whether the inspection was passed
	Goal     float64 // Boss: box goal
	Progress float64 // Boss: boxes delivered inside the window
	Amount   float64 // Boss: reward or penalty magnitude
	Tokens   int     // Prestige: tokens gained
	Salary   float64 // Prestige: salary converted
	KPI      int     // Prestige: KPI at reset
}

// Controller orchestrates one frame of progression: passive income, the auto
// clicker, both timed schedulers, the threshold loop, rank transitions,
// achievements, and exactly one user command. Step order is load-bearing and
// mirrors the update loop of the game it models.
type Controller struct {
	bal  config.Balance
	econ *Economy

	events *RandomEvents
	boss   *BossChallenge

	unlocked map[string]bool
	prevRank Rank

	notes   core.NotificationQueue
	journal []Record

	autoAccum  float64 // seconds accumulated toward the next auto click
	flashTicks int     // rank-up visual feedback countdown
	metaOpen   bool
	boostNow   bool // boost window as of the last Advance
}

// NewController wires a fresh engine. Seed fans out to three independent RNG
// streams so the click penalty roll cannot perturb event or boss scheduling.
func NewController(bal config.Balance, seed int64, now time.Time) *Controller {
	c := &Controller{
		bal:      bal,
		econ:     NewEconomy(bal, rand.New(rand.NewSource(seed))),
		events:   NewRandomEvents(bal.Events, rand.New(rand.NewSource(seed+1)), now),
		boss:     NewBossChallenge(bal.Boss, rand.New(rand.NewSource(seed+2)), now),
		unlocked: make(map[string]bool),
	}
	c.prevRank = RankOf(c.econ.State().KPI)
	return c
}

// Economy exposes the underlying engine, mainly for tests and persistence.
func (c *Controller) Economy() *Economy { return c.econ }

// Restore loads a persisted state and realigns the rank marker so restoring
// does not fire a rank-up toast.
func (c *Controller) Restore(st save.State) {
	c.econ.RestoreDurable(st)
	c.prevRank = RankOf(c.econ.State().KPI)
}

// Unlocked reports whether an achievement is unlocked this session.
func (c *Controller) Unlocked(id string) bool { return c.unlocked[id] }

// Advance runs one frame: now is the wall-clock reading, dt the elapsed
// seconds since the previous frame, cmd the single user command for this
// frame (CmdNone for no input). All catch-up loops inside tolerate an
// arbitrarily large dt.
func (c *Controller) Advance(now time.Time, dt float64, cmd core.Command) {
	eventMult := c.events.Multiplier()

	// 1. Passive income.
	c.econ.Tick(dt, eventMult)

	// 2. Auto clicker.
	c.advanceAutoClick(dt)

	// 3. Timed schedulers. Random events first, then the boss; the two are
	// independent and never touch each other's timers.
	c.advanceEvents(now, dt)
	c.advanceBoss(now, dt)

	// 4. Threshold-crossing loop.
	c.econ.ApplyThresholds()

	// 5. Rank transition.
	c.advanceRank()

	// 6. Achievements.
	c.advanceAchievements()

	// 7. One user command.
	if cmd.Kind != core.CmdNone {
		c.apply(now, cmd)
	}

	c.boostNow = BoostWindowActive(now, c.bal.Events, c.econ.State().Meta[MetaTaisher])
	if c.flashTicks > 0 {
		c.flashTicks--
	}
	c.notes.Age()
}

// advanceAutoClick accumulates elapsed time and fires one click-equivalent
// per interval. A long stall fires several in a row.
func (c *Controller) advanceAutoClick(dt float64) {
	if !c.econ.State().AutoClick {
		return
	}
	interval := float64(c.bal.Click.AutoIntervalMS) / 1000.0
	if interval <= 0 {
		return
	}
	c.autoAccum += dt
	for c.autoAccum >= interval {
		c.autoAccum -= interval
		c.econ.AutoClick(c.events.Multiplier())
	}
}

func (c *Controller) advanceEvents(now time.Time, dt float64) {
	out := c.events.Advance(now, dt, c.econ.State().Meta[MetaEvents])
	switch out.Started {
	case EventBonus:
		c.econ.AddSalary(out.Bonus)
		c.notes.Push(fmt.Sprintf("RUSH DELIVERY! +%s", fmtAmount(out.Bonus)), toastTicksDefault, core.ToneGood)
	case EventDebuff:
		c.notes.Push("AUDIT! -50% income", toastTicksDefault, core.ToneBad)
	case EventBoost:
		c.notes.Push("HOT SHIFT! x3 income", toastTicksDefault, core.ToneGood)
	}
}

func (c *Controller) advanceBoss(now time.Time, dt float64) {
	out := c.boss.Advance(now, dt, c.econ.LifetimeBoxes(), c.econ.TotalBPS(), c.econ.State().KPI)
	if out.Started {
		c.notes.Push("MANAGEMENT INSPECTION! Deliver!", toastTicksLong, core.ToneSpecial)
		return
	}
	if !out.Resolved {
		return
	}
	if out.Won {
		c.econ.AddSalary(out.Amount)
		c.econ.RecordBossWin()
		c.notes.Push(fmt.Sprintf("INSPECTION PASSED! +%s", fmtAmount(out.Amount)), toastTicksLong, core.ToneGood)
	} else {
		c.econ.AddSalary(-out.Amount)
		c.notes.Push(fmt.Sprintf("INSPECTION FAILED! -%s", fmtAmount(out.Amount)), toastTicksLong, core.ToneBad)
	}
	c.journal = append(c.journal, Record{
		Kind:     RecordBossResolved,
		Won:      out.Won,
		Goal:     out.Goal,
		Progress: out.Progress,
		Amount:   out.Amount,
	})
}

func (c *Controller) advanceRank() {
	rank := RankOf(c.econ.State().KPI)
	if rank.Label == c.prevRank.Label {
		return
	}
	c.prevRank = rank
	c.flashTicks = 18
	c.notes.Push(fmt.Sprintf("NEW RANK: %s", rank.Label), toastTicksLong, core.ToneSpecial)
}

func (c *Controller) advanceAchievements() {
	fresh := EvaluateAchievements(c.unlocked, c.econ.Progress())
	if len(fresh) == 0 {
		return
	}
	for _, a := range fresh {
		c.notes.Push(fmt.Sprintf("Achievement: %s", a.Name), toastTicksLong, core.ToneSpecial)
	}
	c.econ.SetAchievementMult(AchievementMultiplier(c.unlocked))
}

// apply validates and applies one user command, surfacing success or failure
// as a notification. Domain errors mutate nothing.
func (c *Controller) apply(now time.Time, cmd core.Command) {
	switch cmd.Kind {
	case core.CmdClick:
		c.econ.Click(c.boostWindowAt(now), c.events.Multiplier())

	case core.CmdBuyBuilding:
		b, err := c.econ.BuyBuilding(cmd.Index)
		if err != nil {
			c.pushError(err)
			return
		}
		c.notes.Push(fmt.Sprintf("Bought: %s", b.Name), toastTicksShort, core.ToneGood)

	case core.CmdBuyMeta:
		if _, err := c.econ.BuyMeta(cmd.Key); err != nil {
			c.pushError(err)
			return
		}
		for _, it := range MetaItems() {
			if it.Key == cmd.Key {
				c.notes.Push(fmt.Sprintf("Bought: %s", it.Title), toastTicksDefault, core.ToneGood)
			}
		}

	case core.CmdUpgradeKPI:
		if err := c.econ.UpgradeKPI(); err != nil {
			c.pushError(err)
			return
		}
		c.notes.Push("KPI +1", toastTicksShort, core.ToneGood)

	case core.CmdBuyAutoClicker:
		if err := c.econ.BuyAutoClicker(); err != nil {
			c.pushError(err)
			return
		}
		c.notes.Push("Auto clicker enabled", toastTicksDefault, core.ToneGood)

	case core.CmdPrestige:
		st := c.econ.State()
		gained, err := c.econ.PrestigeReset()
		if err != nil {
			c.pushError(err)
			return
		}
		c.prevRank = RankOf(1)
		c.flashTicks = 18
		c.notes.Push(fmt.Sprintf("Rebirth! +%d prestige tokens", gained), toastTicksLong, core.ToneSpecial)
		c.journal = append(c.journal, Record{
			Kind:   RecordPrestige,
			Tokens: gained,
			Salary: st.Salary,
			KPI:    st.KPI,
		})

	case core.CmdToggleMetaShop:
		c.metaOpen = !c.metaOpen
	}
}

// pushError maps a domain error to a short toast.
func (c *Controller) pushError(err error) {
	var text string
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		text = "Not enough salary"
	case errors.Is(err, ErrInsufficientPrestige):
		text = "Not enough prestige"
	case errors.Is(err, ErrAlreadyOwned):
		text = "Already owned"
	case errors.Is(err, ErrBelowThreshold):
		text = "Salary too low to prestige"
	default:
		text = err.Error()
	}
	c.notes.Push(text, toastTicksShort, core.ToneBad)
}

// boostWindowAt recomputes the window for click resolution so a command and
// the frame it lands in agree on the boost state.
func (c *Controller) boostWindowAt(now time.Time) bool {
	return BoostWindowActive(now, c.bal.Events, c.econ.State().Meta[MetaTaisher])
}

// DrainJournal hands the accumulated records to the caller and clears them.
func (c *Controller) DrainJournal() []Record {
	out := c.journal
	c.journal = nil
	return out
}

// Notifications returns the live notification queue.
func (c *Controller) Notifications() []core.Notification {
	return c.notes.Items()
}

// MetaOpen reports whether the meta shop overlay is toggled open.
func (c *Controller) MetaOpen() bool { return c.metaOpen }

// fmtAmount renders a currency amount with thousands separators.
func fmtAmount(v float64) string {
	n := int64(v)
	if n < 0 {
		return "-" + fmtAmount(-v)
	}
	s := fmt.Sprintf("%d", n)
	out := make([]byte, 0, len(s)+len(s)/3)
	for i, ch := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, ch)
	}
	return string(out)
}
