package game

import (
	"github.com/vovakirdan/purple-shift/internal/core"
)

// BuildingView is one catalog row with derived display values.
type BuildingView struct {
	ID         string
	Name       string
	Count      int
	BPS        float64
	Price      float64
	Affordable bool
}

// MetaView is one meta-shop row with derived display values.
type MetaView struct {
	Key        string
	Title      string
	Desc       string
	Level      int
	Cost       int
	Affordable bool
}

// EventView describes the active random event.
type EventView struct {
	Kind      EventKind
	Mult      float64
	Remaining float64 // seconds
}

// BossView describes the active inspection.
type BossView struct {
	Goal      float64
	Progress  float64
	Remaining float64 // seconds
}

// Snapshot is the read-only presentation feed: every derived value the
// renderer needs for one frame, plus the pending notifications. The renderer
// must not reach past it into engine state.
type Snapshot struct {
	Rank     Rank
	Boxes    float64
	Salary   float64
	KPI      int
	Goal     int
	GoalFrac float64 // boxes/goal, clamped to [0,1]

	BPS           float64 // effective boxes/sec after all multipliers
	PrestigeMult  float64
	AchMult       float64
	EventMult     float64
	CompositeMult float64

	PrestigeTokens int
	PrestigeGain   int // tokens a prestige would grant now, 0 if gated
	CanPrestige    bool
	AutoClick      bool
	BoostActive    bool
	Flash          bool
	MetaOpen       bool

	Clicks   int
	BossWins int

	Buildings []BuildingView
	Meta      []MetaView
	Event     *EventView
	Boss      *BossView

	Notifications []core.Notification
}

// Snapshot assembles the presentation feed for the current frame.
func (c *Controller) Snapshot() Snapshot {
	st := c.econ.State()
	eventMult := c.events.Multiplier()
	achMult := AchievementMultiplier(c.unlocked)

	snap := Snapshot{
		Rank:     RankOf(st.KPI),
		Boxes:    st.Boxes,
		Salary:   st.Salary,
		KPI:      st.KPI,
		Goal:     st.UpgradeGoal,
		GoalFrac: clamp01(st.Boxes / float64(max(1, st.UpgradeGoal))),

		BPS:           c.econ.TotalBPS() * c.econ.CompositeMult(eventMult),
		PrestigeMult:  c.econ.PrestigeMult(),
		AchMult:       achMult,
		EventMult:     eventMult,
		CompositeMult: c.econ.CompositeMult(eventMult),

		PrestigeTokens: st.Prestige,
		PrestigeGain:   c.econ.PrestigeGain(),
		CanPrestige:    st.Salary >= c.bal.Costs.PrestigeFloor,
		AutoClick:      st.AutoClick,
		BoostActive:    c.boostNow,
		Flash:          c.flashTicks > 0,
		MetaOpen:       c.metaOpen,

		Clicks:   c.econ.Clicks(),
		BossWins: c.econ.BossWins(),

		Notifications: c.notes.Items(),
	}

	discount := c.econ.DiscountMult()
	for _, b := range c.econ.Buildings() {
		price := BuildingPrice(b.BasePrice, b.Count, c.bal.Growth.BuildingPrice, discount)
		snap.Buildings = append(snap.Buildings, BuildingView{
			ID:         b.ID,
			Name:       b.Name,
			Count:      b.Count,
			BPS:        b.BPS,
			Price:      price,
			Affordable: st.Salary >= price,
		})
	}

	for _, it := range MetaItems() {
		cost := MetaCost(it.BaseCost, st.Meta[it.Key], c.bal.Growth.MetaCost)
		snap.Meta = append(snap.Meta, MetaView{
			Key:        it.Key,
			Title:      it.Title,
			Desc:       it.Desc,
			Level:      st.Meta[it.Key],
			Cost:       cost,
			Affordable: st.Prestige >= cost,
		})
	}

	if c.events.Active() {
		snap.Event = &EventView{
			Kind:      c.events.Kind(),
			Mult:      c.events.Multiplier(),
			Remaining: c.events.Remaining(),
		}
	}
	if c.boss.Active() {
		snap.Boss = &BossView{
			Goal:      c.boss.Goal(),
			Progress:  c.boss.Progress(c.econ.LifetimeBoxes()),
			Remaining: c.boss.Remaining(),
		}
	}
	return snap
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
