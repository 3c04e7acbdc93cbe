package game

import (
	"errors"
	"math"
	"math/rand"

	"github.com/vovakirdan/purple-shift/internal/config"
	"github.com/vovakirdan/purple-shift/internal/save"
)

// Domain error taxonomy. All of these are recoverable and user-facing: the
// caller turns them into a toast and nothing else happens.
var (
	ErrInsufficientFunds    = errors.New("not enough salary")
	ErrInsufficientPrestige = errors.New("not enough prestige tokens")
	ErrAlreadyOwned         = errors.New("already owned")
	ErrBelowThreshold       = errors.New("salary below prestige threshold")
	ErrUnknownBuilding      = errors.New("unknown building")
	ErrUnknownMeta          = errors.New("unknown meta upgrade")
)

// PlayerState is the durable numeric state of a run plus the meta progress
// that survives prestige. All mutation goes through Economy operations.
type PlayerState struct {
	Boxes       float64
	Salary      float64
	KPI         int
	UpgradeGoal int
	AutoClick   bool
	Prestige    int
	Meta        map[string]int
}

// Economy owns the player state and the building catalog and exposes the
// deterministic state-transition operations. Every operation is atomic: a
// failed purchase mutates nothing.
type Economy struct {
	bal config.Balance
	rng *rand.Rand

	state     PlayerState
	buildings []Building

	// Session counters, never persisted.
	clicks        int
	earnedSalary  float64
	lifetimeBoxes float64
	bossWins      int

	// Cached achievement multiplier, owned by the controller.
	achMult float64
}

// ClickResult reports the realized deltas of one click for feedback.
type ClickResult struct {
	Boxes   float64
	Salary  float64
	Penalty float64 // Positive amount lost to a random penalty, 0 if none
}

// NewEconomy builds a fresh economy from balance config. The RNG drives the
// click penalty roll only; timed subsystems carry their own.
func NewEconomy(bal config.Balance, rng *rand.Rand) *Economy {
	meta := make(map[string]int, len(MetaKeys()))
	for _, k := range MetaKeys() {
		meta[k] = 0
	}
	return &Economy{
		bal: bal,
		rng: rng,
		state: PlayerState{
			KPI:         1,
			UpgradeGoal: bal.Growth.InitialGoal,
			Meta:        meta,
		},
		buildings: newBuildings(bal.Buildings),
		achMult:   1.0,
	}
}

// State returns a copy of the player state for inspection.
func (e *Economy) State() PlayerState {
	st := e.state
	st.Meta = make(map[string]int, len(e.state.Meta))
	for k, v := range e.state.Meta {
		st.Meta[k] = v
	}
	return st
}

// Buildings returns the catalog with current counts.
func (e *Economy) Buildings() []Building {
	out := make([]Building, len(e.buildings))
	copy(out, e.buildings)
	return out
}

// TotalBPS returns the raw passive rate: sum of bps × count, no multipliers.
func (e *Economy) TotalBPS() float64 {
	var total float64
	for _, b := range e.buildings {
		total += b.BPS * float64(b.Count)
	}
	return total
}

// PrestigeMult returns 1 + 0.05 per token + 0.10 per income meta level.
func (e *Economy) PrestigeMult() float64 {
	return 1.0 + 0.05*float64(e.state.Prestige) + 0.10*float64(e.state.Meta[MetaIncome])
}

// DiscountMult returns the building price discount from the cheap meta track,
// floored at 0.2.
func (e *Economy) DiscountMult() float64 {
	return math.Max(0.2, 1.0-0.10*float64(e.state.Meta[MetaCheap]))
}

// SetAchievementMult caches the achievement multiplier. The controller calls
// this only when the unlock set changes.
func (e *Economy) SetAchievementMult(m float64) { e.achMult = m }

// CompositeMult composes prestige × event × achievement multipliers.
func (e *Economy) CompositeMult(eventMult float64) float64 {
	return e.PrestigeMult() * eventMult * e.achMult
}

// Tick applies passive income for dt elapsed seconds under the given event
// multiplier. It never fails and touches nothing but the two resource fields
// and the lifetime counters.
func (e *Economy) Tick(dt, eventMult float64) {
	if dt <= 0 {
		return
	}
	rate := e.TotalBPS() * e.CompositeMult(eventMult)
	e.addBoxes(rate * dt)
	e.AddSalary(rate * e.bal.Click.Salary * dt)
}

// Click performs one manual click. Inside the boost window the yield is
// multiplied; with a 1-in-N roll a fixed salary penalty lands as a side
// effect of the same call. Never fails.
func (e *Economy) Click(boostActive bool, eventMult float64) ClickResult {
	mult := 1.0
	if boostActive {
		mult = e.bal.Click.BoostMult
	}
	comp := e.CompositeMult(eventMult)
	res := ClickResult{
		Boxes:  float64(e.state.KPI) * mult * comp,
		Salary: e.bal.Click.Salary * mult * comp,
	}
	e.addBoxes(res.Boxes)
	e.AddSalary(res.Salary)
	e.clicks++

	if e.bal.Click.PenaltyChance > 0 && e.rng.Intn(e.bal.Click.PenaltyChance) == 0 {
		res.Penalty = e.bal.Click.PenaltyAmount
		e.AddSalary(-res.Penalty)
	}
	return res
}

// AutoClick performs one click-equivalent gain without the penalty roll and
// without the boost multiplier. Used by the auto clicker.
func (e *Economy) AutoClick(eventMult float64) {
	comp := e.CompositeMult(eventMult)
	e.addBoxes(float64(e.state.KPI) * comp)
	e.AddSalary(e.bal.Click.Salary * comp)
}

// BuyBuilding purchases one copy of the building at index i.
func (e *Economy) BuyBuilding(i int) (*Building, error) {
	if i < 0 || i >= len(e.buildings) {
		return nil, ErrUnknownBuilding
	}
	b := &e.buildings[i]
	price := BuildingPrice(b.BasePrice, b.Count, e.bal.Growth.BuildingPrice, e.DiscountMult())
	if e.state.Salary < price {
		return nil, ErrInsufficientFunds
	}
	e.AddSalary(-price)
	b.Count++
	return b, nil
}

// BuyMeta purchases the next level of the meta track with the given key and
// returns the tokens spent.
func (e *Economy) BuyMeta(key string) (int, error) {
	base := metaBaseCost(key)
	if base == 0 {
		return 0, ErrUnknownMeta
	}
	cost := MetaCost(base, e.state.Meta[key], e.bal.Growth.MetaCost)
	if e.state.Prestige < cost {
		return 0, ErrInsufficientPrestige
	}
	e.state.Prestige -= cost
	e.state.Meta[key]++
	return cost, nil
}

// UpgradeKPI buys one KPI point for salary, bypassing the box threshold.
func (e *Economy) UpgradeKPI() error {
	if e.state.Salary < e.bal.Costs.KPIUpgrade {
		return ErrInsufficientFunds
	}
	e.AddSalary(-e.bal.Costs.KPIUpgrade)
	e.state.KPI++
	return nil
}

// BuyAutoClicker enables the auto clicker for a fixed salary cost.
func (e *Economy) BuyAutoClicker() error {
	if e.state.AutoClick {
		return ErrAlreadyOwned
	}
	if e.state.Salary < e.bal.Costs.AutoClicker {
		return ErrInsufficientFunds
	}
	e.AddSalary(-e.bal.Costs.AutoClicker)
	e.state.AutoClick = true
	return nil
}

// PrestigeGain previews the tokens a prestige would grant right now, or 0 if
// below the threshold.
func (e *Economy) PrestigeGain() int {
	if e.state.Salary < e.bal.Costs.PrestigeFloor {
		return 0
	}
	gained := int(math.Sqrt(e.state.Salary / e.bal.Costs.PrestigeFloor))
	if gained < 1 {
		gained = 1
	}
	return gained
}

// PrestigeReset converts the run into tokens and resets everything except
// tokens and meta levels. Returns the tokens gained.
func (e *Economy) PrestigeReset() (int, error) {
	if e.state.Salary < e.bal.Costs.PrestigeFloor {
		return 0, ErrBelowThreshold
	}
	gained := e.PrestigeGain()
	e.state.Prestige += gained

	e.state.Boxes = 0
	e.state.Salary = 0
	e.state.KPI = 1
	e.state.UpgradeGoal = e.bal.Growth.InitialGoal
	e.state.AutoClick = false
	for i := range e.buildings {
		e.buildings[i].Count = 0
	}
	return gained, nil
}

// ApplyThresholds runs the KPI threshold-crossing loop: while boxes cover the
// goal, consume the goal, bump KPI, and grow the goal. One large passive tick
// can cross several thresholds; all of them are processed in order. Returns
// the number of levels gained.
func (e *Economy) ApplyThresholds() int {
	levels := 0
	for e.state.Boxes >= float64(e.state.UpgradeGoal) {
		e.state.Boxes -= float64(e.state.UpgradeGoal)
		e.state.KPI++
		e.state.UpgradeGoal = NextGoal(e.state.UpgradeGoal, e.bal.Growth.UpgradeGoal)
		levels++
	}
	return levels
}

// AddSalary adjusts the salary balance. Positive amounts count toward the
// lifetime-earned total; negative amounts may push the balance below zero
// and that is allowed (boss penalties, click penalties).
func (e *Economy) AddSalary(amount float64) {
	e.state.Salary += amount
	if amount > 0 {
		e.earnedSalary += amount
	}
}

// addBoxes credits boxes and the lifetime counter used for boss progress.
func (e *Economy) addBoxes(amount float64) {
	e.state.Boxes += amount
	if amount > 0 {
		e.lifetimeBoxes += amount
	}
}

// LifetimeBoxes returns the session's total boxes earned, the boss-progress
// measure.
func (e *Economy) LifetimeBoxes() float64 { return e.lifetimeBoxes }

// RecordBossWin bumps the session inspection-win counter.
func (e *Economy) RecordBossWin() { e.bossWins++ }

// BossWins returns the session inspection-win counter.
func (e *Economy) BossWins() int { return e.bossWins }

// Clicks returns the session manual-click counter.
func (e *Economy) Clicks() int { return e.clicks }

// TotalBuildings returns the sum of owned building counts.
func (e *Economy) TotalBuildings() int {
	total := 0
	for _, b := range e.buildings {
		total += b.Count
	}
	return total
}

// Progress assembles the read-only snapshot achievements are judged against.
func (e *Economy) Progress() Progress {
	return Progress{
		Clicks:         e.clicks,
		EarnedSalary:   e.earnedSalary,
		TotalBuildings: e.TotalBuildings(),
		PrestigeTokens: e.state.Prestige,
		BossWins:       e.bossWins,
		KPI:            e.state.KPI,
	}
}

// Durable exports the persisted slice of state. Salary is clamped at zero on
// the way out: debt from penalties is a session condition and is never
// written to disk.
func (e *Economy) Durable() save.State {
	st := save.State{
		Boxes:       e.state.Boxes,
		Salary:      math.Max(0, e.state.Salary),
		KPI:         e.state.KPI,
		UpgradeGoal: e.state.UpgradeGoal,
		AutoClick:   e.state.AutoClick,
		Prestige:    e.state.Prestige,
		Meta:        make(map[string]int, len(e.state.Meta)),
		Buildings:   make(map[string]int, len(e.buildings)),
	}
	for k, v := range e.state.Meta {
		st.Meta[k] = v
	}
	for _, b := range e.buildings {
		st.Buildings[b.ID] = b.Count
	}
	return st
}

// RestoreDurable loads a persisted state into the economy. Unknown building
// or meta keys in the document are ignored.
func (e *Economy) RestoreDurable(st save.State) {
	e.state.Boxes = st.Boxes
	e.state.Salary = st.Salary
	e.state.KPI = st.KPI
	e.state.UpgradeGoal = st.UpgradeGoal
	e.state.AutoClick = st.AutoClick
	e.state.Prestige = st.Prestige
	for _, k := range MetaKeys() {
		if v, ok := st.Meta[k]; ok && v >= 0 {
			e.state.Meta[k] = v
		}
	}
	for i := range e.buildings {
		if v, ok := st.Buildings[e.buildings[i].ID]; ok && v >= 0 {
			e.buildings[i].Count = v
		}
	}
}

// DefaultSaveState returns the save document matching a fresh economy, used
// as the field-by-field defaulting base when loading.
func DefaultSaveState(bal config.Balance) save.State {
	st := save.State{
		KPI:         1,
		UpgradeGoal: bal.Growth.InitialGoal,
		Meta:        make(map[string]int),
		Buildings:   make(map[string]int),
	}
	for _, k := range MetaKeys() {
		st.Meta[k] = 0
	}
	for _, b := range bal.Buildings {
		st.Buildings[b.ID] = 0
	}
	return st
}
