// Package config provides YAML-based balance configuration loading for the
// Purple Shift progression engine. Every tunable number the engine uses comes
// from here, so balance passes never require a recompile.
package config

// Balance contains all balance parameters for the game.
type Balance struct {
	Click     ClickBalance     `yaml:"click"`
	Costs     CostBalance      `yaml:"costs"`
	Growth    GrowthBalance    `yaml:"growth"`
	Events    EventBalance     `yaml:"events"`
	Boss      BossBalance      `yaml:"boss"`
	Buildings []BuildingConfig `yaml:"buildings"`
	Autosave  AutosaveBalance  `yaml:"autosave"`
}

// ClickBalance defines manual and automatic click yields.
type ClickBalance struct {
	Salary         float64 `yaml:"salary"`           // Currency per click before multipliers
	PenaltyChance  int     `yaml:"penalty_chance"`   // 1-in-N chance of a penalty per manual click
	PenaltyAmount  float64 `yaml:"penalty_amount"`   // Currency lost on a click penalty
	BoostMult      float64 `yaml:"boost_mult"`       // Click multiplier inside the boost window
	AutoIntervalMS int     `yaml:"auto_interval_ms"` // Milliseconds between auto-clicker clicks
}

// CostBalance defines fixed purchase costs and the prestige gate.
type CostBalance struct {
	KPIUpgrade    float64 `yaml:"kpi_upgrade"`    // Salary cost of a manual KPI point
	AutoClicker   float64 `yaml:"auto_clicker"`   // Salary cost of the auto clicker
	PrestigeFloor float64 `yaml:"prestige_floor"` // Minimum salary to prestige
}

// GrowthBalance defines the geometric growth curves.
type GrowthBalance struct {
	BuildingPrice float64 `yaml:"building_price"` // Price multiplier per owned copy
	MetaCost      float64 `yaml:"meta_cost"`      // Meta cost multiplier per level
	UpgradeGoal   float64 `yaml:"upgrade_goal"`   // Goal multiplier per KPI level
	InitialGoal   int     `yaml:"initial_goal"`   // First box goal of a run
}

// EventBalance defines random-event and boost-window timing.
type EventBalance struct {
	FirstGapMin    float64 `yaml:"first_gap_min"`    // Seconds before the first event, lower bound
	FirstGapMax    float64 `yaml:"first_gap_max"`    // Seconds before the first event, upper bound
	GapMin         float64 `yaml:"gap_min"`          // Seconds between events, lower bound
	GapMax         float64 `yaml:"gap_max"`          // Seconds between events, upper bound
	Duration       float64 `yaml:"duration"`         // Seconds a debuff/boost lasts
	BonusDuration  float64 `yaml:"bonus_duration"`   // Seconds the instant-bonus banner lasts
	BonusMin       int     `yaml:"bonus_min"`        // Instant bonus roll, lower bound
	BonusMax       int     `yaml:"bonus_max"`        // Instant bonus roll, upper bound
	DebuffMult     float64 `yaml:"debuff_mult"`      // Income multiplier during a debuff
	BoostMult      float64 `yaml:"boost_mult"`       // Income multiplier during a boost
	WindowPeriod   float64 `yaml:"window_period"`    // Boost-window cycle length in seconds
	WindowBase     float64 `yaml:"window_base"`      // Open seconds of each cycle at meta level 0
	WindowPerLevel float64 `yaml:"window_per_level"` // Extra open seconds per taisher meta level
}

// BossBalance defines the inspection challenge.
type BossBalance struct {
	FirstGapMin float64 `yaml:"first_gap_min"` // Seconds before the first inspection, lower bound
	FirstGapMax float64 `yaml:"first_gap_max"` // Seconds before the first inspection, upper bound
	GapMin      float64 `yaml:"gap_min"`       // Seconds between inspections, lower bound
	GapMax      float64 `yaml:"gap_max"`       // Seconds between inspections, upper bound
	Duration    float64 `yaml:"duration"`      // Seconds an inspection lasts
	GoalBase    float64 `yaml:"goal_base"`     // Flat part of the box goal
	GoalPerBPS  float64 `yaml:"goal_per_bps"`  // Goal per point of passive rate
	GoalPerKPI  float64 `yaml:"goal_per_kpi"`  // Goal per KPI level
	RewardBase  float64 `yaml:"reward_base"`   // Flat part of the pass reward
	RewardScale float64 `yaml:"reward_scale"`  // Reward per point of goal
	PenaltyBase float64 `yaml:"penalty_base"`  // Flat part of the fail penalty
	PenaltyFrac float64 `yaml:"penalty_frac"`  // Penalty per point of goal
}

// BuildingConfig defines one generator in the catalog.
type BuildingConfig struct {
	ID        string  `yaml:"id"`
	Name      string  `yaml:"name"`
	BasePrice float64 `yaml:"base_price"`
	BPS       float64 `yaml:"bps"`
}

// AutosaveBalance defines persistence cadence.
type AutosaveBalance struct {
	IntervalSec float64 `yaml:"interval_sec"` // Seconds between autosaves
}
