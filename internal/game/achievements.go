package game

// Condition discriminates what an achievement measures. Achievements are
// plain data records dispatched through Met; no behavior lives in the
// catalog itself.
type Condition int

const (
	CondClicks    Condition = iota // Total manual clicks this session
	CondKPI                        // Current KPI level
	CondBuildings                  // Total owned building count
	CondPrestige                   // Prestige tokens held
	CondBossWins                   // Inspections passed this session
	CondEarned                     // Lifetime salary earned this session
)

// Achievement is one entry of the fixed catalog. Bonus is the permanent
// multiplicative income bonus granted on unlock.
type Achievement struct {
	ID        string
	Name      string
	Desc      string
	Cond      Condition
	Threshold int
	Bonus     float64
}

// Progress is the read-only snapshot achievements are evaluated against.
type Progress struct {
	Clicks         int
	EarnedSalary   float64
	TotalBuildings int
	PrestigeTokens int
	BossWins       int
	KPI            int
}

// Met reports whether the achievement's condition holds for the snapshot.
func (a Achievement) Met(p Progress) bool {
	switch a.Cond {
	case CondClicks:
		return p.Clicks >= a.Threshold
	case CondKPI:
		return p.KPI >= a.Threshold
	case CondBuildings:
		return p.TotalBuildings >= a.Threshold
	case CondPrestige:
		return p.PrestigeTokens >= a.Threshold
	case CondBossWins:
		return p.BossWins >= a.Threshold
	case CondEarned:
		return p.EarnedSalary >= float64(a.Threshold)
	default:
		return false
	}
}

// Achievements returns the fixed catalog in display order.
func Achievements() []Achievement {
	return []Achievement{
		{ID: "first_click", Name: "First Pick", Desc: "Make your first click", Cond: CondClicks, Threshold: 1, Bonus: 0.02},
		{ID: "kpi_25", Name: "KPI 25", Desc: "Reach KPI 25", Cond: CondKPI, Threshold: 25, Bonus: 0.05},
		{ID: "build_10", Name: "Crew", Desc: "Own 10 buildings", Cond: CondBuildings, Threshold: 10, Bonus: 0.03},
		{ID: "prestige_1", Name: "Rebirth", Desc: "Prestige once", Cond: CondPrestige, Threshold: 1, Bonus: 0.05},
		{ID: "boss_win", Name: "Passed Inspection", Desc: "Win an inspection", Cond: CondBossWins, Threshold: 1, Bonus: 0.04},
	}
}

// EvaluateAchievements marks every locked achievement whose condition now
// holds as unlocked and returns the newly unlocked entries. The unlock set
// only ever grows.
func EvaluateAchievements(unlocked map[string]bool, p Progress) []Achievement {
	var fresh []Achievement
	for _, a := range Achievements() {
		if unlocked[a.ID] {
			continue
		}
		if a.Met(p) {
			unlocked[a.ID] = true
			fresh = append(fresh, a)
		}
	}
	return fresh
}

// AchievementMultiplier returns the product of (1 + bonus) over the unlocked
// set. Callers cache the result and recompute only when the set changes.
func AchievementMultiplier(unlocked map[string]bool) float64 {
	m := 1.0
	for _, a := range Achievements() {
		if unlocked[a.ID] {
			m *= 1.0 + a.Bonus
		}
	}
	return m
}
