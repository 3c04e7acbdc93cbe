package game

// Rank is a KPI tier. Mult is the rank's display income multiplier: it is
// shown in the HUD but never folded into the composite income multiplier.
type Rank struct {
	Label string
	Mult  float64
}

// rankTable lists the tiers in ascending order. MinKPI is inclusive; a KPI
// belongs to the last tier whose MinKPI it reaches.
var rankTable = []struct {
	MinKPI int
	Rank   Rank
}{
	{0, Rank{Label: "Novice", Mult: 1.0}},
	{5, Rank{Label: "Trainee", Mult: 1.05}},
	{10, Rank{Label: "Worker", Mult: 1.10}},
	{20, Rank{Label: "Shift Senior", Mult: 1.15}},
	{35, Rank{Label: "Taisher", Mult: 1.25}},
	{50, Rank{Label: "Warehouse Master", Mult: 1.35}},
	{75, Rank{Label: "Shift Legend", Mult: 1.50}},
	{100, Rank{Label: "Logistics Architect", Mult: 1.75}},
	{150, Rank{Label: "Mezzanine Overlord", Mult: 2.0}},
	{250, Rank{Label: "Chaos Inspector", Mult: 2.5}},
	{400, Rank{Label: "Purple God", Mult: 3.0}},
}

// RankOf maps a KPI level to its tier.
func RankOf(kpi int) Rank {
	r := rankTable[0].Rank
	for _, entry := range rankTable[1:] {
		if kpi < entry.MinKPI {
			break
		}
		r = entry.Rank
	}
	return r
}

// RankCount returns the number of tiers.
func RankCount() int { return len(rankTable) }
