package config

import (
	_ "embed"
)

//go:embed defaults/balance.yaml
var defaultBalanceYAML []byte

// DefaultBalance returns the stock balance, matching the embedded YAML.
func DefaultBalance() Balance {
	return Balance{
		Click: ClickBalance{
			Salary:         10,
			PenaltyChance:  20,
			PenaltyAmount:  50,
			BoostMult:      5,
			AutoIntervalMS: 1000,
		},
		Costs: CostBalance{
			KPIUpgrade:    1000,
			AutoClicker:   5000,
			PrestigeFloor: 100000,
		},
		Growth: GrowthBalance{
			BuildingPrice: 1.15,
			MetaCost:      1.65,
			UpgradeGoal:   1.22,
			InitialGoal:   100,
		},
		Events: EventBalance{
			FirstGapMin:    20,
			FirstGapMax:    35,
			GapMin:         25,
			GapMax:         45,
			Duration:       5,
			BonusDuration:  3,
			BonusMin:       1000,
			BonusMax:       5000,
			DebuffMult:     0.5,
			BoostMult:      3.0,
			WindowPeriod:   15,
			WindowBase:     3,
			WindowPerLevel: 2,
		},
		Boss: BossBalance{
			FirstGapMin: 120,
			FirstGapMax: 180,
			GapMin:      120,
			GapMax:      240,
			Duration:    10,
			GoalBase:    60,
			GoalPerBPS:  10,
			GoalPerKPI:  5,
			RewardBase:  5000,
			RewardScale: 8,
			PenaltyBase: 2000,
			PenaltyFrac: 3,
		},
		Buildings: []BuildingConfig{
			{ID: "sorter", Name: "Sorter", BasePrice: 150, BPS: 0.3},
			{ID: "buffer", Name: "Buffer", BasePrice: 800, BPS: 1.5},
			{ID: "mezz", Name: "Mezzanine", BasePrice: 4500, BPS: 6.0},
			{ID: "autosort", Name: "AutoSort", BasePrice: 25000, BPS: 25.0},
		},
		Autosave: AutosaveBalance{
			IntervalSec: 2,
		},
	}
}
