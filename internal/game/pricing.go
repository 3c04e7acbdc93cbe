package game

import "math"

// BuildingPrice computes the price of the next copy of a building:
// base × growth^count × discount, floored to a whole number.
func BuildingPrice(base float64, count int, growth, discount float64) float64 {
	return math.Floor(base * math.Pow(growth, float64(count)) * discount)
}

// MetaCost computes the prestige-token cost of the next level of a meta
// upgrade: base × growth^level, floored.
func MetaCost(base, level int, growth float64) int {
	return int(float64(base) * math.Pow(growth, float64(level)))
}

// NextGoal computes the box goal after one KPI threshold crossing. The goal
// strictly increases: guarded against a degenerate growth factor rounding
// back to the same value.
func NextGoal(goal int, growth float64) int {
	next := int(float64(goal) * growth)
	if next <= goal {
		next = goal + 1
	}
	return next
}
