// Package game implements the Purple Shift progression engine: the economy
// state machine, pricing and rank models, timed random events, the inspection
// boss challenge, achievements, and the per-frame controller that composes
// them. The package is pure game logic with no terminal, file, or database
// dependencies; the platform layer drives it and renders its snapshots.
package game

import "github.com/vovakirdan/purple-shift/internal/config"

// Building is one passive generator. Catalog fields are immutable at runtime;
// only Count changes. Price is always derived, never stored.
type Building struct {
	ID        string
	Name      string
	BasePrice float64
	BPS       float64 // Boxes per second per owned copy
	Count     int
}

// newBuildings materializes the catalog from balance config.
func newBuildings(cfgs []config.BuildingConfig) []Building {
	out := make([]Building, len(cfgs))
	for i, c := range cfgs {
		out[i] = Building{ID: c.ID, Name: c.Name, BasePrice: c.BasePrice, BPS: c.BPS}
	}
	return out
}

// Meta upgrade track keys. Levels are persisted under these keys and survive
// prestige resets.
const (
	MetaIncome  = "income"
	MetaCheap   = "cheap"
	MetaTaisher = "taisher"
	MetaEvents  = "events"
)

// MetaItem is one permanent upgrade purchasable with prestige tokens.
type MetaItem struct {
	Key      string
	Title    string
	Desc     string
	BaseCost int
}

// MetaItems returns the fixed meta-shop catalog in display order.
func MetaItems() []MetaItem {
	return []MetaItem{
		{Key: MetaIncome, Title: "+10% total income", Desc: "Multiplies everything: clicks, passive, auto", BaseCost: 3},
		{Key: MetaCheap, Title: "-10% building prices", Desc: "Buildings are cheaper, permanently", BaseCost: 3},
		{Key: MetaTaisher, Title: "+2s boost window", Desc: "The Taisher window stays open longer", BaseCost: 2},
		{Key: MetaEvents, Title: "+25% event duration", Desc: "Random events last longer", BaseCost: 2},
	}
}

// MetaKeys returns the valid meta keys in catalog order.
func MetaKeys() []string {
	return []string{MetaIncome, MetaCheap, MetaTaisher, MetaEvents}
}

// metaBaseCost looks up the base cost for a key, or 0 for unknown keys.
func metaBaseCost(key string) int {
	for _, it := range MetaItems() {
		if it.Key == key {
			return it.BaseCost
		}
	}
	return 0
}
