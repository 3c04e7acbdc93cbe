// Package save persists the durable player state as a JSON document.
// Loading is tolerant: every missing or malformed field independently falls
// back to its default instead of rejecting the whole document, and unknown
// extra fields are ignored. Nothing here is fatal to the caller.
package save

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// State is the durable slice of player progress. Session-only data (active
// events, achievements, boss progress) is deliberately absent: it is rebuilt
// from scratch on every launch.
type State struct {
	Boxes       float64        `json:"boxes"`
	Salary      float64        `json:"salary"`
	KPI         int            `json:"kpi"`
	UpgradeGoal int            `json:"upgrade_goal"`
	AutoClick   bool           `json:"auto_click"`
	Prestige    int            `json:"prestige"`
	Meta        map[string]int `json:"meta"`
	Buildings   map[string]int `json:"buildings"`
}

// Write serializes the state to path, creating parent directories as needed.
func Write(path string, st State) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save: cannot create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("save: cannot encode state: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("save: cannot write %s: %w", path, err)
	}
	return nil
}

// Load reads the state from path. Every field defaults independently from
// def; a missing file returns def unchanged with no error. Only an unreadable
// file or a document that is not a JSON object at the top level is reported,
// and even then the returned state is usable.
func Load(path string, def State) (State, error) {
	st := cloneState(def)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return st, nil
		}
		return st, fmt.Errorf("save: cannot read %s: %w", path, err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return st, fmt.Errorf("save: cannot parse %s: %w", path, err)
	}

	decodeField(fields, "boxes", &st.Boxes)
	decodeField(fields, "salary", &st.Salary)
	decodeField(fields, "kpi", &st.KPI)
	decodeField(fields, "upgrade_goal", &st.UpgradeGoal)
	decodeField(fields, "auto_click", &st.AutoClick)
	decodeField(fields, "prestige", &st.Prestige)

	// Maps merge per key so a truncated meta block keeps its defaults.
	var meta map[string]int
	if decodeField(fields, "meta", &meta) {
		for k, v := range meta {
			if _, known := st.Meta[k]; known && v >= 0 {
				st.Meta[k] = v
			}
		}
	}
	var counts map[string]int
	if decodeField(fields, "buildings", &counts) {
		for k, v := range counts {
			if _, known := st.Buildings[k]; known && v >= 0 {
				st.Buildings[k] = v
			}
		}
	}

	sanitize(&st, def)
	return st, nil
}

// decodeField unmarshals one field into dst, leaving dst untouched on a
// missing or malformed value. Reports whether dst was set.
func decodeField(fields map[string]json.RawMessage, key string, dst any) bool {
	raw, ok := fields[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false
	}
	return true
}

// sanitize clamps loaded values back into the engine's invariants.
func sanitize(st *State, def State) {
	if st.Boxes < 0 {
		st.Boxes = 0
	}
	if st.Salary < 0 {
		st.Salary = 0
	}
	if st.KPI < 1 {
		st.KPI = 1
	}
	if st.UpgradeGoal < 1 {
		st.UpgradeGoal = def.UpgradeGoal
	}
	if st.Prestige < 0 {
		st.Prestige = 0
	}
}

func cloneState(def State) State {
	st := def
	st.Meta = make(map[string]int, len(def.Meta))
	for k, v := range def.Meta {
		st.Meta[k] = v
	}
	st.Buildings = make(map[string]int, len(def.Buildings))
	for k, v := range def.Buildings {
		st.Buildings[k] = v
	}
	return st
}
