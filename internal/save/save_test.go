package save

import (
	"os"
	"path/filepath"
	"testing"
)

func testDefault() State {
	return State{
		KPI:         1,
		UpgradeGoal: 100,
		Meta:        map[string]int{"income": 0, "cheap": 0},
		Buildings:   map[string]int{"sorter": 0, "buffer": 0},
	}
}

func TestWriteLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "save.json")

	st := testDefault()
	st.Boxes = 12.5
	st.Salary = 3456
	st.KPI = 9
	st.UpgradeGoal = 219
	st.AutoClick = true
	st.Prestige = 4
	st.Meta["income"] = 2
	st.Buildings["sorter"] = 7

	if err := Write(path, st); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	got, err := Load(path, testDefault())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if got.Boxes != 12.5 || got.Salary != 3456 || got.KPI != 9 || got.UpgradeGoal != 219 {
		t.Errorf("Run state lost: %+v", got)
	}
	if !got.AutoClick || got.Prestige != 4 {
		t.Errorf("Flags lost: %+v", got)
	}
	if got.Meta["income"] != 2 {
		t.Errorf("Expected income 2, got %d", got.Meta["income"])
	}
	if got.Buildings["sorter"] != 7 {
		t.Errorf("Expected 7 sorters, got %d", got.Buildings["sorter"])
	}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")

	got, err := Load(path, testDefault())
	if err != nil {
		t.Fatalf("Load() of a missing file must not error, got %v", err)
	}
	if got.KPI != 1 || got.UpgradeGoal != 100 {
		t.Errorf("Expected the default state, got %+v", got)
	}
}

func TestLoadDefaultsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")

	// Only salary present; everything else defaults independently.
	doc := `{"salary": 500}`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path, testDefault())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got.Salary != 500 {
		t.Errorf("Expected salary 500, got %v", got.Salary)
	}
	if got.KPI != 1 || got.UpgradeGoal != 100 {
		t.Errorf("Expected missing fields defaulted, got %+v", got)
	}
}

func TestLoadToleratesMalformedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")

	// kpi is garbage, boxes is fine: only kpi falls back.
	doc := `{"kpi": "twelve", "boxes": 33, "meta": "broken"}`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path, testDefault())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got.Boxes != 33 {
		t.Errorf("Expected boxes 33, got %v", got.Boxes)
	}
	if got.KPI != 1 {
		t.Errorf("Expected malformed kpi defaulted to 1, got %d", got.KPI)
	}
	if got.Meta["income"] != 0 {
		t.Errorf("Expected intact default meta, got %+v", got.Meta)
	}
}

func TestLoadIgnoresUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")

	doc := `{"salary": 10, "loot_crates": 99, "buildings": {"sorter": 2, "teleporter": 5}}`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path, testDefault())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got.Buildings["sorter"] != 2 {
		t.Errorf("Expected 2 sorters, got %d", got.Buildings["sorter"])
	}
	if _, ok := got.Buildings["teleporter"]; ok {
		t.Error("Expected the unknown building key dropped")
	}
}

func TestLoadSanitizesInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")

	doc := `{"boxes": -10, "salary": -500, "kpi": 0, "upgrade_goal": -1, "prestige": -2}`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path, testDefault())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got.Boxes != 0 || got.Salary != 0 {
		t.Errorf("Expected negative resources clamped, got boxes=%v salary=%v", got.Boxes, got.Salary)
	}
	if got.KPI != 1 {
		t.Errorf("Expected KPI clamped to 1, got %d", got.KPI)
	}
	if got.UpgradeGoal != 100 {
		t.Errorf("Expected goal restored to default, got %d", got.UpgradeGoal)
	}
	if got.Prestige != 0 {
		t.Errorf("Expected prestige clamped to 0, got %d", got.Prestige)
	}
}

func TestLoadCorruptDocumentKeepsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")

	if err := os.WriteFile(path, []byte("not json at all"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path, testDefault())
	if err == nil {
		t.Fatal("Expected an error for a corrupt document")
	}
	// Even on error the returned state is the usable default.
	if got.KPI != 1 || got.UpgradeGoal != 100 {
		t.Errorf("Expected a usable default alongside the error, got %+v", got)
	}
}

func TestLoadDoesNotAliasDefaultMaps(t *testing.T) {
	def := testDefault()
	path := filepath.Join(t.TempDir(), "absent.json")

	got, err := Load(path, def)
	if err != nil {
		t.Fatal(err)
	}
	got.Meta["income"] = 99
	if def.Meta["income"] != 0 {
		t.Error("Loaded state must not share maps with the default")
	}
}
