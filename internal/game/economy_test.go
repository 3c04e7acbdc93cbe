package game

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/purple-shift/internal/config"
)

// newTestEconomy builds an economy on the stock balance with the click
// penalty disabled, so click yields are deterministic regardless of seed.
func newTestEconomy(seed int64) *Economy {
	bal := config.DefaultBalance()
	bal.Click.PenaltyChance = 0
	return NewEconomy(bal, rand.New(rand.NewSource(seed)))
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewEconomyDefaults(t *testing.T) {
	e := newTestEconomy(1)
	st := e.State()

	if st.KPI != 1 {
		t.Errorf("Expected KPI 1, got %d", st.KPI)
	}
	if st.UpgradeGoal != 100 {
		t.Errorf("Expected goal 100, got %d", st.UpgradeGoal)
	}
	if st.Boxes != 0 || st.Salary != 0 {
		t.Errorf("Expected empty resources, got boxes=%v salary=%v", st.Boxes, st.Salary)
	}
	if e.TotalBPS() != 0 {
		t.Errorf("Expected zero passive rate, got %v", e.TotalBPS())
	}
	for _, k := range MetaKeys() {
		if st.Meta[k] != 0 {
			t.Errorf("Expected meta %q at 0, got %d", k, st.Meta[k])
		}
	}
}

func TestClickYield(t *testing.T) {
	e := newTestEconomy(1)

	res := e.Click(false, 1.0)
	if !almostEqual(res.Boxes, 1) {
		t.Errorf("Expected 1 box per click at KPI 1, got %v", res.Boxes)
	}
	if !almostEqual(res.Salary, 10) {
		t.Errorf("Expected 10 salary per click, got %v", res.Salary)
	}
	if res.Penalty != 0 {
		t.Errorf("Expected no penalty with chance disabled, got %v", res.Penalty)
	}

	st := e.State()
	if !almostEqual(st.Boxes, 1) || !almostEqual(st.Salary, 10) {
		t.Errorf("State not credited: boxes=%v salary=%v", st.Boxes, st.Salary)
	}
	if e.Clicks() != 1 {
		t.Errorf("Expected click counter 1, got %d", e.Clicks())
	}
}

func TestClickBoostMultiplier(t *testing.T) {
	e := newTestEconomy(1)

	res := e.Click(true, 1.0)
	if !almostEqual(res.Boxes, 5) {
		t.Errorf("Expected 5 boxes inside the boost window, got %v", res.Boxes)
	}
	if !almostEqual(res.Salary, 50) {
		t.Errorf("Expected 50 salary inside the boost window, got %v", res.Salary)
	}
}

func TestClickPenaltyAlways(t *testing.T) {
	bal := config.DefaultBalance()
	bal.Click.PenaltyChance = 1 // every click rolls a penalty
	e := NewEconomy(bal, rand.New(rand.NewSource(1)))

	res := e.Click(false, 1.0)
	if !almostEqual(res.Penalty, 50) {
		t.Errorf("Expected a 50 penalty, got %v", res.Penalty)
	}
	// 10 earned, 50 lost: the balance goes negative and stays there.
	if !almostEqual(e.State().Salary, -40) {
		t.Errorf("Expected salary -40, got %v", e.State().Salary)
	}
}

func TestTickPassiveIncome(t *testing.T) {
	e := newTestEconomy(1)

	// No buildings: a tick moves nothing.
	e.Tick(10, 1.0)
	if st := e.State(); st.Boxes != 0 || st.Salary != 0 {
		t.Fatalf("Expected no income without buildings, got boxes=%v salary=%v", st.Boxes, st.Salary)
	}

	// One sorter at 0.3 b/s.
	st := DefaultSaveState(e.bal)
	st.Buildings["sorter"] = 1
	e.RestoreDurable(st)

	e.Tick(1, 1.0)
	got := e.State()
	if !almostEqual(got.Boxes, 0.3) {
		t.Errorf("Expected 0.3 boxes after 1s, got %v", got.Boxes)
	}
	if !almostEqual(got.Salary, 3) {
		t.Errorf("Expected 3 salary after 1s, got %v", got.Salary)
	}
}

func TestTickHonorsEventMultiplier(t *testing.T) {
	e := newTestEconomy(1)
	st := DefaultSaveState(e.bal)
	st.Buildings["sorter"] = 2
	e.RestoreDurable(st)

	e.Tick(1, 0.5)
	if got := e.State().Boxes; !almostEqual(got, 0.3) {
		t.Errorf("Expected halved passive rate 0.3, got %v", got)
	}
}

func TestBuyBuilding(t *testing.T) {
	e := newTestEconomy(1)

	if _, err := e.BuyBuilding(0); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("Expected ErrInsufficientFunds, got %v", err)
	}
	if e.TotalBuildings() != 0 {
		t.Fatal("Failed purchase must not mutate counts")
	}

	e.AddSalary(200)
	b, err := e.BuyBuilding(0)
	if err != nil {
		t.Fatalf("BuyBuilding() failed: %v", err)
	}
	if b.ID != "sorter" || b.Count != 1 {
		t.Errorf("Expected sorter x1, got %s x%d", b.ID, b.Count)
	}
	if !almostEqual(e.State().Salary, 50) {
		t.Errorf("Expected salary 50 after the 150 purchase, got %v", e.State().Salary)
	}

	// The second copy costs more.
	e.AddSalary(200)
	if _, err := e.BuyBuilding(0); err != nil {
		t.Fatalf("Second BuyBuilding() failed: %v", err)
	}
	// 250 - floor(150*1.15) = 250 - 172 = 78
	if !almostEqual(e.State().Salary, 78) {
		t.Errorf("Expected salary 78 after the second copy, got %v", e.State().Salary)
	}
}

func TestBuyBuildingUnknownIndex(t *testing.T) {
	e := newTestEconomy(1)
	if _, err := e.BuyBuilding(-1); !errors.Is(err, ErrUnknownBuilding) {
		t.Errorf("Expected ErrUnknownBuilding for -1, got %v", err)
	}
	if _, err := e.BuyBuilding(99); !errors.Is(err, ErrUnknownBuilding) {
		t.Errorf("Expected ErrUnknownBuilding for 99, got %v", err)
	}
}

func TestUpgradeKPI(t *testing.T) {
	e := newTestEconomy(1)

	if err := e.UpgradeKPI(); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("Expected ErrInsufficientFunds, got %v", err)
	}

	e.AddSalary(1000)
	if err := e.UpgradeKPI(); err != nil {
		t.Fatalf("UpgradeKPI() failed: %v", err)
	}
	st := e.State()
	if st.KPI != 2 {
		t.Errorf("Expected KPI 2, got %d", st.KPI)
	}
	if !almostEqual(st.Salary, 0) {
		t.Errorf("Expected salary spent to 0, got %v", st.Salary)
	}
}

func TestBuyAutoClicker(t *testing.T) {
	e := newTestEconomy(1)

	if err := e.BuyAutoClicker(); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("Expected ErrInsufficientFunds, got %v", err)
	}

	e.AddSalary(5000)
	if err := e.BuyAutoClicker(); err != nil {
		t.Fatalf("BuyAutoClicker() failed: %v", err)
	}
	if !e.State().AutoClick {
		t.Error("Expected auto clicker owned")
	}

	e.AddSalary(5000)
	if err := e.BuyAutoClicker(); !errors.Is(err, ErrAlreadyOwned) {
		t.Errorf("Expected ErrAlreadyOwned, got %v", err)
	}
}

func TestBuyMeta(t *testing.T) {
	e := newTestEconomy(1)

	if _, err := e.BuyMeta(MetaIncome); !errors.Is(err, ErrInsufficientPrestige) {
		t.Fatalf("Expected ErrInsufficientPrestige, got %v", err)
	}
	if _, err := e.BuyMeta("nonsense"); !errors.Is(err, ErrUnknownMeta) {
		t.Fatalf("Expected ErrUnknownMeta, got %v", err)
	}

	st := DefaultSaveState(e.bal)
	st.Prestige = 10
	e.RestoreDurable(st)

	cost, err := e.BuyMeta(MetaIncome)
	if err != nil {
		t.Fatalf("BuyMeta() failed: %v", err)
	}
	if cost != 3 {
		t.Errorf("Expected first income level to cost 3, got %d", cost)
	}
	got := e.State()
	if got.Prestige != 7 {
		t.Errorf("Expected 7 tokens left, got %d", got.Prestige)
	}
	if got.Meta[MetaIncome] != 1 {
		t.Errorf("Expected income level 1, got %d", got.Meta[MetaIncome])
	}

	// Next level follows the meta growth curve.
	cost, err = e.BuyMeta(MetaIncome)
	if err != nil {
		t.Fatalf("Second BuyMeta() failed: %v", err)
	}
	if cost != 4 {
		t.Errorf("Expected second income level to cost 4, got %d", cost)
	}
}

func TestMultipliers(t *testing.T) {
	e := newTestEconomy(1)
	st := DefaultSaveState(e.bal)
	st.Prestige = 2
	st.Meta[MetaIncome] = 1
	st.Meta[MetaCheap] = 3
	e.RestoreDurable(st)

	if got := e.PrestigeMult(); !almostEqual(got, 1.2) {
		t.Errorf("Expected prestige mult 1.2, got %v", got)
	}
	if got := e.DiscountMult(); !almostEqual(got, 0.7) {
		t.Errorf("Expected discount 0.7, got %v", got)
	}

	// The discount floors at 0.2 no matter how deep the track goes.
	st.Meta[MetaCheap] = 30
	e.RestoreDurable(st)
	if got := e.DiscountMult(); !almostEqual(got, 0.2) {
		t.Errorf("Expected discount floor 0.2, got %v", got)
	}

	e.SetAchievementMult(1.1)
	// prestige 1.2 × event 2.0 × achievements 1.1
	if got := e.CompositeMult(2.0); !almostEqual(got, 2.64) {
		t.Errorf("Expected composite 2.64, got %v", got)
	}
}

func TestApplyThresholdsMultiCrossing(t *testing.T) {
	e := newTestEconomy(1)
	st := DefaultSaveState(e.bal)
	st.Boxes = 400
	e.RestoreDurable(st)

	levels := e.ApplyThresholds()
	if levels != 3 {
		t.Fatalf("Expected 3 levels from 400 boxes, got %d", levels)
	}

	got := e.State()
	// 400 -> cross 100 -> cross 122 -> cross 148 -> 30 left, goal 180.
	if got.KPI != 4 {
		t.Errorf("Expected KPI 4, got %d", got.KPI)
	}
	if got.UpgradeGoal != 180 {
		t.Errorf("Expected goal 180, got %d", got.UpgradeGoal)
	}
	if !almostEqual(got.Boxes, 30) {
		t.Errorf("Expected 30 boxes left, got %v", got.Boxes)
	}

	// Below the goal the loop is idempotent.
	if again := e.ApplyThresholds(); again != 0 {
		t.Errorf("Expected no further crossings, got %d", again)
	}
	if after := e.State(); after.KPI != got.KPI || after.UpgradeGoal != got.UpgradeGoal || after.Boxes != got.Boxes {
		t.Errorf("Repeated threshold pass mutated state: %+v vs %+v", after, got)
	}
}

func TestPrestige(t *testing.T) {
	e := newTestEconomy(1)

	if _, err := e.PrestigeReset(); !errors.Is(err, ErrBelowThreshold) {
		t.Fatalf("Expected ErrBelowThreshold, got %v", err)
	}
	if e.PrestigeGain() != 0 {
		t.Errorf("Expected 0 preview below threshold, got %d", e.PrestigeGain())
	}

	st := DefaultSaveState(e.bal)
	st.Salary = 400000
	st.KPI = 12
	st.AutoClick = true
	st.Buildings["sorter"] = 5
	st.Meta[MetaIncome] = 1
	e.RestoreDurable(st)

	if e.PrestigeGain() != 2 {
		t.Errorf("Expected 2 tokens preview from 400k, got %d", e.PrestigeGain())
	}

	gained, err := e.PrestigeReset()
	if err != nil {
		t.Fatalf("PrestigeReset() failed: %v", err)
	}
	if gained != 2 {
		t.Errorf("Expected 2 tokens gained, got %d", gained)
	}

	got := e.State()
	if got.Prestige != 2 {
		t.Errorf("Expected 2 tokens held, got %d", got.Prestige)
	}
	if got.Salary != 0 || got.Boxes != 0 {
		t.Errorf("Expected resources reset, got salary=%v boxes=%v", got.Salary, got.Boxes)
	}
	if got.KPI != 1 || got.UpgradeGoal != 100 {
		t.Errorf("Expected run progress reset, got kpi=%d goal=%d", got.KPI, got.UpgradeGoal)
	}
	if got.AutoClick {
		t.Error("Expected auto clicker reset")
	}
	if e.TotalBuildings() != 0 {
		t.Errorf("Expected buildings reset, got %d", e.TotalBuildings())
	}
	// Meta levels survive the reset.
	if got.Meta[MetaIncome] != 1 {
		t.Errorf("Expected income meta kept, got %d", got.Meta[MetaIncome])
	}
}

func TestPrestigeGainAtFloor(t *testing.T) {
	e := newTestEconomy(1)
	st := DefaultSaveState(e.bal)
	st.Salary = 100000
	e.RestoreDurable(st)

	if e.PrestigeGain() != 1 {
		t.Errorf("Expected 1 token exactly at the floor, got %d", e.PrestigeGain())
	}
}

func TestDurableClampsNegativeSalary(t *testing.T) {
	e := newTestEconomy(1)
	e.AddSalary(-100)

	if !almostEqual(e.State().Salary, -100) {
		t.Fatalf("Expected live salary -100, got %v", e.State().Salary)
	}
	if got := e.Durable().Salary; got != 0 {
		t.Errorf("Expected exported salary clamped to 0, got %v", got)
	}
}

func TestDurableRoundTrip(t *testing.T) {
	e := newTestEconomy(1)
	st := DefaultSaveState(e.bal)
	st.Boxes = 42
	st.Salary = 1234
	st.KPI = 7
	st.UpgradeGoal = 148
	st.AutoClick = true
	st.Prestige = 3
	st.Meta[MetaTaisher] = 2
	st.Buildings["buffer"] = 4
	e.RestoreDurable(st)

	out := e.Durable()
	if out.Boxes != 42 || out.Salary != 1234 || out.KPI != 7 || out.UpgradeGoal != 148 {
		t.Errorf("Run state lost in export: %+v", out)
	}
	if !out.AutoClick || out.Prestige != 3 {
		t.Errorf("Meta state lost in export: %+v", out)
	}
	if out.Meta[MetaTaisher] != 2 {
		t.Errorf("Expected taisher level 2, got %d", out.Meta[MetaTaisher])
	}
	if out.Buildings["buffer"] != 4 {
		t.Errorf("Expected 4 buffers, got %d", out.Buildings["buffer"])
	}
}

func TestRestoreDurableIgnoresUnknownKeys(t *testing.T) {
	e := newTestEconomy(1)
	st := DefaultSaveState(e.bal)
	st.Buildings["teleporter"] = 99
	st.Meta["luck"] = 5
	st.Buildings["sorter"] = -3 // negative counts are rejected too
	e.RestoreDurable(st)

	if e.TotalBuildings() != 0 {
		t.Errorf("Expected unknown/negative counts ignored, got %d", e.TotalBuildings())
	}
	if _, ok := e.State().Meta["luck"]; ok {
		t.Error("Expected unknown meta key ignored")
	}
}
