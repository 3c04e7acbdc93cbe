package core

// CommandKind identifies a user intent, abstracted from physical key presses.
// The platform maps keys to commands; the engine validates and applies them.
type CommandKind int

const (
	CmdNone           CommandKind = iota
	CmdClick                      // Space/Enter - pick a box
	CmdBuyBuilding                // 1-4 - buy building at Index
	CmdBuyMeta                    // 1-4 in meta shop - buy meta upgrade Key
	CmdUpgradeKPI                 // K - buy +1 KPI for salary
	CmdBuyAutoClicker             // A - buy the auto clicker
	CmdPrestige                   // P - prestige reset
	CmdToggleMetaShop             // M - open/close the meta shop overlay
)

// String returns a human-readable name for the command kind.
func (k CommandKind) String() string {
	switch k {
	case CmdNone:
		return "None"
	case CmdClick:
		return "Click"
	case CmdBuyBuilding:
		return "BuyBuilding"
	case CmdBuyMeta:
		return "BuyMeta"
	case CmdUpgradeKPI:
		return "UpgradeKPI"
	case CmdBuyAutoClicker:
		return "BuyAutoClicker"
	case CmdPrestige:
		return "Prestige"
	case CmdToggleMetaShop:
		return "ToggleMetaShop"
	default:
		return "Unknown"
	}
}

// Command is one user intent delivered to the engine for a frame.
type Command struct {
	Kind  CommandKind
	Index int    // Building index for CmdBuyBuilding
	Key   string // Meta-upgrade key for CmdBuyMeta
}

// Click returns a click command.
func Click() Command { return Command{Kind: CmdClick} }

// BuyBuilding returns a buy command for the building at index i.
func BuyBuilding(i int) Command { return Command{Kind: CmdBuyBuilding, Index: i} }

// BuyMeta returns a buy command for the meta upgrade with the given key.
func BuyMeta(key string) Command { return Command{Kind: CmdBuyMeta, Key: key} }
