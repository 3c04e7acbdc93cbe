package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/purple-shift/internal/core"
	"github.com/vovakirdan/purple-shift/internal/game"
)

// KeyMapper translates Bubble Tea key messages to engine commands.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a command. metaOpen switches the digit
// row between building purchases and meta purchases. Returns the command
// (Kind may be CmdNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, metaOpen bool) (cmd core.Command, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.Command{}, true
	}

	switch key {
	case " ", "enter":
		return core.Click(), false
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if metaOpen {
			return core.BuyMeta(game.MetaKeys()[idx]), false
		}
		return core.BuyBuilding(idx), false
	case "k":
		return core.Command{Kind: core.CmdUpgradeKPI}, false
	case "a":
		return core.Command{Kind: core.CmdBuyAutoClicker}, false
	case "p":
		return core.Command{Kind: core.CmdPrestige}, false
	case "m", "esc":
		return core.Command{Kind: core.CmdToggleMetaShop}, false
	}

	return core.Command{}, false
}
