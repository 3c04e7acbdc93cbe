package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/purple-shift/internal/core"
	"github.com/vovakirdan/purple-shift/internal/game"
)

// The purple palette the game is named after.
var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	styleRank  = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	styleDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleGold  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	styleGood  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleBad   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleBoost = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	styleFlash = lipgloss.NewStyle().Bold(true).Reverse(true)

	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("93")).
			Padding(0, 1)

	styleOverlay = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("13")).
			Padding(0, 2)
)

var toneStyles = map[core.Tone]lipgloss.Style{
	core.ToneInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ToneGood:    styleGood,
	core.ToneBad:     styleBad,
	core.ToneSpecial: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
}

// renderGame draws one frame from the snapshot.
func renderGame(snap game.Snapshot, width, height int) string {
	var b strings.Builder

	b.WriteString(renderHeader(snap))
	b.WriteString("\n")

	left := renderStatsPanel(snap)
	right := renderShopPanel(snap)
	if snap.MetaOpen {
		right = renderMetaShop(snap)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	b.WriteString("\n")

	if banner := renderBanners(snap); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n")
	}

	for _, n := range snap.Notifications {
		style, ok := toneStyles[n.Tone]
		if !ok {
			style = toneStyles[core.ToneInfo]
		}
		b.WriteString("  " + style.Render(n.Text) + "\n")
	}

	b.WriteString(renderFooter(snap))

	out := b.String()
	if width > 0 {
		out = lipgloss.NewStyle().MaxWidth(width).Render(out)
	}
	return out
}

func renderHeader(snap game.Snapshot) string {
	title := styleTitle.Render(" PURPLE SHIFT ")
	rank := styleRank.Render(fmt.Sprintf("Rank: %s (x%.2f)", snap.Rank.Label, snap.Rank.Mult))
	if snap.Flash {
		rank = styleFlash.Render(fmt.Sprintf(" PROMOTION: %s ", snap.Rank.Label))
	}
	return title + "  " + rank
}

func renderStatsPanel(snap game.Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Boxes   %s / %s\n", fmtFloat(snap.Boxes), fmtInt(snap.Goal))
	b.WriteString(progressBar(snap.GoalFrac, 26) + "\n")
	fmt.Fprintf(&b, "KPI     %d\n", snap.KPI)
	fmt.Fprintf(&b, "Salary  %s\n", fmtFloat(snap.Salary))
	fmt.Fprintf(&b, "Rate    %.1f b/s\n", snap.BPS)
	fmt.Fprintf(&b, "Tokens  %d (x%.2f)\n", snap.PrestigeTokens, snap.PrestigeMult)
	b.WriteString(styleDim.Render(fmt.Sprintf("Achievements x%.2f", snap.AchMult)) + "\n")
	b.WriteString(styleDim.Render(fmt.Sprintf("Clicks %d | Inspections won %d", snap.Clicks, snap.BossWins)))

	return stylePanel.Render(b.String())
}

func renderShopPanel(snap game.Snapshot) string {
	var b strings.Builder

	for i, bld := range snap.Buildings {
		line := fmt.Sprintf("[%d] %-10s x%-3d %8s  +%.1f b/s", i+1, bld.Name, bld.Count, fmtFloat(bld.Price), bld.BPS)
		if bld.Affordable {
			line = styleGold.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	kpiLine := "[K] KPI +1        1 000"
	autoLine := "[A] Auto clicker  5 000"
	if snap.AutoClick {
		autoLine = styleDim.Render("[A] Auto clicker  owned")
	}
	prestigeLine := "[P] Prestige      locked"
	if snap.CanPrestige {
		prestigeLine = styleGold.Render(fmt.Sprintf("[P] Prestige      +%d tokens", snap.PrestigeGain))
	}
	b.WriteString(kpiLine + "\n")
	b.WriteString(autoLine + "\n")
	b.WriteString(prestigeLine + "\n")
	b.WriteString("[M] Meta shop")

	return stylePanel.Render(b.String())
}

func renderMetaShop(snap game.Snapshot) string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("META SHOP") + "\n")
	fmt.Fprintf(&b, "Tokens: %d\n\n", snap.PrestigeTokens)

	for i, it := range snap.Meta {
		line := fmt.Sprintf("[%d] %-22s lv %d  cost %d", i+1, it.Title, it.Level, it.Cost)
		if it.Affordable {
			line = styleGold.Render(line)
		}
		b.WriteString(line + "\n")
		b.WriteString(styleDim.Render("    "+it.Desc) + "\n")
	}
	b.WriteString(styleDim.Render("[M] close"))

	return styleOverlay.Render(b.String())
}

func renderBanners(snap game.Snapshot) string {
	var lines []string

	if snap.BoostActive {
		lines = append(lines, styleBoost.Render("  TAISHER SHIFT! boosted clicks"))
	}
	if snap.Event != nil {
		style := styleGood
		if snap.Event.Mult < 1 {
			style = styleBad
		}
		lines = append(lines, style.Render(fmt.Sprintf("  %s: x%.1f income, %0.1fs left", snap.Event.Kind, snap.Event.Mult, snap.Event.Remaining)))
	}
	if snap.Boss != nil {
		frac := 0.0
		if snap.Boss.Goal > 0 {
			frac = snap.Boss.Progress / snap.Boss.Goal
		}
		lines = append(lines, styleBad.Render(fmt.Sprintf("  INSPECTION %0.1fs  %s %.0f/%.0f",
			snap.Boss.Remaining, progressBar(frac, 20), snap.Boss.Progress, snap.Boss.Goal)))
	}
	return strings.Join(lines, "\n")
}

func renderFooter(snap game.Snapshot) string {
	help := "space: click | 1-4: buy | k: kpi | a: auto | p: prestige | m: meta | q: quit"
	if snap.MetaOpen {
		help = "1-4: buy upgrade | m/esc: close | q: quit"
	}
	return styleDim.Render(help)
}

// progressBar renders a fixed-width bar filled to frac.
func progressBar(frac float64, width int) string {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(width))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// fmtInt renders an integer with thousands separators.
func fmtInt(n int) string {
	return fmtFloat(float64(n))
}

// fmtFloat renders a value as a whole number with thousands separators.
func fmtFloat(v float64) string {
	neg := v < 0
	n := int64(v)
	if neg {
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	var out strings.Builder
	for i, ch := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out.WriteRune(' ')
		}
		out.WriteRune(ch)
	}
	if neg {
		return "-" + out.String()
	}
	return out.String()
}
