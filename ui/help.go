package ui

import (
	"fmt"
	"strings"
	"time"

	markdown "github.com/MichaelMure/go-term-markdown"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	gomarkdown "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"

	"transitionbutton/config"
	appmodel "transitionbutton/model"
)

const helpMaxWidth = 76

func helpMarkdown(kb *config.KeyBindingsConfig, version, license string) string {
	if kb == nil {
		kb = config.DefaultKeybindings()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Transition Button %s\n\n", version)
	b.WriteString("Tap the button to start a simulated task. The button rounds its corners, ")
	b.WriteString("shrinks into a circle and spins until the task reports. It then resolves ")
	b.WriteString("with the selected outcome.\n\n")

	b.WriteString("## Outcomes\n\n")
	b.WriteString("- **normal**: grow back to the original size.\n")
	b.WriteString("- **expand**: fill the screen, then show the transitioned view.\n")
	b.WriteString("- **shake**: grow back, then shake to signal a failure.\n")
	b.WriteString("- **random**: pick one of the above for every task.\n\n")

	b.WriteString("## Keys\n\n")
	for _, row := range [][2]string{
		{"tap", "Tap the button"},
		{"outcome_normal", "Outcome: normal"},
		{"outcome_expand", "Outcome: expand"},
		{"outcome_shake", "Outcome: shake"},
		{"outcome_random", "Outcome: random"},
		{"toggle_enabled", "Enable or disable the button"},
		{"yank_log", "Copy the event log"},
		{"help", "Toggle this help"},
		{"back", "Leave the transitioned view"},
		{"quit", "Quit"},
	} {
		fmt.Fprintf(&b, "- `%s` %s\n", kb.DisplayActionKey(row[0]), row[1])
	}

	b.WriteString("\nKeys and the simulated task are configured in `config.toml` and ")
	b.WriteString("`keybindings.toml` inside the data directory.\n\n")
	fmt.Fprintf(&b, "Licensed under %s.\n", license)
	return b.String()
}

// renderHelp renders the help page off the update loop
func (a AppView) renderHelp() tea.Cmd {
	content := helpMarkdown(a.dataModel.Config.Keybindings, a.dataModel.Version, a.dataModel.License)
	width := min(max(a.width-8, 20), helpMaxWidth)

	return func() tea.Msg {
		startTime := time.Now()

		// Plain URLs stay plain so the terminal can detect them
		p := parser.NewWithExtensions(markdown.Extensions() &^ parser.Autolink)
		r := markdown.NewRenderer(width, 0)
		doc := p.Parse([]byte(content))
		rendered := gomarkdown.Render(doc, r)

		if config.DebugLog != nil {
			config.DebugLog.Printf("Help rendered in %v", time.Since(startTime))
		}
		return appmodel.HelpRenderedMsg{Width: width, Rendered: string(rendered)}
	}
}

func (a AppView) renderHelpScreen() string {
	body := a.helpRendered
	if body == "" {
		body = DimStyle.Render("Rendering help...")
	}

	footer := DimStyle.Render(FormatFooter(
		a.keys.Help.Help().Key, "Close",
		a.keys.Back.Help().Key, "Close",
		a.keys.Quit.Help().Key, "Quit",
	))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, strings.TrimRight(body, "\n"), "", footer))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, box)
}
