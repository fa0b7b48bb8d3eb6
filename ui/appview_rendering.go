package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"transitionbutton/button"
)

func (a AppView) View() string {
	if !a.ready {
		return "Loading..."
	}

	switch a.screen {
	case screenHelp:
		return a.renderHelpScreen()
	case screenTransitioned:
		return a.renderTransitioned()
	}

	sections := []string{
		a.renderHeader(),
		a.renderStatus(),
		lipgloss.Place(a.width, a.buttonRows(), lipgloss.Center, lipgloss.Center, a.button.View()),
		LogBoxStyle.Width(max(a.width-2, 1)).Render(a.eventLog.View()),
		a.help.View(a.keys),
	}
	return strings.Join(sections, "\n")
}

func (a AppView) renderHeader() string {
	title := TitleStyle.Render("Transition Button")
	version := DimStyle.Render(" " + a.dataModel.Version)
	return title + version
}

func (a AppView) renderStatus() string {
	enabled := "yes"
	if !a.button.Enabled() {
		enabled = "no"
	}

	line := fmt.Sprintf("state %s  outcome %s  enabled %s",
		ValueStyle.Render(a.button.State().String()),
		ValueStyle.Render(a.dataModel.Outcome),
		ValueStyle.Render(enabled))
	if a.button.State() == button.Resolving {
		line += "  style " + ValueStyle.Render(a.button.Style().String())
	}
	if a.status != "" {
		line += "  " + lipgloss.NewStyle().Foreground(dangerColor).Render(a.status)
	}
	return StatusStyle.Render(line)
}

// renderTransitioned stands in for the view presented after an expand
func (a AppView) renderTransitioned() string {
	bg := lipgloss.Color(a.dataModel.Config.Button.BackgroundColor)

	message := lipgloss.JoinVertical(lipgloss.Center,
		TitleStyle.Render("Transitioned"),
		"",
		DimStyle.Render("The task finished and the button expanded into this view."),
		"",
		FormatFooter(a.keys.Back.Help().Key, "Back", a.keys.Quit.Help().Key, "Quit"),
	)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, message,
		lipgloss.WithWhitespaceBackground(bg))
}
