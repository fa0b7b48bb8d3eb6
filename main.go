package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"transitionbutton/config"
	"transitionbutton/ui"
)

const (
	Version = "v0.01.00"
	License = "Apache-2.0"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		errorModal := ui.NewErrorModal("Configuration Error", err.Error())
		p := tea.NewProgram(
			errorModal,
			tea.WithAltScreen(),
		)

		if _, runErr := p.Run(); runErr != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		}
		os.Exit(1)
	}

	// Initialize debug logging after config is loaded
	config.InitDebugLog(cfg.DataDir())

	p := tea.NewProgram(
		ui.NewAppView(cfg, Version, License),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running transitionbutton: %v\n", err)
		os.Exit(1)
	}
}
