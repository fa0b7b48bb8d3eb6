package config

import "time"

func DefaultSystemConfig() *SystemConfig {
	return &SystemConfig{
		DataDirectory: "~/.local/share/transitionbutton",
	}
}

func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		Button: ButtonConfig{
			Title:           "Sign in",
			Icon:            "➜",
			Width:           30,
			Height:          3,
			CornerRadius:    1,
			ForegroundColor: "15",
			BackgroundColor: "12",
			SpinnerColor:    "15",
			DisabledColor:   "8",
		},
		Task: TaskConfig{
			Duration:    3 * time.Second,
			Outcome:     "shake",
			RevertDelay: time.Second,
		},
	}
}

func GenerateSystemConfigTemplate() string {
	return `# Transition Button System Configuration
# Location: ~/.config/transitionbutton/settings.toml
# This file uses TOML format: https://toml.io

# Directory where the user config, keybindings and debug log are stored
data_directory = "~/.local/share/transitionbutton"
`
}

func GenerateUserConfigTemplate() string {
	return `# Transition Button User Configuration
# Location: <data_directory>/config.toml
# This file uses TOML format: https://toml.io

[button]
title = "Sign in"
# Optional icon shown in front of the title
icon = "➜"

# Size in terminal cells
width = 30
height = 3

# Any value above 0 draws rounded corners while idle
corner_radius = 1

# ANSI colour numbers or hex values ("#7D56F4")
foreground_color = "15"
background_color = "12"
spinner_color = "15"
disabled_color = "8"

[task]
# How long the simulated background task runs
duration = "3s"

# How the button resolves: normal, expand, shake or random
outcome = "shake"

# Pause before the button reverts (never below 0.2s)
revert_delay = "1s"
`
}
