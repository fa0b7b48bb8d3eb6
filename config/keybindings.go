package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/bubbles/key"
)

// KeyBindingsConfig holds modifier customization and optional per-action overrides
type KeyBindingsConfig struct {
	Modifiers ModifierConfig    `toml:"modifiers"`
	Actions   map[string]string `toml:"actions"` // Optional overrides for specific actions
}

type ModifierConfig struct {
	Primary string `toml:"primary"` // e.g., "alt", "ctrl"
}

// actionDef defines the default modifier and key for an action
type actionDef struct {
	modifier string // "primary" or "none"
	key      string
}

// actionRegistry maps action names to their default keybindings
// Users can override any of these in the [actions] section of keybindings.toml
var actionRegistry = map[string]actionDef{
	"tap":            {"none", "enter"},
	"outcome_normal": {"none", "1"},
	"outcome_expand": {"none", "2"},
	"outcome_shake":  {"none", "3"},
	"outcome_random": {"none", "r"},
	"toggle_enabled": {"none", "d"},
	"yank_log":       {"none", "y"},
	"help":           {"none", "?"},
	"back":           {"none", "esc"},
	"quit":           {"primary", "q"},
}

// DefaultKeybindings returns default configuration
func DefaultKeybindings() *KeyBindingsConfig {
	return &KeyBindingsConfig{
		Modifiers: ModifierConfig{
			Primary: "ctrl",
		},
	}
}

// LoadKeybindings loads keybindings from data directory
func LoadKeybindings(dataDir string) (*KeyBindingsConfig, error) {
	cfg := DefaultKeybindings()
	keybindingsPath := filepath.Join(dataDir, "keybindings.toml")

	if !FileExists(keybindingsPath) {
		if err := CreateDefaultKeybindings(dataDir); err != nil {
			return nil, fmt.Errorf("failed to create keybindings: %w", err)
		}
		return cfg, nil
	}

	_, err := toml.DecodeFile(keybindingsPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse keybindings: %w", err)
	}

	if cfg.Modifiers.Primary == "" {
		cfg.Modifiers.Primary = "ctrl"
	}

	return cfg, nil
}

// CreateDefaultKeybindings creates default keybindings.toml
func CreateDefaultKeybindings(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	keybindingsPath := filepath.Join(dataDir, "keybindings.toml")
	if FileExists(keybindingsPath) {
		return nil
	}

	content := GenerateKeybindingsTemplate()
	if err := os.WriteFile(keybindingsPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write keybindings: %w", err)
	}

	return nil
}

// GenerateKeybindingsTemplate returns the default TOML template
func GenerateKeybindingsTemplate() string {
	return `# Transition Button Keybindings Configuration
# Location: <data_directory>/keybindings.toml
# This file uses TOML format: https://toml.io

[modifiers]
primary = "ctrl"   # Used by quit (Options: alt, ctrl)

[actions]
# Examples (uncomment to use):
#
#   tap = " "
#   outcome_normal = "n"
#   outcome_expand = "e"
#   outcome_shake = "s"
#   outcome_random = "?"
#   toggle_enabled = "x"
#   yank_log = "c"
#   help = "h"
#   quit = "alt+q"
`
}

// Primary returns the primary modifier
func (kb *KeyBindingsConfig) Primary() string {
	if kb.Modifiers.Primary == "" {
		return "ctrl"
	}
	return kb.Modifiers.Primary
}

// GetActionKey returns the keybinding for a specific action
// Checks user overrides first, then falls back to action registry defaults
func (kb *KeyBindingsConfig) GetActionKey(action string) string {
	if kb.Actions != nil {
		if override, exists := kb.Actions[action]; exists && override != "" {
			return override
		}
	}

	if def, exists := actionRegistry[action]; exists {
		switch def.modifier {
		case "primary":
			return kb.Primary() + "+" + def.key
		case "none":
			return def.key
		}
	}

	return ""
}

// DisplayActionKey returns a display-friendly version of an action's keybinding
// Example: "ctrl+q" -> "Ctrl+Q"
func (kb *KeyBindingsConfig) DisplayActionKey(action string) string {
	k := kb.GetActionKey(action)
	if k == "" {
		return ""
	}
	return capitalizeKeybinding(k)
}

// Binding builds a bubbles key binding for action with the given help text
func (kb *KeyBindingsConfig) Binding(action, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(kb.GetActionKey(action)),
		key.WithHelp(kb.DisplayActionKey(action), desc),
	)
}

// capitalizeKeybinding capitalizes a keybinding string for display
// Examples:
//
//	"ctrl+q" -> "Ctrl+Q"
//	"enter"  -> "Enter"
func capitalizeKeybinding(k string) string {
	parts := strings.Split(k, "+")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		result = append(result, strings.ToUpper(part[:1])+part[1:])
	}
	return strings.Join(result, "+")
}
