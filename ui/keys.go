package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"transitionbutton/config"
)

type keyMap struct {
	Tap    key.Binding
	Normal key.Binding
	Expand key.Binding
	Shake  key.Binding
	Random key.Binding
	Toggle key.Binding
	Yank   key.Binding
	Help   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func newKeyMap(kb *config.KeyBindingsConfig) keyMap {
	if kb == nil {
		kb = config.DefaultKeybindings()
	}

	k := keyMap{
		Tap:    kb.Binding("tap", "tap"),
		Normal: kb.Binding("outcome_normal", "normal"),
		Expand: kb.Binding("outcome_expand", "expand"),
		Shake:  kb.Binding("outcome_shake", "shake"),
		Random: kb.Binding("outcome_random", "random"),
		Toggle: kb.Binding("toggle_enabled", "enable/disable"),
		Yank:   kb.Binding("yank_log", "copy log"),
		Help:   kb.Binding("help", "help"),
		Back:   kb.Binding("back", "back"),
		Quit:   kb.Binding("quit", "quit"),
	}

	// space taps and ctrl+c quits regardless of the configured keys
	k.Tap.SetKeys(append(k.Tap.Keys(), " ", "space")...)
	k.Quit.SetKeys(append(k.Quit.Keys(), "ctrl+c")...)
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tap, k.Normal, k.Expand, k.Shake, k.Random, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tap, k.Toggle},
		{k.Normal, k.Expand, k.Shake, k.Random},
		{k.Yank, k.Help, k.Back, k.Quit},
	}
}
