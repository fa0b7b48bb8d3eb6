package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type SystemConfig struct {
	DataDirectory string `toml:"data_directory"`
}

// ButtonConfig describes the demo button. Width and Height are in terminal
// cells.
type ButtonConfig struct {
	Title           string  `toml:"title"`
	Icon            string  `toml:"icon"`
	Width           int     `toml:"width"`
	Height          int     `toml:"height"`
	CornerRadius    float64 `toml:"corner_radius"`
	ForegroundColor string  `toml:"foreground_color"`
	BackgroundColor string  `toml:"background_color"`
	SpinnerColor    string  `toml:"spinner_color"`
	DisabledColor   string  `toml:"disabled_color"`
}

// TaskConfig describes the simulated background task
type TaskConfig struct {
	Duration    time.Duration `toml:"duration"`
	Outcome     string        `toml:"outcome"`
	RevertDelay time.Duration `toml:"revert_delay"`
}

type UserConfig struct {
	Button ButtonConfig `toml:"button"`
	Task   TaskConfig   `toml:"task"`
}

type Config struct {
	DataDirectory string
	Button        ButtonConfig
	Task          TaskConfig
	Keybindings   *KeyBindingsConfig
}

// Outcomes accepted by [task] outcome
var Outcomes = []string{"normal", "expand", "shake", "random"}

var Debug = false
var DebugLog *log.Logger

func (c *Config) DataDir() string {
	return ExpandPath(c.DataDirectory)
}

func (c *Config) applyEnvOverrides() error {
	if dataDir := os.Getenv("TBUTTON_DATA_DIR"); dataDir != "" {
		c.DataDirectory = dataDir
	}
	if outcome := os.Getenv("TBUTTON_TASK_OUTCOME"); outcome != "" {
		c.Task.Outcome = strings.ToLower(outcome)
	}
	if raw := os.Getenv("TBUTTON_TASK_DURATION"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid TBUTTON_TASK_DURATION: %w", err)
		}
		c.Task.Duration = d
	}
	return nil
}

// Validate checks the values the demo cannot work with
func (c *Config) Validate() error {
	if c.Button.Width <= 0 || c.Button.Height <= 0 {
		return fmt.Errorf("button size must be positive, got %dx%d", c.Button.Width, c.Button.Height)
	}
	if c.Button.CornerRadius < 0 {
		return fmt.Errorf("corner_radius cannot be negative")
	}
	if c.Task.Duration < 0 {
		return fmt.Errorf("task duration cannot be negative")
	}
	if c.Task.RevertDelay < 0 {
		return fmt.Errorf("revert_delay cannot be negative")
	}

	valid := false
	for _, o := range Outcomes {
		if c.Task.Outcome == o {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown task outcome %q (want one of %s)", c.Task.Outcome, strings.Join(Outcomes, ", "))
	}
	return nil
}

func CheckDebug() bool {
	debug := os.Getenv("TBUTTON_DEBUG")
	return debug == "true" || debug == "1"
}

func InitDebugLog(dataDir string) {
	if !CheckDebug() {
		return
	}

	Debug = true
	logPath := filepath.Join(dataDir, "debug.log")

	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open debug log at %s: %v\n", logPath, err)
		return
	}

	DebugLog = log.New(f, "", log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile)
	DebugLog.Printf("=== Debug logging started (TBUTTON_DEBUG=%s) ===", os.Getenv("TBUTTON_DEBUG"))
	DebugLog.Printf("Log path: %s", logPath)
}

func Load() (*Config, error) {
	systemCfg, err := LoadSystemConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load system config: %w", err)
	}

	cfg := &Config{DataDirectory: systemCfg.DataDirectory}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	dataDir := cfg.DataDir()
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := EnsureDataDirPermissions(dataDir); err != nil {
		return nil, fmt.Errorf("failed to set data directory permissions: %w", err)
	}

	userCfg, err := LoadUserConfig(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}
	cfg.Button = userCfg.Button
	cfg.Task = userCfg.Task

	kb, err := LoadKeybindings(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load keybindings: %w", err)
	}
	cfg.Keybindings = kb

	// env wins over the user file
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
