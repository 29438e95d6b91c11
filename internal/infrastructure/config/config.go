package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFileName = "config.yml"
	defaultConfigDirName  = ".config/taskdeck"
	defaultTasksDirName   = "tasks"
	defaultDataDirName    = ".local/share/taskdeck"
)

// Config holds application configuration
type Config struct {
	Storage     StorageConfig     `yaml:"storage"`
	TUI         TUIConfig         `yaml:"tui"`
	Keybindings KeybindingsConfig `yaml:"keybindings"`
}

// StorageConfig holds storage-related configuration
type StorageConfig struct {
	TasksPath string `yaml:"tasks_path"`
	DataPath  string `yaml:"data_path"`
}

// TUIConfig holds TUI styling configuration
type TUIConfig struct {
	Styles StylesConfig `yaml:"styles"`
}

// StylesConfig holds color and styling configuration
type StylesConfig struct {
	List         BorderedStyle  `yaml:"list"`
	ListTitle    TextStyle      `yaml:"list_title"`
	Task         TextStyle      `yaml:"task"`
	SelectedTask TextStyle      `yaml:"selected_task"`
	Help         TextStyle      `yaml:"help"`
	Dialog       BorderedStyle  `yaml:"dialog"`
	DialogTitle  TextStyle      `yaml:"dialog_title"`
	FieldLabel   TextStyle      `yaml:"field_label"`
	FocusedLabel TextStyle      `yaml:"focused_label"`
	FieldError   TextStyle      `yaml:"field_error"`
	Done         TextStyle      `yaml:"done"`
	Priority     PriorityColors `yaml:"priority"`
}

// BorderedStyle represents a bordered container's styling
type BorderedStyle struct {
	PaddingVertical   int    `yaml:"padding_vertical"`
	PaddingHorizontal int    `yaml:"padding_horizontal"`
	BorderStyle       string `yaml:"border_style"`
	BorderColor       string `yaml:"border_color"`
}

// TextStyle represents text styling
type TextStyle struct {
	Foreground        string `yaml:"foreground,omitempty"`
	Background        string `yaml:"background,omitempty"`
	Bold              bool   `yaml:"bold,omitempty"`
	Italic            bool   `yaml:"italic,omitempty"`
	PaddingVertical   int    `yaml:"padding_vertical,omitempty"`
	PaddingHorizontal int    `yaml:"padding_horizontal,omitempty"`
	Align             string `yaml:"align,omitempty"`
}

// PriorityColors holds colors for different priority levels
type PriorityColors struct {
	High    string `yaml:"high"`
	Medium  string `yaml:"medium"`
	Low     string `yaml:"low"`
	Default string `yaml:"default"`
}

// KeybindingsConfig holds keybinding configuration
type KeybindingsConfig struct {
	Up        []string `yaml:"up"`
	Down      []string `yaml:"down"`
	Add       []string `yaml:"add"`
	Edit      []string `yaml:"edit"`
	Delete    []string `yaml:"delete"`
	Quit      []string `yaml:"quit"`
	NextField []string `yaml:"next_field"`
	PrevField []string `yaml:"prev_field"`
	Submit    []string `yaml:"submit"`
	Cancel    []string `yaml:"cancel"`
}

// Loader handles loading and saving configuration
type Loader struct {
	configPath string
}

// NewLoader creates a config loader for the default config location
func NewLoader() (*Loader, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, defaultConfigDirName)
	configPath := filepath.Join(configDir, defaultConfigFileName)

	return &Loader{
		configPath: configPath,
	}, nil
}

// NewLoaderFrom creates a config loader for an explicit config file path
func NewLoaderFrom(configPath string) *Loader {
	return &Loader{
		configPath: configPath,
	}
}

// Load loads the configuration, creating defaults if it doesn't exist
func (l *Loader) Load() (*Config, error) {
	if _, err := os.Stat(l.configPath); os.IsNotExist(err) {
		return l.createDefaultConfig()
	}

	data, err := os.ReadFile(l.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// Save persists the configuration to disk
func (l *Loader) Save(config *Config) error {
	configDir := filepath.Dir(l.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(l.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// createDefaultConfig creates and saves a default configuration
func (l *Loader) createDefaultConfig() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	dataDir := filepath.Join(homeDir, defaultDataDirName)
	tasksPath := filepath.Join(dataDir, defaultTasksDirName)

	config := DefaultConfig(tasksPath, dataDir)

	if err := l.Save(config); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(tasksPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create tasks directory: %w", err)
	}

	return config, nil
}

// DefaultConfig returns the built-in defaults for the given storage paths
func DefaultConfig(tasksPath, dataPath string) *Config {
	return &Config{
		Storage: StorageConfig{
			TasksPath: tasksPath,
			DataPath:  dataPath,
		},
		TUI: TUIConfig{
			Styles: StylesConfig{
				List: BorderedStyle{
					PaddingVertical:   1,
					PaddingHorizontal: 2,
					BorderStyle:       "rounded",
					BorderColor:       "240",
				},
				ListTitle: TextStyle{
					Foreground: "99",
					Bold:       true,
					Align:      "center",
				},
				Task: TextStyle{
					Foreground:        "252",
					PaddingVertical:   0,
					PaddingHorizontal: 1,
				},
				SelectedTask: TextStyle{
					Foreground:        "230",
					Background:        "62",
					Bold:              true,
					PaddingVertical:   0,
					PaddingHorizontal: 1,
				},
				Help: TextStyle{
					Foreground:        "241",
					PaddingVertical:   1,
					PaddingHorizontal: 2,
				},
				Dialog: BorderedStyle{
					PaddingVertical:   1,
					PaddingHorizontal: 2,
					BorderStyle:       "rounded",
					BorderColor:       "62",
				},
				DialogTitle: TextStyle{
					Foreground: "99",
					Bold:       true,
				},
				FieldLabel: TextStyle{
					Foreground: "245",
				},
				FocusedLabel: TextStyle{
					Foreground: "205",
					Bold:       true,
				},
				FieldError: TextStyle{
					Foreground: "#FF6B6B",
					Italic:     true,
				},
				Done: TextStyle{
					Foreground: "240",
				},
				Priority: PriorityColors{
					High:    "#FF6B6B",
					Medium:  "#FFE66D",
					Low:     "#95E1D3",
					Default: "#999999",
				},
			},
		},
		Keybindings: KeybindingsConfig{
			Up:        []string{"up", "k"},
			Down:      []string{"down", "j"},
			Add:       []string{"a"},
			Edit:      []string{"e", "enter"},
			Delete:    []string{"d"},
			Quit:      []string{"q", "ctrl+c"},
			NextField: []string{"tab", "down"},
			PrevField: []string{"shift+tab", "up"},
			Submit:    []string{"enter"},
			Cancel:    []string{"esc"},
		},
	}
}

// GetConfigPath returns the path to the config file
func (l *Loader) GetConfigPath() string {
	return l.configPath
}
