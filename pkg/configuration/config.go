package configuration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mcpbench/docgen/pkg/icons"
)

const (
	ConfigVersion  = "1.0"
	ConfigDirName  = ".docgen"
	ConfigFileName = "config.json"
)

// DefaultIntroText precedes the trajectory accordions on every detailed page.
const DefaultIntroText = "We use superscripts to indicate which turn a message belongs to. Since the model may invoke multiple tools in parallel, adjacent tool calls may belong to the same turn."

// Config represents the generator configuration
type Config struct {
	Version string `json:"version"`

	// Rendering
	TaskDir       string   `json:"task_dir"`
	DetailedTasks []string `json:"detailed_tasks"`
	Models        []string `json:"models,omitempty"`         // Explicit model order; empty means every log file
	ModelKeywords []string `json:"model_keywords,omitempty"` // Case-insensitive filter applied when Models is empty
	IconsFile     string   `json:"icons_file,omitempty"`
	IconBaseURL   string   `json:"icon_base_url"`
	IntroText     string   `json:"intro_text"`
	LegacySuffix  string   `json:"legacy_suffix"`

	// Preparation
	DocsRoot          string            `json:"docs_root"`
	MapFile           string            `json:"map_file"`
	TrajectorySources map[string]string `json:"trajectory_sources,omitempty"` // model name -> finalpool directory
	InstructionsRoot  string            `json:"instructions_root"`

	// Asset rewriting
	SVGIcons map[string]string `json:"svg_icons,omitempty"`

	// SkipPrompt - for non-interactive mode
	SkipPrompt bool `json:"skip_prompt,omitempty"`
}

// defaultDetailedTasks are the tasks whose trajectories have been reviewed
// for publication.
var defaultDetailedTasks = []int{
	34, 37, 38, 39, 49, 125, 149, 161, 162, 165, 183, 188, 189, 190, 196, 197, 306, 404,
	16, 78, 133, 155, 156, 159, 169, 181, 182, 201, 209, 210, 313, 316, 319, 351, 371,
	126, 141, 143, 179, 223, 267, 275, 284, 345, 352,
	23, 24, 108, 109, 116, 127, 131, 142, 144, 147, 150, 163, 235, 237, 292, 327, 331, 368,
	2, 3, 4, 5, 9, 10, 30, 32, 66, 88, 152, 158, 229, 290, 372,
	95, 113, 266, 279, 285, 299, 300, 301, 303, 304, 305,
	17, 18, 19, 42, 47, 93, 94, 146, 160, 173, 241, 242, 244, 245, 248, 280, 286, 294, 295,
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	sorted := append([]int(nil), defaultDetailedTasks...)
	sort.Ints(sorted)
	detailed := make([]string, 0, len(sorted))
	for _, id := range sorted {
		detailed = append(detailed, fmt.Sprint(id))
	}

	return &Config{
		Version:       ConfigVersion,
		TaskDir:       filepath.Join("docs", "tasks"),
		DetailedTasks: detailed,
		ModelKeywords: []string{"claude", "deepseek"},
		IconBaseURL:   icons.DefaultBaseURL,
		IntroText:     DefaultIntroText,
		LegacySuffix:  "__.mdx",
		DocsRoot:      "docs",
		MapFile:       "map.txt",
		TrajectorySources: map[string]string{
			"claude4-sonnet": "trajs/claude-4-sonnet-0514_09210140_1/finalpool",
		},
		InstructionsRoot: filepath.Join("..", "mcpbench_dev", "tasks", "finalpool"),
		SVGIcons:         icons.DefaultImages(),
	}
}

// GetConfigPath returns the default config file location, relative to the
// working directory.
func GetConfigPath() string {
	return filepath.Join(ConfigDirName, ConfigFileName)
}

// Load loads the configuration from path, or from the default location when
// path is empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = GetConfigPath()
	}

	config := NewConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Maps merge into their defaults during decoding; sources are replaced instead.
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if _, ok := keys["trajectory_sources"]; ok {
		config.TrajectorySources = nil
	}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set version if not present
	if config.Version == "" {
		config.Version = ConfigVersion
	}
	if config.TrajectorySources == nil {
		config.TrajectorySources = make(map[string]string)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Save saves the configuration to path, or to the default location when path is empty.
func (c *Config) Save(path string) error {
	if path == "" {
		path = GetConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	c.Version = ConfigVersion

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks the configuration for values that would make a run unsafe
// or meaningless.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.TaskDir) == "" {
		return fmt.Errorf("task_dir cannot be empty")
	}
	switch c.LegacySuffix {
	case "":
		return fmt.Errorf("legacy_suffix cannot be empty")
	case ".mdx", "_.mdx":
		// Clearing would delete the page sources or the generated pages.
		return fmt.Errorf("legacy_suffix %q would match task pages", c.LegacySuffix)
	}
	seen := make(map[string]bool, len(c.Models))
	for _, model := range c.Models {
		if model == "" {
			return fmt.Errorf("models cannot contain an empty name")
		}
		if seen[model] {
			return fmt.Errorf("model %q is listed twice", model)
		}
		seen[model] = true
	}
	for model, dir := range c.TrajectorySources {
		if strings.TrimSpace(dir) == "" {
			return fmt.Errorf("trajectory source for %q has no directory", model)
		}
	}
	return nil
}

// DetailedSet returns the detailed task ids as a set.
func (c *Config) DetailedSet() map[string]bool {
	set := make(map[string]bool, len(c.DetailedTasks))
	for _, id := range c.DetailedTasks {
		set[id] = true
	}
	return set
}

// SourceModels returns the trajectory source model names in a stable order.
func (c *Config) SourceModels() []string {
	models := make([]string, 0, len(c.TrajectorySources))
	for model := range c.TrajectorySources {
		models = append(models, model)
	}
	sort.Strings(models)
	return models
}
