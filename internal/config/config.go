// Package config provides configuration types and defaults for reqdesk.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/zjrosen/reqdesk/internal/catalog"
	"github.com/zjrosen/reqdesk/internal/log"
	"github.com/zjrosen/reqdesk/internal/namespace"
	"github.com/zjrosen/reqdesk/internal/tracing"
)

// Catalog sources.
const (
	SourceMock   = "mock"
	SourceSQLite = "sqlite"
)

// Config holds all configuration options for reqdesk.
type Config struct {
	DefaultNamespace string         `mapstructure:"default_namespace"`
	Catalog          CatalogConfig  `mapstructure:"catalog"`
	UI               UIConfig       `mapstructure:"ui"`
	Export           ExportConfig   `mapstructure:"export"`
	Workflow         WorkflowConfig `mapstructure:"workflow"`
	Tracing          tracing.Config `mapstructure:"tracing"`
}

// CatalogConfig selects and shapes the request catalog.
type CatalogConfig struct {
	Source   string        `mapstructure:"source"` // "mock" (default) or "sqlite"
	Seed     uint64        `mapstructure:"seed"`
	Count    int           `mapstructure:"count"`
	Spacing  time.Duration `mapstructure:"spacing"`
	Anchor   string        `mapstructure:"anchor"` // RFC 3339; empty means the current hour
	PageSize int           `mapstructure:"page_size"`
	DBPath   string        `mapstructure:"db_path"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"` // 0 keeps entries until invalidated
	Watch    bool          `mapstructure:"watch"`     // reload when the sqlite file changes
}

// AnchorTime returns the creation time of the newest generated record.
func (c CatalogConfig) AnchorTime(now time.Time) (time.Time, error) {
	if c.Anchor == "" {
		return now.UTC().Truncate(time.Hour), nil
	}
	t, err := time.Parse(time.RFC3339, c.Anchor)
	if err != nil {
		return time.Time{}, fmt.Errorf("catalog.anchor: %w", err)
	}
	return t, nil
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	MarkdownStyle    string `mapstructure:"markdown_style"` // "dark" (default) or "light"
	CompactWidth     int    `mapstructure:"compact_width"`  // below this width the sidebar overlays the chat
	SidebarOpen      bool   `mapstructure:"sidebar_open"`
	RequestsExpanded bool   `mapstructure:"requests_expanded"`
	RightPaneVisible bool   `mapstructure:"right_pane_visible"`
}

// ExportConfig controls where previews are exported.
type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

// WorkflowConfig paces the scripted workflow engine.
type WorkflowConfig struct {
	StepDelay time.Duration `mapstructure:"step_delay"`
}

// Dir returns ~/.config/reqdesk, or "" when the home dir is unknown.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "reqdesk")
}

// DefaultDBPath returns the default SQLite catalog location.
func DefaultDBPath() string {
	if d := Dir(); d != "" {
		return filepath.Join(d, "catalog.db")
	}
	return filepath.Join(".reqdesk", "catalog.db")
}

// DefaultTracesFilePath returns the default JSONL trace file.
func DefaultTracesFilePath() string {
	if d := Dir(); d != "" {
		return filepath.Join(d, "traces", "traces.jsonl")
	}
	return ""
}

// DefaultLogPath returns the debug log location.
func DefaultLogPath() string {
	if d := Dir(); d != "" {
		return filepath.Join(d, "debug.log")
	}
	return "debug.log"
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	tr := tracing.DefaultConfig()
	tr.FilePath = DefaultTracesFilePath()
	return Config{
		DefaultNamespace: namespace.Default,
		Catalog: CatalogConfig{
			Source:   SourceMock,
			Seed:     1,
			Count:    catalog.DefaultCount,
			Spacing:  catalog.DefaultSpacing,
			PageSize: catalog.DefaultPageSize,
			DBPath:   DefaultDBPath(),
			Watch:    true,
		},
		UI: UIConfig{
			MarkdownStyle:    "dark",
			CompactWidth:     100,
			SidebarOpen:      true,
			RequestsExpanded: true,
			RightPaneVisible: true,
		},
		Export:   ExportConfig{Dir: "."},
		Workflow: WorkflowConfig{StepDelay: 1500 * time.Millisecond},
		Tracing:  tr,
	}
}

// SetDefaults registers every default with v so partial files still
// unmarshal into a complete Config.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("default_namespace", d.DefaultNamespace)
	v.SetDefault("catalog.source", d.Catalog.Source)
	v.SetDefault("catalog.seed", d.Catalog.Seed)
	v.SetDefault("catalog.count", d.Catalog.Count)
	v.SetDefault("catalog.spacing", d.Catalog.Spacing)
	v.SetDefault("catalog.anchor", d.Catalog.Anchor)
	v.SetDefault("catalog.page_size", d.Catalog.PageSize)
	v.SetDefault("catalog.db_path", d.Catalog.DBPath)
	v.SetDefault("catalog.cache_ttl", d.Catalog.CacheTTL)
	v.SetDefault("catalog.watch", d.Catalog.Watch)
	v.SetDefault("ui.markdown_style", d.UI.MarkdownStyle)
	v.SetDefault("ui.compact_width", d.UI.CompactWidth)
	v.SetDefault("ui.sidebar_open", d.UI.SidebarOpen)
	v.SetDefault("ui.requests_expanded", d.UI.RequestsExpanded)
	v.SetDefault("ui.right_pane_visible", d.UI.RightPaneVisible)
	v.SetDefault("export.dir", d.Export.Dir)
	v.SetDefault("workflow.step_delay", d.Workflow.StepDelay)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.file_path", d.Tracing.FilePath)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
	v.SetDefault("tracing.service_name", d.Tracing.ServiceName)
}

// Load unmarshals v into a Config.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	log.Debug(log.CatConfig, "loaded config", "file", v.ConfigFileUsed(), "source", cfg.Catalog.Source)
	return cfg, nil
}

// Validate checks cfg and returns the first problem found.
func Validate(cfg Config, reg *namespace.Registry) error {
	if !reg.IsValid(cfg.DefaultNamespace) {
		return fmt.Errorf("default_namespace %q is not a registered namespace", cfg.DefaultNamespace)
	}
	if err := ValidateCatalog(cfg.Catalog); err != nil {
		return err
	}
	if err := ValidateUI(cfg.UI); err != nil {
		return err
	}
	if cfg.Workflow.StepDelay < 0 {
		return fmt.Errorf("workflow.step_delay must not be negative, got %s", cfg.Workflow.StepDelay)
	}
	return ValidateTracing(cfg.Tracing)
}

// ValidateCatalog checks catalog configuration for errors.
func ValidateCatalog(c CatalogConfig) error {
	switch c.Source {
	case SourceMock, SourceSQLite:
	default:
		return fmt.Errorf("catalog.source must be %q or %q, got %q", SourceMock, SourceSQLite, c.Source)
	}
	if c.Count < 0 {
		return fmt.Errorf("catalog.count must not be negative, got %d", c.Count)
	}
	if c.Spacing <= 0 {
		return fmt.Errorf("catalog.spacing must be positive, got %s", c.Spacing)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("catalog.page_size must be positive, got %d", c.PageSize)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("catalog.cache_ttl must not be negative, got %s", c.CacheTTL)
	}
	if c.Source == SourceSQLite && c.DBPath == "" {
		return fmt.Errorf("catalog.db_path is required when source is %q", SourceSQLite)
	}
	if _, err := c.AnchorTime(time.Now()); err != nil {
		return err
	}
	return nil
}

// ValidateUI checks UI configuration for errors.
func ValidateUI(ui UIConfig) error {
	switch ui.MarkdownStyle {
	case "", "dark", "light":
	default:
		return fmt.Errorf("ui.markdown_style must be \"dark\" or \"light\", got %q", ui.MarkdownStyle)
	}
	if ui.CompactWidth < 0 {
		return fmt.Errorf("ui.compact_width must not be negative, got %d", ui.CompactWidth)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
func ValidateTracing(t tracing.Config) error {
	if t.SampleRate < 0.0 || t.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", t.SampleRate)
	}
	switch t.Exporter {
	case "", tracing.ExporterNone, tracing.ExporterFile, tracing.ExporterStdout, tracing.ExporterOTLP:
	default:
		return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", t.Exporter)
	}
	if t.Enabled {
		if t.Exporter == tracing.ExporterFile && t.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if t.Exporter == tracing.ExporterOTLP && t.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# reqdesk configuration

# Namespace selected at startup: default, production, staging or development
default_namespace: default

# Request catalog
catalog:
  source: mock          # "mock" (generated) or "sqlite" (run 'reqdesk seed' first)
  seed: 1               # generator seed; same seed, same records
  count: 25             # records per namespace
  spacing: 1h           # gap between consecutive records
  # anchor: 2025-06-01T12:00:00Z  # newest record time (default: current hour)
  page_size: 10         # records per page in the request list
  # db_path: ~/.config/reqdesk/catalog.db
  # cache_ttl: 0s       # 0 caches until the database changes
  watch: true           # reload when the sqlite catalog changes on disk

# UI settings
ui:
  # markdown_style: dark  # "dark" (default) or "light"
  compact_width: 100      # below this width the sidebar opens as an overlay
  sidebar_open: true
  requests_expanded: true
  right_pane_visible: true

# Preview export ('d' in the preview pane)
export:
  dir: .

# Scripted workflow pacing
workflow:
  step_delay: 1.5s

# Tracing of session operations
# tracing:
#   enabled: false                 # default: false
#   exporter: file                 # none, file, stdout, otlp (default: file)
#   file_path: ~/.config/reqdesk/traces/traces.jsonl
#   otlp_endpoint: localhost:4317
#   sample_rate: 1.0
`
}

// WriteDefaultConfig creates a config file at configPath with default
// settings and comments. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "created default config", "path", configPath)
	return nil
}
