package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/reqdesk/internal/namespace"
	"github.com/zjrosen/reqdesk/internal/tracing"
)

func TestDefaults_AreValid(t *testing.T) {
	cfg := Defaults()

	require.NoError(t, Validate(cfg, namespace.NewRegistry()))
	require.Equal(t, "default", cfg.DefaultNamespace)
	require.Equal(t, SourceMock, cfg.Catalog.Source)
	require.Equal(t, 25, cfg.Catalog.Count)
	require.Equal(t, time.Hour, cfg.Catalog.Spacing)
	require.Equal(t, 10, cfg.Catalog.PageSize)
	require.True(t, cfg.UI.SidebarOpen)
	require.True(t, cfg.UI.RequestsExpanded)
	require.True(t, cfg.UI.RightPaneVisible)
	require.False(t, cfg.Tracing.Enabled)
}

func TestLoad_TemplateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	require.NoError(t, Validate(cfg, namespace.NewRegistry()))
	require.Equal(t, 1500*time.Millisecond, cfg.Workflow.StepDelay)
	require.Equal(t, 100, cfg.UI.CompactWidth)
	require.Equal(t, uint64(1), cfg.Catalog.Seed)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog:\n  seed: 99\n  spacing: 30m\n"), 0o600))

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, uint64(99), cfg.Catalog.Seed)
	require.Equal(t, 30*time.Minute, cfg.Catalog.Spacing)
	require.Equal(t, 10, cfg.Catalog.PageSize)
	require.Equal(t, "default", cfg.DefaultNamespace)
}

func TestValidate_FirstProblem(t *testing.T) {
	reg := namespace.NewRegistry()
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"namespace", func(c *Config) { c.DefaultNamespace = "qa" }, "default_namespace"},
		{"source", func(c *Config) { c.Catalog.Source = "postgres" }, "catalog.source"},
		{"count", func(c *Config) { c.Catalog.Count = -1 }, "catalog.count"},
		{"spacing", func(c *Config) { c.Catalog.Spacing = 0 }, "catalog.spacing"},
		{"page size", func(c *Config) { c.Catalog.PageSize = 0 }, "catalog.page_size"},
		{"cache ttl", func(c *Config) { c.Catalog.CacheTTL = -time.Second }, "catalog.cache_ttl"},
		{"db path", func(c *Config) { c.Catalog.Source = SourceSQLite; c.Catalog.DBPath = "" }, "catalog.db_path"},
		{"anchor", func(c *Config) { c.Catalog.Anchor = "yesterday" }, "catalog.anchor"},
		{"markdown", func(c *Config) { c.UI.MarkdownStyle = "neon" }, "ui.markdown_style"},
		{"compact", func(c *Config) { c.UI.CompactWidth = -1 }, "ui.compact_width"},
		{"step delay", func(c *Config) { c.Workflow.StepDelay = -time.Second }, "workflow.step_delay"},
		{"sample rate", func(c *Config) { c.Tracing.SampleRate = 2 }, "tracing.sample_rate"},
		{"exporter", func(c *Config) { c.Tracing.Exporter = "zipkin" }, "tracing.exporter"},
		{"file path", func(c *Config) {
			c.Tracing.Enabled = true
			c.Tracing.Exporter = tracing.ExporterFile
			c.Tracing.FilePath = ""
		}, "tracing.file_path"},
		{"otlp endpoint", func(c *Config) {
			c.Tracing.Enabled = true
			c.Tracing.Exporter = tracing.ExporterOTLP
			c.Tracing.OTLPEndpoint = ""
		}, "tracing.otlp_endpoint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := Validate(cfg, reg)
			require.Error(t, err)
			require.True(t, strings.Contains(err.Error(), tt.want), "error %q should mention %q", err, tt.want)
		})
	}
}

func TestCatalogConfig_AnchorTime(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 34, 56, 0, time.UTC)

	got, err := CatalogConfig{}.AnchorTime(now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), got)

	got, err = CatalogConfig{Anchor: "2024-01-02T03:04:05Z"}.AnchorTime(now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), got)
}

func TestWriteDefaultConfig_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".reqdesk", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, DefaultConfigTemplate(), string(data))
}
