// Package cmd wires the reqdesk command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/reqdesk/internal/app"
	"github.com/zjrosen/reqdesk/internal/config"
	"github.com/zjrosen/reqdesk/internal/log"
	"github.com/zjrosen/reqdesk/internal/mode"
	"github.com/zjrosen/reqdesk/internal/namespace"
	"github.com/zjrosen/reqdesk/internal/panels"
	"github.com/zjrosen/reqdesk/internal/session"
	"github.com/zjrosen/reqdesk/internal/tracing"
)

func init() {
	// Query the terminal background before any program starts so the OSC 11
	// reply cannot race the Bubble Tea input loop.
	_ = lipgloss.HasDarkBackground()
}

// localConfigPath is where a default config is written when none is found.
var localConfigPath = filepath.Join(".reqdesk", "config.yaml")

var version = "dev"

// rootOptions carries state shared by every subcommand.
type rootOptions struct {
	cfgFile    string
	debug      bool
	v          *viper.Viper
	cfg        config.Config
	configPath string
	registry   *namespace.Registry
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	o := &rootOptions{v: viper.New(), registry: namespace.NewRegistry()}

	root := &cobra.Command{
		Use:   "reqdesk",
		Short: "A terminal workspace for namespaced requests",
		Long: `reqdesk browses the requests of a namespace, walks a selected request
through a conversational workflow and previews, copies or exports its output.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.load()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApp(o)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&o.cfgFile, "config", "c", "",
		"config file (default: .reqdesk/config.yaml, then ~/.config/reqdesk/config.yaml)")
	pf.StringP("namespace", "n", "", "namespace to open (default: default_namespace from config)")
	pf.Uint64("seed", 0, "seed for the generated catalog")
	pf.String("source", "", `catalog source: "mock" or "sqlite"`)
	pf.String("db", "", "path to the sqlite catalog")
	pf.BoolVar(&o.debug, "debug", false, "write a debug log (also REQDESK_DEBUG=1)")

	_ = o.v.BindPFlag("default_namespace", pf.Lookup("namespace"))
	_ = o.v.BindPFlag("catalog.seed", pf.Lookup("seed"))
	_ = o.v.BindPFlag("catalog.source", pf.Lookup("source"))
	_ = o.v.BindPFlag("catalog.db_path", pf.Lookup("db"))

	root.AddCommand(
		newNamespacesCmd(o),
		newRequestsCmd(o),
		newSeedCmd(o),
	)
	return root
}

// load reads the config file, writing a default one when none exists.
func (o *rootOptions) load() error {
	v := o.v
	config.SetDefaults(v)
	v.SetEnvPrefix("REQDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config lookup order:
	// 1. --config
	// 2. .reqdesk/config.yaml (current directory)
	// 3. ~/.config/reqdesk/config.yaml (user config)
	switch {
	case o.cfgFile != "":
		if _, err := os.Stat(o.cfgFile); errors.Is(err, os.ErrNotExist) {
			if err := config.WriteDefaultConfig(o.cfgFile); err != nil {
				return err
			}
		}
		v.SetConfigFile(o.cfgFile)
	case fileExists(localConfigPath):
		v.SetConfigFile(localConfigPath)
	default:
		if dir := config.Dir(); dir != "" {
			v.AddConfigPath(dir)
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
		// No config file anywhere: create the local default.
		if writeErr := config.WriteDefaultConfig(localConfigPath); writeErr == nil {
			v.SetConfigFile(localConfigPath)
			_ = v.ReadInConfig()
		}
	}

	o.configPath = v.ConfigFileUsed()
	if o.configPath == "" {
		o.configPath = localConfigPath
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	if err := checkNamespace(o.registry, cfg.DefaultNamespace); err != nil {
		return err
	}
	if err := config.Validate(cfg, o.registry); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	o.cfg = cfg
	return nil
}

// checkNamespace reports an unknown namespace id with the closest match.
func checkNamespace(reg *namespace.Registry, id string) error {
	if reg.IsValid(id) {
		return nil
	}
	suggestion, _ := reg.Suggest(id)
	return &session.InvalidNamespaceError{ID: id, Suggestion: suggestion}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func runApp(o *rootOptions) error {
	cfg := o.cfg

	if log.DebugRequested(o.debug) {
		cleanup, err := log.Init(config.DefaultLogPath(), log.DefaultOptions())
		if err != nil {
			return fmt.Errorf("starting debug log: %w", err)
		}
		defer cleanup()
	}

	tp, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("starting tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.ErrorErr(log.CatTrace, "shutdown failed", err)
		}
	}()

	src, err := openSource(cfg.Catalog)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	orch, err := session.New(o.registry,
		session.WithTracer(tp.Tracer()),
		session.WithNamespace(cfg.DefaultNamespace),
		session.WithPanels(panels.Visibility{
			SidebarOpen:      cfg.UI.SidebarOpen,
			RequestsExpanded: cfg.UI.RequestsExpanded,
			RightPaneVisible: cfg.UI.RightPaneVisible,
		}),
	)
	if err != nil {
		return err
	}

	model := app.New(mode.Services{
		Orchestrator: orch,
		Catalog:      src.Source,
		Config:       &cfg,
		ConfigPath:   o.configPath,
	}, src.DBPath)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = p.Run()

	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}

// SetVersion sets the version string (called from main with ldflags).
func SetVersion(v string) {
	version = v
}
