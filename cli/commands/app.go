// Package commands implements the edit_image and generate_image command
// lines using Cobra.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/petal-labs/imagegen/cli/config"
	"github.com/petal-labs/imagegen/cli/logging"
	"github.com/petal-labs/imagegen/core"
	"github.com/petal-labs/imagegen/providers"
	"github.com/petal-labs/imagegen/providers/gemini"
)

// ConfigLoader loads CLI config from a path.
type ConfigLoader func(path string) (*config.Config, error)

// ProviderFactory creates a provider using CLI config context.
type ProviderFactory func(ctx context.Context, apiKey core.Secret, cfg *config.Config, log logrus.FieldLogger) (core.Provider, error)

// AppOption customizes App dependencies.
type AppOption func(*App)

// App holds CLI state and runtime dependencies.
type App struct {
	root *cobra.Command

	loadConfig     ConfigLoader
	createProvider ProviderFactory
	getenv         func(string) string
	stdout         io.Writer
	stderr         io.Writer
	cfgFile        string
	jsonOutput     bool
	verbose        bool
	model          *enumValue
	aspect         *enumValue
	size           *enumValue
	cfg            *config.Config
	log            *logrus.Logger
}

// WithConfigLoader injects a config loader dependency.
func WithConfigLoader(loader ConfigLoader) AppOption {
	return func(a *App) {
		if loader != nil {
			a.loadConfig = loader
		}
	}
}

// WithProviderFactory injects a provider factory dependency.
func WithProviderFactory(factory ProviderFactory) AppOption {
	return func(a *App) {
		if factory != nil {
			a.createProvider = factory
		}
	}
}

// WithGetenv injects the environment lookup used for API keys.
func WithGetenv(getenv func(string) string) AppOption {
	return func(a *App) {
		if getenv != nil {
			a.getenv = getenv
		}
	}
}

// WithIO injects process output streams.
func WithIO(stdout, stderr io.Writer) AppOption {
	return func(a *App) {
		if stdout != nil {
			a.stdout = stdout
		}
		if stderr != nil {
			a.stderr = stderr
		}
	}
}

func newApp(opts ...AppOption) *App {
	a := &App{
		loadConfig:     config.LoadConfig,
		createProvider: defaultProviderFactory(),
		getenv:         os.Getenv,
		stdout:         os.Stdout,
		stderr:         os.Stderr,
		model:          newEnumValue("name", string(gemini.DefaultModel), modelChoices()),
		aspect:         newEnumValue("ratio", "", aspectChoices()),
		size:           newEnumValue("tier", "", sizeChoices()),
		cfg:            &config.Config{},
		log:            logging.Discard(),
	}

	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewEditApp creates the edit_image command line.
func NewEditApp(opts ...AppOption) *App {
	a := newApp(opts...)
	a.root = a.setupRoot(a.newEditCommand())
	return a
}

// NewGenerateApp creates the generate_image command line.
func NewGenerateApp(opts ...AppOption) *App {
	a := newApp(opts...)
	a.root = a.setupRoot(a.newGenerateCommand())
	return a
}

func (a *App) setupRoot(root *cobra.Command) *cobra.Command {
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return a.initConfig(cmd)
	}
	// Errors are reported once by Run.
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.Version = versionString()
	root.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ~/.imagegen/config.yaml)")
	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "emit JSON output")
	root.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "enable debug logging")
	a.addShapingFlags(root.Flags())

	return root
}

// Run executes the command line with args. Any failure is printed to
// stderr as a single line and returned as an error carrying ExitFailure.
func (a *App) Run(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	if err := a.root.ExecuteContext(ctx); err != nil {
		reportError(a.stderr, err)
		return exitWithCode(ExitFailure, err)
	}
	return nil
}

func (a *App) initConfig(cmd *cobra.Command) error {
	path := a.cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := a.loadConfig(path)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log = logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Verbose: a.verbose,
	}, a.stderr)

	// Apply config defaults if flags not set.
	if !cmd.Flags().Changed("model") && cfg.DefaultModel != "" {
		if err := a.model.Set(cfg.DefaultModel); err != nil {
			return fmt.Errorf("config default_model %q: %w", cfg.DefaultModel, err)
		}
	}

	a.log.WithFields(logrus.Fields{
		"config": path,
		"model":  a.model.String(),
	}).Debug("configuration loaded")

	return nil
}

// newClient resolves credentials and builds the provider-backed client.
func (a *App) newClient(ctx context.Context) (*core.Client, error) {
	key, err := core.ResolveAPIKey(a.getenv)
	if err != nil {
		return nil, err
	}

	provider, err := a.createProvider(ctx, key, a.cfg, a.log)
	if err != nil {
		return nil, err
	}

	return core.NewClient(provider, core.WithTelemetry(logging.NewTelemetryHook(a.log))), nil
}

func defaultProviderFactory() ProviderFactory {
	return func(ctx context.Context, apiKey core.Secret, cfg *config.Config, log logrus.FieldLogger) (core.Provider, error) {
		opts := providers.Options{Logger: log}
		if cfg != nil {
			opts.BaseURL = cfg.BaseURL
		}
		return providers.Create(ctx, gemini.ProviderID, apiKey, opts)
	}
}
