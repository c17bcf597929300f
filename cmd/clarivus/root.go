package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/clarivus/internal/components"
	"github.com/alexisbeaulieu97/clarivus/internal/config"
	"github.com/alexisbeaulieu97/clarivus/internal/logger"
	"github.com/alexisbeaulieu97/clarivus/internal/tokens"
	"github.com/alexisbeaulieu97/clarivus/internal/variants"
)

// defaultLoadOptions is swapped in tests to keep the user's config files out of the way.
var defaultLoadOptions = config.DefaultLoadOptions

type rootFlags struct {
	configFile string
	logLevel   string
}

// AppContext bundles the services every command needs, built once settings are loaded.
type AppContext struct {
	Settings config.Settings
	Logger   *logger.Logger
	Catalog  *variants.Catalog
	Tokens   *tokens.Registry
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{Tokens: tokens.Default()}

	cmd := &cobra.Command{
		Use:           "clarivus",
		Short:         "Clarivus resolves design tokens and component variants",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.load(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "config file (default ./clarivus.yaml or $HOME/.clarivus.yaml)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(newResolveCmd(app))
	cmd.AddCommand(newTokensCmd(app))
	cmd.AddCommand(newCSSCmd(app))
	cmd.AddCommand(newComponentsCmd(app))
	cmd.AddCommand(newGalleryCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (a *AppContext) load(cmd *cobra.Command, flags *rootFlags) error {
	opts := defaultLoadOptions()
	opts.File = flags.configFile
	opts.Flags = cmd.Flags()

	settings, err := config.Load(opts)
	if err != nil {
		return newCommandError("load configuration", describeConfig(flags.configFile), err, "Fix the reported setting or pass --config with a valid file.")
	}
	a.Settings = settings

	log, err := logger.New(logger.Options{
		Level:         settings.LogLevel,
		HumanReadable: settings.HumanReadableOr(isTerminal(cmd.ErrOrStderr())),
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return newCommandError("create logger", "log_level "+settings.LogLevel, err, "Use one of debug, info, warn or error.")
	}
	a.Logger = log.WithCommand(cmd.CommandPath())
	if settings.File != "" {
		a.Logger.WithFields(map[string]any{"file": settings.File}).Debug("configuration loaded")
	}

	if settings.MinTokenVersion != "" && !tokens.IsTokenVersionCompatible(settings.MinTokenVersion) {
		err := fmt.Errorf("token set %s does not satisfy %s", tokens.TokenVersion(), settings.MinTokenVersion)
		a.Logger.Error(err, "token version check failed")
		return newCommandError("check token version", "min_token_version "+settings.MinTokenVersion, err, "Upgrade clarivus or lower min_token_version.")
	}

	tables := make([]*variants.Table, 0, len(settings.Tables))
	for _, path := range settings.Tables {
		loaded, err := variants.LoadTables(path)
		if err != nil {
			a.Logger.Error(err, "table file rejected")
			return newCommandError("load component tables", path, err, "Fix the table file or remove it from the tables setting.")
		}
		tables = append(tables, loaded...)
		a.Logger.WithFields(map[string]any{"file": path, "count": len(loaded)}).Debug("component tables loaded")
	}

	catalog, err := components.Catalog(tables...)
	if err != nil {
		return newCommandError("build component catalog", "registering tables", err, "Give every component table a unique name.")
	}
	a.Catalog = catalog
	return nil
}

func describeConfig(path string) string {
	if path == "" {
		return "default locations"
	}
	return path
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
