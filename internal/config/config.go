// Package config loads command line settings from a YAML file, CLARIVUS_* environment
// variables and bound flags.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	clarivuserrors "github.com/alexisbeaulieu97/clarivus/pkg/errors"
)

const (
	// EnvPrefix namespaces environment overrides, e.g. CLARIVUS_LOG_LEVEL.
	EnvPrefix = "CLARIVUS"

	KeyLogLevel        = "log_level"
	KeyHumanReadable   = "human_readable"
	KeyCSSPrefix       = "css_prefix"
	KeyTables          = "tables"
	KeyMinTokenVersion = "min_token_version"

	fileName   = "clarivus.yaml"
	homeName   = ".clarivus.yaml"
	defaultLog = "warn"
)

var keys = []string{KeyLogLevel, KeyHumanReadable, KeyCSSPrefix, KeyTables, KeyMinTokenVersion}

// Settings holds everything the CLI reads from its environment.
type Settings struct {
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	// HumanReadable is nil when unset; the CLI then picks console output on a terminal.
	HumanReadable *bool `mapstructure:"human_readable"`
	// CSSPrefix namespaces generated custom properties.
	CSSPrefix string `mapstructure:"css_prefix" validate:"omitempty,css_ident"`
	// Tables lists YAML component table files added to the built-in catalog.
	Tables []string `mapstructure:"tables" validate:"dive,required"`
	// MinTokenVersion fails startup when the token set's major version is older.
	MinTokenVersion string `mapstructure:"min_token_version" validate:"omitempty,semver"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

// LoadOptions tells Load where to look.
type LoadOptions struct {
	// File is an explicit config path; it must exist.
	File string
	// SearchDirs are tried in order for clarivus.yaml. Defaults to the working directory.
	SearchDirs []string
	// HomeDir is checked for .clarivus.yaml after SearchDirs. Empty skips the lookup.
	HomeDir string
	// Flags are bound by key with underscores replaced by dashes (log_level -> --log-level).
	Flags *pflag.FlagSet
}

// DefaultLoadOptions searches the working directory and the user's home directory.
func DefaultLoadOptions() LoadOptions {
	home, _ := os.UserHomeDir()
	return LoadOptions{SearchDirs: []string{"."}, HomeDir: home}
}

// Load reads, merges and validates settings. Precedence from highest: changed flags,
// environment, config file, defaults.
func Load(opts LoadOptions) (Settings, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault(KeyLogLevel, defaultLog)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return Settings{}, clarivuserrors.NewValidationError(key, "cannot bind environment", err)
		}
	}

	if opts.Flags != nil {
		for _, key := range keys {
			flag := opts.Flags.Lookup(strings.ReplaceAll(key, "_", "-"))
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return Settings{}, clarivuserrors.NewValidationError(key, "cannot bind flag", err)
			}
		}
	}

	file, err := locate(opts)
	if err != nil {
		return Settings{}, err
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, clarivuserrors.NewParseError(file, 0, err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return Settings{}, clarivuserrors.NewValidationError("config", "cannot decode settings", err)
	}
	settings.LogLevel = strings.ToLower(strings.TrimSpace(settings.LogLevel))
	settings.File = file

	if err := validatorInstance().Struct(settings); err != nil {
		return Settings{}, convertValidationError(err)
	}

	// Relative table paths are relative to the config file that named them.
	if file != "" {
		dir := filepath.Dir(file)
		for i, table := range settings.Tables {
			if !filepath.IsAbs(table) {
				settings.Tables[i] = filepath.Join(dir, table)
			}
		}
	}

	return settings, nil
}

func locate(opts LoadOptions) (string, error) {
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return "", clarivuserrors.NewParseError(opts.File, 0, err)
		}
		return opts.File, nil
	}

	candidates := make([]string, 0, len(opts.SearchDirs)+1)
	for _, dir := range opts.SearchDirs {
		candidates = append(candidates, filepath.Join(dir, fileName))
	}
	if opts.HomeDir != "" {
		candidates = append(candidates, filepath.Join(opts.HomeDir, homeName))
	}

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		switch {
		case err == nil && !info.IsDir():
			return candidate, nil
		case err != nil && !errors.Is(err, os.ErrNotExist):
			return "", clarivuserrors.NewParseError(candidate, 0, err)
		}
	}
	return "", nil
}

// HumanReadableOr returns the configured console preference, or fallback when unset.
func (s Settings) HumanReadableOr(fallback bool) bool {
	if s.HumanReadable == nil {
		return fallback
	}
	return *s.HumanReadable
}
