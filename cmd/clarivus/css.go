package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/clarivus/internal/tokens"
	"github.com/alexisbeaulieu97/clarivus/pkg/diff"
)

var errStaleStylesheet = errors.New("stylesheet is out of date")

type cssOptions struct {
	prefix   string
	selector string
	output   string
	check    string
}

func newCSSCmd(app *AppContext) *cobra.Command {
	opts := &cssOptions{}

	cmd := &cobra.Command{
		Use:   "css",
		Short: "Generate a stylesheet of token custom properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("prefix") {
				opts.prefix = app.Settings.CSSPrefix
			}
			return runCSS(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "custom property prefix (--<prefix>-primary-500)")
	cmd.Flags().StringVar(&opts.selector, "selector", ":root", "selector that holds the declarations")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to a file instead of stdout")
	cmd.Flags().StringVar(&opts.check, "check", "", "compare an existing stylesheet with the generated one and fail on drift")
	cmd.MarkFlagsMutuallyExclusive("output", "check")

	return cmd
}

func runCSS(cmd *cobra.Command, app *AppContext, opts *cssOptions) error {
	cssOpts := tokens.CSSOptions{Prefix: opts.prefix, Selector: opts.selector}

	if opts.check != "" {
		return runCSSCheck(cmd, app, cssOpts, opts.check)
	}

	if opts.output == "" {
		return app.Tokens.WriteCSS(cmd.OutOrStdout(), cssOpts)
	}

	file, err := os.Create(opts.output)
	if err != nil {
		return newCommandError("write stylesheet", opts.output, err, "Check that the directory exists and is writable.")
	}
	defer file.Close()

	if err := app.Tokens.WriteCSS(file, cssOpts); err != nil {
		return newCommandError("write stylesheet", opts.output, err, "Check free disk space and try again.")
	}
	if err := file.Close(); err != nil {
		return newCommandError("write stylesheet", opts.output, err, "Check free disk space and try again.")
	}

	app.Logger.WithFields(map[string]any{"file": opts.output, "prefix": opts.prefix}).Info("stylesheet written")
	return nil
}

func runCSSCheck(cmd *cobra.Command, app *AppContext, cssOpts tokens.CSSOptions, path string) error {
	existing, err := os.ReadFile(path)
	if err != nil {
		return newCommandError("check stylesheet", path, err, "Generate it first with 'clarivus css --output "+path+"'.")
	}

	var generated bytes.Buffer
	if err := app.Tokens.WriteCSS(&generated, cssOpts); err != nil {
		return newCommandError("check stylesheet", path, err, "Report this as a bug.")
	}

	patch, stats := diff.Unified(existing, generated.Bytes(), path, "generated")
	if !stats.Changed() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", path)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), patch)
	app.Logger.WithFields(map[string]any{"file": path, "added": stats.Added, "removed": stats.Removed}).Warn("stylesheet drifted")
	return newCommandError("check stylesheet", path,
		fmt.Errorf("%w: %d lines added, %d removed", errStaleStylesheet, stats.Added, stats.Removed),
		"Regenerate it with 'clarivus css --output "+path+"'.")
}
