package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/clarivus/internal/components"
	"github.com/alexisbeaulieu97/clarivus/internal/variants"
	clarivuserrors "github.com/alexisbeaulieu97/clarivus/pkg/errors"
)

type resolveOptions struct {
	variant    string
	size       string
	set        []string
	disabled   bool
	loading    bool
	icon       string
	class      string
	jsonOutput bool
}

func newResolveCmd(app *AppContext) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve [component]",
		Short: "Print the class string for a component configuration",
		Long: `Resolve a component's variant table into an ordered, de-duplicated class string.

Axis values default to the table's defaults. --variant and --size are shorthands for
--set variant=... and --set size=....`,
		Example: `  clarivus resolve --variant secondary --size sm --class w-full
  clarivus resolve badge --set tone=error --disabled --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			component := components.ButtonComponent
			if len(args) == 1 {
				component = args[0]
			}
			return runResolve(cmd, app, component, opts)
		},
	}

	cmd.Flags().StringVar(&opts.variant, "variant", "", "value of the variant axis")
	cmd.Flags().StringVar(&opts.size, "size", "", "value of the size axis")
	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "axis=value selection (repeatable)")
	cmd.Flags().BoolVar(&opts.disabled, "disabled", false, "apply the disabled modifier")
	cmd.Flags().BoolVar(&opts.loading, "loading", false, "apply the loading modifier")
	cmd.Flags().StringVar(&opts.icon, "icon", "", "leading icon content")
	cmd.Flags().StringVar(&opts.class, "class", "", "override classes appended last")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runResolve(cmd *cobra.Command, app *AppContext, component string, opts *resolveOptions) error {
	cfg, err := opts.config()
	if err != nil {
		return newCommandError("resolve", component, err, "Pass selections as --set axis=value.")
	}

	result, err := app.Catalog.Resolve(component, cfg)
	if err != nil {
		app.Logger.WithFields(map[string]any{"component": component}).Error(err, "resolve failed")
		return newCommandError("resolve", component, err, resolveSuggestion(err))
	}
	app.Logger.WithFields(map[string]any{"component": component, "classes": len(result.Classes)}).Debug("resolved")

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.String())
	return nil
}

func (o *resolveOptions) config() (variants.Config, error) {
	values := make(map[string]string, len(o.set)+2)
	if o.variant != "" {
		values["variant"] = o.variant
	}
	if o.size != "" {
		values["size"] = o.size
	}
	for _, pair := range o.set {
		axis, value, ok := strings.Cut(pair, "=")
		axis = strings.TrimSpace(axis)
		if !ok || axis == "" {
			return variants.Config{}, fmt.Errorf("invalid selection %q, expected axis=value", pair)
		}
		values[axis] = strings.TrimSpace(value)
	}

	return variants.Config{
		Values:   values,
		Disabled: o.disabled,
		Loading:  o.loading,
		HasIcon:  strings.TrimSpace(o.icon) != "",
		Class:    o.class,
	}, nil
}

func resolveSuggestion(err error) string {
	var valueErr *clarivuserrors.UnknownVariantValueError
	if errors.As(err, &valueErr) {
		return fmt.Sprintf("Use one of: %s.", strings.Join(valueErr.Allowed, ", "))
	}
	return "Run 'clarivus components' to list components and their axes."
}
