package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/clarivus/internal/variants"
)

type componentsOptions struct {
	jsonOutput bool
}

type componentJSON struct {
	Name string              `json:"name"`
	Axes []variants.AxisInfo `json:"axes"`
}

func newComponentsCmd(app *AppContext) *cobra.Command {
	opts := &componentsOptions{}

	cmd := &cobra.Command{
		Use:   "components",
		Short: "List components and their variant axes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComponents(cmd, app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runComponents(cmd *cobra.Command, app *AppContext, opts *componentsOptions) error {
	names := app.Catalog.Names()
	entries := make([]componentJSON, 0, len(names))
	for _, name := range names {
		table, err := app.Catalog.Table(name)
		if err != nil {
			return newCommandError("list components", name, err, "Reload the catalog and try again.")
		}
		entries = append(entries, componentJSON{Name: name, Axes: table.Axes()})
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "COMPONENT\tAXIS\tDEFAULT\tVALUES")
	for _, entry := range entries {
		if len(entry.Axes) == 0 {
			fmt.Fprintf(writer, "%s\t-\t-\t-\n", entry.Name)
			continue
		}
		for _, axis := range entry.Axes {
			fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", entry.Name, axis.Name, axis.Default, strings.Join(axis.Values, ", "))
		}
	}
	return writer.Flush()
}
