package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/clarivus/internal/tokens"
)

const kindColor = "color"

// errIncompatibleTokens marks a failed version check so callers can tell it from usage errors.
var errIncompatibleTokens = errors.New("token set is incompatible")

func newTokensCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Inspect design tokens",
	}

	cmd.AddCommand(newTokensGetCmd(app))
	cmd.AddCommand(newTokensListCmd(app))
	cmd.AddCommand(newTokensTextStyleCmd(app))
	cmd.AddCommand(newTokensCheckCmd(app))

	return cmd
}

func newTokensGetCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "get <kind> <key> [shade]",
		Short: "Print one token value",
		Example: `  clarivus tokens get color primary 700
  clarivus tokens get spacing 4
  clarivus tokens get component-spacing button.paddingX`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, key := args[0], args[1]

			var (
				value string
				err   error
			)
			switch {
			case kind == kindColor:
				shade := ""
				if len(args) == 3 {
					shade = args[2]
				}
				value, err = app.Tokens.Color(key, shade)
			case len(args) == 3:
				err = errors.New("only color tokens take a shade")
			default:
				value, err = app.Tokens.Lookup(tokens.Kind(kind), key)
			}
			if err != nil {
				return newCommandError("get token", strings.Join(args, " "), err, "Run 'clarivus tokens list "+kind+"' to see valid keys.")
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func newTokensListCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list [kind]",
		Short: "List token kinds, or every token of one kind",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			switch {
			case len(args) == 0:
				fmt.Fprintln(writer, "KIND\tBASE\tCOUNT")
				fmt.Fprintf(writer, "%s\t%s\t%d\n", kindColor, tokens.BaseShade, len(app.Tokens.Palettes()))
				for _, scale := range app.Tokens.Scales() {
					fmt.Fprintf(writer, "%s\t%s\t%d\n", scale.Name(), scale.Base(), scale.Len())
				}
				fmt.Fprintf(writer, "%s\t-\t%d\n", tokens.KindTextStyle, len(app.Tokens.TextStyleNames()))

			case args[0] == kindColor:
				fmt.Fprintln(writer, "SCALE\tSHADE\tVALUE")
				for _, palette := range app.Tokens.Palettes() {
					if palette.Flat() {
						fmt.Fprintf(writer, "%s\t-\t%s\n", palette.Name(), palette.Value())
						continue
					}
					for _, entry := range palette.Shades().Entries() {
						fmt.Fprintf(writer, "%s\t%s\t%s\n", palette.Name(), entry.Key, entry.Value)
					}
				}

			case args[0] == string(tokens.KindTextStyle):
				fmt.Fprintln(writer, "NAME\tSIZE\tWEIGHT\tLINE HEIGHT\tLETTER SPACING")
				for _, name := range app.Tokens.TextStyleNames() {
					style, err := app.Tokens.TextStyle(name)
					if err != nil {
						return newCommandError("list tokens", name, err, "Report this as a bug.")
					}
					fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n", style.Name, style.FontSize, style.FontWeight, style.LineHeight, style.LetterSpacing)
				}

			default:
				scale, err := app.Tokens.Scale(tokens.Kind(args[0]))
				if err != nil {
					return newCommandError("list tokens", args[0], err, "Run 'clarivus tokens list' to see token kinds.")
				}
				fmt.Fprintln(writer, "KEY\tVALUE")
				for _, entry := range scale.Entries() {
					fmt.Fprintf(writer, "%s\t%s\n", entry.Key, entry.Value)
				}
			}

			return writer.Flush()
		},
	}
}

func newTokensTextStyleCmd(app *AppContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "text-style <name>",
		Short: "Print the primitive values of a text style",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := app.Tokens.TextStyle(args[0])
			if err != nil {
				return newCommandError("get text style", args[0], err, "Run 'clarivus tokens list text-style' to see text styles.")
			}

			if jsonOutput {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(style)
			}

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(writer, "font-size\t%s\n", style.FontSize)
			fmt.Fprintf(writer, "font-weight\t%s\n", style.FontWeight)
			fmt.Fprintf(writer, "line-height\t%s\n", style.LineHeight)
			fmt.Fprintf(writer, "letter-spacing\t%s\n", style.LetterSpacing)
			return writer.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func newTokensCheckCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check <min-version>",
		Short: "Check the token set against a minimum version (major only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current := tokens.TokenVersion()
			if !tokens.IsTokenVersionCompatible(args[0]) {
				app.Logger.WithFields(map[string]any{"min": args[0], "current": current}).Warn("token version check failed")
				return newCommandError("check token version", args[0], fmt.Errorf("%w: %s does not satisfy %s", errIncompatibleTokens, current, args[0]), "Upgrade clarivus or pin a lower major version.")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "tokens %s satisfy %s\n", current, args[0])
			return nil
		},
	}
}
