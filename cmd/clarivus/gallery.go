package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/clarivus/internal/components"
	"github.com/alexisbeaulieu97/clarivus/internal/tui"
)

func newGalleryCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery [component]",
		Short: "Explore components interactively",
		Long:  `Launch an interactive gallery that cycles a component's variants and modifiers and previews the result.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			component := ""
			if len(args) == 1 {
				component = args[0]
			}
			return runGallery(cmd, app, component)
		},
	}

	return cmd
}

func runGallery(cmd *cobra.Command, app *AppContext, component string) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("start gallery", "stdout", errors.New("not a terminal"), "Run the gallery from an interactive terminal, or use 'clarivus resolve'.")
	}

	m, err := tui.NewModel(app.Catalog, component, components.NewTheme(app.Tokens))
	if err != nil {
		return newCommandError("start gallery", component, err, "Run 'clarivus components' to list components.")
	}

	app.Logger.Info("launching gallery")
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))
	if _, err := p.Run(); err != nil {
		app.Logger.Error(err, "gallery execution failed")
		return fmt.Errorf("failed to run gallery: %w", err)
	}

	app.Logger.Info("gallery closed")
	return nil
}
