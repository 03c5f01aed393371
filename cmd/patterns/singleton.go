package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/patterns/internal/ports"
	"github.com/alexisbeaulieu97/patterns/internal/tui/toggle"
)

const defaultScript = "get,subscribe,toggle,set=light,unsubscribe,toggle"

type singletonOptions struct {
	headless bool
	script   string
}

func newSingletonCmd(app *AppContext) *cobra.Command {
	opts := &singletonOptions{}

	cmd := &cobra.Command{
		Use:     "singleton",
		Aliases: []string{"theme"},
		Short:   "Demo the observable theme singleton",
		Long: `Drive the process-wide theme store.

On a terminal this opens an interactive light/dark switch. With --headless,
--script, or when output is not a terminal, a comma separated script runs
against the store instead. Steps: get, toggle, set=<light|dark>, subscribe,
unsubscribe.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.singleton")

			if opts.headless || opts.script != "" || !isTerminal(cmd.OutOrStdout()) {
				script := opts.script
				if script == "" {
					script = defaultScript
				}
				steps, err := parseScript(script)
				if err != nil {
					return err
				}
				logger.Debug(ctx, "running theme script", "steps", len(steps))
				return runScript(app.Store, cmd.OutOrStdout(), steps)
			}

			return runInteractive(ctx, app, logger, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.headless, "headless", false, "Run a script instead of the interactive demo")
	cmd.Flags().StringVar(&opts.script, "script", "", "Comma separated steps to run against the store")

	return cmd
}

func runInteractive(ctx context.Context, app *AppContext, logger ports.Logger, cmd *cobra.Command) error {
	model := toggle.NewModel(app.Store, toggle.Options{ASCII: app.Config.UI.ASCII})
	defer model.Close()

	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	}
	if app.Config.UI.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	logger.Info(ctx, "launching theme demo", "theme", app.Store.Theme().String())
	if _, err := tea.NewProgram(model, programOpts...).Run(); err != nil {
		logger.Error(ctx, "theme demo failed", "error", err)
		return fmt.Errorf("run theme demo: %w", err)
	}
	logger.Info(ctx, "theme demo closed", "theme", app.Store.Theme().String())
	return nil
}

func isTerminal(writer io.Writer) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
