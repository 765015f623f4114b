// Package cmd provides Cobra CLI commands for orbit.
package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/bnema/orbit/internal/cli"
	"github.com/bnema/orbit/internal/cli/model"
	"github.com/bnema/orbit/internal/cli/styles"
	"github.com/bnema/orbit/internal/domain/build"
	"github.com/bnema/orbit/internal/logging"
)

var errNotTerminal = errors.New("orbit needs an interactive terminal; see 'orbit --help' for subcommands")

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "orbit",
		Short: "A keyboard-driven start page for the terminal",
		Long: `Orbit - a start page that lives in your terminal.

Type to filter your bookmarks. Anything that is not a bookmark is
opened as a URL when it looks like one, or searched with your search
engine. While you type, search suggestions are fetched in the background.

Start the input with ':' to run a command (:list, :config, :bookmark,
:export, :import, :help, :reset).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "schema", "version", "init":
				return nil
			}

			mode := cli.LogToStderr
			if cmd == cmd.Root() {
				mode = cli.LogToFile
			}

			var err error
			app, err = cli.NewApp(mode)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
		RunE: runStartPage,
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information from main.go.
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func runStartPage(_ *cobra.Command, _ []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errNotTerminal
	}

	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()
	log := logging.FromContext(ctx)

	if err := app.EnsureSeeded(ctx); err != nil {
		return err
	}

	configChanges, err := app.WatchConfig()
	if err != nil {
		log.Warn().Err(err).Msg("config watch unavailable")
	}
	bookmarkChanges, err := app.WatchBookmarks(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("bookmark watch unavailable")
	}

	exportPath, err := app.ExportPath()
	if err != nil {
		log.Warn().Err(err).Msg("export path unavailable")
	}

	styles.UseEnvColorProfile()
	m := model.NewOmnibox(ctx, app.Theme, model.OmniboxConfig{
		Bookmarks:       app.BookmarksUC,
		Transfer:        app.TransferUC,
		Store:           app.Store(),
		Reset:           app.ResetUC,
		Copier:          app.CopyUC,
		Transport:       app.Suggest,
		Navigator:       app.Navigator,
		Resolver:        cli.ResolverConfig(app.Config),
		Appearance:      app.Config.Appearance,
		ExportPath:      exportPath,
		ConfigPath:      app.ConfigFile(),
		Editor:          cli.EditorCommand,
		BookmarkChanges: bookmarkChanges,
		ConfigChanges:   configChanges,
	})
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus())
	_, err = p.Run()
	return err
}
