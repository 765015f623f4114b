// Package cli wires the orbit start page and its subcommands.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bnema/orbit/internal/application/port"
	"github.com/bnema/orbit/internal/application/usecase"
	"github.com/bnema/orbit/internal/cli/styles"
	"github.com/bnema/orbit/internal/domain/build"
	"github.com/bnema/orbit/internal/domain/entity"
	"github.com/bnema/orbit/internal/infrastructure/browser"
	"github.com/bnema/orbit/internal/infrastructure/clipboard"
	"github.com/bnema/orbit/internal/infrastructure/config"
	"github.com/bnema/orbit/internal/infrastructure/exchange"
	"github.com/bnema/orbit/internal/infrastructure/filesystem"
	"github.com/bnema/orbit/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/orbit/internal/infrastructure/suggest"
	"github.com/bnema/orbit/internal/infrastructure/xdg"
	"github.com/bnema/orbit/internal/logging"
)

// LogMode selects where an App writes its logs.
type LogMode int

const (
	// LogToStderr is used by one-shot subcommands.
	LogToStderr LogMode = iota
	// LogToFile is used while the TUI owns the terminal.
	LogToFile
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info

	configMgr *config.Manager
	db        *sqlite.LazyDB
	store     *exchange.Store

	// Use cases
	BookmarksUC *usecase.ManageBookmarksUseCase
	TransferUC  *usecase.TransferDataUseCase
	ResetUC     *usecase.ResetDataUseCase
	CopyUC      *usecase.CopyTextUseCase
	PurgeUC     *usecase.PurgeDataUseCase

	// Adapters
	Suggest   *suggest.Client
	Navigator port.Navigator
	Settings  *config.SettingsStore

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads the configuration and builds every dependency. The database
// is opened on first use.
func NewApp(mode LogMode) (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	ctx, logCleanup := newLoggerContext(cfg, mode)
	log := logging.FromContext(ctx)

	db := sqlite.NewLazyDB(cfg.Database.Path)
	repo := sqlite.NewLazyBookmarkRepository(db)
	store := exchange.NewStore()
	settings := config.NewSettingsStore(mgr)

	bookmarksUC := usecase.NewManageBookmarksUseCase(repo, loadSeed(ctx, store, cfg.Bookmarks.SeedFile))

	app := &App{
		Config:      cfg,
		Theme:       styles.NewTheme(cfg),
		configMgr:   mgr,
		db:          db,
		store:       store,
		BookmarksUC: bookmarksUC,
		TransferUC:  usecase.NewTransferDataUseCase(bookmarksUC, settings, store),
		ResetUC:     usecase.NewResetDataUseCase(bookmarksUC, settings),
		CopyUC:      usecase.NewCopyTextUseCase(clipboard.New()),
		PurgeUC:     usecase.NewPurgeDataUseCase(filesystem.New(), xdg.New()),
		Suggest:     suggest.NewClient(SuggestConfig(cfg)),
		Navigator:   browser.NewNavigator(),
		Settings:    settings,
		ctx:         ctx,
		logCleanup:  logCleanup,
	}

	log.Debug().
		Str("config", mgr.GetConfigFile()).
		Str("db_path", cfg.Database.Path).
		Msg("app initialized")
	return app, nil
}

func newLoggerContext(cfg *config.Config, mode LogMode) (context.Context, func()) {
	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Logging.Level)
	logCfg.Format = cfg.Logging.Format
	logCfg.TimeFormat = "15:04:05"

	fileCfg := logging.FileConfig{WriteToStderr: true}
	if mode == LogToStderr && logCfg.Level == zerolog.InfoLevel {
		logCfg.Level = zerolog.WarnLevel
	}
	if mode == LogToFile {
		fileCfg = logging.FileConfig{
			Enabled: cfg.Logging.EnableFileLog,
			LogDir:  cfg.Logging.LogDir,
		}
	}

	logger, cleanup, err := logging.NewWithFile(logCfg, fileCfg)
	ctx := logging.WithContext(context.Background(), logger)
	if err != nil {
		logger.Warn().Err(err).Msg("file logging unavailable")
	}
	return ctx, cleanup
}

// loadSeed reads the optional seed document. A missing or broken file
// falls back to the builtin list.
func loadSeed(ctx context.Context, store *exchange.Store, path string) []*entity.Bookmark {
	if path == "" {
		return nil
	}
	log := logging.FromContext(ctx)

	doc, err := store.ReadDocument(ctx, path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("seed file ignored")
		return nil
	}

	seed := make([]*entity.Bookmark, 0, len(doc.Bookmarks))
	for _, eb := range doc.Bookmarks {
		seed = append(seed, entity.NewBookmark(eb.Name, eb.URL, eb.Tags...))
	}
	if len(seed) == 0 {
		return nil
	}
	return seed
}

// SuggestConfig maps the suggestions section onto the transport settings.
func SuggestConfig(cfg *config.Config) suggest.Config {
	return suggest.Config{
		Host:            cfg.Suggestions.Host,
		RequestTimeout:  cfg.Suggestions.RequestTimeout(),
		FallbackTimeout: cfg.Suggestions.FallbackTimeout(),
		MaxResults:      cfg.Suggestions.MaxResults,
	}
}

// ResolverConfig maps the config onto the per-keystroke resolver settings.
func ResolverConfig(cfg *config.Config) usecase.ResolverConfig {
	return usecase.ResolverConfig{
		SearchEngine:       cfg.SearchEngine,
		SuggestionsEnabled: cfg.Suggestions.Enabled,
	}
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// ConfigFile returns the path of the loaded config file.
func (a *App) ConfigFile() string {
	return a.configMgr.GetConfigFile()
}

// DatabasePath returns the bookmark database location.
func (a *App) DatabasePath() string {
	return a.db.Path()
}

// Store returns the export document codec.
func (a *App) Store() *exchange.Store {
	return a.store
}

// ExportPath returns where :export writes and :import reads.
func (a *App) ExportPath() (string, error) {
	if a.Config.Bookmarks.ExportFile != "" {
		return a.Config.Bookmarks.ExportFile, nil
	}
	return config.GetExportFile()
}

// EnsureSeeded fills an empty bookmark store with the seed list.
func (a *App) EnsureSeeded(ctx context.Context) error {
	seeded, err := a.BookmarksUC.SeedIfEmpty(ctx)
	if err != nil {
		return err
	}
	if seeded {
		logging.FromContext(ctx).Info().Msg("bookmark store seeded")
	}
	return nil
}

// WatchConfig starts watching the config file. Reloaded configs are sent on
// the returned channel; an unread value is replaced by a newer one.
func (a *App) WatchConfig() (<-chan *config.Config, error) {
	updates := make(chan *config.Config, 1)
	a.configMgr.OnConfigChange(func(cfg *config.Config) {
		select {
		case <-updates:
		default:
		}
		updates <- cfg
	})
	if err := a.configMgr.Watch(a.ctx); err != nil {
		return nil, err
	}
	return updates, nil
}

// WatchBookmarks reports writes to the bookmark database by any process.
func (a *App) WatchBookmarks(ctx context.Context) (<-chan struct{}, error) {
	return sqlite.WatchDatabase(ctx, a.db.Path())
}

// EditorCommand returns a command that opens path in $VISUAL or $EDITOR,
// falling back to vi.
func EditorCommand(path string) *exec.Cmd {
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vi"
	}
	fields := strings.Fields(editor)
	args := append(fields[1:], path)
	return exec.Command(fields[0], args...) //nolint:gosec // the editor is chosen by the user
}
