package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/mmcdole/folio/internal/adapter"
	"github.com/mmcdole/folio/internal/gutendex"
	"github.com/mmcdole/folio/internal/service"
	"github.com/mmcdole/folio/internal/store"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

var cfgFile string

// app holds the services shared by every command, built in PersistentPreRunE
type app struct {
	cfg    *adapter.Config
	logger *slog.Logger
	store  *store.LocalStore

	catalog  *service.CatalogService
	wishlist *service.WishlistService
	settings *service.SettingsService
	session  *service.SessionService
	opener   *adapter.Opener
}

var current *app

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Browse the Project Gutenberg catalog from the terminal",
	Long: `folio lists books from the Gutendex API with title search, genre
filtering and a persistent wishlist.

Examples:
  folio                 Browse the catalog
  folio book 84         Show one book
  folio wishlist        Print wished book ids
  folio reset           Forget the wishlist and filters`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations["bare"] == "true" {
			return nil
		}
		a, err := newApp(cfgFile)
		if err != nil {
			return err
		}
		current = a
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if current != nil {
			current.close()
			current = nil
		}
	},
	RunE: runBrowse,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	// PersistentPostRun is skipped when a command fails
	if current != nil {
		current.close()
		current = nil
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.config/folio/config.yaml)")

	rootCmd.AddCommand(bookCmd)
	rootCmd.AddCommand(wishlistCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// newApp loads config and wires the store, client and services
func newApp(cfgPath string) (*app, error) {
	// FOLIO_* variables may also come from .env in the working directory
	_ = godotenv.Load(".env")

	cfg, err := adapter.LoadConfig(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	slog.SetDefault(logger)
	logger.Info("starting folio", "version", Version)

	kv, err := store.NewLocalStore(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	client := gutendex.NewClient(cfg.API.BaseURL, cfg.API.Timeout, logger)

	return &app{
		cfg:      cfg,
		logger:   logger,
		store:    kv,
		catalog:  service.NewCatalogService(client, logger),
		wishlist: service.NewWishlistService(kv, logger),
		settings: service.NewSettingsService(kv, logger),
		session:  service.NewSessionService(kv),
		opener:   adapter.NewOpener(cfg.Opener.Command, cfg.Opener.Args, logger),
	}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.logger.Error("failed to close store", "error", err)
	}
	a.logger.Info("shutting down")
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
