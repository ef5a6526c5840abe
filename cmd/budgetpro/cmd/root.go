package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oladimeji-kazeem/budgetpro/internal/client"
	"github.com/oladimeji-kazeem/budgetpro/internal/config"
	"github.com/oladimeji-kazeem/budgetpro/internal/credstore"
	"github.com/oladimeji-kazeem/budgetpro/internal/observability"
	"github.com/oladimeji-kazeem/budgetpro/internal/session"
	"github.com/oladimeji-kazeem/budgetpro/internal/shell"
)

var rootCmd = &cobra.Command{
	Use:   "budgetpro",
	Short: "BudgetPro client shell",
	Long: `Terminal front end for the BudgetPro budgeting service.
Authenticates against the BudgetPro API, keeps the issued tokens in a
local credential store, and gates screens by the role carried in the
access token.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appShell bundles everything a command needs: config, session state
// restored from the credential store, the API client, and the view guard.
type appShell struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    *credstore.FileStore
	sessions *session.Manager
	api      *client.Client
	guard    *shell.Guard
}

func (s *appShell) close() {
	if s.store != nil {
		_ = s.store.Close()
	}
	if s.logger != nil {
		_ = s.logger.Sync()
	}
}

// newShell builds the shared command context and restores any persisted
// session.
func newShell() (*appShell, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}

	if dir := filepath.Dir(cfg.Client.CredentialFile); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("creating credential directory: %w", err)
		}
	}

	store, err := credstore.Open(cfg.Client.CredentialFile)
	if err != nil {
		return nil, err
	}

	sessions := session.NewManager(store, logger)
	sessions.Initialize()

	return &appShell{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		sessions: sessions,
		api:      client.New(cfg.Client.APIBaseURL, cfg.Client.HTTPTimeout(), logger),
		guard:    shell.NewGuard(shell.DefaultViews()...),
	}, nil
}
