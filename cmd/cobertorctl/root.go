package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/fvillarroel/cobertor-bot/gen/ent"
	"github.com/fvillarroel/cobertor-bot/internal/common"
	"github.com/fvillarroel/cobertor-bot/internal/repository"
)

var (
	flagInmem   bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:           "cobertorctl",
	Short:         "Batch tooling for the cobertor task pipeline",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if flagVerbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagInmem, "inmem", false, "use an in-memory SQLite database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
}

// openDatabase opens either the configured Postgres or, with --inmem, a
// throwaway SQLite database. The returned pool is nil in SQLite mode.
func openDatabase(ctx context.Context, cfg *common.Config, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	if flagInmem {
		client, err := repository.OpenSQLite(ctx, "", logger)
		return client, nil, err
	}
	return repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
}
