package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/fvillarroel/cobertor-bot/internal/common"
	"github.com/fvillarroel/cobertor-bot/internal/repository"
)

var dbhealthCmd = &cobra.Command{
	Use:   "dbhealth",
	Short: "Check database connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.Default()
		cfg := common.LoadConfig()

		if cfg.Database.DSN == "" {
			return fmt.Errorf("DB_URL is required")
		}

		ctx := cmd.Context()
		client, pool, err := repository.Open(ctx, repository.Config{
			DSN:             cfg.Database.DSN,
			MaxConns:        2,
			MinConns:        1,
			MaxConnLifetime: time.Minute,
			MaxConnIdleTime: time.Minute,
			DialTimeout:     cfg.Database.DialTimeout,
		}, logger)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer repository.Close(client, pool, logger)

		if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
			return fmt.Errorf("database health check failed: %w", err)
		}
		fmt.Println("database OK")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbhealthCmd)
}
