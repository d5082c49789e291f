package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/fvillarroel/cobertor-bot/internal/common"
	"github.com/fvillarroel/cobertor-bot/internal/history"
	"github.com/fvillarroel/cobertor-bot/internal/mail"
	"github.com/fvillarroel/cobertor-bot/internal/repository"
)

var (
	flagMonths         int
	flagMaxHistory     int
	flagInternalDomain string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Scan past labeled mail into sender profiles, thread patterns and rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.Default()
		cfg := common.LoadConfig()

		if !flagInmem && cfg.Database.DSN == "" {
			return fmt.Errorf("DB_URL is required (or pass --inmem)")
		}
		if flagMonths > cfg.Pipeline.HistoryMonthsMax {
			return fmt.Errorf("--months exceeds maximum of %d", cfg.Pipeline.HistoryMonthsMax)
		}

		ctx := cmd.Context()
		client, pool, err := openDatabase(ctx, cfg, logger)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer repository.Close(client, pool, logger)

		mailc := mail.NewGmailClient(mail.GmailConfig{
			AccessToken: cfg.Mail.AccessToken,
			BaseURL:     cfg.Mail.BaseURL,
			Label:       cfg.Mail.Label,
			Timeout:     cfg.Mail.Timeout,
		}, logger)

		scanner := history.NewScanner(mailc, repository.NewHistoryRepository(client, logger), history.Config{
			Months:         flagMonths,
			MaxMessages:    flagMaxHistory,
			InternalDomain: flagInternalDomain,
		}, logger)

		stats, err := scanner.Run(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("emails analyzed:  %d\n", stats.EmailsAnalyzed)
		fmt.Printf("senders profiled: %d\n", stats.SendersProfiled)
		fmt.Printf("threads analyzed: %d\n", stats.ThreadsAnalyzed)
		fmt.Printf("rules generated:  %d\n", stats.RulesGenerated)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&flagMonths, "months", 6, "months of history to analyze")
	historyCmd.Flags().IntVar(&flagMaxHistory, "max", 500, "maximum number of messages to fetch")
	historyCmd.Flags().StringVar(&flagInternalDomain, "internal-domain", "", "domain treated as internal senders")
	rootCmd.AddCommand(historyCmd)
}
