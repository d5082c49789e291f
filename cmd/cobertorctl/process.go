package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/fvillarroel/cobertor-bot/internal/common"
	"github.com/fvillarroel/cobertor-bot/internal/extract"
	"github.com/fvillarroel/cobertor-bot/internal/llm"
	"github.com/fvillarroel/cobertor-bot/internal/llm/openai"
	"github.com/fvillarroel/cobertor-bot/internal/mail"
	"github.com/fvillarroel/cobertor-bot/internal/pipeline"
	"github.com/fvillarroel/cobertor-bot/internal/repository"
)

var flagMaxEmails int

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Fetch unread labeled mail and run it through the extraction pipeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.Default()
		cfg := common.LoadConfig()

		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required")
		}
		if !flagInmem && cfg.Database.DSN == "" {
			return fmt.Errorf("DB_URL is required (or pass --inmem)")
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
		gen := openai.NewClient(openai.Config{
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)

		processor := pipeline.NewProcessor(
			repository.NewStore(client, logger),
			mailc,
			extract.NewTabularExtractor(logger),
			extract.NewDocumentTextExtractor(extract.DocumentConfig{Pdftotext: cfg.Pipeline.Pdftotext}, logger),
			llm.NewExtractor(gen, logger),
			cfg.Pipeline.MinBodyLength,
			logger,
		)
		batch := pipeline.NewBatch(mailc, processor, logger)

		stats, err := batch.ProcessNewMessages(ctx, flagMaxEmails)
		if err != nil {
			return err
		}

		fmt.Printf("emails processed:      %d\n", stats.EmailsProcessed)
		fmt.Printf("tasks created:         %d\n", stats.TasksCreated)
		fmt.Printf("attachments processed: %d\n", stats.AttachmentsProcessed)
		fmt.Printf("duplicates skipped:    %d\n", stats.Duplicates)
		fmt.Printf("errors:                %d\n", stats.Errors)
		return nil
	},
}

func init() {
	processCmd.Flags().IntVar(&flagMaxEmails, "max", 50, "maximum number of emails to process")
	rootCmd.AddCommand(processCmd)
}
