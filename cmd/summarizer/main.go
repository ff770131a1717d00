package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"newsdigest/db"
	"newsdigest/internal/config"
	"newsdigest/internal/digest"
	"newsdigest/internal/repository"
	"newsdigest/pkg/llm"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

var (
	dateFlag     string
	scheduleFlag string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "summarizer",
		Short:        "Generate a consolidated daily summary of stored news",
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&dateFlag, "date", digest.SelectorYesterday, "which day to summarize: today or yesterday")
	rootCmd.Flags().StringVar(&scheduleFlag, "schedule", "", "cron expression; when set, run the digest on a schedule instead of once")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	err = db.Connect(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("error connecting to DB: %w", err)
	}
	defer db.Close()

	counter, err := llm.NewTokenCounter(cfg.TokenizerModel)
	if err != nil {
		return fmt.Errorf("error initializing token counter: %w", err)
	}

	var summarizer llm.Summarizer
	var modelName string
	switch cfg.LLMProvider {
	case "anthropic":
		client := llm.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.LLMTimeout)
		summarizer = client
		modelName = client.ModelName()
	default:
		client := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.LLMTimeout)
		summarizer = client
		modelName = client.ModelName()
	}

	batcher := llm.NewBatcher(counter, summarizer, cfg.BatchTokenLimit, cfg.MaxTokens)

	newsRepo := repository.NewNewsRepository(db.DB)
	summaryRepo := repository.NewSummaryRepository(db.DB)

	service := digest.NewService(newsRepo, summaryRepo, batcher, modelName, cfg.SkipExisting)

	if scheduleFlag != "" {
		c := cron.New()
		_, err := c.AddFunc(scheduleFlag, func() {
			if err := runOnce(service); err != nil {
				slog.Error("scheduled digest failed", "error", err)
			}
		})
		if err != nil {
			return fmt.Errorf("invalid schedule %q: %w", scheduleFlag, err)
		}

		slog.Info("running digest on schedule", "schedule", scheduleFlag)
		c.Run()
		return nil
	}

	return runOnce(service)
}

func runOnce(service *digest.Service) error {
	target, err := digest.ResolveTargetDate(dateFlag, time.Now())
	if err != nil {
		return err
	}

	day := target.Format("2006-01-02")

	result, err := service.Run(context.Background(), target)
	if errors.Is(err, digest.ErrNoArticles) {
		slog.Info("no news data for date", "date", day)
		return nil
	}
	if err != nil {
		slog.Error("digest failed", "date", day, "error", err)
		return err
	}

	if result.Skipped {
		slog.Info("summary already exists for date, skipping", "date", day)
		return nil
	}

	slog.Info("summary saved", "summary_id", result.SummaryID, "article_count", result.ArticleCount, "date", day)
	return nil
}
