package main

import (
	"context"
	"fmt"
	"os"

	"dealfinder/ai"
	"dealfinder/config"
	"dealfinder/scraper/reddit"
	"dealfinder/scraper/slickdeals"
	"dealfinder/services"
	"dealfinder/utils"

	"github.com/spf13/cobra"
)

var (
	envFile string
	skipAI  bool
	skipWeb bool
	skipAPI bool
)

var rootCmd = &cobra.Command{
	Use:   "dealfinder",
	Short: "dealfinder collects deals from Slickdeals and Reddit and ranks them with AI ratings.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(envFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		run(cmd.Context(), cfg)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "Environment file to load before reading configuration.")
	rootCmd.Flags().BoolVar(&skipAI, "skip-ai", false, "Skip AI rating even when GEMINI_API_KEY is set.")
	rootCmd.Flags().BoolVar(&skipWeb, "skip-web", false, "Skip the Slickdeals browser scrape.")
	rootCmd.Flags().BoolVar(&skipAPI, "skip-api", false, "Skip the Reddit feed.")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) {
	// ================== Bootstrap ====================
	logger := utils.NewLogger(cfg.LogLevel)
	logger.Info("Deal Finder")

	// =================== AI Setup ====================
	var gen services.Generator
	switch {
	case skipAI:
		logger.Info("AI analysis disabled by --skip-ai.")
	case !cfg.HasAIKey():
		logger.Warn("GEMINI_API_KEY not found in .env file. AI analysis will be skipped.")
	default:
		gemini, err := ai.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Error("AI setup failed, ratings will be skipped: %v", err)
			break
		}
		defer gemini.Close()
		gen = gemini
	}
	annotator := services.NewAnnotator(gen, utils.NewRateLimiter(cfg.RateLimitDelay), logger)

	// =============== Collectors ======================
	var collectors []services.Collector
	if !skipWeb {
		collectors = append(collectors, slickdeals.NewSlickdealsScraper(cfg, logger))
	}
	if !skipAPI {
		collectors = append(collectors, reddit.NewRedditClient(cfg, logger))
	}

	// ================= Pipeline ======================
	services.NewPipeline(collectors, annotator, os.Stdout, logger).Run(ctx)
}
