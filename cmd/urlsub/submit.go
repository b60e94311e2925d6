package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nao1215/urlsub/internal/config"
	"github.com/nao1215/urlsub/internal/log"
	"github.com/nao1215/urlsub/internal/model"
	"github.com/nao1215/urlsub/internal/report"
	"github.com/nao1215/urlsub/internal/sitemap"
	"github.com/nao1215/urlsub/internal/submit"
)

// NewSubmitCmd creates the submit command.
func NewSubmitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Parse an RSS sitemap and submit its URLs for indexing",
		Long: `Submit parses an RSS-formatted sitemap file, extracts the item/link URLs,
and submits them to two indexing APIs in sequence:

- Bing URL Submission API: a random sample of at most --limit URLs,
  authenticated with the BING_API_KEY environment variable.
- IndexNow: the full URL list, authenticated with the INDEXNOW_API_KEY
  environment variable and a <key>.txt file hosted at the site origin.

Both keys must be set before either submission is attempted. Submission
failures are logged and reported; the command still exits successfully so
scheduled runs do not alarm on transient API errors.

Examples:
  # Submit ./sitemap.xml
  urlsub submit

  # Submit a specific sitemap and mirror logs to a file
  urlsub submit --sitemap public/sitemap.xml --log submit.log

  # Cap the Bing batch at 5 URLs and print a JSON report
  urlsub submit -n 5 --json

  # Parse and plan without performing any network calls
  urlsub submit --dry-run`,
		Args: cobra.NoArgs,
		RunE: runSubmitCmd,
	}

	// Input flags
	cmd.Flags().StringP("sitemap", "s", config.DefaultSitemapPath,
		"Path to the RSS sitemap file")
	cmd.Flags().StringP("log", "l", "",
		"Mirror log output to the specified file")

	// Submission behavior flags
	cmd.Flags().IntP("limit", "n", config.DefaultBatchLimit,
		"Maximum number of URLs sampled into one Bing batch")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each submission request")
	cmd.Flags().Bool("dry-run", false,
		"Parse the sitemap and derive the site origin without submitting")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .urlsub in current, home, or XDG config directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runSubmitCmd executes the submit command.
func runSubmitCmd(cmd *cobra.Command, _ []string) error {
	// Build config from flags and the optional config file
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging, optionally mirrored to a file
	logger, closeLog, err := log.Setup(cfg.Verbose, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best effort cleanup
	slog.SetDefault(logger)

	// Set up context with signal handling so an interrupted run cancels
	// the in-flight submission request
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runSubmit(ctx, cfg, logger)
}

// buildConfig creates a Config from cobra command flags and the optional
// configuration file. File values override defaults; flags the user set
// override file values.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load the configuration file.
	// If the user explicitly specified a path, error if it is not found.
	// If no path was specified, silently continue when no file exists.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.ApplyFile(cf)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	cfg.SitemapPath, err = cmd.Flags().GetString("sitemap")
	if err != nil {
		return nil, err
	}

	cfg.LogFile, err = cmd.Flags().GetString("log")
	if err != nil {
		return nil, err
	}

	// Flags override file values only when the user actually set them
	if cmd.Flags().Changed("limit") {
		cfg.BatchLimit, err = cmd.Flags().GetInt("limit")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
		if err != nil {
			return nil, err
		}
	}

	cfg.DryRun, err = cmd.Flags().GetBool("dry-run")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// runSubmit executes the submission flow: parse the sitemap, check
// credentials, derive the site origin, invoke both submitters sequentially,
// and render the report.
//
// All anticipated failures (empty sitemap, missing keys, API errors) are
// logged and absorbed; the command returns an error only for configuration
// and report I/O problems.
func runSubmit(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	// 1. Parse the sitemap
	urls := sitemap.NewParser(logger).Parse(cfg.SitemapPath)
	if len(urls) == 0 {
		logger.Warn("no URLs found in sitemap, nothing to submit", "path", cfg.SitemapPath)
		return nil
	}

	// 2. Read both API keys from the environment.
	// Both must be present before either submission is attempted.
	// A .env file in the working directory is loaded best effort.
	_ = godotenv.Load() //nolint:errcheck // Missing .env is fine
	bingKey := os.Getenv(config.BingKeyEnv)
	indexNowKey := os.Getenv(config.IndexNowKeyEnv)
	if bingKey == "" || indexNowKey == "" {
		logger.Error("missing API keys, skipping submission",
			"hint", fmt.Sprintf("set the %s and %s environment variables",
				config.BingKeyEnv, config.IndexNowKeyEnv))
		return nil
	}

	// 3. Derive the site origin from the first URL
	siteURL, err := submit.SiteOrigin(urls[0])
	if err != nil {
		logger.Error("cannot derive site origin", "url", urls[0], "error", err)
		return nil
	}
	logger.Info("site origin derived", "site", siteURL)

	if cfg.DryRun {
		logger.Info("dry run: skipping submissions",
			"site", siteURL,
			"urls", len(urls),
			"batchLimit", min(len(urls), cfg.BatchLimit),
		)
		return nil
	}

	// 4. Submit to both engines sequentially
	submitters := []submit.Submitter{
		submit.NewBingSubmitter(bingKey,
			submit.WithBingEndpoint(cfg.BingEndpoint),
			submit.WithBingLimit(cfg.BatchLimit),
			submit.WithBingTimeout(cfg.Timeout),
			submit.WithBingUserAgent(cfg.UserAgent),
		),
		submit.NewIndexNowSubmitter(indexNowKey,
			submit.WithIndexNowEndpoint(cfg.IndexNowEndpoint),
			submit.WithIndexNowTimeout(cfg.Timeout),
			submit.WithIndexNowUserAgent(cfg.UserAgent),
		),
	}

	rep := model.NewSubmissionReport(cfg.SitemapPath, siteURL, len(urls))
	for _, s := range submitters {
		logger.Info("submitting URLs", "engine", s.Name(), "urls", len(urls))
		result := s.Submit(ctx, urls, siteURL)
		rep.Add(result)

		if result.IsSuccess() {
			logger.Info("submission succeeded",
				"engine", result.Engine,
				"message", result.Message,
				"statusCode", result.StatusCode,
			)
		} else {
			logger.Error("submission failed",
				"engine", result.Engine,
				"message", result.Message,
				"statusCode", result.StatusCode,
			)
		}
	}

	// 5. Render the report
	return outputReport(cfg, rep)
}

// outputReport renders the submission report in the requested format.
func outputReport(cfg *config.Config, rep *model.SubmissionReport) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided report path is intentional
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close() //nolint:errcheck // Write errors surface via the writer
		output = f
	} else {
		output = os.Stdout
	}

	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewJSONWriter(output)
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(output)
	default:
		writer = report.NewSimpleWriter(output)
	}

	_, err := writer.Write(rep)
	return err
}
