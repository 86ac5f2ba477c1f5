package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/use-agent/brandscout/config"
	"github.com/use-agent/brandscout/models"
)

func newScrapeCmd() *cobra.Command {
	var (
		fetchMode string
		timeout   time.Duration
	)
	cmd := &cobra.Command{
		Use:   "scrape <url>",
		Short: "Scrape one brand website and print its profile as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			initLogger(cfg.Log)
			if cmd.Flags().Changed("timeout") {
				cfg.Scraper.FetchTimeout = timeout
			}

			browser, sc := buildScraper(cfg, nil)
			if browser != nil {
				defer browser.Close()
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			req := &models.ScrapeBrandRequest{URL: args[0], FetchMode: fetchMode}
			req.Defaults()

			result, err := sc.Scrape(ctx, req)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
	cmd.Flags().StringVar(&fetchMode, "fetch-mode", "http", "http, auto or browser")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "per-fetch timeout (overrides BRANDSCOUT_FETCH_TIMEOUT)")
	return cmd
}
