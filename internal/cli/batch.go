package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/lacph/internal/model"
	"github.com/ppiankov/lacph/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	workers      int
	batchOut     string
	batchFormat  string
	batchTimeout time.Duration
	keepGoing    bool
)

// batchCmd parses every registered release
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Fetch and parse every registered press release",
	Long: `Batch builds the full ordered history of daily records:
- Every registered release date is queried in ascending order
- Cached releases and records are reused; the rest are fetched
- The complete history is cached as one snapshot

By default the first failed date aborts the batch. With --keep-going the
remaining dates are still processed and failures are listed at the end.

Example:
  lacph batch --out history.yaml
  lacph batch --workers 4 --format json --out history.json
  lacph batch --keep-going --backend sqlite`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&workers, "workers", 0, "number of concurrent workers (default from config)")
	batchCmd.Flags().StringVar(&batchOut, "out", "", "output path (default stdout)")
	batchCmd.Flags().StringVar(&batchFormat, "format", "", "output format: yaml or json (default from config)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&keepGoing, "keep-going", false, "continue past failed dates")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "ignore cached releases and records (results are still cached)")
	batchCmd.Flags().StringVar(&cacheBackend, "backend", "", "cache backend: disk or sqlite (default from config)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	applyCommonFlags(cfg, cacheBackend, batchFormat)
	if workers > 0 {
		cfg.Concurrency.Workers = workers
	}
	logger := newLogger(cfg)

	ctx, cancel := context.WithTimeout(cmd.Context(), batchTimeout)
	defer cancel()

	p, err := pipeline.NewPipeline(cfg, pipeline.Options{Refresh: noCache, Logger: logger})
	if err != nil {
		return err
	}
	defer func() { _ = p.Close() }()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  lacph Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Releases:     %d\n", p.Registry().Len())
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", cfg.Concurrency.Workers)
	fmt.Fprintf(os.Stderr, "  Cache:        %s\n", describeCache(cfg.Cache))
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	var records []model.DailyRecord
	failures := 0

	if keepGoing {
		for _, result := range p.Collect(ctx) {
			if result.Error != nil {
				failures++
				fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Date, result.Error)
				continue
			}
			records = append(records, *result.Record)
		}
	} else {
		records, err = p.QueryAll(ctx)
		if err != nil {
			return fmt.Errorf("batch failed: %w", err)
		}
	}

	if err := renderTo(cmd.OutOrStdout(), batchOut, records, cfg.Output.Format); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Records:   %d\n", len(records))
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failures)
	if batchOut != "" {
		fmt.Fprintf(os.Stderr, "  Output:    %s\n", batchOut)
	}
	fmt.Fprintf(os.Stderr, "\n")

	if failures > 0 {
		return fmt.Errorf("%d of %d releases failed", failures, p.Registry().Len())
	}
	return nil
}

func describeCache(cfg model.CacheConfig) string {
	switch {
	case !cfg.Enabled:
		return "memory only"
	case cfg.Backend == model.BackendSQLite:
		return "sqlite " + cfg.SQLitePath
	default:
		return "disk " + cfg.Dir
	}
}
