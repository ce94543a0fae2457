package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/ppiankov/lacph/internal/model"
	"github.com/ppiankov/lacph/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	fetchTimeout time.Duration
	fetchFormat  string
	fetchOut     string
	noCache      bool
	cacheBackend string
)

// fetchCmd parses one release
var fetchCmd = &cobra.Command{
	Use:   "fetch <YYYY-MM-DD>",
	Short: "Fetch and parse the press release of one date",
	Long: `Fetch the press release published on the given date, parse its statistics
and print the record.

The raw release and the parsed record are cached; later runs read them back
without touching the network unless --no-cache is given.

Example:
  lacph fetch 2020-04-04
  lacph fetch 2020-05-14 --format json --out 2020-05-14.json`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().DurationVar(&fetchTimeout, "timeout", 2*time.Minute, "overall timeout")
	fetchCmd.Flags().StringVar(&fetchFormat, "format", "", "output format: yaml or json (default from config)")
	fetchCmd.Flags().StringVar(&fetchOut, "out", "", "output path (default stdout)")
	fetchCmd.Flags().BoolVar(&noCache, "no-cache", false, "ignore cached releases and records (results are still cached)")
	fetchCmd.Flags().StringVar(&cacheBackend, "backend", "", "cache backend: disk or sqlite (default from config)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	date, err := model.ParseDate(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	applyCommonFlags(cfg, cacheBackend, fetchFormat)
	logger := newLogger(cfg)

	ctx, cancel := context.WithTimeout(cmd.Context(), fetchTimeout)
	defer cancel()

	p, err := pipeline.NewPipeline(cfg, pipeline.Options{Refresh: noCache, Logger: logger})
	if err != nil {
		return err
	}
	defer func() { _ = p.Close() }()

	rec, err := p.QueryDate(ctx, date)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", date, err)
	}

	return renderTo(cmd.OutOrStdout(), fetchOut, rec, cfg.Output.Format)
}

// applyCommonFlags lets explicit flags win over the loaded config
func applyCommonFlags(cfg *model.Config, backend, format string) {
	if backend != "" {
		cfg.Cache.Backend = backend
	}
	if format != "" {
		cfg.Output.Format = format
	}
}
