package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/ppiankov/lacph/internal/model"
	"github.com/ppiankov/lacph/internal/registry"
	"github.com/spf13/cobra"
)

var (
	datesFrom string
	datesTo   string
)

// datesCmd lists the registered releases
var datesCmd = &cobra.Command{
	Use:   "dates",
	Short: "List the press releases lacph knows about",
	Long: `List every registered release date with its press release identifier.

Example:
  lacph dates
  lacph dates --from 2020-04-01 --to 2020-04-30`,
	Args: cobra.NoArgs,
	RunE: runDates,
}

func init() {
	rootCmd.AddCommand(datesCmd)

	datesCmd.Flags().StringVar(&datesFrom, "from", "", "first date to list (YYYY-MM-DD)")
	datesCmd.Flags().StringVar(&datesTo, "to", "", "last date to list (YYYY-MM-DD)")
}

func runDates(cmd *cobra.Command, args []string) error {
	entries, err := filterEntries(registry.Default().Entries(), datesFrom, datesTo)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tPRID")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%d\n", e.Date, e.PRID)
	}
	return w.Flush()
}

// filterEntries keeps entries within the inclusive [from, to] range;
// empty bounds are open
func filterEntries(entries []registry.Entry, from, to string) ([]registry.Entry, error) {
	var lo, hi model.Date
	var err error
	if from != "" {
		if lo, err = model.ParseDate(from); err != nil {
			return nil, err
		}
	}
	if to != "" {
		if hi, err = model.ParseDate(to); err != nil {
			return nil, err
		}
	}

	out := make([]registry.Entry, 0, len(entries))
	for _, e := range entries {
		if !lo.IsZero() && e.Date.Before(lo) {
			continue
		}
		if !hi.IsZero() && e.Date.After(hi) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
