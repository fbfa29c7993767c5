package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lleo/go-hashtable"
	"github.com/lleo/go-hashtable/hashers"
)

func initCount() {
	var hasher string

	var cmd = &cobra.Command{
		Use:   "count FILE...",
		Short: "Counts whitespace separated words in the given files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, log, done, err := setup(rootCmd.Options.ConfigPath)
			if err != nil {
				return err
			}
			defer done()

			if !cmd.Flags().Changed("hasher") {
				hasher = config.Hasher
			}
			h, err := hashers.ForString(hasher)
			if err != nil {
				return err
			}

			var tbl = hashtable.New[string, int](h)
			for _, path := range args {
				if err := countFile(cmd.Context(), tbl, path); err != nil {
					return err
				}
				log.Debug("counted", zap.String("file", path), zap.Int("distinct", tbl.Len()))
			}

			if err := writeCounts(cmd.OutOrStdout(), tbl); err != nil {
				return err
			}

			log.Info("done", zap.Stringer("stats", tbl.Stats()))
			return nil
		},
	}

	cmd.Flags().StringVar(&hasher, "hasher", "", fmt.Sprintf("hasher to use, one of %v (default from HASHTABLE_HASHER)", hashers.Names()))

	rootCmd.AddCommand(cmd)
}

func countFile(ctx context.Context, tbl *hashtable.Table[string, int], path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	return errors.Wrapf(countWords(ctx, tbl, f), "count %s", path)
}

// countWords adds one to tbl[word] for every word read from r.
func countWords(ctx context.Context, tbl *hashtable.Table[string, int], r io.Reader) error {
	var sc = bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	for n := 0; sc.Scan(); n++ {
		if n%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		if p := tbl.GetPtr(sc.Text()); p != nil {
			*p++
			continue
		}
		tbl.Insert(sc.Text(), 1)
	}

	return sc.Err()
}

// writeCounts prints one "word count" line per entry, in table iteration
// order.
func writeCounts(w io.Writer, tbl *hashtable.Table[string, int]) error {
	var bw = bufio.NewWriter(w)
	for word, n := range tbl.All() {
		if _, err := fmt.Fprintf(bw, "%s %d\n", word, n); err != nil {
			return errors.Wrap(err, "write counts")
		}
	}
	return errors.Wrap(bw.Flush(), "write counts")
}
