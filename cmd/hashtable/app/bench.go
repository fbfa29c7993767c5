package app

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/bytedance/gopkg/lang/fastrand"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/lleo/go-hashtable"
	"github.com/lleo/go-hashtable/hashers"
	"github.com/lleo/go-hashtable/internal/cfg"
)

type benchOptions struct {
	keys        int
	removeRatio float64
	hasher      string
}

func initBench() {
	var opts benchOptions

	var cmd = &cobra.Command{
		Use:   "bench",
		Short: "Inserts, looks up and removes generated keys, then prints table stats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, log, done, err := setup(rootCmd.Options.ConfigPath)
			if err != nil {
				return err
			}
			defer done()

			opts.merge(cmd.Flags(), &config)
			if err := config.Validate(); err != nil {
				return errors.Wrap(err, "bench flags")
			}

			h, err := hashers.ForString(config.Hasher)
			if err != nil {
				return err
			}

			stats, err := runBench(cmd.Context(), log, h, config.Keys, config.RemoveRatio)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), stats)
			return errors.Wrap(err, "write stats")
		},
	}

	cmd.Flags().IntVarP(&opts.keys, "keys", "n", 0, "number of keys to insert (default from HASHTABLE_KEYS)")
	cmd.Flags().Float64VarP(&opts.removeRatio, "remove-ratio", "r", 0, "fraction of keys to remove (default from HASHTABLE_REMOVE_RATIO)")
	cmd.Flags().StringVar(&opts.hasher, "hasher", "", fmt.Sprintf("hasher to use, one of %v (default from HASHTABLE_HASHER)", hashers.Names()))

	rootCmd.AddCommand(cmd)
}

// merge overrides config with every option whose flag was given.
func (o *benchOptions) merge(fs *pflag.FlagSet, config *cfg.Config) {
	if fs.Changed("keys") {
		config.Keys = o.keys
	}
	if fs.Changed("remove-ratio") {
		config.RemoveRatio = o.removeRatio
	}
	if fs.Changed("hasher") {
		config.Hasher = o.hasher
	}
}

func benchKey(i int) string {
	return "key-" + strconv.Itoa(i)
}

// shuffled returns 0..n-1 in random order (Fisher-Yates).
func shuffled(n int) []int {
	var idxs = make([]int, n)
	for i := range idxs {
		idxs[i] = i
	}
	for i := n - 1; i > 0; i-- {
		var j = fastrand.Intn(i + 1)
		idxs[i], idxs[j] = idxs[j], idxs[i]
	}
	return idxs
}

func runBench(
	ctx context.Context,
	log *zap.Logger,
	h hashtable.Hasher[string],
	nkeys int,
	removeRatio float64,
) (hashtable.Stats, error) {
	var tbl = hashtable.New[string, int](h)

	var start = time.Now()
	for i := 0; i < nkeys; i++ {
		tbl.Insert(benchKey(i), i)
	}
	log.Info("inserted", zap.Int("keys", nkeys), zap.Duration("took", time.Since(start)))

	if err := ctx.Err(); err != nil {
		return hashtable.Stats{}, errors.Wrap(err, "bench interrupted")
	}

	start = time.Now()
	for i := 0; i < nkeys; i++ {
		var val, ok = tbl.Get(benchKey(i))
		if !ok || val != i {
			return hashtable.Stats{}, errors.Errorf("lookup of %s returned %d, %t", benchKey(i), val, ok)
		}
	}
	log.Info("looked up", zap.Int("keys", nkeys), zap.Duration("took", time.Since(start)))

	if err := ctx.Err(); err != nil {
		return hashtable.Stats{}, errors.Wrap(err, "bench interrupted")
	}

	var nremove = int(float64(nkeys) * removeRatio)
	start = time.Now()
	for _, i := range shuffled(nkeys)[:nremove] {
		if _, ok := tbl.Remove(benchKey(i)); !ok {
			return hashtable.Stats{}, errors.Errorf("remove of %s found nothing", benchKey(i))
		}
	}
	log.Info("removed", zap.Int("keys", nremove), zap.Duration("took", time.Since(start)))

	var stats = tbl.Stats()
	log.Debug("stats", zap.Stringer("stats", stats))

	return stats, nil
}
