package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/actorgraph/tsv"
)

// ErrBadMode is returned when the pathfinder mode is neither u nor w.
var ErrBadMode = errors.New("mode must be u (unweighted) or w (weighted)")

func newPathfinderCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "pathfinder <credits.tsv> <u|w> <pairs.tsv> <out.tsv>",
		Short: "Find the shortest path between each pair of actors",
		Long: "pathfinder answers every (from, to) row of the pairs file. Mode u minimizes hops; " +
			"mode w minimizes the recency-weighted cost of the traversed movies.",
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPathfinder(v, args)
		},
	}
}

func runPathfinder(v *viper.Viper, args []string) error {
	var weighted bool
	switch args[1] {
	case "u":
	case "w":
		weighted = true
	default:
		return fmt.Errorf("%w, got %q", ErrBadMode, args[1])
	}

	r, cleanup, err := session(v, "pathfinder")
	if err != nil {
		return err
	}
	defer cleanup()

	if err := r.LoadGraph(args[0]); err != nil {
		return err
	}
	pairs, st, err := tsv.LoadPairs(args[2])
	if err != nil {
		return err
	}
	r.RecordSkipped("pairs", st.Skipped)

	paths, err := r.FindPaths(pairs, weighted)
	if err != nil {
		return err
	}
	if err := tsv.WriteFile(args[3], func(w io.Writer) error {
		return tsv.WritePaths(w, paths)
	}); err != nil {
		return err
	}

	return r.Finish()
}
