package cli

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/actorgraph/predict"
	"github.com/katalvlaran/actorgraph/tsv"
)

func newLinkPredictorCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "linkpredictor <credits.tsv> <actors.tsv> <out_past.tsv> <out_new.tsv>",
		Short: "Predict future collaborators for a list of actors",
		Long: "linkpredictor ranks, for every listed actor, the co-stars most likely to work with " +
			"them again (past) and the co-stars of co-stars most likely to work with them for the " +
			"first time (new). Processing stops at the first actor missing from the graph.",
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, cleanup, err := session(v, "linkpredictor")
			if err != nil {
				return err
			}
			defer cleanup()

			if err := r.LoadGraph(args[0]); err != nil {
				return err
			}
			names, st, err := tsv.LoadActors(args[1])
			if err != nil {
				return err
			}
			r.RecordSkipped("actors", st.Skipped)

			res, err := r.Predict(names)
			if err != nil {
				return err
			}
			k := r.Config().TopK
			if err := writePredictions(args[2], res.Past, k); err != nil {
				return err
			}
			if err := writePredictions(args[3], res.New, k); err != nil {
				return err
			}

			return r.Finish()
		},
	}
}

func writePredictions(path string, rows []predict.Prediction, k int) error {
	return tsv.WriteFile(path, func(w io.Writer) error {
		return tsv.WritePredictions(w, rows, k)
	})
}
