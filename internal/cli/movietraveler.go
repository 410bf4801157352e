package cli

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/actorgraph/tsv"
)

func newMovieTravelerCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "movietraveler <credits.tsv> <out.tsv>",
		Short: "Connect every actor at minimum total travel cost",
		Long: "movietraveler writes the minimum spanning forest of the actor graph, one edge per " +
			"line, labelled with the cheapest movie the two actors share.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, cleanup, err := session(v, "movietraveler")
			if err != nil {
				return err
			}
			defer cleanup()

			if err := r.LoadGraph(args[0]); err != nil {
				return err
			}
			f, err := r.Travel()
			if err != nil {
				return err
			}
			if err := tsv.WriteFile(args[1], func(w io.Writer) error {
				return tsv.WriteForest(w, f)
			}); err != nil {
				return err
			}

			return r.Finish()
		},
	}
}
