package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/runner/week"
)

func addWeek(topLevel *cobra.Command) {
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Summarise the Monday to Sunday week around a day.",
		Example: `
dayplan week
dayplan week --on=2024-03-05
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			date, err := on.GetOn()
			if err != nil {
				return oo.HandleError(err)
			}
			sess, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			defer sess.Close()

			w := week.Week{
				Persistence: sess.Store,
				On:          date,
				Locale:      sess.Locale,
				Out:         cmd.OutOrStdout(),
			}
			err = w.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, on)
	topLevel.AddCommand(cmd)
}
