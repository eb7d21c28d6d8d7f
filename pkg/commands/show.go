package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	do := &options.DisplayOptions{}

	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"get", "today"},
		Short:   "Print the schedule, todos and goals of a day.",
		Example: `
dayplan show
dayplan show --on=2024-03-05 --json
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

			s := show.Show{
				Persistence: sess.Store,
				On:          date,
				Locale:      sess.Locale,
				JSON:        oo.JSON,
				Compact:     do.Compact,
				Out:         cmd.OutOrStdout(),
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddDisplayArgs(cmd, do)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
