package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/day"
	"tableflip.dev/dayplan/pkg/runner/set"
)

func addSet(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	var hour, text string

	cmd := &cobra.Command{
		Use:   "set HOUR [TEXT]",
		Short: "Write or clear one hour of the schedule.",
		Example: `
dayplan set 9 standup
dayplan set 14H00 dentist --on=tomorrow
dayplan set 9
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires an hour")
			}
			hour = args[0]
			text = strings.Join(args[1:], " ")
			return nil
		},
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return day.Hours, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, err := on.GetOn()
			if err != nil {
				return oo.HandleError(err)
			}
			sess, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			defer sess.Close()

			s := set.Set{
				Persistence: sess.Store,
				On:          date,
				Hour:        hour,
				Text:        text,
				Locale:      sess.Locale,
				Out:         cmd.OutOrStdout(),
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, on)
	topLevel.AddCommand(cmd)
}
