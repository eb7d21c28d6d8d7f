package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	io := &options.IndexOptions{}
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:     "remove todo|goal N",
		Aliases: []string{"rm", "delete"},
		Short:   "Delete a todo or a goal",
		Example: `
dayplan remove todo 3
`,
		ValidArgs: listArgs,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return io.Parse(args)
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

			s := remove.Remove{
				Persistence: sess.Store,
				On:          date,
				List:        io.List,
				Index:       io.Index,
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
