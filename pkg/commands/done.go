package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/runner/complete"
)

var listArgs = []string{"todo", "goal"}

func addDone(topLevel *cobra.Command) {
	io := &options.IndexOptions{}
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:     "done todo|goal N",
		Aliases: []string{"complete", "check"},
		Short:   "Check off a todo or a goal",
		Example: `
dayplan done todo 2
dayplan done goal 1 --undo
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

			s := complete.Complete{
				Persistence: sess.Store,
				On:          date,
				List:        io.List,
				Index:       io.Index,
				Undo:        io.Undo,
				Locale:      sess.Locale,
				Out:         cmd.OutOrStdout(),
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddUndoArgs(cmd, io)
	options.AddOnArgs(cmd, on)
	topLevel.AddCommand(cmd)
}
