package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a todo or a goal",
		Example: `
dayplan add todo buy milk
dayplan add goal finish the report --on=tomorrow
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTask(cmd, "todo", "Add a todo")
	addTask(cmd, "goal", "Add a goal")

	topLevel.AddCommand(cmd)
}

func addTask(parent *cobra.Command, list, short string) {
	no := &options.AddOptions{}
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   list + " TEXT",
		Short: short,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires some text")
			}
			no.Message = strings.Join(args, " ")
			return nil
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

			s := add.Add{
				Persistence: sess.Store,
				On:          date,
				List:        list,
				Message:     no.Message,
				Done:        no.Done,
				Locale:      sess.Locale,
				Out:         cmd.OutOrStdout(),
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddAddArgs(cmd, no)
	options.AddOnArgs(cmd, on)
	parent.AddCommand(cmd)
}
