package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the configuration and where days are stored.",
		Example: `
dayplan info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			sess, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			defer sess.Close()

			s := info.Info{
				Config: sess.Config,
				Store:  sess.Store,
				Out:    cmd.OutOrStdout(),
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
