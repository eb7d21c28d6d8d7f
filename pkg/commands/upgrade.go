package commands

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"
)

const installPath = "tableflip.dev/dayplan/cmd/dayplan"

func addUpgrade(topLevel *cobra.Command) {
	target := "latest"

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Reinstall dayplan with go install.",
		Example: `
dayplan upgrade
dayplan upgrade --to=v0.2.0
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ex := exec.CommandContext(cmd.Context(), "go", "install", installPath+"@"+target)
			var out bytes.Buffer
			ex.Stdout = &out
			ex.Stderr = &out
			if err := ex.Run(); err != nil {
				return oo.HandleError(fmt.Errorf("%s: %w", out.String(), err))
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "upgraded from %s to %s@%s\n", version, installPath, target)
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "to", target, "Version to install, a tag or latest.")
	topLevel.AddCommand(cmd)
}
