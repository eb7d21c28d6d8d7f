package options

import (
	"github.com/spf13/cobra"
)

// AddOptions
type AddOptions struct {
	Message string
	Done    bool
}

func AddAddArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().BoolVar(&o.Done, "done", false,
		"Add the task already checked off.")
}
