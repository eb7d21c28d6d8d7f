package options

import (
	"github.com/spf13/cobra"
)

// DisplayOptions
type DisplayOptions struct {
	Compact bool
}

func AddDisplayArgs(cmd *cobra.Command, o *DisplayOptions) {
	cmd.Flags().BoolVarP(&o.Compact, "compact", "c", false,
		"Hide empty schedule slots.")
}
