package options

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// IndexOptions points at one task by list name and 1-based position, as
// printed by show.
type IndexOptions struct {
	List  string
	Index int
	Undo  bool
}

func AddUndoArgs(cmd *cobra.Command, o *IndexOptions) {
	cmd.Flags().BoolVarP(&o.Undo, "undo", "u", false,
		"Uncheck the task instead.")
}

// Parse reads "todo|goal N" from args.
func (o *IndexOptions) Parse(args []string) error {
	if len(args) != 2 {
		return errors.New("requires a list (todo or goal) and a task number")
	}
	switch args[0] {
	case "todo", "todos", "goal", "goals":
	default:
		return fmt.Errorf("unknown list %q, want todo or goal", args[0])
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n < 1 {
		return fmt.Errorf("invalid task number %q", args[1])
	}
	o.List, o.Index = args[0], n
	return nil
}
