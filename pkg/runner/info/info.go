package info

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"

	"tableflip.dev/dayplan/pkg/store"
)

type Info struct {
	Config store.Config
	Store  *store.Store
	Out    io.Writer
}

func (n *Info) Do(_ context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("DAYPLAN_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "DAYPLAN_CONFIG_PATH found on env, using ", override)
	} else {
		_, _ = fmt.Fprintln(out, "DAYPLAN_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "Config.path:    ", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.backend: ", n.Config.Backend())
	_, _ = fmt.Fprintln(out, "Config.locale:  ", n.Config.Locale())
	_, _ = fmt.Fprintln(out, "Config.autosave:", n.Config.AutoSave())

	if n.Store == nil {
		return fmt.Errorf("failed to open store")
	}

	doc, res := n.Store.Document()
	if !res.OK {
		_, _ = fmt.Fprintf(out, "Document unreadable: %v\n", res.Err)
		return nil
	}
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	_, _ = fmt.Fprintf(out, "Days stored: %d\n", len(doc))
	if len(keys) > 0 {
		_, _ = fmt.Fprintf(out, "  first %s\n  last  %s\n", keys[0], keys[len(keys)-1])
	}
	return nil
}
