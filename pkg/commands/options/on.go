package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/daykey"
	"tableflip.dev/dayplan/pkg/timeutil"
)

const (
	layoutISOLoose = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions selects the day a command works on.
type OnOptions struct {
	OnString string

	// Now is used for relative dates; defaults to time.Now.
	Now func() time.Time
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2024-03-05", --on="3/5", --on=tomorrow, --on=-1w. Defaults to today.`)
}

// GetOn returns midnight local time of the selected day.
func (o *OnOptions) GetOn() (time.Time, error) {
	now := time.Now()
	if o.Now != nil {
		now = o.Now()
	}
	today := daykey.Midnight(now)

	switch s := strings.ToLower(strings.TrimSpace(o.OnString)); s {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if timeutil.IsOffset(o.OnString) {
		days, err := timeutil.ParseOffset(o.OnString)
		if err != nil {
			return time.Time{}, err
		}
		return today.AddDate(0, 0, days), nil
	}
	if t, err := daykey.Parse(o.OnString, now.Location()); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(layoutISOLoose, o.OnString, now.Location()); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(layoutISOShort, o.OnString, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD or M/D", o.OnString)
	}
	// Let the year be the same.
	t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())
	// I am gonna assume if you said 1/3 on 12/5, you meant next year, not 11 months ago.
	if t.Before(today) {
		t = t.AddDate(1, 0, 0)
	}
	return t, nil
}
