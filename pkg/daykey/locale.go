package daykey

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// Locale holds the names used for human-readable dates.
type Locale struct {
	Tag      language.Tag
	Weekdays [7]string  // indexed by time.Weekday, Sunday first
	Months   [12]string // January first
	Short    [7]string  // two letter weekday labels, Sunday first
}

var (
	French = Locale{
		Tag:      language.French,
		Weekdays: [7]string{"Dimanche", "Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi"},
		Months: [12]string{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		},
		Short: [7]string{"Di", "Lu", "Ma", "Me", "Je", "Ve", "Sa"},
	}

	English = Locale{
		Tag:      language.English,
		Weekdays: [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		Months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		Short: [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
	}
)

var (
	supported = []Locale{French, English}
	matcher   = language.NewMatcher([]language.Tag{French.Tag, English.Tag})
)

// LocaleFor picks the closest supported locale for a BCP 47 tag such as
// "fr-CA" or "en". Unknown or empty tags fall back to French.
func LocaleFor(tag string) Locale {
	if tag == "" {
		return French
	}
	t, err := language.Parse(tag)
	if err != nil {
		return French
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return French
	}
	return supported[idx]
}

// Display renders t as "<day> <month> <year>", e.g. "5 mars 2024".
func Display(t time.Time, l Locale) string {
	return DisplayParts(t.Day(), t.Month(), t.Year(), l)
}

// DisplayParts is Display without a time value.
func DisplayParts(day int, month time.Month, year int, l Locale) string {
	return fmt.Sprintf("%d %s %d", day, l.Months[month-1], year)
}

// Weekday returns the localized weekday name of t.
func Weekday(t time.Time, l Locale) string {
	return l.Weekdays[t.Weekday()]
}
