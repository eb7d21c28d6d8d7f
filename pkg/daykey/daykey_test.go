package daykey

import (
	"testing"
	"time"
)

func TestFormatZeroPads(t *testing.T) {
	d := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)
	if got := Format(d); got != "2024-03-05" {
		t.Fatalf("expected 2024-03-05, got %q", got)
	}
}

func TestFormatCollapsesTimeOfDay(t *testing.T) {
	loc := time.FixedZone("test", 2*60*60)
	morning := time.Date(2024, time.December, 31, 0, 0, 1, 0, loc)
	night := time.Date(2024, time.December, 31, 23, 59, 59, 0, loc)
	if Format(morning) != Format(night) {
		t.Fatalf("expected same key, got %q and %q", Format(morning), Format(night))
	}
	next := night.Add(2 * time.Second)
	if Format(next) == Format(night) {
		t.Fatalf("expected a new key after midnight, both %q", Format(next))
	}
}

func TestFormatUsesLocalFields(t *testing.T) {
	// 00:30 on the 1st in UTC+2 is still the 31st in UTC.
	loc := time.FixedZone("plus2", 2*60*60)
	d := time.Date(2025, time.February, 1, 0, 30, 0, 0, loc)
	if got := Format(d); got != "2025-02-01" {
		t.Fatalf("expected local date key, got %q", got)
	}
}

func TestParseRoundTrip(t *testing.T) {
	d, err := Parse("2024-02-29", time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Hour() != 0 || d.Minute() != 0 {
		t.Fatalf("expected midnight, got %v", d)
	}
	if Format(d) != "2024-02-29" {
		t.Fatalf("round trip mismatch: %s", Format(d))
	}
	if _, err := Parse("2024-13-01", time.UTC); err == nil {
		t.Fatalf("expected error for invalid month")
	}
}

func TestSameWeekMondayBoundary(t *testing.T) {
	monday := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)
	sundayBefore := monday.AddDate(0, 0, -1)
	sundayAfter := monday.AddDate(0, 0, 6)

	if SameWeek(monday, sundayBefore) {
		t.Fatalf("monday and the preceding sunday must be different weeks")
	}
	if !SameWeek(monday, sundayAfter) {
		t.Fatalf("monday and monday+6 must share a week")
	}
}

func TestWeekStartSunday(t *testing.T) {
	sunday := time.Date(2024, time.March, 10, 22, 0, 0, 0, time.UTC)
	want := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	if got := WeekStart(sunday); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestWeekStartAcrossYear(t *testing.T) {
	// Wednesday 1 January 2025 starts in the week of Monday 30 December 2024.
	d := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	want := time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC)
	if got := WeekStart(d); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestWeekDays(t *testing.T) {
	days := WeekDays(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC))
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if days[0].Weekday() != time.Monday || days[6].Weekday() != time.Sunday {
		t.Fatalf("expected monday..sunday, got %v..%v", days[0].Weekday(), days[6].Weekday())
	}
	if Format(days[6]) != "2024-03-10" {
		t.Fatalf("unexpected sunday %s", Format(days[6]))
	}
}

func TestDisplay(t *testing.T) {
	d := time.Date(2024, time.August, 5, 0, 0, 0, 0, time.UTC)
	if got := Display(d, French); got != "5 août 2024" {
		t.Fatalf("unexpected french display %q", got)
	}
	if got := Display(d, English); got != "5 August 2024" {
		t.Fatalf("unexpected english display %q", got)
	}
	if got := Weekday(d, French); got != "Lundi" {
		t.Fatalf("unexpected weekday %q", got)
	}
}

func TestLocaleFor(t *testing.T) {
	if LocaleFor("en-GB").Months[0] != "January" {
		t.Fatalf("expected english for en-GB")
	}
	if LocaleFor("fr-CA").Months[0] != "janvier" {
		t.Fatalf("expected french for fr-CA")
	}
	if LocaleFor("not a tag!").Months[0] != "janvier" {
		t.Fatalf("expected french fallback")
	}
	if LocaleFor("").Months[0] != "janvier" {
		t.Fatalf("expected french default")
	}
}
