package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/model"
)

// ParseClock parses an "HH:MM" time of day. Trailing annotations such as
// "05:12 (+06)" are ignored.
func ParseClock(s string) (hour, minute int, err error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, 0, fmt.Errorf("empty time of day")
	}
	t, err := time.Parse("15:04", fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}

// At places an "HH:MM" time of day on now's calendar date, in now's location.
func At(now time.Time, clock string) (time.Time, bool) {
	h, m, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, false
	}
	y, mo, d := now.Date()
	return time.Date(y, mo, d, h, m, 0, 0, now.Location()), true
}

// ResolveNext picks the upcoming prayer relative to now. Times already passed
// today are treated as tomorrow's. It returns false when times holds nothing
// usable, which callers treat as "no data yet".
func ResolveNext(times model.PrayerTimes, now time.Time) (model.NextPrayer, bool) {
	var (
		best  model.NextPrayer
		found bool
	)
	for _, name := range orderedNames(times) {
		at, ok := At(now, times[name])
		if !ok {
			continue
		}
		if at.Before(now) {
			at = at.AddDate(0, 0, 1)
		}
		if !found || at.Before(best.At) {
			best = model.NextPrayer{Name: name, Time: times[name], At: at}
			found = true
		}
	}
	if !found {
		return model.NextPrayer{}, false
	}

	remaining := best.At.Sub(now)
	best.Countdown = Countdown(remaining)
	best.Seconds = int64(remaining / time.Second)
	return best, true
}

// Countdown renders d as "Xh Ym Zs", truncating each unit. Negative durations
// render as zero.
func Countdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}

// orderedNames lists the known prayers in day order, then any other names
// alphabetically, so ties resolve the same way on every call.
func orderedNames(times model.PrayerTimes) []string {
	names := make([]string, 0, len(times))
	known := make(map[string]bool, len(model.PrayerOrder))
	for _, name := range model.PrayerOrder {
		known[name] = true
		if _, ok := times[name]; ok {
			names = append(names, name)
		}
	}

	var extra []string
	for name := range times {
		if !known[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}
