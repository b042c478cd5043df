package prayertimes

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/tidwall/gjson"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/model"
)

// ParseTimings extracts data.timings and data.meta.timezone from a timings
// response. A response without timings yields an empty timetable, not an error.
func ParseTimings(raw []byte) (model.Timetable, error) {
	if !gjson.ValidBytes(raw) {
		return model.Timetable{}, fmt.Errorf("%w: invalid timings JSON", ErrUpstream)
	}

	tt := model.Timetable{
		Times:    model.PrayerTimes{},
		Timezone: gjson.GetBytes(raw, "data.meta.timezone").String(),
	}
	gjson.GetBytes(raw, "data.timings").ForEach(func(name, value gjson.Result) bool {
		if fields := strings.Fields(value.String()); len(fields) > 0 {
			tt.Times[name.String()] = fields[0]
		}
		return true
	})
	return tt, nil
}

// isCurrent reports whether a timings body is for the calendar date of now at
// the body's own timezone. Bodies without data.date (calendars) are current.
func isCurrent(raw []byte, now time.Time) bool {
	date := gjson.GetBytes(raw, "data.date.gregorian.date").String()
	if date == "" {
		return true
	}
	loc := time.UTC
	if tz := gjson.GetBytes(raw, "data.meta.timezone").String(); tz != "" {
		if l, err := time.LoadLocation(tz); err == nil {
			loc = l
		}
	}
	return now.In(loc).Format("02-01-2006") == date
}
