package model

import "time"

// Prayer names reported by the prayer-times service.
const (
	Imsak    = "Imsak"
	Fajr     = "Fajr"
	Sunrise  = "Sunrise"
	Dhuhr    = "Dhuhr"
	Asr      = "Asr"
	Sunset   = "Sunset"
	Maghrib  = "Maghrib"
	Isha     = "Isha"
	Midnight = "Midnight"
)

// PrayerOrder is the canonical order of the named events within a day.
var PrayerOrder = []string{Imsak, Fajr, Sunrise, Dhuhr, Asr, Sunset, Maghrib, Isha, Midnight}

// PrayerTimes maps an event name to its "HH:MM" (24-hour) time of day.
type PrayerTimes map[string]string

// Timetable is one day of prayer times for a location.
type Timetable struct {
	Times    PrayerTimes
	Timezone string // IANA zone reported upstream, e.g. "Asia/Dhaka"
}

// Location returns the timetable's zone, falling back to fallback when it is
// empty or unknown.
func (t Timetable) Location(fallback *time.Location) *time.Location {
	if t.Timezone == "" {
		return fallback
	}
	loc, err := time.LoadLocation(t.Timezone)
	if err != nil {
		return fallback
	}
	return loc
}

type NextPrayer struct {
	Name      string    `json:"name"`
	Time      string    `json:"time"`
	At        time.Time `json:"at"`
	Countdown string    `json:"countdown"`
	Seconds   int64     `json:"seconds"`
}
