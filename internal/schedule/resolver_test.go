package schedule

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/model"
)

var dhaka = time.FixedZone("BST", 6*60*60)

func day(h, m, s int) time.Time {
	return time.Date(2025, time.March, 10, h, m, s, 0, dhaka)
}

func sampleTimes() model.PrayerTimes {
	return model.PrayerTimes{
		"Fajr":    "05:12",
		"Dhuhr":   "12:30",
		"Asr":     "15:45",
		"Maghrib": "18:18",
		"Isha":    "19:45",
	}
}

func TestResolveNext_BeforeIsha(t *testing.T) {
	next, ok := ResolveNext(sampleTimes(), day(19, 0, 0))
	require.True(t, ok)

	assert.Equal(t, "Isha", next.Name)
	assert.Equal(t, "19:45", next.Time)
	assert.Equal(t, "0h 45m 0s", next.Countdown)
	assert.Equal(t, int64(45*60), next.Seconds)
	assert.True(t, next.At.Equal(day(19, 45, 0)))
}

func TestResolveNext_RollsOverAfterLastPrayer(t *testing.T) {
	next, ok := ResolveNext(sampleTimes(), day(20, 0, 0))
	require.True(t, ok)

	assert.Equal(t, "Fajr", next.Name)
	assert.Equal(t, "05:12", next.Time)
	assert.True(t, next.At.Equal(day(5, 12, 0).AddDate(0, 0, 1)))
	assert.Equal(t, "9h 12m 0s", next.Countdown)
}

func TestResolveNext_ExactMatchIsNotPassed(t *testing.T) {
	next, ok := ResolveNext(sampleTimes(), day(12, 30, 0))
	require.True(t, ok)

	assert.Equal(t, "Dhuhr", next.Name)
	assert.Equal(t, "0h 0m 0s", next.Countdown)
}

func TestResolveNext_CountdownTruncates(t *testing.T) {
	now := day(15, 44, 0).Add(500 * time.Millisecond)
	next, ok := ResolveNext(sampleTimes(), now)
	require.True(t, ok)

	assert.Equal(t, "Asr", next.Name)
	assert.Equal(t, "0h 0m 59s", next.Countdown)
	assert.Equal(t, int64(59), next.Seconds)
}

func TestResolveNext_EmptyIsNotAnError(t *testing.T) {
	_, ok := ResolveNext(nil, day(10, 0, 0))
	assert.False(t, ok)

	_, ok = ResolveNext(model.PrayerTimes{}, day(10, 0, 0))
	assert.False(t, ok)

	_, ok = ResolveNext(model.PrayerTimes{"Fajr": "soon"}, day(10, 0, 0))
	assert.False(t, ok)
}

func TestResolveNext_SkipsUnparseableEntries(t *testing.T) {
	times := model.PrayerTimes{"Fajr": "bad", "Dhuhr": "12:30 (+06)"}
	next, ok := ResolveNext(times, day(10, 0, 0))
	require.True(t, ok)
	assert.Equal(t, "Dhuhr", next.Name)
	assert.Equal(t, "12:30 (+06)", next.Time)
}

func TestResolveNext_TieKeepsDayOrder(t *testing.T) {
	times := model.PrayerTimes{"Maghrib": "18:18", "Sunset": "18:18"}
	for i := 0; i < 20; i++ {
		next, ok := ResolveNext(times, day(17, 0, 0))
		require.True(t, ok)
		assert.Equal(t, "Sunset", next.Name)
	}
}

func TestResolveNext_PicksMinimumAfterRollover(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		times := model.PrayerTimes{}
		for j, name := range model.PrayerOrder[:1+rng.Intn(len(model.PrayerOrder))] {
			times[name] = fmt.Sprintf("%02d:%02d", (j*3+rng.Intn(3))%24, rng.Intn(60))
		}
		now := day(rng.Intn(24), rng.Intn(60), rng.Intn(60))

		next, ok := ResolveNext(times, now)
		require.True(t, ok)
		assert.False(t, next.At.Before(now))
		assert.True(t, next.At.Sub(now) < 24*time.Hour)

		for _, clock := range times {
			at, _ := At(now, clock)
			if at.Before(now) {
				at = at.AddDate(0, 0, 1)
			}
			assert.False(t, at.Before(next.At), "entry %s earlier than chosen %s", clock, next.Time)
		}
	}
}

func TestCountdown(t *testing.T) {
	assert.Equal(t, "0h 0m 0s", Countdown(0))
	assert.Equal(t, "0h 0m 0s", Countdown(-5*time.Second))
	assert.Equal(t, "1h 1m 1s", Countdown(time.Hour+time.Minute+time.Second+999*time.Millisecond))
	assert.Equal(t, "23h 59m 59s", Countdown(24*time.Hour-time.Second))
}

func TestParseClock(t *testing.T) {
	h, m, err := ParseClock("05:07")
	require.NoError(t, err)
	assert.Equal(t, 5, h)
	assert.Equal(t, 7, m)

	_, _, err = ParseClock("")
	assert.Error(t, err)
	_, _, err = ParseClock("25:00")
	assert.Error(t, err)
}
