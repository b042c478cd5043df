package db

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/model"
)

// Runs against a real Postgres when TEST_DATABASE_URL is set.
func TestStoreIntegration(t *testing.T) {
	if err := InitTestDB("../../migrations"); err != nil {
		t.Skipf("integration database not available: %v", err)
	}
	ctx := context.Background()

	t.Run("Daily log upsert keeps one row per day", func(t *testing.T) {
		userID := "it-" + uuid.NewString()

		require.NoError(t, TestStore.UpsertDailyLog(ctx, model.DailyLog{UserID: userID, Date: "2025-03-10", RozaKept: true, QuranPages: 5}))
		first, err := TestStore.ListDailyLogsByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, first, 1)

		require.NoError(t, TestStore.UpsertDailyLog(ctx, model.DailyLog{UserID: userID, Date: "2025-03-10", RozaKept: false, QuranPages: 2}))
		logs, err := TestStore.ListDailyLogsByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, logs, 1)

		assert.Equal(t, "2025-03-10", logs[0].Date)
		assert.False(t, logs[0].RozaKept)
		assert.Equal(t, 2, logs[0].QuranPages)
		assert.Equal(t, first[0].ID, logs[0].ID)
		assert.True(t, first[0].CreatedAt.Equal(logs[0].CreatedAt))
	})

	t.Run("Identical upserts are idempotent", func(t *testing.T) {
		userID := "it-" + uuid.NewString()
		entry := model.DailyLog{UserID: userID, Date: "2025-03-11", SehriTaken: true, ZikrCount: 33}

		require.NoError(t, TestStore.UpsertDailyLog(ctx, entry))
		require.NoError(t, TestStore.UpsertDailyLog(ctx, entry))

		logs, err := TestStore.ListDailyLogsByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.True(t, logs[0].SehriTaken)
		assert.Equal(t, 33, logs[0].ZikrCount)
	})

	t.Run("Logs come back newest first", func(t *testing.T) {
		userID := "it-" + uuid.NewString()
		for _, date := range []string{"2025-03-02", "2025-03-12", "2025-03-07"} {
			require.NoError(t, TestStore.UpsertDailyLog(ctx, model.DailyLog{UserID: userID, Date: date}))
		}

		logs, err := TestStore.ListDailyLogsByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, logs, 3)
		assert.Equal(t, []string{"2025-03-12", "2025-03-07", "2025-03-02"}, []string{logs[0].Date, logs[1].Date, logs[2].Date})
	})

	t.Run("Unknown user has no logs", func(t *testing.T) {
		logs, err := TestStore.ListDailyLogsByUser(ctx, "it-"+uuid.NewString())
		require.NoError(t, err)
		assert.Empty(t, logs)
	})

	t.Run("User management", func(t *testing.T) {
		email := uuid.NewString() + "@example.com"
		id, err := TestStore.CreateUser(ctx, NewUser{Email: email, HashedPassword: "hashed"})
		require.NoError(t, err)

		user, err := TestStore.GetUserByEmail(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, DefaultSehriAlertMinutes, user.SehriAlertMinutes)

		city, country := "Dhaka", "Bangladesh"
		require.NoError(t, TestStore.UpdateUserProfile(ctx, id, Profile{
			Email: email, City: &city, Country: &country, Language: "bn", SehriAlertMinutes: 20,
		}))

		subscribers, err := TestStore.ListAlertSubscribers(ctx)
		require.NoError(t, err)
		var found bool
		for _, s := range subscribers {
			found = found || s.ID == id
		}
		assert.True(t, found)
	})
}
