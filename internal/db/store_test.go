package db

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/model"
)

func newMockStore(t *testing.T) (Store, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewStore(sqlx.NewDb(conn, "postgres")), mock
}

const upsertPattern = `INSERT INTO daily_logs .* ON CONFLICT \(user_id, date\) DO UPDATE SET`

func TestUpsertDailyLog_ReplacesAllMutableColumns(t *testing.T) {
	store, mock := newMockStore(t)
	reason := "travelling"

	mock.ExpectExec(upsertPattern).
		WithArgs("u1", "2025-03-10", false, &reason, true, false, true, 2, 100, decimal.RequireFromString("12.5"), nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := store.UpsertDailyLog(context.Background(), model.DailyLog{
		UserID:         "u1",
		Date:           "2025-03-10",
		MissedReason:   &reason,
		SehriTaken:     true,
		TaraweehPrayed: true,
		QuranPages:     2,
		ZikrCount:      100,
		CharityAmount:  decimal.RequireFromString("12.5"),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertDailyLog_DropsMissedReasonWhenFastKept(t *testing.T) {
	store, mock := newMockStore(t)
	reason := "ill"

	mock.ExpectExec(upsertPattern).
		WithArgs("u1", "2025-03-10", true, nil, false, false, false, 5, 0, decimal.Zero, nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := store.UpsertDailyLog(context.Background(), model.DailyLog{
		UserID: "u1", Date: "2025-03-10", RozaKept: true, MissedReason: &reason, QuranPages: 5,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertDailyLog_RejectsInvalidInput(t *testing.T) {
	store, mock := newMockStore(t)

	cases := map[string]model.DailyLog{
		"missing user":     {Date: "2025-03-10"},
		"blank user":       {UserID: "  ", Date: "2025-03-10"},
		"malformed date":   {UserID: "u1", Date: "10/03/2025"},
		"impossible date":  {UserID: "u1", Date: "2025-02-30"},
		"negative pages":   {UserID: "u1", Date: "2025-03-10", QuranPages: -1},
		"negative zikr":    {UserID: "u1", Date: "2025-03-10", ZikrCount: -3},
		"negative charity": {UserID: "u1", Date: "2025-03-10", CharityAmount: decimal.NewFromInt(-1)},
	}
	for name, entry := range cases {
		t.Run(name, func(t *testing.T) {
			err := store.UpsertDailyLog(context.Background(), entry)
			assert.ErrorIs(t, err, ErrPersistence)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertDailyLog_StorageFailure(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec(upsertPattern).WillReturnError(errors.New("disk full"))

	err := store.UpsertDailyLog(context.Background(), model.DailyLog{UserID: "u1", Date: "2025-03-10"})
	assert.ErrorIs(t, err, ErrPersistence)
}

var logColumns = []string{
	"id", "user_id", "date", "roza_kept", "missed_reason", "sehri_taken", "iftar_done",
	"taraweeh_prayed", "quran_pages", "zikr_count", "charity_amount", "notes", "created_at", "updated_at",
}

func TestListDailyLogsByUser(t *testing.T) {
	store, mock := newMockStore(t)
	created := time.Date(2025, 3, 9, 20, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .* FROM daily_logs WHERE user_id = \$1 ORDER BY daily_logs.date DESC`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(logColumns).
			AddRow(2, "u1", "2025-03-10", false, "ill", true, true, false, 2, 33, "0.00", nil, created, created).
			AddRow(1, "u1", "2025-03-09", true, nil, true, true, true, 5, 99, "10.50", "good day", created, created))

	logs, err := store.ListDailyLogsByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, logs, 2)

	assert.Equal(t, "2025-03-10", logs[0].Date)
	require.NotNil(t, logs[0].MissedReason)
	assert.Equal(t, "ill", *logs[0].MissedReason)
	assert.Equal(t, "2025-03-09", logs[1].Date)
	assert.True(t, logs[1].CharityAmount.Equal(decimal.RequireFromString("10.5")))
	require.NotNil(t, logs[1].Notes)
	assert.Equal(t, "good day", *logs[1].Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDailyLogsByUser_EmptyIsNotAnError(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(`SELECT .* FROM daily_logs`).WithArgs("nobody").WillReturnRows(sqlmock.NewRows(logColumns))

	logs, err := store.ListDailyLogsByUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, logs)
	assert.Empty(t, logs)
}

func TestListDailyLogsByUser_StorageFailure(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(`SELECT .* FROM daily_logs`).WillReturnError(errors.New("connection reset"))

	_, err := store.ListDailyLogsByUser(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestUpsertQuranProgress(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec(`INSERT INTO quran_progress .* ON CONFLICT \(user_id, surah_id\) DO UPDATE`).
		WithArgs("u1", 2, 286, true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.UpsertQuranProgress(context.Background(), model.QuranProgress{UserID: "u1", SurahID: 2, AyahID: 286, Completed: true})
	require.NoError(t, err)

	assert.ErrorIs(t, store.UpsertQuranProgress(context.Background(), model.QuranProgress{UserID: "u1", SurahID: 115}), ErrPersistence)
	assert.ErrorIs(t, store.UpsertQuranProgress(context.Background(), model.QuranProgress{SurahID: 1}), ErrPersistence)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec(`INSERT INTO users`).WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

	_, err := store.CreateUser(context.Background(), NewUser{Email: "dup@example.com", HashedPassword: "x"})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_OtherFailure(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec(`INSERT INTO users`).WillReturnError(errors.New("connection reset"))

	_, err := store.CreateUser(context.Background(), NewUser{Email: "a@example.com", HashedPassword: "x"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailTaken)
}

func TestRunMigrations_AppliesUpFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "0002_more.up.sql"), []byte("CREATE TABLE b (id int);"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "0001_init.up.sql"), []byte("CREATE TABLE a (id int);\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "0001_init.down.sql"), []byte("DROP TABLE a;"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "0003_empty.up.sql"), []byte("  \n"), 0o644))

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE a (id int);")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE b (id int);")).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, RunMigrations(sqlx.NewDb(conn, "postgres"), dir))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_StopsOnFailure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "0001_bad.up.sql"), []byte("CREATE TABLE;"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "0002_next.up.sql"), []byte("CREATE TABLE c (id int);"), 0o644))

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()
	mock.ExpectExec("CREATE TABLE;").WillReturnError(errors.New("syntax error"))

	err = RunMigrations(sqlx.NewDb(conn, "postgres"), dir)
	assert.ErrorContains(t, err, "0001_bad.up.sql")
	assert.NoError(t, mock.ExpectationsWereMet())
}
