package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/model"
)

const dateLayout = "2006-01-02"

func validateDailyLog(entry model.DailyLog) error {
	if strings.TrimSpace(entry.UserID) == "" {
		return errors.New("user_id is required")
	}
	if _, err := time.Parse(dateLayout, entry.Date); err != nil {
		return fmt.Errorf("malformed date %q", entry.Date)
	}
	if entry.QuranPages < 0 || entry.ZikrCount < 0 {
		return errors.New("counts must not be negative")
	}
	if entry.CharityAmount.IsNegative() {
		return errors.New("charity_amount must not be negative")
	}
	return nil
}

// inserts the log for (user_id, date), or replaces every mutable column of the
// existing row. id and created_at survive the replace.
func (s *pgStore) UpsertDailyLog(ctx context.Context, entry model.DailyLog) error {
	if err := validateDailyLog(entry); err != nil {
		log.Warn().Err(err).Str("user_id", entry.UserID).Str("date", entry.Date).Msg("rejected daily log")
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if entry.RozaKept {
		entry.MissedReason = nil
	}

	const q = `
	INSERT INTO daily_logs
	  (user_id, date, roza_kept, missed_reason, sehri_taken, iftar_done, taraweeh_prayed,
	   quran_pages, zikr_count, charity_amount, notes, created_at, updated_at)
	VALUES
	  (:user_id, :date, :roza_kept, :missed_reason, :sehri_taken, :iftar_done, :taraweeh_prayed,
	   :quran_pages, :zikr_count, :charity_amount, :notes, now(), now())
	ON CONFLICT (user_id, date) DO UPDATE SET
	  roza_kept       = EXCLUDED.roza_kept,
	  missed_reason   = EXCLUDED.missed_reason,
	  sehri_taken     = EXCLUDED.sehri_taken,
	  iftar_done      = EXCLUDED.iftar_done,
	  taraweeh_prayed = EXCLUDED.taraweeh_prayed,
	  quran_pages     = EXCLUDED.quran_pages,
	  zikr_count      = EXCLUDED.zikr_count,
	  charity_amount  = EXCLUDED.charity_amount,
	  notes           = EXCLUDED.notes,
	  updated_at      = now();`
	if _, err := s.db.NamedExecContext(ctx, q, entry); err != nil {
		log.Error().Err(err).Str("user_id", entry.UserID).Str("date", entry.Date).Msg("UpsertDailyLog failed")
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

// lists the user's logs, most recent date first. No rows is an empty slice.
func (s *pgStore) ListDailyLogsByUser(ctx context.Context, userID string) ([]model.DailyLog, error) {
	out := []model.DailyLog{}
	const q = `
	SELECT id, user_id, to_char(date, 'YYYY-MM-DD') AS date, roza_kept, missed_reason,
	       sehri_taken, iftar_done, taraweeh_prayed, quran_pages, zikr_count,
	       charity_amount, notes, created_at, updated_at
	  FROM daily_logs
	 WHERE user_id = $1
	 ORDER BY daily_logs.date DESC;`
	if err := s.db.SelectContext(ctx, &out, q, userID); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("ListDailyLogsByUser failed")
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return out, nil
}
