package db

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/model"
)

const surahCount = 114

func (s *pgStore) UpsertQuranProgress(ctx context.Context, p model.QuranProgress) error {
	switch {
	case p.UserID == "":
		return fmt.Errorf("%w: user_id is required", ErrPersistence)
	case p.SurahID < 1 || p.SurahID > surahCount:
		return fmt.Errorf("%w: surah_id %d out of range", ErrPersistence, p.SurahID)
	case p.AyahID < 0:
		return fmt.Errorf("%w: ayah_id must not be negative", ErrPersistence)
	}

	const q = `
	INSERT INTO quran_progress (user_id, surah_id, ayah_id, completed, updated_at)
	VALUES ($1, $2, $3, $4, now())
	ON CONFLICT (user_id, surah_id) DO UPDATE SET
	  ayah_id    = EXCLUDED.ayah_id,
	  completed  = EXCLUDED.completed,
	  updated_at = now();`
	if _, err := s.db.ExecContext(ctx, q, p.UserID, p.SurahID, p.AyahID, p.Completed); err != nil {
		log.Error().Err(err).Str("user_id", p.UserID).Int("surah_id", p.SurahID).Msg("UpsertQuranProgress failed")
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

func (s *pgStore) ListQuranProgress(ctx context.Context, userID string) ([]model.QuranProgress, error) {
	out := []model.QuranProgress{}
	const q = `
	SELECT user_id, surah_id, ayah_id, completed, updated_at
	  FROM quran_progress
	 WHERE user_id = $1
	 ORDER BY surah_id;`
	if err := s.db.SelectContext(ctx, &out, q, userID); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("ListQuranProgress failed")
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return out, nil
}
