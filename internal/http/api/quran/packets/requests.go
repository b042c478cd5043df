package packets

import "github.com/MOSHAROF-4246/Ramadan-Super-App/internal/model"

// body for saving reading progress in a surah.
type ProgressRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	SurahID   int    `json:"surah_id" binding:"required,min=1,max=114"`
	AyahID    int    `json:"ayah_id" binding:"min=0"`
	Completed bool   `json:"completed"`
}

func (r ProgressRequest) ToModel() model.QuranProgress {
	return model.QuranProgress{
		UserID:    r.UserID,
		SurahID:   r.SurahID,
		AyahID:    r.AyahID,
		Completed: r.Completed,
	}
}
