package model

import "time"

type Surah struct {
	Number                 int    `json:"number"`
	Name                   string `json:"name"`
	EnglishName            string `json:"englishName"`
	EnglishNameTranslation string `json:"englishNameTranslation"`
	NumberOfAyahs          int    `json:"numberOfAyahs"`
	RevelationType         string `json:"revelationType"`
}

type Ayah struct {
	Number        int    `json:"number"`
	NumberInSurah int    `json:"numberInSurah"`
	Juz           int    `json:"juz"`
	Page          int    `json:"page"`
	Text          string `json:"text"`
	Translation   string `json:"translation"`
}

// SurahText is a surah with its Arabic text and English translation side by side.
type SurahText struct {
	Surah Surah  `json:"surah"`
	Ayahs []Ayah `json:"ayahs"`
}

type QuranProgress struct {
	UserID    string    `db:"user_id" json:"user_id"`
	SurahID   int       `db:"surah_id" json:"surah_id"`
	AyahID    int       `db:"ayah_id" json:"ayah_id"`
	Completed bool      `db:"completed" json:"completed"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
