package model

// Dua is a recommended supplication for a mood.
type Dua struct {
	DuaArabic       string `json:"duaArabic"`
	Transliteration string `json:"transliteration"`
	Meaning         string `json:"meaning"`
	Source          string `json:"source,omitempty"`
}

// CoachAdvice is the motivational coaching returned for a progress summary.
type CoachAdvice struct {
	Tips       []string `json:"tips"`
	Motivation string   `json:"motivation"`
}
