// Package quran reads surah lists and text from the alquran.cloud API.
package quran

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/model"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/upstream"
)

const (
	DefaultBaseURL = "https://api.alquran.cloud/v1"
	SurahCount     = 114

	arabicEdition      = "quran-uthmani"
	translationEdition = "en.sahih"
)

var ErrUpstream = upstream.ErrUpstream

type Client struct {
	api *upstream.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{api: upstream.New("alquran", baseURL, timeout)}
}

// Surahs lists all surahs.
func (c *Client) Surahs(ctx context.Context) ([]model.Surah, error) {
	raw, err := c.api.GetJSON(ctx, "surah", nil)
	if err != nil {
		return nil, fmt.Errorf("fetch surah list: %w", err)
	}

	data := gjson.GetBytes(raw, "data")
	if !data.IsArray() {
		return nil, fmt.Errorf("%w: surah list missing data", ErrUpstream)
	}
	var out []model.Surah
	if err := json.Unmarshal([]byte(data.Raw), &out); err != nil {
		return nil, fmt.Errorf("%w: decode surah list: %v", ErrUpstream, err)
	}
	return out, nil
}

// Surah returns the Arabic text of a surah paired with its English translation.
func (c *Client) Surah(ctx context.Context, number int) (model.SurahText, error) {
	if number < 1 || number > SurahCount {
		return model.SurahText{}, fmt.Errorf("surah number %d out of range", number)
	}

	path := fmt.Sprintf("surah/%d/editions/%s,%s", number, arabicEdition, translationEdition)
	raw, err := c.api.GetJSON(ctx, path, nil)
	if err != nil {
		return model.SurahText{}, fmt.Errorf("fetch surah %d: %w", number, err)
	}
	return parseEditions(raw)
}

func parseEditions(raw []byte) (model.SurahText, error) {
	editions := gjson.GetBytes(raw, "data").Array()
	if len(editions) < 2 {
		return model.SurahText{}, fmt.Errorf("%w: expected 2 editions, got %d", ErrUpstream, len(editions))
	}

	var text model.SurahText
	if err := json.Unmarshal([]byte(editions[0].Raw), &text.Surah); err != nil {
		return model.SurahText{}, fmt.Errorf("%w: decode surah: %v", ErrUpstream, err)
	}
	if err := json.Unmarshal([]byte(editions[0].Get("ayahs").Raw), &text.Ayahs); err != nil {
		return model.SurahText{}, fmt.Errorf("%w: decode ayahs: %v", ErrUpstream, err)
	}

	translations := editions[1].Get("ayahs").Array()
	for i := range text.Ayahs {
		if i < len(translations) {
			text.Ayahs[i].Translation = translations[i].Get("text").String()
		}
	}
	return text, nil
}
