package quran

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const surahListBody = `{"code":200,"status":"OK","data":[
  {"number":1,"name":"سُورَةُ ٱلْفَاتِحَةِ","englishName":"Al-Faatiha","englishNameTranslation":"The Opening","numberOfAyahs":7,"revelationType":"Meccan"},
  {"number":2,"name":"سُورَةُ البَقَرَةِ","englishName":"Al-Baqara","englishNameTranslation":"The Cow","numberOfAyahs":286,"revelationType":"Medinan"}
]}`

const editionsBody = `{"code":200,"status":"OK","data":[
  {"number":112,"name":"سُورَةُ الإِخۡلَاصِ","englishName":"Al-Ikhlaas","englishNameTranslation":"Sincerity","numberOfAyahs":2,"revelationType":"Meccan",
   "ayahs":[{"number":6222,"text":"قُلۡ هُوَ ٱللَّهُ أَحَدٌ","numberInSurah":1,"juz":30,"page":604},
            {"number":6223,"text":"ٱللَّهُ ٱلصَّمَدُ","numberInSurah":2,"juz":30,"page":604}]},
  {"number":112,"englishName":"Al-Ikhlaas",
   "ayahs":[{"number":6222,"text":"Say, He is Allah, [who is] One,","numberInSurah":1},
            {"number":6223,"text":"Allah, the Eternal Refuge.","numberInSurah":2}]}
]}`

func TestSurahs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/surah", r.URL.Path)
		w.Write([]byte(surahListBody))
	}))
	defer srv.Close()

	surahs, err := New(srv.URL, time.Second).Surahs(context.Background())
	require.NoError(t, err)
	require.Len(t, surahs, 2)
	assert.Equal(t, "Al-Baqara", surahs[1].EnglishName)
	assert.Equal(t, 286, surahs[1].NumberOfAyahs)
}

func TestSurah_ZipsTranslation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/surah/112/editions/quran-uthmani,en.sahih", r.URL.Path)
		w.Write([]byte(editionsBody))
	}))
	defer srv.Close()

	text, err := New(srv.URL, time.Second).Surah(context.Background(), 112)
	require.NoError(t, err)

	assert.Equal(t, "Sincerity", text.Surah.EnglishNameTranslation)
	require.Len(t, text.Ayahs, 2)
	assert.Equal(t, 1, text.Ayahs[0].NumberInSurah)
	assert.Equal(t, "Say, He is Allah, [who is] One,", text.Ayahs[0].Translation)
	assert.Equal(t, "Allah, the Eternal Refuge.", text.Ayahs[1].Translation)
	assert.Equal(t, 604, text.Ayahs[1].Page)
}

func TestSurah_Validation(t *testing.T) {
	c := New("http://127.0.0.1:0", time.Second)
	_, err := c.Surah(context.Background(), 0)
	assert.Error(t, err)
	_, err = c.Surah(context.Background(), 115)
	assert.Error(t, err)
}

func TestSurah_MissingEdition(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":200,"data":[{"number":1,"ayahs":[]}]}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).Surah(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUpstream)
}
