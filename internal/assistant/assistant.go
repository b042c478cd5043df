// Package assistant produces coaching and dua recommendations with a
// generative-text model.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/metrics"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/model"
)

const (
	DefaultModel = "gemini-2.0-flash"
	DefaultMood  = "peaceful"
	serviceName  = "gemini"
)

var ErrUpstream = errors.New("generative text service failure")

type Assistant interface {
	Coach(ctx context.Context, progress map[string]any, lang string) (model.CoachAdvice, error)
	Dua(ctx context.Context, mood string) (model.Dua, error)
}

// generateFunc sends a prompt and returns the model's JSON text.
type generateFunc func(ctx context.Context, prompt string, schema *genai.Schema) (string, error)

type Gemini struct {
	generate generateFunc
}

var _ Assistant = (*Gemini)(nil)

// NewGemini creates the Gemini client once; pass the result to whoever needs it.
func NewGemini(ctx context.Context, apiKey, modelName string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is empty")
	}
	if modelName == "" {
		modelName = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Gemini{
		generate: func(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
			resp, err := client.Models.GenerateContent(ctx, modelName, genai.Text(prompt), &genai.GenerateContentConfig{
				ResponseMIMEType: "application/json",
				ResponseSchema:   schema,
			})
			if err != nil {
				return "", err
			}
			return resp.Text(), nil
		},
	}, nil
}

var coachSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"tips":       {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"motivation": {Type: genai.TypeString},
	},
	Required: []string{"tips", "motivation"},
}

var duaSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"duaArabic":       {Type: genai.TypeString},
		"transliteration": {Type: genai.TypeString},
		"meaning":         {Type: genai.TypeString},
		"source":          {Type: genai.TypeString},
	},
	Required: []string{"duaArabic", "transliteration", "meaning"},
}

func (g *Gemini) Coach(ctx context.Context, progress map[string]any, lang string) (model.CoachAdvice, error) {
	summary, err := json.Marshal(progress)
	if err != nil {
		return model.CoachAdvice{}, fmt.Errorf("encode progress: %w", err)
	}

	language := "English"
	if lang == "bn" {
		language = "Bengali"
	}
	prompt := fmt.Sprintf("You are an expert Islamic Ramadan Coach. Based on the user's current progress: %s, "+
		"provide 3 actionable, motivational, and spiritually uplifting tips for today. "+
		"Provide the response in %s. Keep it concise and inspiring.", summary, language)

	var advice model.CoachAdvice
	if err := g.ask(ctx, prompt, coachSchema, &advice); err != nil {
		return model.CoachAdvice{}, err
	}
	if len(advice.Tips) == 0 || strings.TrimSpace(advice.Motivation) == "" {
		return model.CoachAdvice{}, fmt.Errorf("%w: incomplete coach advice", ErrUpstream)
	}
	return advice, nil
}

func (g *Gemini) Dua(ctx context.Context, mood string) (model.Dua, error) {
	if strings.TrimSpace(mood) == "" {
		mood = DefaultMood
	}
	prompt := fmt.Sprintf("The user is feeling %s. Recommend a powerful Dua from the Quran or Sunnah that fits this mood. "+
		"Provide the Arabic text, transliteration, and English meaning.", mood)

	var dua model.Dua
	if err := g.ask(ctx, prompt, duaSchema, &dua); err != nil {
		return model.Dua{}, err
	}
	if dua.DuaArabic == "" || dua.Transliteration == "" || dua.Meaning == "" {
		return model.Dua{}, fmt.Errorf("%w: incomplete dua", ErrUpstream)
	}
	return dua, nil
}

func (g *Gemini) ask(ctx context.Context, prompt string, schema *genai.Schema, out any) error {
	text, err := g.generate(ctx, prompt, schema)
	metrics.RecordUpstream(serviceName, err)
	if err != nil {
		log.Error().Err(err).Msg("gemini request failed")
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		log.Error().Err(err).Str("text", text).Msg("gemini returned undecodable JSON")
		return fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	return nil
}
