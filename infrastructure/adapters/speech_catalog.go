package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pras0411/mslearn-intro-translator-text-to-speech/application/ports/outbound"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/config"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/domain"
)

// Prosody bounds offered for tunable voices: pitch as a percentage offset,
// rate as a percentage of normal speed.
var (
	defaultPitchRange = domain.Range{Min: -50, Max: 50}
	defaultRateRange  = domain.Range{Min: 50, Max: 200}
)

type providerVoice struct {
	Name        string   `json:"Name"`
	DisplayName string   `json:"DisplayName"`
	ShortName   string   `json:"ShortName"`
	Locale      string   `json:"Locale"`
	LocaleName  string   `json:"LocaleName"`
	VoiceType   string   `json:"VoiceType"`
	StyleList   []string `json:"StyleList"`
}

type speechCatalog struct {
	logger       outbound.LoggerPort
	fetcher      ContentFetcher
	speechConfig *config.SpeechConfig
}

// NewSpeechCatalog reads the provider's voice list endpoint. Locales are
// derived from the voice list in provider order.
func NewSpeechCatalog(logger outbound.LoggerPort, fetcher ContentFetcher, speechConfig *config.SpeechConfig) outbound.CatalogPort {
	return &speechCatalog{
		logger:       logger,
		fetcher:      fetcher,
		speechConfig: speechConfig,
	}
}

func (c *speechCatalog) FetchLocales(ctx context.Context) ([]domain.Locale, error) {
	voices, err := c.fetchVoiceList(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	locales := make([]domain.Locale, 0)
	for _, voice := range voices {
		if seen[voice.Locale] {
			continue
		}
		seen[voice.Locale] = true
		locales = append(locales, domain.Locale{
			Code:        voice.Locale,
			DisplayName: voice.LocaleName,
		})
	}
	return locales, nil
}

func (c *speechCatalog) FetchVoices(ctx context.Context, locale string) ([]domain.Voice, error) {
	providerVoices, err := c.fetchVoiceList(ctx)
	if err != nil {
		return nil, err
	}

	voices := make([]domain.Voice, 0)
	for _, voice := range providerVoices {
		if !strings.EqualFold(voice.Locale, locale) {
			continue
		}
		voices = append(voices, toDomainVoice(voice))
	}
	if len(voices) == 0 {
		return nil, fmt.Errorf("no voices for %s: %w", locale, domain.ErrLocaleNotFound)
	}
	return voices, nil
}

func (c *speechCatalog) fetchVoiceList(ctx context.Context) ([]providerVoice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.speechConfig.Endpoint+"/cognitiveservices/voices/list", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.speechConfig.ApiKey)

	payload, err := c.fetcher.FetchContent(req)
	if err != nil {
		c.logger.Error(err, "failed to fetch the provider voice list")
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	var voices []providerVoice
	if err := json.Unmarshal(payload, &voices); err != nil {
		c.logger.Error(err, "failed to decode the provider voice list")
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	return voices, nil
}

func toDomainVoice(voice providerVoice) domain.Voice {
	result := domain.Voice{
		ID:          voice.ShortName,
		DisplayName: voice.DisplayName,
		Locale:      voice.Locale,
		Styles:      voice.StyleList,
	}
	// Prosody tuning is only offered on neural voices.
	if strings.Contains(voice.VoiceType, "Neural") {
		pitch := defaultPitchRange
		rate := defaultRateRange
		result.PitchRange = &pitch
		result.RateRange = &rate
	}
	return result
}
