package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pras0411/mslearn-intro-translator-text-to-speech/application/ports/outbound"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/config"
)

type translationRequestItem struct {
	Text string `json:"Text"`
}

type translationResponseItem struct {
	Translations []struct {
		Text string `json:"text"`
		To   string `json:"to"`
	} `json:"translations"`
}

type translator struct {
	logger           outbound.LoggerPort
	fetcher          ContentFetcher
	translatorConfig *config.TranslatorConfig
}

func NewTranslator(logger outbound.LoggerPort, fetcher ContentFetcher, translatorConfig *config.TranslatorConfig) outbound.TranslatorPort {
	return &translator{
		logger:           logger,
		fetcher:          fetcher,
		translatorConfig: translatorConfig,
	}
}

func (t *translator) Translate(ctx context.Context, text string, targetLocale string) (string, error) {
	// The translator wants a language code, not the full locale tag.
	language := strings.SplitN(targetLocale, "-", 2)[0]

	payload, err := json.Marshal([]translationRequestItem{{Text: text}})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/translate?api-version=3.0&to=%s", t.translatorConfig.Endpoint, language)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", t.translatorConfig.ApiKey)
	req.Header.Set("Ocp-Apim-Subscription-Region", t.translatorConfig.Region)
	req.Header.Set("Content-Type", "application/json")

	body, err := t.fetcher.FetchContent(req)
	if err != nil {
		t.logger.ErrorWithFields(err, "translation request failed", map[string]interface{}{
			"target": targetLocale,
		})
		return "", err
	}

	var items []translationResponseItem
	if err := json.Unmarshal(body, &items); err != nil {
		return "", fmt.Errorf("failed to decode translation response: %w", err)
	}
	if len(items) == 0 || len(items[0].Translations) == 0 {
		return "", fmt.Errorf("translator returned no translations for %s", targetLocale)
	}

	return items[0].Translations[0].Text, nil
}
