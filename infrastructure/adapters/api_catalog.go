package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pras0411/mslearn-intro-translator-text-to-speech/application/ports/outbound"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/domain"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/infrastructure/gin_interface/dto"
)

type apiCatalog struct {
	logger  outbound.LoggerPort
	baseURL string
	token   string
	client  *http.Client
}

// NewApiCatalog is the announcer's catalog client, reading the synthesis
// API's /locales and /voices endpoints.
func NewApiCatalog(logger outbound.LoggerPort, baseURL string, token string) outbound.CatalogPort {
	return &apiCatalog{
		logger:  logger,
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *apiCatalog) FetchLocales(ctx context.Context) ([]domain.Locale, error) {
	var payload []dto.LocaleResponse
	if err := c.getJSON(ctx, c.baseURL+"/locales", &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	locales := make([]domain.Locale, 0, len(payload))
	for _, locale := range payload {
		locales = append(locales, locale.ToDomain())
	}
	return locales, nil
}

func (c *apiCatalog) FetchVoices(ctx context.Context, locale string) ([]domain.Voice, error) {
	endpoint := c.baseURL + "/voices?locale=" + url.QueryEscape(locale)

	var payload []dto.VoiceResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%s: %w", locale, domain.ErrLocaleNotFound)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	voices := make([]domain.Voice, 0, len(payload))
	for _, voice := range payload {
		voices = append(voices, voice.ToDomain())
	}
	return voices, nil
}

type statusError struct {
	status int
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.status, e.body)
}

func isNotFound(err error) bool {
	statusErr, ok := err.(*statusError)
	return ok && statusErr.status == http.StatusNotFound
}

func (c *apiCatalog) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
		return &statusError{status: res.StatusCode, body: string(body)}
	}

	return json.NewDecoder(res.Body).Decode(out)
}
