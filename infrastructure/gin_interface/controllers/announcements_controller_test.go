package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pras0411/mslearn-intro-translator-text-to-speech/domain"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/infrastructure/adapters"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/infrastructure/gin_interface/dto"
)

type fakeOrchestrator struct {
	results []domain.SynthesisResult
	err     error
}

func (f *fakeOrchestrator) Synthesize(_ context.Context, _ domain.SynthesisRequest) ([]domain.SynthesisResult, error) {
	return f.results, f.err
}

type fakeCatalog struct {
	locales []domain.Locale
	voices  map[string][]domain.Voice
	err     error
}

func (f *fakeCatalog) FetchLocales(_ context.Context) ([]domain.Locale, error) {
	return f.locales, f.err
}

func (f *fakeCatalog) FetchVoices(_ context.Context, locale string) ([]domain.Voice, error) {
	if f.err != nil {
		return nil, f.err
	}
	voices, ok := f.voices[locale]
	if !ok {
		return nil, domain.ErrLocaleNotFound
	}
	return voices, nil
}

func newTestRouter(orchestrator *fakeOrchestrator, catalog *fakeCatalog) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewAnnouncementsController(adapters.NewZerologWrapper(), orchestrator, catalog)
	controller.RegisterRoutes(router)
	return router
}

func performRequest(router *gin.Engine, method string, path string, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestSynthesizeReturnsOrderedResults(t *testing.T) {
	orchestrator := &fakeOrchestrator{
		results: []domain.SynthesisResult{
			{Transcript: "hello", AudioURL: "https://cdn/a.wav", DurationSeconds: 1.2},
			{Transcript: "[es] hello", AudioURL: "https://cdn/b.wav", DurationSeconds: 1.4},
		},
	}
	router := newTestRouter(orchestrator, &fakeCatalog{})

	recorder := performRequest(router, http.MethodPost, "/synthesize",
		`{"text": "hello", "targets": [
			{"locale": "en-US", "voice_id": "en-US-JennyNeural"},
			{"locale": "es-MX", "voice_id": "es-MX-DaliaNeural", "style": "cheerful", "rate": 125}
		]}`)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response dto.SynthesizeResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Len(t, response.Results, 2)
	assert.Equal(t, "hello", response.Results[0].Transcript)
	assert.Equal(t, "https://cdn/b.wav", response.Results[1].AudioURL)
	assert.InDelta(t, 1.4, response.Results[1].DurationSeconds, 0.001)
}

func TestSynthesizeBatchFailureCarriesFailedTarget(t *testing.T) {
	orchestrator := &fakeOrchestrator{
		err: &domain.SynthesisError{
			Kind:    domain.KindProviderCanceled,
			Locale:  "es-MX",
			VoiceID: "es-MX-DaliaNeural",
			Err:     errors.New("provider timeout"),
		},
	}
	router := newTestRouter(orchestrator, &fakeCatalog{})

	recorder := performRequest(router, http.MethodPost, "/synthesize",
		`{"text": "hello", "targets": [{"locale": "es-MX", "voice_id": "es-MX-DaliaNeural"}]}`)

	require.Equal(t, http.StatusBadGateway, recorder.Code)

	var response dto.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, string(domain.KindProviderCanceled), response.Kind)
	require.NotNil(t, response.FailedTarget)
	assert.Equal(t, "es-MX", response.FailedTarget.Locale)
	assert.Equal(t, "es-MX-DaliaNeural", response.FailedTarget.VoiceID)
}

func TestSynthesizeRejectsInvalidRequests(t *testing.T) {
	router := newTestRouter(&fakeOrchestrator{}, &fakeCatalog{})

	for _, body := range []string{
		`{}`,
		`{"text": "hello", "targets": []}`,
		`{"text": "hello", "targets": [{"locale": "en-US"}]}`,
		`not json`,
	} {
		recorder := performRequest(router, http.MethodPost, "/synthesize", body)
		assert.Equal(t, http.StatusBadRequest, recorder.Code, "body: %s", body)
	}
}

func TestSynthesizeInternalErrorsAreNotBadGateway(t *testing.T) {
	orchestrator := &fakeOrchestrator{err: errors.New("pool exhausted")}
	router := newTestRouter(orchestrator, &fakeCatalog{})

	recorder := performRequest(router, http.MethodPost, "/synthesize",
		`{"text": "hello", "targets": [{"locale": "en-US", "voice_id": "en-US-JennyNeural"}]}`)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestListLocales(t *testing.T) {
	catalog := &fakeCatalog{locales: []domain.Locale{
		{Code: "en-US", DisplayName: "English (United States)"},
		{Code: "fr-FR", DisplayName: "French (France)"},
	}}
	router := newTestRouter(&fakeOrchestrator{}, catalog)

	recorder := performRequest(router, http.MethodGet, "/locales", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var response []dto.LocaleResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Len(t, response, 2)
	assert.Equal(t, "en-US", response[0].Locale)
}

func TestListLocalesCatalogUnavailable(t *testing.T) {
	catalog := &fakeCatalog{err: domain.ErrCatalogUnavailable}
	router := newTestRouter(&fakeOrchestrator{}, catalog)

	recorder := performRequest(router, http.MethodGet, "/locales", "")
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}

func TestListVoices(t *testing.T) {
	pitch := domain.Range{Min: -50, Max: 50}
	catalog := &fakeCatalog{voices: map[string][]domain.Voice{
		"en-US": {{ID: "en-US-JennyNeural", DisplayName: "Jenny", Locale: "en-US",
			Styles: []string{"cheerful"}, PitchRange: &pitch}},
	}}
	router := newTestRouter(&fakeOrchestrator{}, catalog)

	recorder := performRequest(router, http.MethodGet, "/voices?locale=en-US", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var response []dto.VoiceResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, "en-US-JennyNeural", response[0].VoiceID)
	require.NotNil(t, response[0].PitchRange)
	assert.Equal(t, -50.0, response[0].PitchRange.Min)
	assert.Nil(t, response[0].RateRange)
}

func TestListVoicesUnknownLocaleIs404(t *testing.T) {
	router := newTestRouter(&fakeOrchestrator{}, &fakeCatalog{voices: map[string][]domain.Voice{}})

	recorder := performRequest(router, http.MethodGet, "/voices?locale=xx-XX", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestListVoicesRequiresLocaleParam(t *testing.T) {
	router := newTestRouter(&fakeOrchestrator{}, &fakeCatalog{})

	recorder := performRequest(router, http.MethodGet, "/voices", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(&fakeOrchestrator{}, &fakeCatalog{})

	recorder := performRequest(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
}
