package mock_provider

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-audio/wav"

	"github.com/pras0411/mslearn-intro-translator-text-to-speech/infrastructure/adapters"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	Init(router, adapters.NewZerologWrapper())
	return router
}

func TestExtractSpokenTextStripsTags(t *testing.T) {
	ssml := `<speak version="1.0"><voice name="en-US-JennyNeural"><prosody rate="125%">Now boarding</prosody></voice></speak>`
	if got := extractSpokenText(ssml); got != "Now boarding" {
		t.Fatalf("expected spoken text %q, got %q", "Now boarding", got)
	}

	if got := extractSpokenText("<speak></speak>"); got != "" {
		t.Fatalf("expected empty spoken text, got %q", got)
	}
}

func TestSynthesizeReturnsPlayableWav(t *testing.T) {
	router := newTestRouter()

	ssml := `<speak><voice name="en-US-JennyNeural">hello there</voice></speak>`
	req := httptest.NewRequest(http.MethodPost, "/cognitiveservices/v1", strings.NewReader(ssml))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	decoder := wav.NewDecoder(bytes.NewReader(recorder.Body.Bytes()))
	if !decoder.IsValidFile() {
		t.Fatal("response is not a valid wav payload")
	}

	duration, err := decoder.Duration()
	if err != nil {
		t.Fatalf("failed to read duration: %v", err)
	}
	// "hello there" is 11 runes at 0.06s each.
	if got := duration.Seconds(); got < 0.6 || got > 0.7 {
		t.Fatalf("expected roughly 0.66s of audio, got %.3f", got)
	}
}

func TestSynthesizeRejectsEmptySSML(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/cognitiveservices/v1", strings.NewReader("<speak></speak>"))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}

func TestVoiceListCoversPresetLocales(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/cognitiveservices/voices/list", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	for _, locale := range []string{"en-US", "es-MX", "fr-FR", "zh-CN"} {
		if !strings.Contains(recorder.Body.String(), locale) {
			t.Fatalf("voice list is missing locale %s", locale)
		}
	}
}
