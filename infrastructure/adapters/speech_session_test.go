package adapters

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pras0411/mslearn-intro-translator-text-to-speech/config"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/domain"
)

func floatPtr(v float64) *float64 { return &v }

func stringPtr(v string) *string { return &v }

func newTestSessionFactory(endpoint string) *speechSessionFactory {
	return &speechSessionFactory{
		logger: NewZerologWrapper(),
		speechConfig: &config.SpeechConfig{
			ApiKey:   "test-key",
			Region:   "westus",
			Endpoint: endpoint,
		},
	}
}

func TestSpeakSendsSSMLAndReturnsAudio(t *testing.T) {
	var gotBody string
	var gotReq *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotReq = r
		w.Header().Set("Content-Type", "audio/wav")
		w.Write([]byte("RIFF-audio-bytes"))
	}))
	defer server.Close()

	factory := newTestSessionFactory(server.URL)
	session, err := factory.NewSession(domain.SynthesisTarget{
		Locale:  "en-US",
		VoiceID: "en-US-JennyNeural",
		Adjustments: &domain.VoiceAdjustments{
			Style: stringPtr("cheerful"),
			Pitch: floatPtr(10),
			Rate:  floatPtr(125),
		},
	})
	require.NoError(t, err)
	defer session.Close()

	audio, err := session.Speak(context.Background(), "Hello & welcome")
	require.NoError(t, err)
	assert.Equal(t, []byte("RIFF-audio-bytes"), audio)

	assert.Equal(t, "/cognitiveservices/v1", gotReq.URL.Path)
	assert.Equal(t, "test-key", gotReq.Header.Get("Ocp-Apim-Subscription-Key"))
	assert.Equal(t, "application/ssml+xml", gotReq.Header.Get("Content-Type"))
	assert.Equal(t, "riff-24khz-16bit-mono-pcm", gotReq.Header.Get("X-Microsoft-OutputFormat"))

	assert.Contains(t, gotBody, `xml:lang="en-US"`)
	assert.Contains(t, gotBody, `<voice name="en-US-JennyNeural">`)
	assert.Contains(t, gotBody, `<mstts:express-as style="cheerful">`)
	assert.Contains(t, gotBody, `pitch="+10%"`)
	assert.Contains(t, gotBody, `rate="125%"`)
	assert.Contains(t, gotBody, "Hello &amp; welcome")
}

func TestSpeakOmitsUnsupportedAdjustmentDimensions(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Header().Set("Content-Type", "audio/wav")
		w.Write([]byte("audio"))
	}))
	defer server.Close()

	factory := newTestSessionFactory(server.URL)
	session, err := factory.NewSession(domain.SynthesisTarget{
		Locale:  "zh-CN",
		VoiceID: "zh-CN-Huihui",
	})
	require.NoError(t, err)
	defer session.Close()

	_, err = session.Speak(context.Background(), "你好")
	require.NoError(t, err)

	assert.NotContains(t, gotBody, "express-as")
	assert.NotContains(t, gotBody, "<prosody")
	assert.Contains(t, gotBody, "你好")
}

func TestSpeakNonAudioResponseIsUnexpectedResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>sign in</html>"))
	}))
	defer server.Close()

	factory := newTestSessionFactory(server.URL)
	session, err := factory.NewSession(domain.SynthesisTarget{Locale: "en-US", VoiceID: "en-US-JennyNeural"})
	require.NoError(t, err)
	defer session.Close()

	_, err = session.Speak(context.Background(), "hello")
	assert.ErrorIs(t, err, domain.ErrUnexpectedProviderResult)
}

func TestSpeakErrorStatusIsCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid subscription key", http.StatusUnauthorized)
	}))
	defer server.Close()

	factory := newTestSessionFactory(server.URL)
	session, err := factory.NewSession(domain.SynthesisTarget{Locale: "en-US", VoiceID: "en-US-JennyNeural"})
	require.NoError(t, err)
	defer session.Close()

	_, err = session.Speak(context.Background(), "hello")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnexpectedProviderResult)
	assert.Contains(t, err.Error(), "401")
}

func TestSessionIsSingleUse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/wav")
		w.Write([]byte("audio"))
	}))
	defer server.Close()

	factory := newTestSessionFactory(server.URL)
	session, err := factory.NewSession(domain.SynthesisTarget{Locale: "en-US", VoiceID: "en-US-JennyNeural"})
	require.NoError(t, err)

	_, err = session.Speak(context.Background(), "first")
	require.NoError(t, err)

	_, err = session.Speak(context.Background(), "second")
	assert.Error(t, err)

	require.NoError(t, session.Close())
	require.NoError(t, session.Close())

	_, err = session.Speak(context.Background(), "after close")
	assert.Error(t, err)
}

func TestNewSessionRequiresLocaleAndVoice(t *testing.T) {
	factory := newTestSessionFactory("https://provider.example")

	_, err := factory.NewSession(domain.SynthesisTarget{Locale: "en-US"})
	assert.Error(t, err)

	_, err = factory.NewSession(domain.SynthesisTarget{VoiceID: "en-US-JennyNeural"})
	assert.Error(t, err)
}

func TestBuildSSMLNestsProsodyInsideStyle(t *testing.T) {
	ssml := buildSSML(domain.SynthesisTarget{
		Locale:  "fr-FR",
		VoiceID: "fr-FR-DeniseNeural",
		Adjustments: &domain.VoiceAdjustments{
			Style: stringPtr("sad"),
			Rate:  floatPtr(80),
		},
	}, "Bonjour")

	styleOpen := strings.Index(ssml, "<mstts:express-as")
	prosodyOpen := strings.Index(ssml, "<prosody")
	prosodyClose := strings.Index(ssml, "</prosody>")
	styleClose := strings.Index(ssml, "</mstts:express-as>")

	require.True(t, styleOpen >= 0 && prosodyOpen >= 0)
	assert.Less(t, styleOpen, prosodyOpen)
	assert.Less(t, prosodyClose, styleClose)
	assert.NotContains(t, ssml, "pitch=")
}
